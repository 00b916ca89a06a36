package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_NewApplication_StatusIsLowercased(t *testing.T) {
	application, err := NewApplication(1, 1, "Interviewing", time.Time{})

	assert.NoError(t, err)
	assert.Equal(t, StatusInterviewing, application.Status)
}

func Test_NewApplication_ZeroDateDefaultsToNow(t *testing.T) {
	before := time.Now().UTC()
	application, err := NewApplication(1, 1, "applied", time.Time{})
	after := time.Now().UTC()

	assert.NoError(t, err)
	assert.False(t, application.Date.Before(before))
	assert.False(t, application.Date.After(after))
}

func Test_NewApplication_SuppliedDateIsKept(t *testing.T) {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	application, err := NewApplication(1, 1, "applied", date)

	assert.NoError(t, err)
	assert.Equal(t, date, application.Date)
}

func Test_NewApplication_InvalidFieldsAreRejected(t *testing.T) {
	cases := []struct {
		testName string
		userID   int
		jobID    int
		status   string
		field    string
	}{
		{"zero user id", 0, 1, "applied", "user_id"},
		{"negative user id", -3, 1, "applied", "user_id"},
		{"zero job id", 1, 0, "applied", "job_id"},
		{"unknown status", 1, 1, "pending", "status"},
	}

	for _, c := range cases {
		t.Run(c.testName, func(t *testing.T) {
			_, err := NewApplication(c.userID, c.jobID, c.status, time.Time{})

			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Equal(t, c.field, validationErr.Field)
		})
	}
}
