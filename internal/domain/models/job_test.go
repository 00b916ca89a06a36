package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NewJob_ValidInputIsNormalized(t *testing.T) {
	job, err := NewJob("Software Engineer", "Nairobi, Kenya",
		"Senior engineer solving real-world problems", 200000, "FULL-TIME", 1)

	assert.NoError(t, err)
	assert.Equal(t, "Software Engineer", job.Name)
	assert.Equal(t, "Nairobi, Kenya", job.Location)
	assert.Equal(t, FullTime, job.Type)
	assert.Equal(t, float64(200000), job.Salary)
	assert.Equal(t, 1, job.CompanyID)
}

func Test_NewJob_InvalidFieldsAreRejected(t *testing.T) {
	cases := []struct {
		testName    string
		name        string
		location    string
		description string
		salary      float64
		jobType     string
		field       string
	}{
		{"empty title", "", "Nairobi", "desc", 100, "contract", "name"},
		{"empty location", "Engineer", "", "desc", 100, "contract", "location"},
		{"empty description", "Engineer", "Nairobi", " ", 100, "contract", "description"},
		{"negative salary", "Engineer", "Nairobi", "desc", -1, "contract", "salary"},
		{"unknown type", "Engineer", "Nairobi", "desc", 100, "remote", "type"},
	}

	for _, c := range cases {
		t.Run(c.testName, func(t *testing.T) {
			_, err := NewJob(c.name, c.location, c.description, c.salary, c.jobType, 1)

			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Equal(t, c.field, validationErr.Field)
		})
	}
}

func Test_SetSalary_ZeroIsAllowed(t *testing.T) {
	job, err := NewJob("Intern", "Remote", "Unpaid internship", 10, "internship", 1)
	assert.NoError(t, err)

	assert.NoError(t, job.SetSalary(0))
	assert.Equal(t, float64(0), job.Salary)
}

func Test_ToJobType_IsCaseInsensitive(t *testing.T) {
	jobType, err := ToJobType("Part-Time")

	assert.NoError(t, err)
	assert.Equal(t, PartTime, jobType)
}
