package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NewCompany_ValidInputIsNormalized(t *testing.T) {
	company, err := NewCompany(" Google ", "Tech", "https://google.com")

	assert.NoError(t, err)
	assert.Equal(t, "Google", company.Name)
	assert.Equal(t, "Tech", company.Industry)
	assert.Equal(t, "https://google.com", company.Website)
}

func Test_NewCompany_InvalidFieldsAreRejected(t *testing.T) {
	cases := []struct {
		testName string
		name     string
		industry string
		website  string
		field    string
	}{
		{"empty name", "", "Tech", "https://google.com", "name"},
		{"empty industry", "Google", "  ", "https://google.com", "industry"},
		{"website without scheme", "Google", "Tech", "google.com", "website"},
		{"website with ftp scheme", "Google", "Tech", "ftp://google.com", "website"},
		{"empty website", "Google", "Tech", "", "website"},
	}

	for _, c := range cases {
		t.Run(c.testName, func(t *testing.T) {
			_, err := NewCompany(c.name, c.industry, c.website)

			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Equal(t, c.field, validationErr.Field)
		})
	}
}

func Test_SetWebsite_AcceptsPlainHttp(t *testing.T) {
	company, err := NewCompany("Google", "Tech", "https://google.com")
	assert.NoError(t, err)

	assert.NoError(t, company.SetWebsite("http://google.com"))
	assert.Equal(t, "http://google.com", company.Website)
}
