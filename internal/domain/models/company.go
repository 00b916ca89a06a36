package models

import (
	"strings"
	"time"
)

// Company posts jobs. A company owns its jobs one-to-many through
// Job.CompanyID.
type Company struct {
	ID        int
	Name      string
	Industry  string
	Website   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewCompany(name, industry, website string) (*Company, error) {
	c := &Company{}
	if err := c.SetName(name); err != nil {
		return nil, err
	}
	if err := c.SetIndustry(industry); err != nil {
		return nil, err
	}
	if err := c.SetWebsite(website); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Company) SetName(name string) error {
	name, err := nonEmpty("name", name)
	if err != nil {
		return err
	}
	c.Name = name
	return nil
}

func (c *Company) SetIndustry(industry string) error {
	industry, err := nonEmpty("industry", industry)
	if err != nil {
		return err
	}
	c.Industry = industry
	return nil
}

func (c *Company) SetWebsite(website string) error {
	website = strings.TrimSpace(website)
	if err := validate.Var(website, "required,website"); err != nil {
		return newValidationError("website", "must start with http:// or https://")
	}
	c.Website = website
	return nil
}
