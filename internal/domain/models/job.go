package models

import (
	"strings"
	"time"
)

type JobType string

const (
	FullTime   JobType = "full-time"
	PartTime   JobType = "part-time"
	Contract   JobType = "contract"
	Internship JobType = "internship"
)

// ToJobType parses an employment type case-insensitively.
func ToJobType(s string) (JobType, error) {
	switch JobType(strings.ToLower(strings.TrimSpace(s))) {
	case FullTime:
		return FullTime, nil
	case PartTime:
		return PartTime, nil
	case Contract:
		return Contract, nil
	case Internship:
		return Internship, nil
	default:
		return "", newValidationError("type", "must be one of: full-time, part-time, contract, internship")
	}
}

// Job is a posting owned by one company. CompanyID may point at a company
// that no longer exists; listings render those as N/A.
type Job struct {
	ID          int
	Name        string
	Location    string
	Description string
	Salary      float64
	Type        JobType
	CompanyID   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewJob(name, location, description string, salary float64, jobType string, companyID int) (*Job, error) {
	j := &Job{CompanyID: companyID}
	if err := j.SetName(name); err != nil {
		return nil, err
	}
	if err := j.SetLocation(location); err != nil {
		return nil, err
	}
	if err := j.SetDescription(description); err != nil {
		return nil, err
	}
	if err := j.SetSalary(salary); err != nil {
		return nil, err
	}
	if err := j.SetType(jobType); err != nil {
		return nil, err
	}
	return j, nil
}

func (j *Job) SetName(name string) error {
	name, err := nonEmpty("name", name)
	if err != nil {
		return err
	}
	j.Name = name
	return nil
}

func (j *Job) SetLocation(location string) error {
	location, err := nonEmpty("location", location)
	if err != nil {
		return err
	}
	j.Location = location
	return nil
}

func (j *Job) SetDescription(description string) error {
	description, err := nonEmpty("description", description)
	if err != nil {
		return err
	}
	j.Description = description
	return nil
}

func (j *Job) SetSalary(salary float64) error {
	if salary < 0 {
		return newValidationError("salary", "must not be negative")
	}
	j.Salary = salary
	return nil
}

func (j *Job) SetType(jobType string) error {
	parsed, err := ToJobType(jobType)
	if err != nil {
		return err
	}
	j.Type = parsed
	return nil
}
