package models

import (
	"strings"
	"time"
)

type Role string

const (
	RoleApplicant Role = "applicant"
	RoleEmployer  Role = "employer"
)

// ToRole parses a role name case-insensitively.
func ToRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleApplicant:
		return RoleApplicant, nil
	case RoleEmployer:
		return RoleEmployer, nil
	default:
		return "", newValidationError("role", "must be one of: applicant, employer")
	}
}

// User is an account that submits or reviews applications. Email is unique
// across the store. Timestamps are maintained by the store layer.
type User struct {
	ID        int
	Name      string
	Email     string `gorm:"uniqueIndex"`
	Mobile    string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewUser(name, email, mobile, role string) (*User, error) {
	u := &User{}
	if err := u.SetName(name); err != nil {
		return nil, err
	}
	if err := u.SetEmail(email); err != nil {
		return nil, err
	}
	if err := u.SetMobile(mobile); err != nil {
		return nil, err
	}
	if err := u.SetRole(role); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *User) SetName(name string) error {
	name, err := nonEmpty("name", name)
	if err != nil {
		return err
	}
	u.Name = name
	return nil
}

func (u *User) SetEmail(email string) error {
	email = strings.TrimSpace(email)
	if err := validate.Var(email, "required,trackermail"); err != nil {
		return newValidationError("email", "must look like local@domain.tld")
	}
	u.Email = email
	return nil
}

func (u *User) SetMobile(mobile string) error {
	mobile = strings.TrimSpace(mobile)
	if err := validate.Var(mobile, "required,mobile"); err != nil {
		return newValidationError("mobile", "must be numeric with at least 10 digits")
	}
	u.Mobile = mobile
	return nil
}

func (u *User) SetRole(role string) error {
	parsed, err := ToRole(role)
	if err != nil {
		return err
	}
	u.Role = parsed
	return nil
}
