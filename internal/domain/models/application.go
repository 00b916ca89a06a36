package models

import (
	"strings"
	"time"
)

type Status string

const (
	StatusApplied      Status = "applied"
	StatusInterviewing Status = "interviewing"
	StatusRejected     Status = "rejected"
	StatusOffered      Status = "offered"
	StatusAccepted     Status = "accepted"
)

// ToStatus parses an application status case-insensitively.
func ToStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusApplied:
		return StatusApplied, nil
	case StatusInterviewing:
		return StatusInterviewing, nil
	case StatusRejected:
		return StatusRejected, nil
	case StatusOffered:
		return StatusOffered, nil
	case StatusAccepted:
		return StatusAccepted, nil
	default:
		return "", newValidationError("status", "must be one of: applied, interviewing, rejected, offered, accepted")
	}
}

// Application links a user to a job. Deleting either side leaves the
// application dangling rather than cascading.
type Application struct {
	ID     int
	UserID int
	JobID  int
	Status Status
	Date   time.Time
}

// NewApplication validates ids and status. A zero date defaults to the
// creation time, matching the original record behavior.
func NewApplication(userID, jobID int, status string, date time.Time) (*Application, error) {
	a := &Application{}
	if err := a.SetUserID(userID); err != nil {
		return nil, err
	}
	if err := a.SetJobID(jobID); err != nil {
		return nil, err
	}
	if err := a.SetStatus(status); err != nil {
		return nil, err
	}
	if date.IsZero() {
		date = time.Now().UTC()
	}
	a.Date = date
	return a, nil
}

func (a *Application) SetUserID(userID int) error {
	if userID <= 0 {
		return newValidationError("user_id", "must be a positive integer")
	}
	a.UserID = userID
	return nil
}

func (a *Application) SetJobID(jobID int) error {
	if jobID <= 0 {
		return newValidationError("job_id", "must be a positive integer")
	}
	a.JobID = jobID
	return nil
}

func (a *Application) SetStatus(status string) error {
	parsed, err := ToStatus(status)
	if err != nil {
		return err
	}
	a.Status = parsed
	return nil
}
