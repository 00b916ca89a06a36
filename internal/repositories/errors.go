package repositories

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a record with the requested id does not
// exist. gorm's ErrRecordNotFound never escapes the repository boundary.
var ErrNotFound = errors.New("record not found")

// DuplicateEmailError reports a violated users.email uniqueness constraint.
type DuplicateEmailError struct {
	Email string
}

func (e *DuplicateEmailError) Error() string {
	return fmt.Sprintf("a user with email %q already exists", e.Email)
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
