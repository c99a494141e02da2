// Package services contains stateless domain services for the classroom
// bounded context: the seat allocator and creation-time business rules.
// Nothing here performs I/O.
package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/ghuser/examseats/services/classroom/domain/models"
)

// ValidateName enforces business rules for ClassroomName beyond the trimming
// and length checks done by its constructor:
//   - no control characters
//   - no consecutive spaces
func ValidateName(name models.ClassroomName) error {
	s := name.String()

	if strings.TrimSpace(s) == "" {
		return errors.New("classroom name must not be blank")
	}

	for _, r := range s {
		if unicode.IsControl(r) {
			return errors.New("classroom name must not contain control characters")
		}
	}

	if strings.Contains(s, "  ") {
		return errors.New("classroom name must not contain consecutive spaces")
	}

	return nil
}

// ValidateClassroomForCreation checks a constructed Classroom before it is
// persisted.
func ValidateClassroomForCreation(c *models.Classroom) error {
	if c == nil {
		return errors.New("classroom cannot be nil")
	}

	if err := ValidateName(c.Name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}

	if _, err := models.NewCapacity(c.Capacity.Int()); err != nil {
		return err
	}

	if c.Floor < models.MinFloor || c.Floor > models.MaxFloor {
		return fmt.Errorf("floor must be between %d and %d (got %d)", models.MinFloor, models.MaxFloor, c.Floor)
	}

	if c.ID == uuid.Nil {
		return errors.New("id must be set")
	}

	return nil
}
