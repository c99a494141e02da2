package models

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ClassroomName is a value object holding a display label such as "Room 101".
// Surrounding whitespace is trimmed; the result must be 1..255 characters.
type ClassroomName string

const (
	minClassroomNameLength = 1
	maxClassroomNameLength = 255
)

// NewClassroomName trims s and returns a ClassroomName, or an error if the
// trimmed value is empty or too long.
func NewClassroomName(s string) (ClassroomName, error) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	if n < minClassroomNameLength {
		return "", fmt.Errorf("classroom name must be at least %d character", minClassroomNameLength)
	}
	if n > maxClassroomNameLength {
		return "", fmt.Errorf("classroom name must not exceed %d characters", maxClassroomNameLength)
	}
	return ClassroomName(s), nil
}

func (n ClassroomName) String() string {
	return string(n)
}
