package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Floor bounds accepted at creation. Negative floors are basements.
const (
	MinFloor = -10
	MaxFloor = 200
)

// MaxCapacity is the largest seat count a single classroom may declare. The
// capacity column is a 32-bit integer, so this also keeps every accepted
// value storable.
const MaxCapacity = 10_000

// Capacity is the number of exam seats a classroom provides. Always within
// 1..MaxCapacity for classrooms built through NewCapacity.
type Capacity int

// NewCapacity returns c as a Capacity, or an error unless 0 < c <= MaxCapacity.
func NewCapacity(c int) (Capacity, error) {
	if err := checkCapacity(c); err != nil {
		return 0, err
	}
	return Capacity(c), nil
}

func checkCapacity(c int) error {
	if c <= 0 {
		return fmt.Errorf("capacity must be greater than 0 (got %d)", c)
	}
	if c > MaxCapacity {
		return fmt.Errorf("capacity must not exceed %d (got %d)", MaxCapacity, c)
	}
	return nil
}

// Int returns the seat count as a plain int.
func (c Capacity) Int() int {
	return int(c)
}

// Classroom is the aggregate root of this bounded context: a registered room
// that can host exam candidates.
type Classroom struct {
	ID        uuid.UUID
	Name      ClassroomName
	Floor     int
	Capacity  Capacity
	CreatedAt time.Time
}

// NewClassroom builds a Classroom with a generated ID and the current UTC time.
func NewClassroom(name ClassroomName, floor int, capacity Capacity) (*Classroom, error) {
	if floor < MinFloor || floor > MaxFloor {
		return nil, fmt.Errorf("floor must be between %d and %d (got %d)", MinFloor, MaxFloor, floor)
	}
	if err := checkCapacity(int(capacity)); err != nil {
		return nil, err
	}
	return &Classroom{
		ID:        uuid.New(),
		Name:      name,
		Floor:     floor,
		Capacity:  capacity,
		CreatedAt: time.Now().UTC(),
	}, nil
}
