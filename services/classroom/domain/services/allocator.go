package services

import (
	"cmp"
	"fmt"
	"slices"

	classroomdomain "github.com/ghuser/examseats/services/classroom/domain"
	"github.com/ghuser/examseats/services/classroom/domain/models"
)

// Allocate chooses classrooms to seat requiredSeats exam candidates.
//
// Rooms are ordered by floor ascending, then capacity descending, with a
// stable sort so ties keep their input order. They are taken greedily until
// the running shortfall drops to zero or below; the last room may overshoot
// the request. Failure to seat everyone is reported through the result, not
// the error. The error is non-nil only when requiredSeats is not positive.
//
// classrooms is neither reordered nor modified.
func Allocate(classrooms []*models.Classroom, requiredSeats int) (*models.AllocationResult, error) {
	if requiredSeats <= 0 {
		return nil, fmt.Errorf("%w: got %d", classroomdomain.ErrInvalidSeatCount, requiredSeats)
	}

	if len(classrooms) == 0 {
		return &models.AllocationResult{
			Success:             false,
			Outcome:             models.OutcomeNoClassrooms,
			AllocatedClassrooms: []*models.Classroom{},
			TotalCapacity:       0,
			Message:             models.MessageNoClassrooms,
		}, nil
	}

	sorted := slices.Clone(classrooms)
	slices.SortStableFunc(sorted, compareFloorThenCapacity)

	allocated := make([]*models.Classroom, 0, len(sorted))
	remaining := requiredSeats
	for _, c := range sorted {
		if remaining <= 0 {
			break
		}
		allocated = append(allocated, c)
		remaining -= c.Capacity.Int()
	}

	totalCapacity := sumCapacity(allocated)
	if totalCapacity < requiredSeats {
		return &models.AllocationResult{
			Success:             false,
			Outcome:             models.OutcomeInsufficientCapacity,
			AllocatedClassrooms: []*models.Classroom{},
			TotalCapacity:       sumCapacity(sorted),
			Message:             models.MessageInsufficientCapacity,
		}, nil
	}

	return &models.AllocationResult{
		Success:             true,
		Outcome:             models.OutcomeAllocated,
		AllocatedClassrooms: allocated,
		TotalCapacity:       totalCapacity,
		Message: fmt.Sprintf("Successfully allocated %d classroom(s) for %d students",
			len(allocated), requiredSeats),
	}, nil
}

func compareFloorThenCapacity(a, b *models.Classroom) int {
	if c := cmp.Compare(a.Floor, b.Floor); c != 0 {
		return c
	}
	return cmp.Compare(b.Capacity, a.Capacity)
}

func sumCapacity(classrooms []*models.Classroom) int {
	total := 0
	for _, c := range classrooms {
		total += c.Capacity.Int()
	}
	return total
}
