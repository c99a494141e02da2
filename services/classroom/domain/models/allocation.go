package models

// Outcome names which branch of the allocator produced a result.
type Outcome string

const (
	OutcomeAllocated            Outcome = "allocated"
	OutcomeNoClassrooms         Outcome = "no_classrooms"
	OutcomeInsufficientCapacity Outcome = "insufficient_capacity"
)

// Messages reported to callers. Existing clients match on this text.
const (
	MessageNoClassrooms         = "No classrooms available"
	MessageInsufficientCapacity = "Not enough seats available"
)

// AllocationResult is the value returned for every seat request. It is built
// fresh per call and never persisted.
//
// On success AllocatedClassrooms holds the chosen rooms in allocation order and
// TotalCapacity is their combined capacity. On failure AllocatedClassrooms is
// empty and TotalCapacity is the capacity of every room considered (0 when
// there were none).
type AllocationResult struct {
	Success             bool
	Outcome             Outcome
	AllocatedClassrooms []*Classroom
	TotalCapacity       int
	Message             string
}
