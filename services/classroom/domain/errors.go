package domain

import "errors"

// Sentinel errors for the classroom domain. Use errors.Is() to check these.
var (
	// ErrClassroomNotFound indicates the requested classroom does not exist.
	ErrClassroomNotFound = errors.New("classroom not found")

	// ErrClassroomAlreadyExists indicates a classroom with the same name already exists on that floor.
	ErrClassroomAlreadyExists = errors.New("classroom already exists")

	// ErrInvalidClassroom indicates a name, floor or capacity that violates domain constraints.
	ErrInvalidClassroom = errors.New("invalid classroom")

	// ErrInvalidSeatCount indicates a seat request that is not a positive integer.
	ErrInvalidSeatCount = errors.New("required seats must be a positive integer")

	// ErrInvalidExamPlan indicates a batch exam plan with no exams or a bad entry.
	ErrInvalidExamPlan = errors.New("invalid exam plan")

	// ErrExamPlanNotFound indicates no exam plan run has the given ID.
	ErrExamPlanNotFound = errors.New("exam plan not found")

	// ErrExamPlanningDisabled indicates the process runs without a workflow engine.
	ErrExamPlanningDisabled = errors.New("exam planning is not enabled")
)
