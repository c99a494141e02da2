package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_Messages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrClassroomNotFound, "classroom not found"},
		{ErrClassroomAlreadyExists, "classroom already exists"},
		{ErrInvalidClassroom, "invalid classroom"},
		{ErrInvalidSeatCount, "required seats must be a positive integer"},
		{ErrInvalidExamPlan, "invalid exam plan"},
		{ErrExamPlanNotFound, "exam plan not found"},
		{ErrExamPlanningDisabled, "exam planning is not enabled"},
	}
	for _, tt := range tests {
		if tt.err == nil {
			t.Fatalf("sentinel for %q must not be nil", tt.want)
		}
		if tt.err.Error() != tt.want {
			t.Errorf("unexpected message: got %q, want %q", tt.err.Error(), tt.want)
		}
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	all := []error{
		ErrClassroomNotFound, ErrClassroomAlreadyExists, ErrInvalidClassroom, ErrInvalidSeatCount,
		ErrInvalidExamPlan, ErrExamPlanNotFound, ErrExamPlanningDisabled,
	}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v must not match %v", a, b)
			}
		}
	}
}

func TestSentinelErrors_WrappedIdentity(t *testing.T) {
	wrapped := fmt.Errorf("get classroom: %w", ErrClassroomNotFound)
	if !errors.Is(wrapped, ErrClassroomNotFound) {
		t.Fatal("errors.Is must match wrapped ErrClassroomNotFound")
	}

	wrapped2 := fmt.Errorf("%w: %w", ErrInvalidClassroom, errors.New("capacity must be positive"))
	if !errors.Is(wrapped2, ErrInvalidClassroom) {
		t.Fatal("errors.Is must match double-wrapped ErrInvalidClassroom")
	}
}
