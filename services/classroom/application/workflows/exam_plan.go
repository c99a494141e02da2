// Package workflows holds the Temporal workflow and activities that plan
// seating for a batch of exams.
package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	classroomdomain "github.com/ghuser/examseats/services/classroom/domain"
	"github.com/ghuser/examseats/services/classroom/domain/models"
)

// ErrTypeInvalidExamPlan is the application error type for input that can
// never succeed. Temporal does not retry it.
const ErrTypeInvalidExamPlan = "InvalidExamPlan"

// ExamRequest is one exam to seat.
type ExamRequest struct {
	Name          string `json:"name"`
	RequiredSeats int    `json:"required_seats"`
}

// ExamPlanInput is the workflow argument.
type ExamPlanInput struct {
	Exams []ExamRequest `json:"exams"`
}

// AllocatedRoom is a classroom chosen for an exam.
type AllocatedRoom struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Floor    int       `json:"floor"`
	Capacity int       `json:"capacity"`
}

// SeatAllocation mirrors models.AllocationResult in a serializable form.
type SeatAllocation struct {
	Success       bool            `json:"success"`
	Outcome       string          `json:"outcome"`
	Classrooms    []AllocatedRoom `json:"allocated_classrooms"`
	TotalCapacity int             `json:"total_capacity"`
	Message       string          `json:"message"`
}

// ExamAllocation pairs an exam with its allocation.
type ExamAllocation struct {
	Exam          string         `json:"exam"`
	RequiredSeats int            `json:"required_seats"`
	Allocation    SeatAllocation `json:"allocation"`
}

// ExamPlanResult is the workflow result, in input order.
type ExamPlanResult struct {
	Allocations []ExamAllocation `json:"allocations"`
}

// ValidatePlan rejects an empty plan or an exam without a name or a
// positive seat count.
func ValidatePlan(in ExamPlanInput) error {
	if len(in.Exams) == 0 {
		return fmt.Errorf("%w: at least one exam is required", classroomdomain.ErrInvalidExamPlan)
	}
	for i, e := range in.Exams {
		if e.Name == "" {
			return fmt.Errorf("%w: exam %d has no name", classroomdomain.ErrInvalidExamPlan, i)
		}
		if e.RequiredSeats <= 0 {
			return fmt.Errorf("%w: exam %q: %w", classroomdomain.ErrInvalidExamPlan, e.Name, classroomdomain.ErrInvalidSeatCount)
		}
	}
	return nil
}

// ExamPlanWorkflow allocates seats for every exam independently, each against
// the registry as it stands when its activity runs. Allocations are scheduled
// concurrently and collected in input order.
func ExamPlanWorkflow(ctx workflow.Context, in ExamPlanInput) (ExamPlanResult, error) {
	if err := ValidatePlan(in); err != nil {
		return ExamPlanResult{}, temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeInvalidExamPlan, err)
	}

	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:        time.Second,
			BackoffCoefficient:     2,
			MaximumInterval:        30 * time.Second,
			MaximumAttempts:        5,
			NonRetryableErrorTypes: []string{ErrTypeInvalidExamPlan},
		},
	})

	var a *Activities
	futures := make([]workflow.Future, len(in.Exams))
	for i, exam := range in.Exams {
		futures[i] = workflow.ExecuteActivity(ctx, a.AllocateSeats, exam)
	}

	result := ExamPlanResult{Allocations: make([]ExamAllocation, 0, len(in.Exams))}
	for i, f := range futures {
		var alloc SeatAllocation
		if err := f.Get(ctx, &alloc); err != nil {
			return ExamPlanResult{}, fmt.Errorf("allocate seats for %q: %w", in.Exams[i].Name, err)
		}
		result.Allocations = append(result.Allocations, ExamAllocation{
			Exam:          in.Exams[i].Name,
			RequiredSeats: in.Exams[i].RequiredSeats,
			Allocation:    alloc,
		})
	}

	workflow.GetLogger(ctx).Info("exam plan complete", "exams", len(in.Exams))
	return result, nil
}

// Allocator is the slice of the classroom service the activities need.
type Allocator interface {
	Allocate(ctx context.Context, requiredSeats int) (*models.AllocationResult, error)
}

// Activities run on the worker with access to the registry.
type Activities struct {
	Allocator Allocator
}

// AllocateSeats runs the allocator for one exam.
func (a *Activities) AllocateSeats(ctx context.Context, exam ExamRequest) (SeatAllocation, error) {
	activity.GetLogger(ctx).Info("allocating seats", "exam", exam.Name, "required_seats", exam.RequiredSeats)

	res, err := a.Allocator.Allocate(ctx, exam.RequiredSeats)
	if err != nil {
		if errors.Is(err, classroomdomain.ErrInvalidSeatCount) {
			return SeatAllocation{}, temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeInvalidExamPlan, err)
		}
		return SeatAllocation{}, err
	}
	return ToSeatAllocation(res), nil
}

// ToSeatAllocation converts a domain result to its serializable form.
func ToSeatAllocation(res *models.AllocationResult) SeatAllocation {
	rooms := make([]AllocatedRoom, len(res.AllocatedClassrooms))
	for i, c := range res.AllocatedClassrooms {
		rooms[i] = AllocatedRoom{
			ID:       c.ID,
			Name:     c.Name.String(),
			Floor:    c.Floor,
			Capacity: c.Capacity.Int(),
		}
	}
	return SeatAllocation{
		Success:       res.Success,
		Outcome:       string(res.Outcome),
		Classrooms:    rooms,
		TotalCapacity: res.TotalCapacity,
		Message:       res.Message,
	}
}
