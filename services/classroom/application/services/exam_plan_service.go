package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	enumspb "go.temporal.io/api/enums/v1"
	"go.temporal.io/api/serviceerror"

	"github.com/ghuser/examseats/pkg/logger"
	pkgworkflows "github.com/ghuser/examseats/pkg/workflows"
	classroomdomain "github.com/ghuser/examseats/services/classroom/domain"
	"github.com/ghuser/examseats/services/classroom/application/workflows"
)

const examPlanIDPrefix = "exam-plan-"

// ExamPlanStatus reports the state of one exam plan run. Result is set only
// once the workflow has completed.
type ExamPlanStatus struct {
	ID     string
	Status string
	Result *workflows.ExamPlanResult
}

// ExamPlanService starts and inspects ExamPlanWorkflow runs. A nil Temporal
// client makes every call fail with ErrExamPlanningDisabled.
type ExamPlanService struct {
	temporal *pkgworkflows.TemporalClient
	log      logger.Logger
}

// NewExamPlanService returns an ExamPlanService. tc may be nil.
func NewExamPlanService(tc *pkgworkflows.TemporalClient, log logger.Logger) *ExamPlanService {
	return &ExamPlanService{temporal: tc, log: log}
}

// Start validates the plan and launches a workflow. It returns the plan ID
// used to query the run later.
func (s *ExamPlanService) Start(ctx context.Context, in workflows.ExamPlanInput) (string, error) {
	if err := workflows.ValidatePlan(in); err != nil {
		return "", err
	}
	if s.temporal == nil {
		return "", classroomdomain.ErrExamPlanningDisabled
	}

	id := examPlanIDPrefix + uuid.NewString()
	run, err := s.temporal.Start(ctx, id, workflows.ExamPlanWorkflow, in)
	if err != nil {
		return "", err
	}

	s.log.InfoContext(ctx, "exam plan started", "plan_id", id, "run_id", run.GetRunID(), "exams", len(in.Exams))
	return id, nil
}

// Get returns the current status of a plan and, when completed, its result.
func (s *ExamPlanService) Get(ctx context.Context, id string) (*ExamPlanStatus, error) {
	if s.temporal == nil {
		return nil, classroomdomain.ErrExamPlanningDisabled
	}
	if !strings.HasPrefix(id, examPlanIDPrefix) {
		return nil, classroomdomain.ErrExamPlanNotFound
	}

	desc, err := s.temporal.Client.DescribeWorkflowExecution(ctx, id, "")
	if err != nil {
		var notFound *serviceerror.NotFound
		if errors.As(err, &notFound) {
			return nil, classroomdomain.ErrExamPlanNotFound
		}
		return nil, fmt.Errorf("describe exam plan: %w", err)
	}

	st := desc.GetWorkflowExecutionInfo().GetStatus()
	out := &ExamPlanStatus{ID: id, Status: statusName(st)}
	if st != enumspb.WORKFLOW_EXECUTION_STATUS_COMPLETED {
		return out, nil
	}

	var res workflows.ExamPlanResult
	if err := s.temporal.Client.GetWorkflow(ctx, id, "").Get(ctx, &res); err != nil {
		return nil, fmt.Errorf("fetch exam plan result: %w", err)
	}
	out.Result = &res
	return out, nil
}

func statusName(st enumspb.WorkflowExecutionStatus) string {
	switch st {
	case enumspb.WORKFLOW_EXECUTION_STATUS_RUNNING:
		return "running"
	case enumspb.WORKFLOW_EXECUTION_STATUS_COMPLETED:
		return "completed"
	case enumspb.WORKFLOW_EXECUTION_STATUS_FAILED:
		return "failed"
	case enumspb.WORKFLOW_EXECUTION_STATUS_CANCELED:
		return "canceled"
	case enumspb.WORKFLOW_EXECUTION_STATUS_TERMINATED:
		return "terminated"
	case enumspb.WORKFLOW_EXECUTION_STATUS_TIMED_OUT:
		return "timed_out"
	case enumspb.WORKFLOW_EXECUTION_STATUS_CONTINUED_AS_NEW:
		return "continued_as_new"
	default:
		return "unknown"
	}
}
