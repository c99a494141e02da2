package services

import (
	"go.opentelemetry.io/otel"

	"github.com/ghuser/examseats/pkg/app"
	"github.com/ghuser/examseats/pkg/cache"
	"github.com/ghuser/examseats/pkg/telemetry"
	"github.com/ghuser/examseats/services/classroom/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Classroom *ClassroomService
	ExamPlan  *ExamPlanService
}

// New wires all classroom application services with infrastructure from the
// Application container. Redis and Temporal are optional.
func New(a *app.Application) *Services {
	repo := postgres.NewClassroomRepository(a.Db, a.EventBus)

	// Must stay a nil interface when Redis is off.
	var classroomCache ClassroomCache
	if a.Redis != nil {
		classroomCache = cache.NewClassroomCache(a.Redis)
	}

	metrics, err := telemetry.NewAllocationMetrics(otel.GetMeterProvider())
	if err != nil {
		a.Logger.Warn("allocation metrics disabled", "error", err)
	}

	return &Services{
		Classroom: NewClassroomService(repo, classroomCache, metrics, a.Logger),
		ExamPlan:  NewExamPlanService(a.TemporalClient, a.Logger),
	}
}
