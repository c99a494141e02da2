package app

import (
	"github.com/ghuser/examseats/pkg/cache"
	"github.com/ghuser/examseats/pkg/database"
	"github.com/ghuser/examseats/pkg/events"
	"github.com/ghuser/examseats/pkg/logger"
	"github.com/ghuser/examseats/pkg/workflows"
)

// Application holds shared infrastructure dependencies for all services.
// It is built once per process and passed to route and handler constructors.
//
// Logging: use the context methods so trace_id, span_id and request_id are
// attached automatically:
//
//	app.Logger.InfoContext(ctx, "classroom created", "classroom_id", id)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Db             *database.Database
	Logger         logger.Logger
	EventBus       *events.EventBus
	Redis          *cache.RedisClient         // nil disables the classroom cache
	TemporalClient *workflows.TemporalClient // nil when TEMPORAL_ENABLED=false
}
