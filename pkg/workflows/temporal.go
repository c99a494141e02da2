package workflows

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	"go.temporal.io/sdk/interceptor"
	temporallog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"

	"github.com/ghuser/examseats/pkg/logger"
)

// TemporalClient wraps the Temporal SDK client with the namespace and task
// queue this process was configured for.
type TemporalClient struct {
	Client    client.Client
	Namespace string
	TaskQueue string
	log       logger.Logger
}

// NewTemporalClient dials Temporal with OTel tracing enabled.
// Call Close() when the application shuts down.
func NewTemporalClient(ctx context.Context, hostPort, namespace, taskQueue string, log logger.Logger) (*TemporalClient, error) {
	otelInterceptor, err := temporalotel.NewTracingInterceptor(temporalotel.TracerOptions{
		Tracer: otel.Tracer("temporal-client"),
	})
	if err != nil {
		return nil, fmt.Errorf("create temporal otel interceptor: %w", err)
	}

	c, err := client.DialContext(ctx, client.Options{
		HostPort:     hostPort,
		Namespace:    namespace,
		Logger:       newTemporalLogger(log),
		Interceptors: []interceptor.ClientInterceptor{otelInterceptor},
	})
	if err != nil {
		return nil, fmt.Errorf("dial temporal server at %s: %w", hostPort, err)
	}

	log.Info("temporal client connected", "host_port", hostPort, "namespace", namespace, "task_queue", taskQueue)

	return &TemporalClient{
		Client:    c,
		Namespace: namespace,
		TaskQueue: taskQueue,
		log:       log,
	}, nil
}

// Start launches workflowFn on the configured task queue under a caller
// chosen workflow ID.
func (tc *TemporalClient) Start(ctx context.Context, workflowID string, workflowFn any, args ...any) (client.WorkflowRun, error) {
	run, err := tc.Client.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: tc.TaskQueue,
	}, workflowFn, args...)
	if err != nil {
		return nil, fmt.Errorf("start workflow %s: %w", workflowID, err)
	}
	return run, nil
}

// Ping checks that the Temporal frontend is reachable.
func (tc *TemporalClient) Ping(ctx context.Context) error {
	if _, err := tc.Client.CheckHealth(ctx, &client.CheckHealthRequest{}); err != nil {
		return fmt.Errorf("temporal health: %w", err)
	}
	return nil
}

// NewWorker returns a worker polling the configured task queue. register is
// called once so the caller can add its workflows and activities.
func (tc *TemporalClient) NewWorker(register func(worker.Registry)) worker.Worker {
	w := worker.New(tc.Client, tc.TaskQueue, worker.Options{})
	register(w)
	return w
}

// Close shuts down the Temporal client connection.
func (tc *TemporalClient) Close() {
	tc.Client.Close()
	tc.log.Info("temporal client closed")
}

// temporalLogger adapts logger.Logger to Temporal's log.Logger interface.
type temporalLogger struct {
	log logger.Logger
}

func newTemporalLogger(log logger.Logger) temporallog.Logger {
	return &temporalLogger{log: log.With("component", "temporal")}
}

func (l *temporalLogger) Debug(msg string, keyvals ...any) {
	l.log.Debug(msg, keyvals...)
}

func (l *temporalLogger) Info(msg string, keyvals ...any) {
	l.log.Info(msg, keyvals...)
}

func (l *temporalLogger) Warn(msg string, keyvals ...any) {
	l.log.Warn(msg, keyvals...)
}

func (l *temporalLogger) Error(msg string, keyvals ...any) {
	l.log.Error(msg, keyvals...)
}
