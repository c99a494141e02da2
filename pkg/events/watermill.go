// Package events is the PostgreSQL-backed pub/sub bus used to fan classroom
// changes out to the worker. It is a thin layer over Watermill's SQL transport.
//
// Delivery: all processes sharing SERVICE_NAME form one consumer group, so each
// message is handled by a single instance. With the forwarder enabled, messages
// published inside a business transaction are written to an outbox topic and
// relayed to their real topic only after the transaction commits.
//
// Handlers must be idempotent: a failing handler is retried with exponential
// backoff and the message is Nacked once retries run out.
//
// OTel trace context travels in message metadata, so spans started by a
// subscriber continue the trace of the request that published the event.
package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	watermillsql "github.com/ThreeDotsLabs/watermill-sql/v3/pkg/sql"
	"github.com/ThreeDotsLabs/watermill/components/forwarder"
	"github.com/ThreeDotsLabs/watermill/message"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/ghuser/examseats/pkg/config"
	"github.com/ghuser/examseats/pkg/logger"
)

const (
	maxRetries      = 3
	retryBaseDelay  = time.Second
	shutdownTimeout = 30 * time.Second
	errChanSize     = 100
	forwarderTopic  = "_forwarder_queue"
	forwarderGroup  = "forwarder-consumer"

	// Metadata keys stamped by NewMessage.
	MetadataEventID      = "event_id"
	MetadataEventVersion = "event_version"
)

// Handler processes one message. Returning an error triggers a retry.
type Handler func(ctx context.Context, msg *message.Message) error

// EventBus publishes and consumes messages stored in PostgreSQL.
type EventBus struct {
	publisher    message.Publisher // direct SQL publisher, or forwarder-wrapped
	subscriber   *watermillsql.Subscriber
	fwd          *forwarder.Forwarder
	db           *sql.DB
	log          logger.Logger
	wlog         watermill.LoggerAdapter
	wg           sync.WaitGroup
	useForwarder bool
}

// NewEventBus connects to cfg.DatabaseURL and publishes directly to topics.
// Used by the worker, which only consumes.
func NewEventBus(cfg *config.Config, log logger.Logger) (*EventBus, error) {
	return newEventBus(cfg, log, false)
}

// NewEventBusWithForwarder returns a bus whose publishes go through the
// outbox topic. Call StartForwarder to begin relaying.
func NewEventBusWithForwarder(cfg *config.Config, log logger.Logger) (*EventBus, error) {
	return newEventBus(cfg, log, true)
}

func newEventBus(cfg *config.Config, log logger.Logger, useForwarder bool) (*EventBus, error) {
	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("events: open db: %w", err)
	}

	wlog := &slogAdapter{log: log}

	pub, err := watermillsql.NewPublisher(db, publisherConfig(true), wlog)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("events: new publisher: %w", err)
	}

	sub, err := watermillsql.NewSubscriber(db, subscriberConfig(cfg.ServiceName+"-consumer"), wlog)
	if err != nil {
		_ = pub.Close()
		_ = db.Close()
		return nil, fmt.Errorf("events: new subscriber: %w", err)
	}

	return &EventBus{
		publisher:    wrapForwarder(pub, useForwarder),
		subscriber:   sub,
		db:           db,
		log:          log,
		wlog:         wlog,
		useForwarder: useForwarder,
	}, nil
}

func publisherConfig(autoInit bool) watermillsql.PublisherConfig {
	return watermillsql.PublisherConfig{
		SchemaAdapter:        watermillsql.DefaultPostgreSQLSchema{},
		AutoInitializeSchema: autoInit,
	}
}

func subscriberConfig(group string) watermillsql.SubscriberConfig {
	return watermillsql.SubscriberConfig{
		SchemaAdapter:    watermillsql.DefaultPostgreSQLSchema{},
		OffsetsAdapter:   watermillsql.DefaultPostgreSQLOffsetsAdapter{},
		InitializeSchema: true,
		ConsumerGroup:    group,
	}
}

func wrapForwarder(pub message.Publisher, useForwarder bool) message.Publisher {
	if !useForwarder {
		return pub
	}
	return forwarder.NewPublisher(pub, forwarder.PublisherConfig{ForwarderTopic: forwarderTopic})
}

// StartForwarder launches the daemon that relays outbox messages to their
// target topics, and blocks until it is running. Call once, on a bus built
// with NewEventBusWithForwarder.
func (q *EventBus) StartForwarder(ctx context.Context) error {
	if !q.useForwarder {
		return fmt.Errorf("events: StartForwarder called on non-forwarder EventBus")
	}
	if q.fwd != nil {
		return fmt.Errorf("events: forwarder already started")
	}

	fwdSub, err := watermillsql.NewSubscriber(q.db, subscriberConfig(forwarderGroup), q.wlog)
	if err != nil {
		return fmt.Errorf("events: new forwarder subscriber: %w", err)
	}

	targetPub, err := watermillsql.NewPublisher(q.db, publisherConfig(true), q.wlog)
	if err != nil {
		_ = fwdSub.Close()
		return fmt.Errorf("events: new forwarder target publisher: %w", err)
	}

	fwd, err := forwarder.NewForwarder(fwdSub, targetPub, q.wlog, forwarder.Config{
		ForwarderTopic: forwarderTopic,
	})
	if err != nil {
		_ = targetPub.Close()
		_ = fwdSub.Close()
		return fmt.Errorf("events: create forwarder: %w", err)
	}
	q.fwd = fwd

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		q.log.InfoContext(ctx, "events: forwarder started")
		if err := fwd.Run(ctx); err != nil {
			q.log.ErrorContext(ctx, "events: forwarder stopped with error", "error", err)
			return
		}
		q.log.InfoContext(ctx, "events: forwarder stopped")
	}()

	select {
	case <-fwd.Running():
		return nil
	case <-ctx.Done():
		return fmt.Errorf("events: context cancelled waiting for forwarder: %w", ctx.Err())
	}
}

// NewMessage JSON-encodes payload into a message carrying the event ID,
// schema version and the OTel trace context found in ctx.
func NewMessage(ctx context.Context, eventID string, version int, payload any) (*message.Message, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("events: marshal payload: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), body)
	msg.Metadata.Set(MetadataEventID, eventID)
	msg.Metadata.Set(MetadataEventVersion, strconv.Itoa(version))
	injectTrace(ctx, msg)
	return msg, nil
}

// NewTxPublisher returns a Publisher whose writes join tx, so the event is
// committed or rolled back together with the business data. Schema tables
// already exist once the bus has started, so auto-initialization is off.
func (q *EventBus) NewTxPublisher(tx *sql.Tx) (message.Publisher, error) {
	pub, err := watermillsql.NewPublisher(tx, publisherConfig(false), q.wlog)
	if err != nil {
		return nil, fmt.Errorf("events: new tx publisher: %w", err)
	}
	return wrapForwarder(pub, q.useForwarder), nil
}

// PublishTx publishes msgs to topic inside tx.
func (q *EventBus) PublishTx(tx *sql.Tx, topic string, msgs ...*message.Message) error {
	pub, err := q.NewTxPublisher(tx)
	if err != nil {
		return err
	}
	if err := pub.Publish(topic, msgs...); err != nil {
		return fmt.Errorf("events: publish to %s in tx: %w", topic, err)
	}
	return nil
}

// Publish sends msgs to topic outside any transaction.
func (q *EventBus) Publish(ctx context.Context, topic string, msgs ...*message.Message) error {
	for _, msg := range msgs {
		injectTrace(ctx, msg)
	}
	if err := q.publisher.Publish(topic, msgs...); err != nil { //nolint:contextcheck
		return fmt.Errorf("events: publish to %s: %w", topic, err)
	}
	return nil
}

// Subscribe consumes topic in the background, calling handler with the
// publisher's trace restored into ctx.
//
//   - handler returns nil   → Ack
//   - handler returns error → retried maxRetries times (1s, 2s, ...)
//   - retries exhausted     → Nack, and the error is sent on the returned channel
//
// The channel is buffered; callers must drain it. Close waits for in-flight
// handlers before returning.
func (q *EventBus) Subscribe(ctx context.Context, topic string, handler Handler) (<-chan error, error) {
	ch, err := q.subscriber.Subscribe(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("events: subscribe to %s: %w", topic, err)
	}

	errCh := make(chan error, errChanSize)

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		defer close(errCh)

		for msg := range ch {
			msgCtx := extractTrace(ctx, msg)
			if err := retryWithBackoff(msgCtx, msg, handler, maxRetries, retryBaseDelay, q.log); err != nil {
				msg.Nack()
				select {
				case errCh <- err:
				default:
					q.log.ErrorContext(msgCtx, "events: error channel full, dropping error",
						"error", err, "topic", topic)
				}
				continue
			}
			msg.Ack()
		}
	}()

	return errCh, nil
}

func injectTrace(ctx context.Context, msg *message.Message) {
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	for k, v := range carrier {
		msg.Metadata.Set(k, v)
	}
}

func extractTrace(ctx context.Context, msg *message.Message) context.Context {
	carrier := propagation.MapCarrier{}
	for k, v := range msg.Metadata {
		carrier[k] = v
	}
	return otel.GetTextMapPropagator().Extract(ctx, carrier)
}

// retryWithBackoff calls handler up to maxRetries times, doubling the delay
// between attempts. Returns nil on the first success.
func retryWithBackoff(
	ctx context.Context,
	msg *message.Message,
	handler Handler,
	maxRetries int,
	baseDelay time.Duration,
	log logger.Logger,
) error {
	delay := baseDelay
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err = handler(ctx, msg); err == nil {
			return nil
		}
		if attempt == maxRetries {
			break
		}
		log.WarnContext(ctx, "events: handler failed, retrying",
			"attempt", attempt,
			"max_retries", maxRetries,
			"next_delay", delay,
			"message_uuid", msg.UUID,
			"error", err,
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return fmt.Errorf("events: handler failed after %d retries: %w", maxRetries, err)
}

// Ping checks the bus database connection.
func (q *EventBus) Ping(ctx context.Context) error {
	if err := q.db.PingContext(ctx); err != nil {
		return fmt.Errorf("events: ping db: %w", err)
	}
	return nil
}

// Close stops the subscriber and forwarder, waits up to shutdownTimeout for
// in-flight handlers, then closes the publisher and database.
func (q *EventBus) Close() error {
	if err := q.subscriber.Close(); err != nil {
		return fmt.Errorf("events: close subscriber: %w", err)
	}

	if q.fwd != nil {
		if err := q.fwd.Close(); err != nil {
			return fmt.Errorf("events: close forwarder: %w", err)
		}
	}

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(shutdownTimeout):
		q.log.Error("events: timed out waiting for in-flight handlers to complete")
	}

	if err := q.publisher.Close(); err != nil {
		return fmt.Errorf("events: close publisher: %w", err)
	}
	return q.db.Close()
}

// slogAdapter bridges logger.Logger to watermill.LoggerAdapter.
type slogAdapter struct{ log logger.Logger }

func (a *slogAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.log.Error(msg, append(fieldsToArgs(fields), "error", err)...)
}
func (a *slogAdapter) Info(msg string, fields watermill.LogFields) {
	a.log.Info(msg, fieldsToArgs(fields)...)
}
func (a *slogAdapter) Debug(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, fieldsToArgs(fields)...)
}
func (a *slogAdapter) Trace(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, fieldsToArgs(fields)...)
}
func (a *slogAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &slogAdapter{log: a.log.With(fieldsToArgs(fields)...)}
}

func fieldsToArgs(fields watermill.LogFields) []any {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return args
}
