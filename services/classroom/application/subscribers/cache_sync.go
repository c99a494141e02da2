// Package subscribers holds the worker-side handlers for classroom events.
package subscribers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	pkgcache "github.com/ghuser/examseats/pkg/cache"
	"github.com/ghuser/examseats/pkg/events"
	"github.com/ghuser/examseats/pkg/logger"
	domainevents "github.com/ghuser/examseats/services/classroom/domain/events"
)

// ClassroomCache is the subset of pkgcache.ClassroomCache the handlers use.
type ClassroomCache interface {
	Set(ctx context.Context, c *pkgcache.CachedClassroom) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
	InvalidateAll(ctx context.Context) error
}

// CacheSync keeps the Redis read model in line with classroom events.
// Handlers are idempotent; the bus may deliver a message more than once.
type CacheSync struct {
	cache ClassroomCache
	log   logger.Logger
}

// NewCacheSync returns handlers writing to cache.
func NewCacheSync(cache ClassroomCache, log logger.Logger) *CacheSync {
	return &CacheSync{cache: cache, log: log}
}

// Handlers maps each classroom topic to its handler.
func (s *CacheSync) Handlers() map[string]events.Handler {
	return map[string]events.Handler{
		domainevents.TopicClassroomCreated: s.HandleCreated,
		domainevents.TopicClassroomDeleted: s.HandleDeleted,
	}
}

// HandleCreated warms the per-classroom entry and drops the registry snapshot.
// A failed warm is logged only; a failed snapshot drop is retried since the
// allocator would otherwise miss the new room until the snapshot expires.
func (s *CacheSync) HandleCreated(ctx context.Context, msg *message.Message) error {
	var evt domainevents.ClassroomCreatedEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		s.log.ErrorContext(ctx, "discarding malformed classroom.created", "message_id", msg.UUID, "error", err)
		return nil
	}
	if !s.supported(ctx, evt.Version, msg) {
		return nil
	}

	stored, err := s.cache.Set(ctx, &pkgcache.CachedClassroom{
		ID:        evt.ClassroomID,
		Name:      evt.Name,
		Floor:     evt.Floor,
		Capacity:  evt.Capacity,
		CreatedAt: evt.OccurredAt,
	})
	switch {
	case err != nil:
		s.log.WarnContext(ctx, "cache warm failed for classroom.created",
			"classroom_id", evt.ClassroomID, "error", err)
	case !stored:
		s.log.DebugContext(ctx, "classroom already deleted, not cached", "classroom_id", evt.ClassroomID)
	}

	if err := s.cache.InvalidateAll(ctx); err != nil {
		return fmt.Errorf("invalidate classroom snapshot: %w", err)
	}

	s.log.InfoContext(ctx, "classroom cache synced",
		"event", domainevents.TopicClassroomCreated, "classroom_id", evt.ClassroomID)
	return nil
}

// HandleDeleted evicts the classroom and the registry snapshot.
func (s *CacheSync) HandleDeleted(ctx context.Context, msg *message.Message) error {
	var evt domainevents.ClassroomDeletedEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		s.log.ErrorContext(ctx, "discarding malformed classroom.deleted", "message_id", msg.UUID, "error", err)
		return nil
	}
	if !s.supported(ctx, evt.Version, msg) {
		return nil
	}

	if err := s.cache.Delete(ctx, evt.ClassroomID); err != nil {
		return fmt.Errorf("evict classroom %s: %w", evt.ClassroomID, err)
	}
	if err := s.cache.InvalidateAll(ctx); err != nil {
		return fmt.Errorf("invalidate classroom snapshot: %w", err)
	}

	s.log.InfoContext(ctx, "classroom cache synced",
		"event", domainevents.TopicClassroomDeleted, "classroom_id", evt.ClassroomID)
	return nil
}

// supported acks events from a newer schema without processing them.
func (s *CacheSync) supported(ctx context.Context, version int, msg *message.Message) bool {
	if version <= domainevents.SchemaVersion {
		return true
	}
	s.log.WarnContext(ctx, "skipping classroom event with unknown schema version",
		"version", version, "event_id", msg.Metadata.Get(events.MetadataEventID))
	return false
}
