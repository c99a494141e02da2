package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the classroom repository.
const (
	TopicClassroomCreated = "classroom.created"
	TopicClassroomDeleted = "classroom.deleted"
)

// SchemaVersion is stamped on every event; bump it on breaking payload changes.
const SchemaVersion = 1

// ClassroomCreatedEvent is published in the same transaction that inserts a classroom.
type ClassroomCreatedEvent struct {
	EventID     uuid.UUID `json:"event_id"` // deduplication key for idempotent consumers
	Version     int       `json:"version"`
	ClassroomID uuid.UUID `json:"classroom_id"`
	Name        string    `json:"name"`
	Floor       int       `json:"floor"`
	Capacity    int       `json:"capacity"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// ClassroomDeletedEvent is published in the same transaction that deletes a classroom.
type ClassroomDeletedEvent struct {
	EventID     uuid.UUID `json:"event_id"`
	Version     int       `json:"version"`
	ClassroomID uuid.UUID `json:"classroom_id"`
	OccurredAt  time.Time `json:"occurred_at"`
}
