package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/examseats/services/classroom/domain/events"
)

func jsonKeys(t *testing.T, v any) map[string]any {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}
	return raw
}

func TestClassroomCreatedEvent_JSONFieldNames(t *testing.T) {
	raw := jsonKeys(t, events.ClassroomCreatedEvent{
		EventID:     uuid.New(),
		Version:     events.SchemaVersion,
		ClassroomID: uuid.New(),
		Name:        "Room 101",
		Floor:       1,
		Capacity:    30,
		OccurredAt:  time.Now().UTC(),
	})

	for _, field := range []string{"event_id", "version", "classroom_id", "name", "floor", "capacity", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in %v", field, raw)
		}
	}
	if raw["capacity"] != float64(30) {
		t.Errorf("capacity: got %v, want 30", raw["capacity"])
	}
}

func TestClassroomDeletedEvent_JSONFieldNames(t *testing.T) {
	raw := jsonKeys(t, events.ClassroomDeletedEvent{
		EventID:     uuid.New(),
		Version:     events.SchemaVersion,
		ClassroomID: uuid.New(),
		OccurredAt:  time.Now().UTC(),
	})

	for _, field := range []string{"event_id", "version", "classroom_id", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in %v", field, raw)
		}
	}
}

func TestTopics(t *testing.T) {
	if events.TopicClassroomCreated != "classroom.created" {
		t.Errorf("unexpected created topic %q", events.TopicClassroomCreated)
	}
	if events.TopicClassroomDeleted != "classroom.deleted" {
		t.Errorf("unexpected deleted topic %q", events.TopicClassroomDeleted)
	}
}
