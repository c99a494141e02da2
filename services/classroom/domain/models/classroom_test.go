package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewCapacity(t *testing.T) {
	tests := []struct {
		in      int
		wantErr bool
	}{
		{1, false},
		{40, false},
		{MaxCapacity, false},
		{0, true},
		{-5, true},
		{MaxCapacity + 1, true},

	}
	for _, tt := range tests {
		c, err := NewCapacity(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("NewCapacity(%d) error = %v, wantErr = %v", tt.in, err, tt.wantErr)
		}
		if !tt.wantErr && c.Int() != tt.in {
			t.Fatalf("expected %d, got %d", tt.in, c.Int())
		}
	}
}

func TestNewClassroom(t *testing.T) {
	name := ClassroomName("Room 101")

	t.Run("populates every field", func(t *testing.T) {
		before := time.Now().UTC()
		c, err := NewClassroom(name, 1, 30)
		after := time.Now().UTC()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID == uuid.Nil {
			t.Fatal("expected non-zero UUID for ID")
		}
		if c.Name != name || c.Floor != 1 || c.Capacity != 30 {
			t.Fatalf("unexpected classroom: %+v", c)
		}
		if c.CreatedAt.Before(before) || c.CreatedAt.After(after) {
			t.Fatalf("CreatedAt %v not between %v and %v", c.CreatedAt, before, after)
		}
	})

	t.Run("generates unique IDs on each call", func(t *testing.T) {
		c1, _ := NewClassroom(name, 1, 30)
		c2, _ := NewClassroom(name, 1, 30)
		if c1.ID == c2.ID {
			t.Fatal("expected unique IDs, got identical")
		}
	})

	t.Run("accepts boundary floors", func(t *testing.T) {
		for _, floor := range []int{MinFloor, 0, MaxFloor} {
			if _, err := NewClassroom(name, floor, 10); err != nil {
				t.Fatalf("floor %d: unexpected error: %v", floor, err)
			}
		}
	})

	t.Run("rejects out of range floors", func(t *testing.T) {
		for _, floor := range []int{MinFloor - 1, MaxFloor + 1} {
			if _, err := NewClassroom(name, floor, 10); err == nil {
				t.Fatalf("floor %d: expected error", floor)
			}
		}
	})

	t.Run("rejects non-positive capacity", func(t *testing.T) {
		if _, err := NewClassroom(name, 1, 0); err == nil {
			t.Fatal("expected error for zero capacity")
		}
	})

	t.Run("rejects capacity above MaxCapacity", func(t *testing.T) {
		if _, err := NewClassroom(name, 1, MaxCapacity+1); err == nil {
			t.Fatal("expected error for oversized capacity")
		}
	})
}
