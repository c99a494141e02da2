package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ghuser/examseats/pkg/config"
)

func TestNewRedisClient_InvalidURL(t *testing.T) {
	_, err := NewRedisClient(&config.Config{RedisURL: "not-a-valid-url"})
	if err == nil {
		t.Fatal("expected error for invalid URL, got nil")
	}
}

func TestNewRedisClient_UnreachableHost(t *testing.T) {
	_, err := NewRedisClient(&config.Config{RedisURL: "redis://localhost:19999"})
	if err == nil {
		t.Fatal("expected error when Redis is unreachable, got nil")
	}
}

func TestApplyPoolSettings(t *testing.T) {
	opts := &redis.Options{}
	applyPoolSettings(opts)
	if opts.PoolSize != 10 || opts.MinIdleConns != 2 || opts.MaxRetries != 3 {
		t.Fatalf("unexpected pool settings: %+v", opts)
	}
}

func TestRedisClient_CloseNil(t *testing.T) {
	var rc *RedisClient
	if err := rc.Close(); err != nil {
		t.Fatalf("Close on nil client: %v", err)
	}
}

func TestClassroomHash_RoundTrip(t *testing.T) {
	in := &CachedClassroom{
		ID:        uuid.New(),
		Name:      "Hall 1",
		Floor:     -2,
		Capacity:  120,
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 6, time.UTC),
	}
	fields := encodeHash(in)
	vals := make(map[string]string, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		vals[fields[i].(string)] = fields[i+1].(string)
	}

	out, err := decodeHash(vals)
	if err != nil {
		t.Fatalf("decodeHash: %v", err)
	}
	if *out != *in {
		t.Fatalf("got %+v, want %+v", out, in)
	}
}

func TestDecodeHash_BadCapacity(t *testing.T) {
	_, err := decodeHash(map[string]string{
		"id":         uuid.NewString(),
		"floor":      "1",
		"capacity":   "many",
		"created_at": time.Now().Format(time.RFC3339Nano),
	})
	if err == nil {
		t.Fatal("expected parse error, got nil")
	}
}

// Integration tests: skipped unless REDIS_URL is set.
func TestRedisIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}

	rc, err := NewRedisClient(&config.Config{RedisURL: redisURL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close() //nolint:errcheck

	ctx := context.Background()
	cc := NewClassroomCache(rc)

	t.Run("Ping", func(t *testing.T) {
		if err := rc.Ping(ctx); err != nil {
			t.Fatalf("Ping failed: %v", err)
		}
	})

	t.Run("SetGetDelete", func(t *testing.T) {
		cr := &CachedClassroom{ID: uuid.New(), Name: "Lab", Floor: 3, Capacity: 30, CreatedAt: time.Now().UTC()}
		if stored, err := cc.Set(ctx, cr); err != nil || !stored {
			t.Fatalf("Set: stored=%v err=%v", stored, err)
		}
		got, err := cc.Get(ctx, cr.ID)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.Name != cr.Name || got.Capacity != cr.Capacity {
			t.Fatalf("unexpected classroom: %+v", got)
		}
		if err := cc.Delete(ctx, cr.ID); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, err := cc.Get(ctx, cr.ID); !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil after delete, got %v", err)
		}
	})

	t.Run("SetAfterDeleteIsIgnored", func(t *testing.T) {
		cr := &CachedClassroom{ID: uuid.New(), Name: "Gone", Floor: 1, Capacity: 10, CreatedAt: time.Now().UTC()}
		if err := cc.Delete(ctx, cr.ID); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		stored, err := cc.Set(ctx, cr)
		if err != nil {
			t.Fatalf("Set: %v", err)
		}
		if stored {
			t.Fatal("expected write of a deleted classroom to be skipped")
		}
		if _, err := cc.Get(ctx, cr.ID); !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil, got %v", err)
		}
	})

	t.Run("Snapshot", func(t *testing.T) {
		all := []CachedClassroom{
			{ID: uuid.New(), Name: "B", Floor: 1, Capacity: 10},
			{ID: uuid.New(), Name: "A", Floor: 0, Capacity: 20},
		}
		gen, err := cc.Generation(ctx)
		if err != nil {
			t.Fatalf("Generation: %v", err)
		}
		if stored, err := cc.SetAll(ctx, gen, all); err != nil || !stored {
			t.Fatalf("SetAll: stored=%v err=%v", stored, err)
		}
		got, err := cc.GetAll(ctx)
		if err != nil {
			t.Fatalf("GetAll: %v", err)
		}
		if len(got) != 2 || got[0].Name != "B" {
			t.Fatalf("snapshot order not preserved: %+v", got)
		}
		if err := cc.InvalidateAll(ctx); err != nil {
			t.Fatalf("InvalidateAll: %v", err)
		}
		if _, err := cc.GetAll(ctx); !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil after invalidate, got %v", err)
		}
	})

	t.Run("SnapshotFromBeforeInvalidateIsRejected", func(t *testing.T) {
		gen, err := cc.Generation(ctx)
		if err != nil {
			t.Fatalf("Generation: %v", err)
		}
		if err := cc.InvalidateAll(ctx); err != nil {
			t.Fatalf("InvalidateAll: %v", err)
		}
		stored, err := cc.SetAll(ctx, gen, []CachedClassroom{{ID: uuid.New(), Name: "Stale", Capacity: 1}})
		if err != nil {
			t.Fatalf("SetAll: %v", err)
		}
		if stored {
			t.Fatal("expected stale snapshot to be rejected")
		}
		if _, err := cc.GetAll(ctx); !errors.Is(err, redis.Nil) {
			t.Fatalf("expected no snapshot, got %v", err)
		}
	})
}
