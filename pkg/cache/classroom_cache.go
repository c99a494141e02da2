package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// ClassroomCacheTTL is the time-to-live for a single cached classroom.
	ClassroomCacheTTL = 24 * time.Hour

	// ClassroomListTTL bounds how stale the allocator's input snapshot may get
	// if an invalidation event is lost.
	ClassroomListTTL = 5 * time.Minute

	// classroomTombstoneTTL must outlive any request that read a classroom
	// from Postgres before it was deleted (handlers time out after 30s).
	classroomTombstoneTTL = 2 * time.Minute

	classroomCacheKeyPrefix = "classroom"
	classroomListKey        = "classroom:all"
	classroomListGenKey     = "classroom:all:gen"
)

// setIfLiveScript writes a classroom hash unless a tombstone marks it deleted.
// KEYS[1] hash, KEYS[2] tombstone; ARGV[1] TTL seconds, ARGV[2..] field/value pairs.
var setIfLiveScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[2]) == 1 then
	return 0
end
redis.call('HSET', KEYS[1], unpack(ARGV, 2))
redis.call('EXPIRE', KEYS[1], ARGV[1])
return 1
`)

// setAllIfCurrentScript stores the snapshot only if no invalidation happened
// since the caller read the generation.
// KEYS[1] generation, KEYS[2] snapshot; ARGV[1] generation, ARGV[2] JSON, ARGV[3] TTL ms.
var setAllIfCurrentScript = redis.NewScript(`
local gen = redis.call('GET', KEYS[1]) or '0'
if gen ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
return 1
`)

// CachedClassroom is the read model stored in Redis.
type CachedClassroom struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Floor     int       `json:"floor"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
}

// ClassroomCache stores individual classrooms as Redis hashes
// ("classroom:{id}") and the full registry as one JSON snapshot
// ("classroom:all") consumed by the allocator.
type ClassroomCache struct {
	client *RedisClient
}

// NewClassroomCache creates a new ClassroomCache backed by the given RedisClient.
func NewClassroomCache(r *RedisClient) *ClassroomCache {
	return &ClassroomCache{client: r}
}

// Get retrieves a cached classroom.
// Returns redis.Nil when the key does not exist or has expired.
func (c *ClassroomCache) Get(ctx context.Context, id uuid.UUID) (*CachedClassroom, error) {
	vals, err := c.client.Client().HGetAll(ctx, c.key(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil
	}
	return decodeHash(vals)
}

// Set writes a classroom hash and its TTL atomically. A classroom deleted in
// the last classroomTombstoneTTL is not written back; Set reports whether
// the hash was stored.
func (c *ClassroomCache) Set(ctx context.Context, cr *CachedClassroom) (bool, error) {
	args := append([]any{int(ClassroomCacheTTL.Seconds())}, encodeHash(cr)...)
	stored, err := setIfLiveScript.Run(ctx, c.client.Client(),
		[]string{c.key(cr.ID), c.tombstoneKey(cr.ID)}, args...).Int()
	if err != nil {
		return false, fmt.Errorf("cache set: %w", err)
	}
	return stored == 1, nil
}

// Delete removes a cached classroom and leaves a tombstone so an in-flight
// read cannot re-cache it.
func (c *ClassroomCache) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := c.client.Client().TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, c.key(id))
		pipe.Set(ctx, c.tombstoneKey(id), 1, classroomTombstoneTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// GetAll returns the cached registry snapshot.
// Returns redis.Nil when no snapshot is stored.
func (c *ClassroomCache) GetAll(ctx context.Context) ([]CachedClassroom, error) {
	raw, err := c.client.Client().Get(ctx, classroomListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, redis.Nil
		}
		return nil, fmt.Errorf("cache get all: %w", err)
	}
	var out []CachedClassroom
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("cache decode all: %w", err)
	}
	return out, nil
}

// Generation returns the snapshot generation. Read it before loading the
// registry from Postgres and pass it to SetAll.
func (c *ClassroomCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Client().Get(ctx, classroomListGenKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("cache get generation: %w", err)
	}
	return gen, nil
}

// SetAll stores the registry snapshot, preserving order, unless InvalidateAll
// ran after gen was read. It reports whether the snapshot was stored.
func (c *ClassroomCache) SetAll(ctx context.Context, gen int64, all []CachedClassroom) (bool, error) {
	if all == nil {
		all = []CachedClassroom{}
	}
	raw, err := json.Marshal(all)
	if err != nil {
		return false, fmt.Errorf("cache encode all: %w", err)
	}
	stored, err := setAllIfCurrentScript.Run(ctx, c.client.Client(),
		[]string{classroomListGenKey, classroomListKey},
		strconv.FormatInt(gen, 10), raw, ClassroomListTTL.Milliseconds()).Int()
	if err != nil {
		return false, fmt.Errorf("cache set all: %w", err)
	}
	return stored == 1, nil
}

// InvalidateAll drops the registry snapshot and bumps its generation so
// snapshots built from earlier reads are rejected.
func (c *ClassroomCache) InvalidateAll(ctx context.Context) error {
	_, err := c.client.Client().TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, classroomListGenKey)
		pipe.Del(ctx, classroomListKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("cache invalidate all: %w", err)
	}
	return nil
}

// key builds the Redis key: "classroom:{id}"
func (c *ClassroomCache) key(id uuid.UUID) string {
	return fmt.Sprintf("%s:%s", classroomCacheKeyPrefix, id)
}

// tombstoneKey builds the Redis key: "classroom:{id}:deleted"
func (c *ClassroomCache) tombstoneKey(id uuid.UUID) string {
	return c.key(id) + ":deleted"
}

func encodeHash(cr *CachedClassroom) []any {
	return []any{
		"id", cr.ID.String(),
		"name", cr.Name,
		"floor", strconv.Itoa(cr.Floor),
		"capacity", strconv.Itoa(cr.Capacity),
		"created_at", cr.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func decodeHash(vals map[string]string) (*CachedClassroom, error) {
	id, err := uuid.Parse(vals["id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	floor, err := strconv.Atoi(vals["floor"])
	if err != nil {
		return nil, fmt.Errorf("cache parse floor: %w", err)
	}
	capacity, err := strconv.Atoi(vals["capacity"])
	if err != nil {
		return nil, fmt.Errorf("cache parse capacity: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, vals["created_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse created_at: %w", err)
	}
	return &CachedClassroom{
		ID:        id,
		Name:      vals["name"],
		Floor:     floor,
		Capacity:  capacity,
		CreatedAt: createdAt,
	}, nil
}
