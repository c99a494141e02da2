package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	pkgcache "github.com/ghuser/examseats/pkg/cache"
	"github.com/ghuser/examseats/pkg/logger"
	"github.com/ghuser/examseats/pkg/telemetry"
	classroomdomain "github.com/ghuser/examseats/services/classroom/domain"
	"github.com/ghuser/examseats/services/classroom/domain/models"
	"github.com/ghuser/examseats/services/classroom/domain/repositories"
	domainsvcs "github.com/ghuser/examseats/services/classroom/domain/services"
)

const (
	tracerName  = "github.com/ghuser/examseats/services/classroom"
	maxPageSize = 1000
)

// ClassroomCache is the Redis read model the service reads through.
// *pkgcache.ClassroomCache implements it.
type ClassroomCache interface {
	Get(ctx context.Context, id uuid.UUID) (*pkgcache.CachedClassroom, error)
	Set(ctx context.Context, c *pkgcache.CachedClassroom) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetAll(ctx context.Context) ([]pkgcache.CachedClassroom, error)
	Generation(ctx context.Context) (int64, error)
	SetAll(ctx context.Context, gen int64, all []pkgcache.CachedClassroom) (bool, error)
	InvalidateAll(ctx context.Context) error
}

var _ ClassroomCache = (*pkgcache.ClassroomCache)(nil)

// ClassroomService orchestrates the classroom registry and seat allocation.
// Event publishing is handled by the repository layer (outbox pattern).
// Reads are served from Redis when a cache is configured; cache failures are
// logged and fall through to Postgres.
type ClassroomService struct {
	repo    repositories.ClassroomRepository
	cache   ClassroomCache
	metrics *telemetry.AllocationMetrics
	log     logger.Logger
	tracer  trace.Tracer
}

// NewClassroomService wires the service. cache and metrics may be nil.
func NewClassroomService(
	repo repositories.ClassroomRepository,
	classroomCache ClassroomCache,
	metrics *telemetry.AllocationMetrics,
	log logger.Logger,
) *ClassroomService {
	return &ClassroomService{
		repo:    repo,
		cache:   classroomCache,
		metrics: metrics,
		log:     log,
		tracer:  otel.Tracer(tracerName),
	}
}

// Create validates and persists a classroom. The repository publishes
// ClassroomCreatedEvent.
func (s *ClassroomService) Create(ctx context.Context, name string, floor, capacity int) (*models.Classroom, error) {
	cn, err := models.NewClassroomName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", classroomdomain.ErrInvalidClassroom, err)
	}
	cp, err := models.NewCapacity(capacity)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", classroomdomain.ErrInvalidClassroom, err)
	}
	c, err := models.NewClassroom(cn, floor, cp)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", classroomdomain.ErrInvalidClassroom, err)
	}
	if err := domainsvcs.ValidateClassroomForCreation(c); err != nil {
		return nil, fmt.Errorf("%w: %w", classroomdomain.ErrInvalidClassroom, err)
	}

	if err := s.repo.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("save classroom: %w", err)
	}

	s.invalidateSnapshot(ctx)
	s.log.InfoContext(ctx, "classroom created",
		"classroom_id", c.ID, "floor", c.Floor, "capacity", c.Capacity.Int())
	return c, nil
}

// GetByID retrieves a classroom using a read-through cache:
//  1. Check Redis first.
//  2. On miss (or cache error), query Postgres.
//  3. Warm the cache with the Postgres result, unless the classroom was
//     deleted in the meantime (the cache keeps a tombstone for that).
func (s *ClassroomService) GetByID(ctx context.Context, id uuid.UUID) (*models.Classroom, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err == nil {
			return fromCached(*cached), nil
		}
		if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "classroom cache read failed", "classroom_id", id, "error", err)
		}
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get classroom: %w", err)
	}

	if s.cache != nil {
		cached := toCached(c)
		stored, err := s.cache.Set(ctx, &cached)
		switch {
		case err != nil:
			s.log.WarnContext(ctx, "classroom cache warm failed", "classroom_id", id, "error", err)
		case !stored:
			s.log.DebugContext(ctx, "classroom deleted during read, not cached", "classroom_id", id)
		}
	}

	return c, nil
}

// List returns one page of classrooms plus the total count. A zero Limit
// returns every classroom.
func (s *ClassroomService) List(ctx context.Context, opts repositories.QueryOpts) ([]*models.Classroom, int, error) {
	if opts.Limit == 0 && opts.Offset == 0 {
		all, err := s.ListAll(ctx)
		if err != nil {
			return nil, 0, err
		}
		return all, len(all), nil
	}
	if opts.Limit == 0 {
		opts.Limit = maxPageSize
	}
	classrooms, total, err := s.repo.FindPage(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list classrooms: %w", err)
	}
	return classrooms, total, nil
}

// ListAll returns every registered classroom. The result is served from the
// Redis snapshot when present and repopulates it on a miss. The snapshot is
// only written if no create or delete invalidated it since the generation was
// read, so a slow reader cannot store a list that predates a write.
func (s *ClassroomService) ListAll(ctx context.Context) ([]*models.Classroom, error) {
	gen, canStore := int64(0), false
	if s.cache != nil {
		snapshot, err := s.cache.GetAll(ctx)
		if err == nil {
			out := make([]*models.Classroom, len(snapshot))
			for i := range snapshot {
				out[i] = fromCached(snapshot[i])
			}
			return out, nil
		}
		if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "classroom snapshot read failed", "error", err)
		}
		if gen, err = s.cache.Generation(ctx); err != nil {
			s.log.WarnContext(ctx, "classroom snapshot generation read failed", "error", err)
		} else {
			canStore = true
		}
	}

	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all classrooms: %w", err)
	}

	if canStore {
		stored, err := s.cache.SetAll(ctx, gen, ToCachedList(all))
		switch {
		case err != nil:
			s.log.WarnContext(ctx, "classroom snapshot write failed", "error", err)
		case !stored:
			s.log.DebugContext(ctx, "classroom snapshot superseded, not stored", "generation", gen)
		}
	}
	return all, nil
}

// Delete removes a classroom. Returns ErrClassroomNotFound if it does not exist.
func (s *ClassroomService) Delete(ctx context.Context, id uuid.UUID) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check classroom: %w", err)
	}
	if !exists {
		return classroomdomain.ErrClassroomNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete classroom: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, id); err != nil {
			s.log.WarnContext(ctx, "classroom cache evict failed", "classroom_id", id, "error", err)
		}
	}
	s.invalidateSnapshot(ctx)
	s.log.InfoContext(ctx, "classroom deleted", "classroom_id", id)
	return nil
}

// Allocate seats requiredSeats candidates across the registered classrooms.
// An unsuccessful allocation is a normal result, not an error.
func (s *ClassroomService) Allocate(ctx context.Context, requiredSeats int) (*models.AllocationResult, error) {
	ctx, span := s.tracer.Start(ctx, "classroom.Allocate",
		trace.WithAttributes(attribute.Int("allocation.required_seats", requiredSeats)))
	defer span.End()

	if requiredSeats <= 0 {
		err := fmt.Errorf("%w: got %d", classroomdomain.ErrInvalidSeatCount, requiredSeats)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	all, err := s.ListAll(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load classrooms")
		return nil, err
	}

	result, err := domainsvcs.Allocate(all, requiredSeats)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("allocation.outcome", string(result.Outcome)),
		attribute.Int("allocation.rooms", len(result.AllocatedClassrooms)),
		attribute.Int("allocation.total_capacity", result.TotalCapacity),
	)
	s.metrics.Record(ctx, string(result.Outcome), requiredSeats, len(result.AllocatedClassrooms))

	if result.Success {
		s.log.InfoContext(ctx, "seats allocated",
			"required_seats", requiredSeats,
			"rooms", len(result.AllocatedClassrooms),
			"total_capacity", result.TotalCapacity)
	} else {
		s.log.WarnContext(ctx, "seat allocation failed",
			"required_seats", requiredSeats,
			"outcome", result.Outcome,
			"total_capacity", result.TotalCapacity)
	}
	return result, nil
}

func (s *ClassroomService) invalidateSnapshot(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateAll(ctx); err != nil {
		s.log.WarnContext(ctx, "classroom snapshot invalidate failed", "error", err)
	}
}

// ToCachedList converts classrooms to their cached read model, keeping order.
func ToCachedList(classrooms []*models.Classroom) []pkgcache.CachedClassroom {
	out := make([]pkgcache.CachedClassroom, len(classrooms))
	for i, c := range classrooms {
		out[i] = toCached(c)
	}
	return out
}

func toCached(c *models.Classroom) pkgcache.CachedClassroom {
	return pkgcache.CachedClassroom{
		ID:        c.ID,
		Name:      c.Name.String(),
		Floor:     c.Floor,
		Capacity:  c.Capacity.Int(),
		CreatedAt: c.CreatedAt,
	}
}

func fromCached(c pkgcache.CachedClassroom) *models.Classroom {
	return &models.Classroom{
		ID:        c.ID,
		Name:      models.ClassroomName(c.Name),
		Floor:     c.Floor,
		Capacity:  models.Capacity(c.Capacity),
		CreatedAt: c.CreatedAt,
	}
}
