package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/examseats/pkg/database"
	"github.com/ghuser/examseats/pkg/events"
	classroomdomain "github.com/ghuser/examseats/services/classroom/domain"
	domainevents "github.com/ghuser/examseats/services/classroom/domain/events"
	"github.com/ghuser/examseats/services/classroom/domain/models"
	"github.com/ghuser/examseats/services/classroom/domain/repositories"
	"github.com/ghuser/examseats/services/classroom/infrastructure/persistence/postgres/db"
)

const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
)

// ClassroomRepository implements repositories.ClassroomRepository against PostgreSQL.
type ClassroomRepository struct {
	db  *database.Database
	bus *events.EventBus
}

var _ repositories.ClassroomRepository = (*ClassroomRepository)(nil)

// NewClassroomRepository returns a repository backed by the given pool. When
// bus is non-nil, creates and deletes publish events in the same transaction.
func NewClassroomRepository(database *database.Database, bus *events.EventBus) *ClassroomRepository {
	return &ClassroomRepository{db: database, bus: bus}
}

// Save inserts c and publishes ClassroomCreatedEvent atomically.
func (r *ClassroomRepository) Save(ctx context.Context, c *models.Classroom) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		if err := q.InsertClassroom(ctx, db.InsertClassroomParams{
			ID:        c.ID,
			Name:      c.Name.String(),
			Floor:     int32(c.Floor),
			Capacity:  int32(c.Capacity),
			CreatedAt: c.CreatedAt,
		}); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) {
				switch pgErr.Code {
				case pgUniqueViolation:
					return classroomdomain.ErrClassroomAlreadyExists
				case pgCheckViolation:
					return fmt.Errorf("%w: %s", classroomdomain.ErrInvalidClassroom, pgErr.ConstraintName)
				}
			}
			return fmt.Errorf("insert classroom: %w", err)
		}

		if r.bus == nil {
			return nil
		}
		evt := domainevents.ClassroomCreatedEvent{
			EventID:     uuid.New(),
			Version:     domainevents.SchemaVersion,
			ClassroomID: c.ID,
			Name:        c.Name.String(),
			Floor:       c.Floor,
			Capacity:    c.Capacity.Int(),
			OccurredAt:  c.CreatedAt,
		}
		if err := r.publish(ctx, tx, domainevents.TopicClassroomCreated, evt.EventID, evt); err != nil {
			return fmt.Errorf("publish classroom created: %w", err)
		}
		return nil
	})
}

// GetByID returns ErrClassroomNotFound if no classroom has the given ID.
func (r *ClassroomRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Classroom, error) {
	row, err := db.New(r.db.DB()).GetClassroomByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, classroomdomain.ErrClassroomNotFound
		}
		return nil, fmt.Errorf("query classroom: %w", err)
	}
	return rowToClassroom(row), nil
}

// ListAll returns every classroom ordered by floor, then name.
func (r *ClassroomRepository) ListAll(ctx context.Context) ([]*models.Classroom, error) {
	rows, err := db.New(r.db.DB()).ListClassrooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("list classrooms: %w", err)
	}
	return rowsToClassrooms(rows), nil
}

// FindPage returns one page of classrooms plus the total count.
func (r *ClassroomRepository) FindPage(ctx context.Context, opts repositories.QueryOpts) ([]*models.Classroom, int, error) {
	q := db.New(r.db.DB())

	rows, err := q.FindClassroomsPage(ctx, db.FindClassroomsPageParams{
		Limit:  int32(opts.Limit),
		Offset: int32(opts.Offset),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("query classrooms: %w", err)
	}

	total, err := q.CountClassrooms(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count classrooms: %w", err)
	}

	return rowsToClassrooms(rows), int(total), nil
}

// Delete removes a classroom and publishes ClassroomDeletedEvent atomically.
// Returns ErrClassroomNotFound when nothing was deleted.
func (r *ClassroomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		n, err := db.New(tx).DeleteClassroom(ctx, id)
		if err != nil {
			return fmt.Errorf("delete classroom: %w", err)
		}
		if n == 0 {
			return classroomdomain.ErrClassroomNotFound
		}

		if r.bus == nil {
			return nil
		}
		evt := domainevents.ClassroomDeletedEvent{
			EventID:     uuid.New(),
			Version:     domainevents.SchemaVersion,
			ClassroomID: id,
			OccurredAt:  time.Now().UTC(),
		}
		if err := r.publish(ctx, tx, domainevents.TopicClassroomDeleted, evt.EventID, evt); err != nil {
			return fmt.Errorf("publish classroom deleted: %w", err)
		}
		return nil
	})
}

// Exists reports whether a classroom with the given ID exists.
func (r *ClassroomRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := db.New(r.db.DB()).ClassroomExists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("check classroom exists: %w", err)
	}
	return exists, nil
}

func (r *ClassroomRepository) publish(ctx context.Context, tx *sql.Tx, topic string, eventID uuid.UUID, payload any) error {
	msg, err := events.NewMessage(ctx, eventID.String(), domainevents.SchemaVersion, payload)
	if err != nil {
		return err
	}
	return r.bus.PublishTx(tx, topic, msg)
}

func rowToClassroom(row db.ClassroomClassroom) *models.Classroom {
	return &models.Classroom{
		ID:        row.ID,
		Name:      models.ClassroomName(row.Name),
		Floor:     int(row.Floor),
		Capacity:  models.Capacity(row.Capacity),
		CreatedAt: row.CreatedAt.UTC(),
	}
}

func rowsToClassrooms(rows []db.ClassroomClassroom) []*models.Classroom {
	out := make([]*models.Classroom, len(rows))
	for i, row := range rows {
		out[i] = rowToClassroom(row)
	}
	return out
}
