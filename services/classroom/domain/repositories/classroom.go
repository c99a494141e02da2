package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/examseats/services/classroom/domain/models"
)

// QueryOpts contains pagination parameters for list queries.
type QueryOpts struct {
	Limit  int // Maximum number of records to return
	Offset int // Number of records to skip
}

// ClassroomRepository is the persistence port for the Classroom aggregate.
// The domain layer owns this interface; infrastructure implements it.
type ClassroomRepository interface {
	// Save inserts a new classroom. Returns ErrClassroomAlreadyExists when the
	// name is already taken on the same floor.
	Save(ctx context.Context, c *models.Classroom) error

	// GetByID returns ErrClassroomNotFound when no classroom has the given ID.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Classroom, error)

	// ListAll returns every classroom ordered by floor, then name.
	// The allocator re-sorts, so callers must not depend on this ordering.
	ListAll(ctx context.Context) ([]*models.Classroom, error)

	// FindPage returns one page of classrooms plus the total count.
	FindPage(ctx context.Context, opts QueryOpts) ([]*models.Classroom, int, error)

	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
