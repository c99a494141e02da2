package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/examseats/pkg/httpx"
	"github.com/ghuser/examseats/services/classroom/domain/models"
)

// ClassroomResponse is the JSON form of a classroom.
type ClassroomResponse struct {
	ID        uuid.UUID `json:"id"         example:"123e4567-e89b-12d3-a456-426614174000"`
	Name      string    `json:"name"       example:"Room 101"`
	Floor     int       `json:"floor"      example:"1"`
	Capacity  int       `json:"capacity"   example:"30"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
} // @name ClassroomResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"classroom not found"`
} // @name ErrorResponse

// ValidationErrorResponse is returned when request validation fails.
type ValidationErrorResponse struct {
	Error  string            `json:"error"  example:"Validation failed"`
	Fields map[string]string `json:"fields"`
} // @name ValidationErrorResponse

func toClassroomResponse(c *models.Classroom) ClassroomResponse {
	return ClassroomResponse{
		ID:        c.ID,
		Name:      c.Name.String(),
		Floor:     c.Floor,
		Capacity:  c.Capacity.Int(),
		CreatedAt: c.CreatedAt,
	}
}

func toClassroomResponses(cs []*models.Classroom) []ClassroomResponse {
	out := make([]ClassroomResponse, len(cs))
	for i, c := range cs {
		out[i] = toClassroomResponse(c)
	}
	return out
}

// classroomIDParam parses the {id} path parameter, writing a 400 on failure.
func classroomIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid classroom id")
		return uuid.Nil, false
	}
	return id, true
}
