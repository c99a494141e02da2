package handlers

import (
	"net/http"

	"github.com/ghuser/examseats/pkg/errhttp"
	"github.com/ghuser/examseats/pkg/httpx"
	pkgvalidator "github.com/ghuser/examseats/pkg/validator"
	appsvcs "github.com/ghuser/examseats/services/classroom/application/services"
)

// CreateClassroomRequest is the request body for POST /classrooms.
// Floor is a pointer so an explicit 0 (ground floor) is distinguishable from a
// missing field.
type CreateClassroomRequest struct {
	Name     string `json:"name"     validate:"required,min=1,max=255" example:"Room 101"`
	Floor    *int   `json:"floor"    validate:"required,gte=-10,lte=200" example:"1"`
	Capacity int    `json:"capacity" validate:"gt=0,lte=10000" example:"30"`
} // @name CreateClassroomRequest

// PostClassroomHandler handles POST /classrooms requests.
type PostClassroomHandler struct {
	svc *appsvcs.Services
}

// NewPostClassroomHandler returns a PostClassroomHandler backed by the given services.
func NewPostClassroomHandler(svc *appsvcs.Services) *PostClassroomHandler {
	return &PostClassroomHandler{svc: svc}
}

// Execute registers a new classroom.
//
//	@Summary		Create classroom
//	@Description	Registers a classroom that can host exam candidates. Names are unique per floor, ignoring case.
//	@Tags			classrooms
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateClassroomRequest	true	"Classroom"
//	@Success		201		{object}	ClassroomResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ValidationErrorResponse
//	@Router			/classrooms [post]
func (h *PostClassroomHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateClassroomRequest](w, r)
	if !ok {
		return
	}

	c, err := h.svc.Classroom.Create(r.Context(), req.Name, *req.Floor, req.Capacity)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/classrooms/"+c.ID.String())
	httpx.JSON(w, http.StatusCreated, toClassroomResponse(c))
}
