package handlers

import (
	"net/http"

	"github.com/ghuser/examseats/pkg/errhttp"
	"github.com/ghuser/examseats/pkg/httpx"
	pkgvalidator "github.com/ghuser/examseats/pkg/validator"
	appsvcs "github.com/ghuser/examseats/services/classroom/application/services"
	"github.com/ghuser/examseats/services/classroom/domain/models"
)

// AllocationRequest is the request body for POST /allocations.
type AllocationRequest struct {
	RequiredSeats int `json:"required_seats" validate:"required,gt=0" example:"120"`
} // @name AllocationRequest

// AllocationResponse reports the allocator's decision. A failed allocation
// is still a 200: Success, Outcome and Message say why.
type AllocationResponse struct {
	Success             bool                `json:"success"`
	Outcome             string              `json:"outcome"        example:"allocated" enums:"allocated,no_classrooms,insufficient_capacity"`
	AllocatedClassrooms []ClassroomResponse `json:"allocated_classrooms"`
	TotalCapacity       int                 `json:"total_capacity" example:"130"`
	Message             string              `json:"message"        example:"Successfully allocated 2 classroom(s) for 120 students"`
} // @name AllocationResponse

func toAllocationResponse(res *models.AllocationResult) AllocationResponse {
	return AllocationResponse{
		Success:             res.Success,
		Outcome:             string(res.Outcome),
		AllocatedClassrooms: toClassroomResponses(res.AllocatedClassrooms),
		TotalCapacity:       res.TotalCapacity,
		Message:             res.Message,
	}
}

// PostAllocationHandler handles POST /allocations requests.
type PostAllocationHandler struct {
	svc *appsvcs.Services
}

// NewPostAllocationHandler returns a PostAllocationHandler backed by the given services.
func NewPostAllocationHandler(svc *appsvcs.Services) *PostAllocationHandler {
	return &PostAllocationHandler{svc: svc}
}

// Execute allocates classrooms for an exam.
//
//	@Summary		Allocate exam seats
//	@Description	Picks classrooms lowest floor first, largest room first within a floor, until every candidate is seated.
//	@Tags			allocations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AllocationRequest	true	"Seats to allocate"
//	@Success		200		{object}	AllocationResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ValidationErrorResponse
//	@Router			/allocations [post]
func (h *PostAllocationHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[AllocationRequest](w, r)
	if !ok {
		return
	}

	res, err := h.svc.Classroom.Allocate(r.Context(), req.RequiredSeats)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toAllocationResponse(res))
}
