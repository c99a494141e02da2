package handlers

import (
	"net/http"

	"github.com/ghuser/examseats/pkg/errhttp"
	"github.com/ghuser/examseats/pkg/httpx"
	appsvcs "github.com/ghuser/examseats/services/classroom/application/services"
)

// GetClassroomHandler handles GET /classrooms/{id} requests.
type GetClassroomHandler struct {
	svc *appsvcs.Services
}

// NewGetClassroomHandler returns a GetClassroomHandler backed by the given services.
func NewGetClassroomHandler(svc *appsvcs.Services) *GetClassroomHandler {
	return &GetClassroomHandler{svc: svc}
}

// Execute fetches one classroom.
//
//	@Summary	Get classroom
//	@Tags		classrooms
//	@Produce	json
//	@Param		id	path		string	true	"Classroom ID"	format(uuid)
//	@Success	200	{object}	ClassroomResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/classrooms/{id} [get]
func (h *GetClassroomHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := classroomIDParam(w, r)
	if !ok {
		return
	}

	c, err := h.svc.Classroom.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toClassroomResponse(c))
}
