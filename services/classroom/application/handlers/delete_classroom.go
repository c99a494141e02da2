package handlers

import (
	"net/http"

	"github.com/ghuser/examseats/pkg/errhttp"
	"github.com/ghuser/examseats/pkg/httpx"
	appsvcs "github.com/ghuser/examseats/services/classroom/application/services"
)

// DeleteClassroomHandler handles DELETE /classrooms/{id} requests.
type DeleteClassroomHandler struct {
	svc *appsvcs.Services
}

// NewDeleteClassroomHandler returns a DeleteClassroomHandler backed by the given services.
func NewDeleteClassroomHandler(svc *appsvcs.Services) *DeleteClassroomHandler {
	return &DeleteClassroomHandler{svc: svc}
}

// Execute removes a classroom.
//
//	@Summary	Delete classroom
//	@Tags		classrooms
//	@Param		id	path	string	true	"Classroom ID"	format(uuid)
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/classrooms/{id} [delete]
func (h *DeleteClassroomHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := classroomIDParam(w, r)
	if !ok {
		return
	}

	if err := h.svc.Classroom.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.NoContent(w)
}
