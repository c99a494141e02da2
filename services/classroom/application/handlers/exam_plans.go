package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/examseats/pkg/errhttp"
	"github.com/ghuser/examseats/pkg/httpx"
	pkgvalidator "github.com/ghuser/examseats/pkg/validator"
	appsvcs "github.com/ghuser/examseats/services/classroom/application/services"
	"github.com/ghuser/examseats/services/classroom/application/workflows"
)

// ExamEntry is one exam in a plan request.
type ExamEntry struct {
	Name          string `json:"name"           validate:"required,min=1,max=255" example:"Maths"`
	RequiredSeats int    `json:"required_seats" validate:"required,gt=0" example:"120"`
} // @name ExamEntry

// CreateExamPlanRequest is the request body for POST /exam-plans.
type CreateExamPlanRequest struct {
	Exams []ExamEntry `json:"exams" validate:"required,min=1,max=100,dive"`
} // @name CreateExamPlanRequest

// ExamPlanAcceptedResponse is returned when a plan has been queued.
type ExamPlanAcceptedResponse struct {
	ID     string `json:"id"     example:"exam-plan-123e4567-e89b-12d3-a456-426614174000"`
	Status string `json:"status" example:"running"`
} // @name ExamPlanAcceptedResponse

// ExamPlanResponse reports a plan's status and, once completed, its allocations.
type ExamPlanResponse struct {
	ID          string                     `json:"id"`
	Status      string                     `json:"status" example:"completed"`
	Allocations []workflows.ExamAllocation `json:"allocations,omitempty"`
} // @name ExamPlanResponse

// ExamPlanHandler handles /exam-plans requests.
type ExamPlanHandler struct {
	svc *appsvcs.Services
}

// NewExamPlanHandler returns an ExamPlanHandler backed by the given services.
func NewExamPlanHandler(svc *appsvcs.Services) *ExamPlanHandler {
	return &ExamPlanHandler{svc: svc}
}

// Create queues seat allocation for a batch of exams.
//
//	@Summary		Plan exam seating
//	@Description	Starts a durable workflow allocating seats for each exam independently.
//	@Tags			exam-plans
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateExamPlanRequest	true	"Exams"
//	@Success		202		{object}	ExamPlanAcceptedResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ValidationErrorResponse
//	@Failure		503		{object}	ErrorResponse
//	@Router			/exam-plans [post]
func (h *ExamPlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateExamPlanRequest](w, r)
	if !ok {
		return
	}

	in := workflows.ExamPlanInput{Exams: make([]workflows.ExamRequest, len(req.Exams))}
	for i, e := range req.Exams {
		in.Exams[i] = workflows.ExamRequest{Name: e.Name, RequiredSeats: e.RequiredSeats}
	}

	id, err := h.svc.ExamPlan.Start(r.Context(), in)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/exam-plans/"+id)
	httpx.JSON(w, http.StatusAccepted, ExamPlanAcceptedResponse{ID: id, Status: "running"})
}

// Get reports the status of an exam plan.
//
//	@Summary	Get exam plan
//	@Tags		exam-plans
//	@Produce	json
//	@Param		id	path		string	true	"Exam plan ID"
//	@Success	200	{object}	ExamPlanResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	503	{object}	ErrorResponse
//	@Router		/exam-plans/{id} [get]
func (h *ExamPlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.ExamPlan.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	resp := ExamPlanResponse{ID: st.ID, Status: st.Status}
	if st.Result != nil {
		resp.Allocations = st.Result.Allocations
	}
	httpx.JSON(w, http.StatusOK, resp)
}
