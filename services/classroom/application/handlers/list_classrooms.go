package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/examseats/pkg/errhttp"
	"github.com/ghuser/examseats/pkg/httpx"
	appsvcs "github.com/ghuser/examseats/services/classroom/application/services"
	"github.com/ghuser/examseats/services/classroom/domain/repositories"
)

const maxListLimit = 1000

// ListClassroomsResponse is one page of classrooms.
type ListClassroomsResponse struct {
	Classrooms []ClassroomResponse `json:"classrooms"`
	Total      int                 `json:"total"  example:"42"`
	Limit      int                 `json:"limit"  example:"20"`
	Offset     int                 `json:"offset" example:"0"`
} // @name ListClassroomsResponse

// ListClassroomsHandler handles GET /classrooms requests.
type ListClassroomsHandler struct {
	svc *appsvcs.Services
}

// NewListClassroomsHandler returns a ListClassroomsHandler backed by the given services.
func NewListClassroomsHandler(svc *appsvcs.Services) *ListClassroomsHandler {
	return &ListClassroomsHandler{svc: svc}
}

// Execute lists classrooms ordered by floor, then name.
//
//	@Summary		List classrooms
//	@Description	Lists registered classrooms. Without limit every classroom is returned.
//	@Tags			classrooms
//	@Produce		json
//	@Param			limit	query		int	false	"Page size (1-1000)"
//	@Param			offset	query		int	false	"Records to skip"
//	@Success		200		{object}	ListClassroomsResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/classrooms [get]
func (h *ListClassroomsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	opts, ok := parsePage(w, r)
	if !ok {
		return
	}

	classrooms, total, err := h.svc.Classroom.List(r.Context(), opts)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	w.Header().Set("X-Total-Count", strconv.Itoa(total))
	httpx.JSON(w, http.StatusOK, ListClassroomsResponse{
		Classrooms: toClassroomResponses(classrooms),
		Total:      total,
		Limit:      opts.Limit,
		Offset:     opts.Offset,
	})
}

func parsePage(w http.ResponseWriter, r *http.Request) (repositories.QueryOpts, bool) {
	var opts repositories.QueryOpts
	q := r.URL.Query()

	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxListLimit {
			httpx.JSONError(w, http.StatusBadRequest, "limit must be an integer between 1 and 1000")
			return opts, false
		}
		opts.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			httpx.JSONError(w, http.StatusBadRequest, "offset must be a non-negative integer")
			return opts, false
		}
		opts.Offset = n
	}
	return opts, true
}
