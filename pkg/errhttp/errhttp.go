// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"

	"github.com/ghuser/examseats/pkg/httpx"
	classroomdomain "github.com/ghuser/examseats/services/classroom/domain"
)

const internalErrorMessage = "internal server error"

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Unrecognized errors become 500; their text is reported to Sentry (when the
// request carries a hub) and replaced by a generic message in the body.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := mapErrorToStatus(err)
	if status == http.StatusInternalServerError {
		if hub := sentry.GetHubFromContext(r.Context()); hub != nil {
			hub.CaptureException(err)
		}
		httpx.JSONError(w, status, internalErrorMessage)
		return
	}
	httpx.JSONError(w, status, err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, classroomdomain.ErrClassroomNotFound),
		errors.Is(err, classroomdomain.ErrExamPlanNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, classroomdomain.ErrClassroomAlreadyExists):
		return http.StatusConflict // 409
	case errors.Is(err, classroomdomain.ErrInvalidClassroom),
		errors.Is(err, classroomdomain.ErrInvalidSeatCount),
		errors.Is(err, classroomdomain.ErrInvalidExamPlan):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, classroomdomain.ErrExamPlanningDisabled):
		return http.StatusServiceUnavailable // 503
	default:
		return http.StatusInternalServerError // 500
	}
}
