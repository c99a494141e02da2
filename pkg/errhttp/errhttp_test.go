package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	classroomdomain "github.com/ghuser/examseats/services/classroom/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ErrClassroomNotFound", classroomdomain.ErrClassroomNotFound, http.StatusNotFound},
		{"ErrClassroomAlreadyExists", classroomdomain.ErrClassroomAlreadyExists, http.StatusConflict},
		{"ErrInvalidClassroom", classroomdomain.ErrInvalidClassroom, http.StatusUnprocessableEntity},
		{"ErrInvalidSeatCount", classroomdomain.ErrInvalidSeatCount, http.StatusUnprocessableEntity},
		{"wrapped ErrClassroomNotFound", fmt.Errorf("get classroom: %w", classroomdomain.ErrClassroomNotFound), http.StatusNotFound},
		{"wrapped ErrInvalidSeatCount", fmt.Errorf("%w: got 0", classroomdomain.ErrInvalidSeatCount), http.StatusUnprocessableEntity},
		{"ErrInvalidExamPlan", classroomdomain.ErrInvalidExamPlan, http.StatusUnprocessableEntity},
		{"ErrExamPlanNotFound", classroomdomain.ErrExamPlanNotFound, http.StatusNotFound},
		{"ErrExamPlanningDisabled", classroomdomain.ErrExamPlanningDisabled, http.StatusServiceUnavailable},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("db down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody), tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWriteError_JSONBody(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody), classroomdomain.ErrClassroomNotFound)

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body["error"] != classroomdomain.ErrClassroomNotFound.Error() {
		t.Fatalf("unexpected error message: %q", body["error"])
	}
}

func TestWriteError_InternalErrorIsMasked(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody), errors.New("pq: password authentication failed"))

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body["error"] != internalErrorMessage {
		t.Fatalf("internal error leaked: %q", body["error"])
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody), classroomdomain.ErrClassroomNotFound)

	ct := w.Header().Get("Content-Type")
	if ct == "" {
		t.Fatal("Content-Type header not set")
	}
}
