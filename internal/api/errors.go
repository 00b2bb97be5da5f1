package api

import (
	"errors"
	"net/http"

	"github.com/studyforge/planner-api/internal/breakdown"
	"github.com/studyforge/planner-api/internal/domain"
	"github.com/studyforge/planner-api/internal/planner"
	"github.com/studyforge/planner-api/internal/remote"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Local input validation
	case errors.Is(err, domain.ErrEmptyEmail),
		errors.Is(err, domain.ErrEmptySubjectName),
		errors.Is(err, domain.ErrEmptySubjectDescription),
		errors.Is(err, domain.ErrEmptySubjectID),
		errors.Is(err, domain.ErrInvalidExamDate),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Session guards
	case errors.Is(err, planner.ErrNoSession):
		return http.StatusUnauthorized

	// State conflicts
	case errors.Is(err, planner.ErrSessionActive),
		errors.Is(err, planner.ErrBreakdownInFlight),
		errors.Is(err, planner.ErrAlreadyBrokenDown):
		return http.StatusConflict

	// Missing entities
	case errors.Is(err, planner.ErrNotFound):
		return http.StatusNotFound

	// Upstream services
	case errors.Is(err, remote.ErrRemote),
		errors.Is(err, breakdown.ErrBreakdownFailed),
		errors.Is(err, breakdown.ErrServiceFailure),
		errors.Is(err, breakdown.ErrInvalidResponse),
		errors.Is(err, breakdown.ErrContentBlocked):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrEmptyEmail):
		return "Email is required to load or create a plan."
	case errors.Is(err, domain.ErrEmptySubjectName):
		return "Subject name is required"
	case errors.Is(err, domain.ErrEmptySubjectDescription):
		return "Subject description is required"
	case errors.Is(err, domain.ErrEmptySubjectID):
		return "Subject reference is required"
	case errors.Is(err, domain.ErrInvalidExamDate):
		return "Exam date must be a valid YYYY-MM-DD date"

	case errors.Is(err, planner.ErrNoSession):
		return "No active session; load or create a plan first"
	case errors.Is(err, planner.ErrSessionActive):
		return "A session is already active; log out first"
	case errors.Is(err, planner.ErrBreakdownInFlight):
		return "This subject is already being analyzed"
	case errors.Is(err, planner.ErrAlreadyBrokenDown):
		return "This subject is already broken down"

	case errors.Is(err, planner.ErrSubjectNotFound):
		return "Subject not found"
	case errors.Is(err, planner.ErrExamNotFound):
		return "Exam not found"
	case errors.Is(err, planner.ErrTopicNotFound):
		return "Sub-topic not found"

	case errors.Is(err, remote.ErrRemote):
		return "The remote store could not complete the request. Please try again."
	case errors.Is(err, breakdown.ErrBreakdownFailed),
		errors.Is(err, breakdown.ErrServiceFailure),
		errors.Is(err, breakdown.ErrInvalidResponse),
		errors.Is(err, breakdown.ErrContentBlocked):
		return "Failed to break down topic. Please try again."

	default:
		return "An unexpected error occurred"
	}
}
