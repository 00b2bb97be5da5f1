package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/studyforge/planner-api/internal/api/shared"
	"github.com/studyforge/planner-api/internal/domain"
	"github.com/studyforge/planner-api/internal/planner"
)

// SessionRequest is the body for loading or creating a plan.
type SessionRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

// AddSubjectRequest is the body for adding a subject.
type AddSubjectRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description" validate:"required"`
}

// AddExamRequest is the body for adding an exam.
type AddExamRequest struct {
	SubjectID string `json:"subjectId" validate:"required"`
	Date      string `json:"date"      validate:"required"`
}

// ToggleTopicRequest is the body for toggling a sub-topic's completion.
type ToggleTopicRequest struct {
	Topic string `json:"topic" validate:"required"`
}

// PlanResponse is the full session view: the snapshot plus the derived
// timetable aggregates.
type PlanResponse struct {
	Profile        domain.Profile      `json:"profile"`
	Subjects       []domain.Subject    `json:"subjects"`
	Exams          []domain.Exam       `json:"exams"`
	Active         bool                `json:"active"`
	Topics         []planner.FlatTopic `json:"topics"`
	CompletedCount int                 `json:"completedCount"`
	TotalCount     int                 `json:"totalCount"`
	Message        string              `json:"message,omitempty"`
}

// PlannerHandler handles all study-plan HTTP requests.
type PlannerHandler struct {
	planner   *planner.Planner
	validator *validator.Validate
	logger    *slog.Logger
}

// NewPlannerHandler creates a PlannerHandler around the given store.
func NewPlannerHandler(p *planner.Planner, logger *slog.Logger) *PlannerHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlannerHandler{
		planner:   p,
		validator: validator.New(),
		logger:    logger,
	}
}

// Routes mounts every planner endpoint on the given router.
func (h *PlannerHandler) Routes(r chi.Router) {
	r.Post("/session", h.LoadSession)
	r.Delete("/session", h.EndSession)
	r.Get("/plan", h.GetPlan)
	r.Post("/subjects", h.AddSubject)
	r.Delete("/subjects/{id}", h.DeleteSubject)
	r.Post("/subjects/{id}/breakdown", h.BreakdownSubject)
	r.Post("/subjects/{id}/topics/toggle", h.ToggleTopic)
	r.Post("/exams", h.AddExam)
	r.Delete("/exams/{id}", h.DeleteExam)
}

// LoadSession handles POST /api/session requests.
func (h *PlannerHandler) LoadSession(w http.ResponseWriter, r *http.Request) {
	var req SessionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Email is required to load or create a plan.")
		return
	}

	if err := h.planner.LoadOrCreateSession(r.Context(), req.Email, req.Name); err != nil {
		h.respondOperationError(w, r, "load session", err)
		return
	}

	response := h.planResponse()
	display := response.Profile.Name
	if display == "" {
		display = response.Profile.Email
	}
	response.Message = fmt.Sprintf("Welcome, %s. Plan loaded.", display)
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// EndSession handles DELETE /api/session requests.
func (h *PlannerHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	if err := h.planner.EndSession(); err != nil {
		h.respondOperationError(w, r, "end session", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetPlan handles GET /api/plan requests.
func (h *PlannerHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.planResponse())
}

// AddSubject handles POST /api/subjects requests.
func (h *PlannerHandler) AddSubject(w http.ResponseWriter, r *http.Request) {
	var req AddSubjectRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Subject name and description are required")
		return
	}

	subject, err := h.planner.AddSubject(r.Context(), req.Name, req.Description)
	if err != nil {
		h.respondOperationError(w, r, "add subject", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, subject)
}

// DeleteSubject handles DELETE /api/subjects/{id} requests.
func (h *PlannerHandler) DeleteSubject(w http.ResponseWriter, r *http.Request) {
	if err := h.planner.DeleteSubject(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondOperationError(w, r, "delete subject", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// BreakdownSubject handles POST /api/subjects/{id}/breakdown requests.
func (h *PlannerHandler) BreakdownSubject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.planner.BreakdownSubject(r.Context(), id); err != nil {
		h.respondOperationError(w, r, "breakdown subject", err)
		return
	}

	// Return the refreshed subject so the client need not refetch the plan.
	for _, s := range h.planner.Snapshot().Subjects {
		if s.ID == id {
			shared.RespondWithJSON(w, r, http.StatusOK, s)
			return
		}
	}
	// Deleted while the breakdown was in flight; the no-op resolution is
	// still a success.
	w.WriteHeader(http.StatusNoContent)
}

// ToggleTopic handles POST /api/subjects/{id}/topics/toggle requests.
func (h *PlannerHandler) ToggleTopic(w http.ResponseWriter, r *http.Request) {
	var req ToggleTopicRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Topic name is required")
		return
	}

	err := h.planner.ToggleTopicCompletion(r.Context(), chi.URLParam(r, "id"), req.Topic)
	if err != nil {
		h.respondOperationError(w, r, "toggle topic", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddExam handles POST /api/exams requests.
func (h *PlannerHandler) AddExam(w http.ResponseWriter, r *http.Request) {
	var req AddExamRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Subject and date are required")
		return
	}

	exam, err := h.planner.AddExam(r.Context(), req.SubjectID, req.Date)
	if err != nil {
		h.respondOperationError(w, r, "add exam", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, exam)
}

// DeleteExam handles DELETE /api/exams/{id} requests.
func (h *PlannerHandler) DeleteExam(w http.ResponseWriter, r *http.Request) {
	if err := h.planner.DeleteExam(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondOperationError(w, r, "delete exam", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// planResponse assembles the snapshot and the derived view aggregates.
func (h *PlannerHandler) planResponse() PlanResponse {
	snap := h.planner.Snapshot()
	return PlanResponse{
		Profile:        snap.Profile,
		Subjects:       snap.Subjects,
		Exams:          snap.Exams,
		Active:         snap.Active,
		Topics:         h.planner.FlattenedTopics(),
		CompletedCount: h.planner.CompletedCount(),
		TotalCount:     h.planner.TotalCount(),
	}
}

// respondOperationError logs the operation failure and sends the
// sanitized message with the mapped status code.
func (h *PlannerHandler) respondOperationError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := MapErrorToStatusCode(err)
	if status >= 500 {
		h.logger.Error("operation failed", "operation", op, "error", err)
	} else {
		h.logger.Debug("operation rejected", "operation", op, "error", err)
	}
	shared.RespondWithError(w, r, status, GetSafeErrorMessage(err))
}
