package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matchwise/matchwise-backend/internal/interview/domain"
	"github.com/matchwise/matchwise-backend/internal/interview/service"
	"github.com/matchwise/matchwise-backend/pkg/httputil"
	"github.com/matchwise/matchwise-backend/pkg/logger"
)

// InterviewHandler handles interview endpoints
type InterviewHandler struct {
	service *service.InterviewService
	logger  *logger.Logger
}

// NewInterviewHandler creates a new interview handler
func NewInterviewHandler(svc *service.InterviewService, log *logger.Logger) *InterviewHandler {
	return &InterviewHandler{
		service: svc,
		logger:  log,
	}
}

// ScheduleRequest is the payload for booking an interview slot
type ScheduleRequest struct {
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlot string `json:"time_slot" validate:"required,max=50"`
	Format   string `json:"format" validate:"required,oneof=video phone onsite"`
}

// List lists interviews, optionally filtered with ?job_id=
func (h *InterviewHandler) List(w http.ResponseWriter, r *http.Request) {
	jobID := r.URL.Query().Get("job_id")

	interviews, err := h.service.ListInterviews(r.Context(), jobID)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, interviews)
}

// Get gets an interview by ID
func (h *InterviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	interview, err := h.service.GetInterview(r.Context(), id)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, interview)
}

// Schedule books a slot for an interview
func (h *InterviewHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req ScheduleRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}
	if err := httputil.Validate(&req); err != nil {
		httputil.Error(w, err)
		return
	}

	interview, err := h.service.Schedule(r.Context(), id, req.Date, req.TimeSlot, domain.InterviewFormat(req.Format))
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, interview)
}

// Email renders the invitation email for a scheduled interview
func (h *InterviewHandler) Email(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	email, err := h.service.RenderEmail(r.Context(), id)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, map[string]string{
		"interview_id": id,
		"email":        email,
	})
}
