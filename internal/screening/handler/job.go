package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matchwise/matchwise-backend/internal/screening/service"
	"github.com/matchwise/matchwise-backend/pkg/httputil"
	"github.com/matchwise/matchwise-backend/pkg/logger"
)

// JobHandler handles job endpoints
type JobHandler struct {
	service *service.ScreeningService
	logger  *logger.Logger
}

// NewJobHandler creates a new job handler
func NewJobHandler(svc *service.ScreeningService, log *logger.Logger) *JobHandler {
	return &JobHandler{
		service: svc,
		logger:  log,
	}
}

// CreateJobRequest is the payload for ingesting a job posting
type CreateJobRequest struct {
	Text  string `json:"text" validate:"required"`
	Title string `json:"title" validate:"omitempty,max=200"`
}

// Create ingests a job posting and returns the extracted job record
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateJobRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}
	if err := httputil.Validate(&req); err != nil {
		httputil.Error(w, err)
		return
	}

	job, err := h.service.IngestJob(r.Context(), req.Text, req.Title)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusCreated, job)
}

// Get gets a job record by ID
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	job, err := h.service.GetJob(r.Context(), id)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, job)
}

// List lists all job records
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.service.ListJobs(r.Context())
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, jobs)
}
