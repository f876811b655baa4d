package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matchwise/matchwise-backend/internal/screening/service"
	"github.com/matchwise/matchwise-backend/pkg/httputil"
	"github.com/matchwise/matchwise-backend/pkg/logger"
)

// CandidateHandler handles candidate endpoints
type CandidateHandler struct {
	service *service.ScreeningService
	logger  *logger.Logger
}

// NewCandidateHandler creates a new candidate handler
func NewCandidateHandler(svc *service.ScreeningService, log *logger.Logger) *CandidateHandler {
	return &CandidateHandler{
		service: svc,
		logger:  log,
	}
}

// CreateCandidateRequest is the payload for ingesting a CV
type CreateCandidateRequest struct {
	Text string `json:"text" validate:"required"`
	Name string `json:"name" validate:"omitempty,max=200"`
}

// Create ingests a CV and returns the extracted candidate record
func (h *CandidateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCandidateRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}
	if err := httputil.Validate(&req); err != nil {
		httputil.Error(w, err)
		return
	}

	candidate, err := h.service.IngestCandidate(r.Context(), req.Text, req.Name)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusCreated, candidate)
}

// Get gets a candidate record by ID
func (h *CandidateHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	candidate, err := h.service.GetCandidate(r.Context(), id)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, candidate)
}

// List lists all candidate records
func (h *CandidateHandler) List(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.service.ListCandidates(r.Context())
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, candidates)
}
