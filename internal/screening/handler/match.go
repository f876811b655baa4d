package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matchwise/matchwise-backend/internal/screening/service"
	"github.com/matchwise/matchwise-backend/pkg/httputil"
	"github.com/matchwise/matchwise-backend/pkg/logger"
)

// MatchHandler handles match endpoints
type MatchHandler struct {
	service *service.ScreeningService
	logger  *logger.Logger
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(svc *service.ScreeningService, log *logger.Logger) *MatchHandler {
	return &MatchHandler{
		service: svc,
		logger:  log,
	}
}

// MatchJobRequest selects the candidates to score. An empty or absent list
// scores every known candidate.
type MatchJobRequest struct {
	CandidateIDs []string `json:"candidate_ids"`
}

// ShortlistRequest is the payload for the manual shortlist override
type ShortlistRequest struct {
	Shortlisted *bool `json:"shortlisted" validate:"required"`
}

// CreateForJob runs a match batch for a job
func (h *MatchHandler) CreateForJob(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "id")

	var req MatchJobRequest
	if r.ContentLength > 0 {
		if err := httputil.DecodeJSON(r, &req); err != nil {
			httputil.Error(w, err)
			return
		}
	}

	results, err := h.service.MatchJob(r.Context(), jobID, req.CandidateIDs)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusCreated, results)
}

// ListForJob lists match results for a job, best first. With
// ?shortlisted=true only shortlisted matches are returned.
func (h *MatchHandler) ListForJob(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "id")
	shortlistedOnly := r.URL.Query().Get("shortlisted") == "true"

	results, err := h.service.ListMatches(r.Context(), jobID, shortlistedOnly)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, results)
}

// Get gets a match result by ID
func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	match, err := h.service.GetMatch(r.Context(), id)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, match)
}

// SetShortlist manually overrides the shortlist flag on a match
func (h *MatchHandler) SetShortlist(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req ShortlistRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}
	if err := httputil.Validate(&req); err != nil {
		httputil.Error(w, err)
		return
	}

	match, err := h.service.SetShortlisted(r.Context(), id, *req.Shortlisted)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, match)
}
