package service

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/matchwise/matchwise-backend/internal/screening/domain"
	"github.com/matchwise/matchwise-backend/internal/screening/extract"
	"github.com/matchwise/matchwise-backend/internal/screening/scoring"
	"github.com/matchwise/matchwise-backend/pkg/config"
	"github.com/matchwise/matchwise-backend/pkg/errors"
	"github.com/matchwise/matchwise-backend/pkg/logger"
)

// matchConcurrency bounds parallel score-and-persist work in a batch run
const matchConcurrency = 8

// CandidateStore is the candidate persistence the service depends on
type CandidateStore interface {
	Create(ctx context.Context, candidate *domain.CandidateRecord) error
	GetByID(ctx context.Context, id string) (*domain.CandidateRecord, error)
	List(ctx context.Context) ([]*domain.CandidateRecord, error)
}

// JobStore is the job persistence the service depends on
type JobStore interface {
	Create(ctx context.Context, job *domain.JobRecord) error
	GetByID(ctx context.Context, id string) (*domain.JobRecord, error)
	List(ctx context.Context) ([]*domain.JobRecord, error)
}

// MatchStore is the match persistence the service depends on
type MatchStore interface {
	Create(ctx context.Context, match *domain.MatchResult) error
	GetByID(ctx context.Context, id string) (*domain.MatchResult, error)
	ListByJob(ctx context.Context, jobID string, shortlistedOnly bool) ([]*domain.MatchResult, error)
	SetShortlisted(ctx context.Context, id string, shortlisted bool) error
}

// EventPublisher publishes screening lifecycle events
type EventPublisher interface {
	PublishCandidateCreated(ctx context.Context, candidate *domain.CandidateRecord)
	PublishJobCreated(ctx context.Context, job *domain.JobRecord)
	PublishMatchCompleted(ctx context.Context, match *domain.MatchResult)
	PublishMatchShortlisted(ctx context.Context, match *domain.MatchResult, job *domain.JobRecord, candidate *domain.CandidateRecord)
}

// ScreeningService implements the screening pipeline: document ingestion,
// batch scoring and shortlist management.
type ScreeningService struct {
	candidates CandidateStore
	jobs       JobStore
	matches    MatchStore
	vocab      *extract.Vocabulary
	engine     *scoring.Engine
	threshold  float64
	publisher  EventPublisher
	logger     *logger.Logger
}

// NewScreeningService creates a new screening service
func NewScreeningService(
	candidates CandidateStore,
	jobs JobStore,
	matches MatchStore,
	vocab *extract.Vocabulary,
	cfg *config.ScreeningConfig,
	publisher EventPublisher,
	log *logger.Logger,
) *ScreeningService {
	return &ScreeningService{
		candidates: candidates,
		jobs:       jobs,
		matches:    matches,
		vocab:      vocab,
		engine:     scoring.NewEngine(cfg),
		threshold:  cfg.ShortlistThreshold,
		publisher:  publisher,
		logger:     log,
	}
}

// IngestCandidate extracts a structured candidate record from raw CV text
// and persists it. A non-empty name overrides the extracted one.
func (s *ScreeningService) IngestCandidate(ctx context.Context, rawText, name string) (*domain.CandidateRecord, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, errors.BadRequest("cv text must not be empty")
	}

	doc, err := extract.Normalize(rawText)
	if err != nil {
		return nil, err
	}

	candidate := extract.ExtractCandidate(doc, s.vocab)
	candidate.RawText = rawText
	if name != "" {
		candidate.Name = name
	}

	if err := s.candidates.Create(ctx, candidate); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("candidate_id", candidate.ID).
		Int("skills", len(candidate.Skills)).
		Bool("low_confidence", candidate.LowConfidence).
		Msg("candidate ingested")

	s.publisher.PublishCandidateCreated(ctx, candidate)

	return candidate, nil
}

// IngestJob extracts a structured job record from raw posting text and
// persists it. A non-empty title overrides the extracted one.
func (s *ScreeningService) IngestJob(ctx context.Context, rawText, title string) (*domain.JobRecord, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, errors.BadRequest("job text must not be empty")
	}

	doc, err := extract.Normalize(rawText)
	if err != nil {
		return nil, err
	}

	job := extract.ExtractJob(doc, s.vocab)
	job.RawText = rawText
	if title != "" {
		job.Title = title
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("job_id", job.ID).
		Int("required_skills", len(job.RequiredSkills)).
		Bool("needs_review", job.NeedsReview).
		Msg("job ingested")

	s.publisher.PublishJobCreated(ctx, job)

	return job, nil
}

// GetCandidate gets a candidate record by ID
func (s *ScreeningService) GetCandidate(ctx context.Context, id string) (*domain.CandidateRecord, error) {
	return s.candidates.GetByID(ctx, id)
}

// ListCandidates lists all candidate records
func (s *ScreeningService) ListCandidates(ctx context.Context) ([]*domain.CandidateRecord, error) {
	return s.candidates.List(ctx)
}

// GetJob gets a job record by ID
func (s *ScreeningService) GetJob(ctx context.Context, id string) (*domain.JobRecord, error) {
	return s.jobs.GetByID(ctx, id)
}

// ListJobs lists all job records
func (s *ScreeningService) ListJobs(ctx context.Context) ([]*domain.JobRecord, error) {
	return s.jobs.List(ctx)
}

// MatchJob scores candidates against a job and persists the results.
// An empty candidate ID list means every known candidate. Results come
// back ordered best first with deterministic tie-breaking.
func (s *ScreeningService) MatchJob(ctx context.Context, jobID string, candidateIDs []string) ([]*domain.MatchResult, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.resolveCandidates(ctx, candidateIDs)
	if err != nil {
		return nil, err
	}

	results := make([]*domain.MatchResult, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(matchConcurrency)
	for i, candidate := range candidates {
		i, candidate := i, candidate
		g.Go(func() error {
			match := s.engine.Score(candidate, job)
			match.Shortlisted = scoring.ShouldShortlist(match, s.threshold)

			if err := s.matches.Create(gctx, match); err != nil {
				return err
			}
			results[i] = match
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, match := range results {
		s.publisher.PublishMatchCompleted(ctx, match)
		if match.Shortlisted {
			s.publisher.PublishMatchShortlisted(ctx, match, job, candidates[i])
		}
	}

	domain.SortResults(results)

	s.logger.Info().
		Str("job_id", jobID).
		Int("candidates", len(candidates)).
		Float64("threshold", s.threshold).
		Msg("match batch completed")

	return results, nil
}

func (s *ScreeningService) resolveCandidates(ctx context.Context, candidateIDs []string) ([]*domain.CandidateRecord, error) {
	if len(candidateIDs) == 0 {
		return s.candidates.List(ctx)
	}

	candidates := make([]*domain.CandidateRecord, 0, len(candidateIDs))
	for _, id := range candidateIDs {
		candidate, err := s.candidates.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

// GetMatch gets a match result by ID
func (s *ScreeningService) GetMatch(ctx context.Context, id string) (*domain.MatchResult, error) {
	return s.matches.GetByID(ctx, id)
}

// ListMatches lists match results for a job, optionally only shortlisted ones
func (s *ScreeningService) ListMatches(ctx context.Context, jobID string, shortlistedOnly bool) ([]*domain.MatchResult, error) {
	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		return nil, err
	}
	return s.matches.ListByJob(ctx, jobID, shortlistedOnly)
}

// SetShortlisted manually overrides the shortlist flag on a match.
// Promoting a match publishes the shortlisted event just like an automatic
// cut would, so downstream consumers see manual picks too.
func (s *ScreeningService) SetShortlisted(ctx context.Context, matchID string, shortlisted bool) (*domain.MatchResult, error) {
	if err := s.matches.SetShortlisted(ctx, matchID, shortlisted); err != nil {
		return nil, err
	}

	match, err := s.matches.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	if match.Shortlisted {
		job, err := s.jobs.GetByID(ctx, match.JobID)
		if err != nil {
			return nil, err
		}
		candidate, err := s.candidates.GetByID(ctx, match.CandidateID)
		if err != nil {
			return nil, err
		}
		s.publisher.PublishMatchShortlisted(ctx, match, job, candidate)
	}

	return match, nil
}
