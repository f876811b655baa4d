package service

import (
	"context"
	"time"

	"github.com/matchwise/matchwise-backend/internal/interview/domain"
	"github.com/matchwise/matchwise-backend/pkg/errors"
	"github.com/matchwise/matchwise-backend/pkg/logger"
	"github.com/matchwise/matchwise-backend/pkg/messaging"
)

// InterviewStore is the interview persistence the service depends on
type InterviewStore interface {
	Create(ctx context.Context, interview *domain.Interview) (bool, error)
	GetByID(ctx context.Context, id string) (*domain.Interview, error)
	List(ctx context.Context, jobID string) ([]*domain.Interview, error)
	Schedule(ctx context.Context, id, date, timeSlot string, format domain.InterviewFormat) error
}

// EventPublisher publishes interview lifecycle events
type EventPublisher interface {
	PublishInterviewCreated(ctx context.Context, interview *domain.Interview)
	PublishInterviewScheduled(ctx context.Context, interview *domain.Interview)
}

// InterviewService manages interviews for shortlisted matches: opening them
// from shortlist events, booking slots and rendering invitation emails.
type InterviewService struct {
	interviews InterviewStore
	publisher  EventPublisher
	logger     *logger.Logger
}

// NewInterviewService creates a new interview service
func NewInterviewService(interviews InterviewStore, publisher EventPublisher, log *logger.Logger) *InterviewService {
	return &InterviewService{
		interviews: interviews,
		publisher:  publisher,
		logger:     log,
	}
}

// OpenFromShortlist opens a pending interview for a shortlisted match.
// Redelivered events are absorbed: one match gets at most one interview.
func (s *InterviewService) OpenFromShortlist(ctx context.Context, data *messaging.MatchShortlistedEvent) error {
	interview := &domain.Interview{
		MatchID:       data.MatchID,
		JobID:         data.JobID,
		JobTitle:      data.JobTitle,
		CandidateID:   data.CandidateID,
		CandidateName: data.CandidateName,
		OverallScore:  data.OverallScore,
		Status:        domain.StatusPending,
	}

	created, err := s.interviews.Create(ctx, interview)
	if err != nil {
		return err
	}
	if !created {
		s.logger.Debug().
			Str("match_id", data.MatchID).
			Msg("interview already exists for match, skipping")
		return nil
	}

	s.logger.Info().
		Str("interview_id", interview.ID).
		Str("match_id", data.MatchID).
		Str("candidate_id", data.CandidateID).
		Msg("interview opened for shortlisted match")

	s.publisher.PublishInterviewCreated(ctx, interview)

	return nil
}

// GetInterview gets an interview by ID
func (s *InterviewService) GetInterview(ctx context.Context, id string) (*domain.Interview, error) {
	return s.interviews.GetByID(ctx, id)
}

// ListInterviews lists interviews, optionally filtered by job
func (s *InterviewService) ListInterviews(ctx context.Context, jobID string) ([]*domain.Interview, error) {
	return s.interviews.List(ctx, jobID)
}

// Schedule books a slot for an interview and marks it scheduled
func (s *InterviewService) Schedule(ctx context.Context, id, date, timeSlot string, format domain.InterviewFormat) (*domain.Interview, error) {
	if !format.Valid() {
		return nil, errors.BadRequest("format must be one of: video, phone, onsite")
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, errors.BadRequest("invalid date format, expected YYYY-MM-DD")
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if day.Before(today) {
		return nil, errors.BadRequest("interview date must not be in the past")
	}

	if err := s.interviews.Schedule(ctx, id, date, timeSlot, format); err != nil {
		return nil, err
	}

	interview, err := s.interviews.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("interview_id", id).
		Str("date", date).
		Str("time_slot", timeSlot).
		Str("format", string(format)).
		Msg("interview scheduled")

	s.publisher.PublishInterviewScheduled(ctx, interview)

	return interview, nil
}

// RenderEmail renders the invitation email for a scheduled interview
func (s *InterviewService) RenderEmail(ctx context.Context, id string) (string, error) {
	interview, err := s.interviews.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	if !interview.Scheduled() {
		return "", errors.BadRequest("interview has no confirmed slot yet")
	}

	return renderInvitation(interview)
}
