package events

import (
	"context"

	"github.com/matchwise/matchwise-backend/internal/screening/domain"
	"github.com/matchwise/matchwise-backend/pkg/logger"
	"github.com/matchwise/matchwise-backend/pkg/messaging"
)

// Publisher is the transport screening events are written to
type Publisher interface {
	Publish(ctx context.Context, eventType string, data interface{}) error
}

// ScreeningEventPublisher publishes screening-related events
type ScreeningEventPublisher struct {
	publisher Publisher
	logger    *logger.Logger
}

// NewScreeningEventPublisher creates a publisher bound to the screening
// events exchange
func NewScreeningEventPublisher(rmq *messaging.RabbitMQ, log *logger.Logger) (*ScreeningEventPublisher, error) {
	publisher, err := messaging.NewPublisher(rmq, messaging.ExchangeScreeningEvents, "screening-service", log)
	if err != nil {
		return nil, err
	}

	return &ScreeningEventPublisher{
		publisher: publisher,
		logger:    log,
	}, nil
}

// NewWithPublisher wires an existing transport; tests inject a mock here
func NewWithPublisher(p Publisher, log *logger.Logger) *ScreeningEventPublisher {
	return &ScreeningEventPublisher{publisher: p, logger: log}
}

// PublishCandidateCreated publishes a candidate created event
func (p *ScreeningEventPublisher) PublishCandidateCreated(ctx context.Context, candidate *domain.CandidateRecord) {
	data := messaging.CandidateCreatedEvent{
		CandidateID:   candidate.ID,
		Name:          candidate.Name,
		Skills:        candidate.Skills,
		LowConfidence: candidate.LowConfidence,
	}

	if err := p.publisher.Publish(ctx, messaging.EventCandidateCreated, data); err != nil {
		p.logger.Error().Err(err).Str("candidate_id", candidate.ID).Msg("failed to publish candidate created event")
	}
}

// PublishJobCreated publishes a job created event, plus a review needed
// event when extraction found too little signal to score against
func (p *ScreeningEventPublisher) PublishJobCreated(ctx context.Context, job *domain.JobRecord) {
	data := messaging.JobCreatedEvent{
		JobID:       job.ID,
		Title:       job.Title,
		Skills:      job.RequiredSkills,
		NeedsReview: job.NeedsReview,
	}

	if err := p.publisher.Publish(ctx, messaging.EventJobCreated, data); err != nil {
		p.logger.Error().Err(err).Str("job_id", job.ID).Msg("failed to publish job created event")
	}

	if job.NeedsReview {
		if err := p.publisher.Publish(ctx, messaging.EventJobReviewNeeded, data); err != nil {
			p.logger.Error().Err(err).Str("job_id", job.ID).Msg("failed to publish job review needed event")
		}
	}
}

// PublishMatchCompleted publishes a match completed event
func (p *ScreeningEventPublisher) PublishMatchCompleted(ctx context.Context, match *domain.MatchResult) {
	data := messaging.MatchCompletedEvent{
		MatchID:      match.ID,
		JobID:        match.JobID,
		CandidateID:  match.CandidateID,
		OverallScore: match.OverallScore,
		Shortlisted:  match.Shortlisted,
	}

	if err := p.publisher.Publish(ctx, messaging.EventMatchCompleted, data); err != nil {
		p.logger.Error().Err(err).Str("match_id", match.ID).Msg("failed to publish match completed event")
	}
}

// PublishMatchShortlisted publishes a match shortlisted event. The interview
// service consumes this to open a pending interview.
func (p *ScreeningEventPublisher) PublishMatchShortlisted(ctx context.Context, match *domain.MatchResult, job *domain.JobRecord, candidate *domain.CandidateRecord) {
	data := messaging.MatchShortlistedEvent{
		MatchID:       match.ID,
		JobID:         job.ID,
		JobTitle:      job.Title,
		CandidateID:   candidate.ID,
		CandidateName: candidate.Name,
		OverallScore:  match.OverallScore,
	}

	if err := p.publisher.Publish(ctx, messaging.EventMatchShortlisted, data); err != nil {
		p.logger.Error().Err(err).Str("match_id", match.ID).Msg("failed to publish match shortlisted event")
	}
}
