package events

import (
	"context"

	"github.com/matchwise/matchwise-backend/internal/interview/domain"
	"github.com/matchwise/matchwise-backend/pkg/logger"
	"github.com/matchwise/matchwise-backend/pkg/messaging"
)

// Publisher is the transport interview events are written to
type Publisher interface {
	Publish(ctx context.Context, eventType string, data interface{}) error
}

// InterviewEventPublisher publishes interview-related events
type InterviewEventPublisher struct {
	publisher Publisher
	logger    *logger.Logger
}

// NewInterviewEventPublisher creates a publisher bound to the interview
// events exchange
func NewInterviewEventPublisher(rmq *messaging.RabbitMQ, log *logger.Logger) (*InterviewEventPublisher, error) {
	publisher, err := messaging.NewPublisher(rmq, messaging.ExchangeInterviewEvents, "interview-service", log)
	if err != nil {
		return nil, err
	}

	return &InterviewEventPublisher{
		publisher: publisher,
		logger:    log,
	}, nil
}

// NewWithPublisher wires an existing transport; tests inject a mock here
func NewWithPublisher(p Publisher, log *logger.Logger) *InterviewEventPublisher {
	return &InterviewEventPublisher{publisher: p, logger: log}
}

// PublishInterviewCreated publishes an interview created event
func (p *InterviewEventPublisher) PublishInterviewCreated(ctx context.Context, interview *domain.Interview) {
	data := messaging.InterviewCreatedEvent{
		InterviewID: interview.ID,
		MatchID:     interview.MatchID,
		JobID:       interview.JobID,
		CandidateID: interview.CandidateID,
	}

	if err := p.publisher.Publish(ctx, messaging.EventInterviewCreated, data); err != nil {
		p.logger.Error().Err(err).Str("interview_id", interview.ID).Msg("failed to publish interview created event")
	}
}

// PublishInterviewScheduled publishes an interview scheduled event
func (p *InterviewEventPublisher) PublishInterviewScheduled(ctx context.Context, interview *domain.Interview) {
	data := messaging.InterviewScheduledEvent{
		InterviewID: interview.ID,
		MatchID:     interview.MatchID,
		JobID:       interview.JobID,
		CandidateID: interview.CandidateID,
	}
	if interview.Date != nil {
		data.Date = *interview.Date
	}
	if interview.TimeSlot != nil {
		data.TimeSlot = *interview.TimeSlot
	}
	if interview.Format != nil {
		data.Format = string(*interview.Format)
	}

	if err := p.publisher.Publish(ctx, messaging.EventInterviewScheduled, data); err != nil {
		p.logger.Error().Err(err).Str("interview_id", interview.ID).Msg("failed to publish interview scheduled event")
	}
}
