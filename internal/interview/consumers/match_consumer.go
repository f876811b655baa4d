package consumers

import (
	"context"

	"github.com/matchwise/matchwise-backend/internal/interview/service"
	"github.com/matchwise/matchwise-backend/pkg/logger"
	"github.com/matchwise/matchwise-backend/pkg/messaging"
)

// MatchEventConsumer consumes match events from the screening service
type MatchEventConsumer struct {
	consumer         *messaging.Consumer
	interviewService *service.InterviewService
	logger           *logger.Logger
}

// NewMatchEventConsumer creates a new match event consumer
func NewMatchEventConsumer(
	rmq *messaging.RabbitMQ,
	interviewService *service.InterviewService,
	log *logger.Logger,
) (*MatchEventConsumer, error) {
	consumer, err := messaging.NewConsumer(rmq, "interview-service.match-events", log)
	if err != nil {
		return nil, err
	}

	if err := consumer.Subscribe(messaging.ExchangeScreeningEvents, "screening.match.#"); err != nil {
		return nil, err
	}

	c := &MatchEventConsumer{
		consumer:         consumer,
		interviewService: interviewService,
		logger:           log,
	}

	consumer.RegisterHandler(messaging.EventMatchShortlisted, c.handleMatchShortlisted)

	return c, nil
}

// Start starts consuming messages
func (c *MatchEventConsumer) Start(ctx context.Context) error {
	return c.consumer.Start(ctx)
}

func (c *MatchEventConsumer) handleMatchShortlisted(ctx context.Context, event *messaging.Event) error {
	var data messaging.MatchShortlistedEvent
	if err := event.UnmarshalData(&data); err != nil {
		return err
	}

	c.logger.Info().
		Str("match_id", data.MatchID).
		Str("candidate_id", data.CandidateID).
		Float64("overall_score", data.OverallScore).
		Msg("received match shortlisted event")

	return c.interviewService.OpenFromShortlist(ctx, &data)
}
