package messaging

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types
const (
	// Screening events
	EventCandidateCreated = "screening.candidate.created"
	EventJobCreated       = "screening.job.created"
	EventJobReviewNeeded  = "screening.job.review_needed"
	EventMatchCompleted   = "screening.match.completed"
	EventMatchShortlisted = "screening.match.shortlisted"

	// Interview events
	EventInterviewCreated   = "interview.created"
	EventInterviewScheduled = "interview.scheduled"
)

// Exchange names
const (
	ExchangeScreeningEvents = "screening.events"
	ExchangeInterviewEvents = "interview.events"
)

// Event is the base event structure
type Event struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Source        string          `json:"source"`
	Timestamp     time.Time       `json:"timestamp"`
	CorrelationID string          `json:"correlation_id"`
	Data          json.RawMessage `json:"data"`
}

// NewEvent creates a new event with the given type and data
func NewEvent(eventType, source, correlationID string, data interface{}) (*Event, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:            GenerateEventID(),
		Type:          eventType,
		Source:        source,
		Timestamp:     time.Now().UTC(),
		CorrelationID: correlationID,
		Data:          dataBytes,
	}, nil
}

// UnmarshalData unmarshals the event data into the provided struct
func (e *Event) UnmarshalData(v interface{}) error {
	return json.Unmarshal(e.Data, v)
}

// Screening events

// CandidateCreatedEvent is published when a CV has been ingested
type CandidateCreatedEvent struct {
	CandidateID   string   `json:"candidate_id"`
	Name          string   `json:"name"`
	Skills        []string `json:"skills"`
	LowConfidence bool     `json:"low_confidence"`
}

// JobCreatedEvent is published when a job posting has been ingested
type JobCreatedEvent struct {
	JobID       string   `json:"job_id"`
	Title       string   `json:"title"`
	Skills      []string `json:"required_skills"`
	NeedsReview bool     `json:"needs_review"`
}

// MatchCompletedEvent is published for every scored (candidate, job) pair
type MatchCompletedEvent struct {
	MatchID      string  `json:"match_id"`
	JobID        string  `json:"job_id"`
	CandidateID  string  `json:"candidate_id"`
	OverallScore float64 `json:"overall_score"`
	Shortlisted  bool    `json:"shortlisted"`
}

// MatchShortlistedEvent is published when a match crosses the shortlist
// threshold. The interview service consumes it to open a pending interview.
type MatchShortlistedEvent struct {
	MatchID       string  `json:"match_id"`
	JobID         string  `json:"job_id"`
	JobTitle      string  `json:"job_title"`
	CandidateID   string  `json:"candidate_id"`
	CandidateName string  `json:"candidate_name"`
	OverallScore  float64 `json:"overall_score"`
}

// Interview events

// InterviewCreatedEvent is published when a shortlisted match opens a
// pending interview
type InterviewCreatedEvent struct {
	InterviewID string `json:"interview_id"`
	MatchID     string `json:"match_id"`
	JobID       string `json:"job_id"`
	CandidateID string `json:"candidate_id"`
}

// InterviewScheduledEvent is published when an interview slot is confirmed
type InterviewScheduledEvent struct {
	InterviewID string `json:"interview_id"`
	MatchID     string `json:"match_id"`
	JobID       string `json:"job_id"`
	CandidateID string `json:"candidate_id"`
	Date        string `json:"date"`
	TimeSlot    string `json:"time_slot"`
	Format      string `json:"format"`
}

// GenerateEventID generates a unique event ID
func GenerateEventID() string {
	return uuid.New().String()
}
