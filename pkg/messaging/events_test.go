package messaging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchwise/matchwise-backend/pkg/messaging"
)

func TestNewEvent_RoundTripsPayload(t *testing.T) {
	payload := messaging.MatchShortlistedEvent{
		MatchID:       "match-1",
		JobID:         "job-1",
		JobTitle:      "Backend Engineer",
		CandidateID:   "cand-1",
		CandidateName: "Jane Smith",
		OverallScore:  83.3,
	}

	event, err := messaging.NewEvent(messaging.EventMatchShortlisted, "screening-service", "corr-1", payload)
	require.NoError(t, err)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, messaging.EventMatchShortlisted, event.Type)
	assert.Equal(t, "screening-service", event.Source)
	assert.Equal(t, "corr-1", event.CorrelationID)
	assert.False(t, event.Timestamp.IsZero())

	var decoded messaging.MatchShortlistedEvent
	require.NoError(t, event.UnmarshalData(&decoded))
	assert.Equal(t, payload, decoded)
}

func TestGenerateEventID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := messaging.GenerateEventID()
		assert.False(t, seen[id])
		seen[id] = true
	}
}
