package domain

import "time"

// InterviewFormat is how the interview is conducted
type InterviewFormat string

const (
	FormatVideo  InterviewFormat = "video"
	FormatPhone  InterviewFormat = "phone"
	FormatOnsite InterviewFormat = "onsite"
)

// Valid reports whether the format is one of the supported values
func (f InterviewFormat) Valid() bool {
	switch f {
	case FormatVideo, FormatPhone, FormatOnsite:
		return true
	}
	return false
}

// InterviewStatus is the lifecycle state of an interview
type InterviewStatus string

const (
	// StatusPending means the match was shortlisted but no slot is booked
	StatusPending InterviewStatus = "pending"
	// StatusScheduled means date, time slot and format are confirmed
	StatusScheduled InterviewStatus = "scheduled"
)

// Interview tracks one shortlisted match through scheduling. Job title and
// candidate name are denormalized from the shortlist event so the interview
// service can render invitations without calling back into screening.
type Interview struct {
	ID            string           `json:"id"`
	MatchID       string           `json:"match_id"`
	JobID         string           `json:"job_id"`
	JobTitle      string           `json:"job_title"`
	CandidateID   string           `json:"candidate_id"`
	CandidateName string           `json:"candidate_name"`
	OverallScore  float64          `json:"overall_score"`
	Status        InterviewStatus  `json:"status"`
	Date          *string          `json:"date,omitempty"`
	TimeSlot      *string          `json:"time_slot,omitempty"`
	Format        *InterviewFormat `json:"format,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	ScheduledAt   *time.Time       `json:"scheduled_at,omitempty"`
}

// Scheduled reports whether the interview has a confirmed slot
func (i *Interview) Scheduled() bool {
	return i.Status == StatusScheduled
}
