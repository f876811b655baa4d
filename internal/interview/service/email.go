package service

import (
	"strings"
	"text/template"

	"github.com/matchwise/matchwise-backend/internal/interview/domain"
)

const invitationTemplate = `Subject: Interview Invitation - {{.JobTitle}}

Dear {{.CandidateName}},

Thank you for your application for the {{.JobTitle}} position. After reviewing your profile we would like to invite you to an interview.

Date: {{.Date}}
Time: {{.TimeSlot}}
Format: {{.FormatLabel}}

{{.Instructions}}

Please reply to this email to confirm the slot, or let us know if you need an alternative.

Best regards,
The Recruiting Team`

var invitationTmpl = template.Must(template.New("invitation").Parse(invitationTemplate))

type invitationData struct {
	JobTitle      string
	CandidateName string
	Date          string
	TimeSlot      string
	FormatLabel   string
	Instructions  string
}

var formatLabels = map[domain.InterviewFormat]string{
	domain.FormatVideo:  "Video call",
	domain.FormatPhone:  "Phone call",
	domain.FormatOnsite: "On-site",
}

var formatInstructions = map[domain.InterviewFormat]string{
	domain.FormatVideo:  "A video call link will be sent to you ahead of the interview. Please test your camera and microphone beforehand.",
	domain.FormatPhone:  "We will call you at the phone number you provided with your application.",
	domain.FormatOnsite: "Please arrive 10 minutes early and check in at the reception. Bring a photo ID.",
}

// renderInvitation renders the invitation email for a scheduled interview
func renderInvitation(interview *domain.Interview) (string, error) {
	data := invitationData{
		JobTitle:      interview.JobTitle,
		CandidateName: interview.CandidateName,
	}
	if data.JobTitle == "" {
		data.JobTitle = "open"
	}
	if data.CandidateName == "" {
		data.CandidateName = "Candidate"
	}
	if interview.Date != nil {
		data.Date = *interview.Date
	}
	if interview.TimeSlot != nil {
		data.TimeSlot = *interview.TimeSlot
	}
	if interview.Format != nil {
		data.FormatLabel = formatLabels[*interview.Format]
		data.Instructions = formatInstructions[*interview.Format]
	}

	var b strings.Builder
	if err := invitationTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
