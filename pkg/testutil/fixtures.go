package testutil

import (
	"time"

	"github.com/google/uuid"
)

// Fixed reference time for deterministic fixtures
var FixedTime = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

// SampleCV is a realistic CV text covering contact details, an experience
// statement, skills and an education section.
const SampleCV = `Jane Smith
jane.smith@example.com | +1 (415) 555-0132

Senior Backend Engineer with 5+ years of experience building
distributed systems in Python and Go.

Skills: Python, SQL, Docker, AWS, PostgreSQL

Education
B.Sc. Computer Science, State University, 2014-2018
`

// SampleCVMinimal has no recognizable experience or education signal
const SampleCVMinimal = `John Doe
Enthusiastic team player.
`

// SampleJob is a realistic job posting with required and preferred sections
const SampleJob = `Backend Engineer

We are hiring a Backend Engineer for our platform team.

Requirements:
- At least 3 years of experience in backend development
- Bachelor degree in Computer Science or related field
- Must have strong Python and SQL skills
- Docker required

Nice to have:
- Kubernetes
- AWS

Responsibilities:
- Design and build REST APIs
- Own service reliability and deployments
`

// SampleJobSparse has no skill mentions at all, so extraction flags it
const SampleJobSparse = `Team Lead

Looking for a motivated team lead to join our office.
`

// FixtureVocabulary is a small skill vocabulary for tests. Keys are
// canonical skill names, values are additional aliases.
func FixtureVocabulary() map[string][]string {
	return map[string][]string{
		"python":     {"py"},
		"go":         {"golang"},
		"sql":        {"postgresql", "postgres", "mysql"},
		"docker":     {},
		"kubernetes": {"k8s"},
		"aws":        {"amazon web services"},
		"javascript": {"js", "node.js", "nodejs"},
		"c++":        {"cpp"},
	}
}

// NewID returns a fresh UUID string for fixtures
func NewID() string {
	return uuid.New().String()
}

// StringPtr returns a pointer to the given string
func StringPtr(s string) *string {
	return &s
}
