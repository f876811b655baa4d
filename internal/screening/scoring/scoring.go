package scoring

import (
	"sort"

	"github.com/matchwise/matchwise-backend/internal/screening/domain"
	"github.com/matchwise/matchwise-backend/pkg/config"
)

// Engine scores candidates against jobs. It is a pure computation over two
// records and the configured policy: no clock, no randomness, no I/O, so
// the same inputs always produce the same result.
type Engine struct {
	weights        config.ScoringWeights
	preferredBonus float64
	stepPenalty    float64
}

// NewEngine creates a scoring engine from the screening policy configuration
func NewEngine(cfg *config.ScreeningConfig) *Engine {
	return &Engine{
		weights:        cfg.Weights,
		preferredBonus: cfg.PreferredBonus,
		stepPenalty:    cfg.EducationStepPenalty,
	}
}

// Score evaluates one candidate against one job. All sub-scores and the
// overall score are in [0, 100]. ID and CreatedAt are left for the caller;
// persistence metadata is not part of the scoring computation.
func (e *Engine) Score(candidate *domain.CandidateRecord, job *domain.JobRecord) *domain.MatchResult {
	result := &domain.MatchResult{
		CandidateID:   candidate.ID,
		JobID:         job.ID,
		LowConfidence: candidate.LowConfidence,
	}

	e.scoreSkills(candidate, job, result)
	result.ExperienceScore = scoreExperience(candidate.ExperienceYears, job.MinExperienceYears)
	result.EducationScore = e.scoreEducation(candidate.EducationLevel, job.RequiredEducation)

	result.OverallScore = clampScore(
		e.weights.Skills*result.SkillsScore +
			e.weights.Experience*result.ExperienceScore +
			e.weights.Education*result.EducationScore,
	)

	return result
}

// scoreSkills computes required-skill coverage plus a capped bonus for
// preferred skills. A job without required skills cannot be meaningfully
// scored on skills: coverage defaults to full but the result is flagged
// low-confidence.
func (e *Engine) scoreSkills(candidate *domain.CandidateRecord, job *domain.JobRecord, result *domain.MatchResult) {
	matched := make([]string, 0)
	missing := make([]string, 0)
	for _, skill := range job.RequiredSkills {
		if candidate.HasSkill(skill) {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)
	result.MatchedSkills = matched
	result.MissingSkills = missing

	if len(job.RequiredSkills) == 0 {
		result.SkillsScore = 100
		result.LowConfidence = true
		return
	}

	score := 100 * float64(len(matched)) / float64(len(job.RequiredSkills))

	if len(job.PreferredSkills) > 0 {
		matchedPreferred := make([]string, 0)
		for _, skill := range job.PreferredSkills {
			if candidate.HasSkill(skill) {
				matchedPreferred = append(matchedPreferred, skill)
			}
		}
		sort.Strings(matchedPreferred)
		result.MatchedPreferred = matchedPreferred
		score += e.preferredBonus * float64(len(matchedPreferred)) / float64(len(job.PreferredSkills))
	}

	result.SkillsScore = clampScore(score)
}

// scoreExperience is full credit at or above the floor, proportional below
// it. No floor means experience cannot disqualify anyone.
func scoreExperience(candidateYears, minYears float64) float64 {
	if minYears <= 0 {
		return 100
	}
	if candidateYears >= minYears {
		return 100
	}
	return clampScore(100 * candidateYears / minYears)
}

// scoreEducation is full credit at or above the required level, with a
// fixed penalty per ordinal step below it.
func (e *Engine) scoreEducation(candidate, required domain.EducationLevel) float64 {
	if candidate.AtLeast(required) {
		return 100
	}
	steps := float64(required.Rank() - candidate.Rank())
	return clampScore(100 - e.stepPenalty*steps)
}

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// ShouldShortlist applies the strict shortlist cut: a score exactly at the
// threshold does not make the list.
func ShouldShortlist(result *domain.MatchResult, threshold float64) bool {
	return result.OverallScore > threshold
}
