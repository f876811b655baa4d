package domain

import (
	"sort"
	"time"
)

// EducationLevel is an ordinal education scale. Levels are comparable via
// Rank so "at least a bachelor" style requirements can be evaluated.
type EducationLevel string

const (
	EducationNone       EducationLevel = "none"
	EducationHighschool EducationLevel = "highschool"
	EducationAssociate  EducationLevel = "associate"
	EducationBachelor   EducationLevel = "bachelor"
	EducationMaster     EducationLevel = "master"
	EducationDoctorate  EducationLevel = "doctorate"
)

var educationRanks = map[EducationLevel]int{
	EducationNone:       0,
	EducationHighschool: 1,
	EducationAssociate:  2,
	EducationBachelor:   3,
	EducationMaster:     4,
	EducationDoctorate:  5,
}

// Rank returns the ordinal position of the level. Unknown levels rank as none.
func (l EducationLevel) Rank() int {
	return educationRanks[l]
}

// Valid reports whether the level is one of the known ordinal values.
func (l EducationLevel) Valid() bool {
	_, ok := educationRanks[l]
	return ok
}

// AtLeast reports whether the level satisfies the given minimum requirement.
func (l EducationLevel) AtLeast(min EducationLevel) bool {
	return l.Rank() >= min.Rank()
}

// CandidateRecord is the structured result of extracting a CV. Records are
// immutable once created; a re-upload produces a new record version.
type CandidateRecord struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Email           *string        `json:"email,omitempty"`
	Phone           *string        `json:"phone,omitempty"`
	Skills          []string       `json:"skills"`
	ExperienceYears float64        `json:"experience_years"`
	EducationLevel  EducationLevel `json:"education_level"`
	LowConfidence   bool           `json:"low_confidence"`
	Warnings        []string       `json:"warnings,omitempty"`
	RawText         string         `json:"raw_text"`
	CreatedAt       time.Time      `json:"created_at"`
}

// HasSkill reports whether the candidate has the given canonical skill.
func (c *CandidateRecord) HasSkill(skill string) bool {
	for _, s := range c.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

// JobRecord is the structured result of extracting a job posting.
type JobRecord struct {
	ID                 string         `json:"id"`
	Title              string         `json:"title"`
	RequiredSkills     []string       `json:"required_skills"`
	PreferredSkills    []string       `json:"preferred_skills,omitempty"`
	MinExperienceYears float64        `json:"min_experience_years"`
	RequiredEducation  EducationLevel `json:"required_education"`
	Responsibilities   []string       `json:"responsibilities,omitempty"`
	NeedsReview        bool           `json:"needs_review"`
	Warnings           []string       `json:"warnings,omitempty"`
	RawText            string         `json:"raw_text"`
	CreatedAt          time.Time      `json:"created_at"`
}

// Matchable reports whether the job carries enough extracted signal to be
// meaningfully scored. A job with no required skills needs manual review.
func (j *JobRecord) Matchable() bool {
	return len(j.RequiredSkills) > 0
}

// MatchResult is the outcome of scoring one candidate against one job.
// All four score fields are in [0, 100]. Results are never mutated after
// creation except for the manual shortlist override.
type MatchResult struct {
	ID               string    `json:"id"`
	CandidateID      string    `json:"candidate_id"`
	JobID            string    `json:"job_id"`
	SkillsScore      float64   `json:"skills_score"`
	ExperienceScore  float64   `json:"experience_score"`
	EducationScore   float64   `json:"education_score"`
	OverallScore     float64   `json:"overall_score"`
	MatchedSkills    []string  `json:"matched_skills"`
	MissingSkills    []string  `json:"missing_skills"`
	MatchedPreferred []string  `json:"matched_preferred,omitempty"`
	LowConfidence    bool      `json:"low_confidence"`
	Shortlisted      bool      `json:"shortlisted"`
	CreatedAt        time.Time `json:"created_at"`
}

// SortResults orders match results for display: overall score descending,
// ties broken by candidate ID ascending so batch output is deterministic.
func SortResults(results []*MatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].OverallScore != results[j].OverallScore {
			return results[i].OverallScore > results[j].OverallScore
		}
		return results[i].CandidateID < results[j].CandidateID
	})
}
