package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/matchwise/matchwise-backend/internal/screening/domain"
	"github.com/matchwise/matchwise-backend/pkg/database"
	"github.com/matchwise/matchwise-backend/pkg/errors"
)

// matchRow is the persistence shape of a match result
type matchRow struct {
	ID               string         `db:"id"`
	CandidateID      string         `db:"candidate_id"`
	JobID            string         `db:"job_id"`
	SkillsScore      float64        `db:"skills_score"`
	ExperienceScore  float64        `db:"experience_score"`
	EducationScore   float64        `db:"education_score"`
	OverallScore     float64        `db:"overall_score"`
	MatchedSkills    pq.StringArray `db:"matched_skills"`
	MissingSkills    pq.StringArray `db:"missing_skills"`
	MatchedPreferred pq.StringArray `db:"matched_preferred"`
	LowConfidence    bool           `db:"low_confidence"`
	Shortlisted      bool           `db:"shortlisted"`
	CreatedAt        time.Time      `db:"created_at"`
}

func (r *matchRow) toDomain() *domain.MatchResult {
	return &domain.MatchResult{
		ID:               r.ID,
		CandidateID:      r.CandidateID,
		JobID:            r.JobID,
		SkillsScore:      r.SkillsScore,
		ExperienceScore:  r.ExperienceScore,
		EducationScore:   r.EducationScore,
		OverallScore:     r.OverallScore,
		MatchedSkills:    []string(r.MatchedSkills),
		MissingSkills:    []string(r.MissingSkills),
		MatchedPreferred: []string(r.MatchedPreferred),
		LowConfidence:    r.LowConfidence,
		Shortlisted:      r.Shortlisted,
		CreatedAt:        r.CreatedAt,
	}
}

// MatchRepository handles match result persistence
type MatchRepository struct {
	db *database.DB
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db *database.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// Create persists a new match result. Scoring the same (job, candidate)
// pair again replaces the previous result so re-runs stay idempotent.
func (r *MatchRepository) Create(ctx context.Context, match *domain.MatchResult) error {
	if match.ID == "" {
		match.ID = uuid.New().String()
	}

	query := `
		INSERT INTO matches (
			id, candidate_id, job_id, skills_score, experience_score,
			education_score, overall_score, matched_skills, missing_skills,
			matched_preferred, low_confidence, shortlisted
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (job_id, candidate_id) DO UPDATE SET
			skills_score = EXCLUDED.skills_score,
			experience_score = EXCLUDED.experience_score,
			education_score = EXCLUDED.education_score,
			overall_score = EXCLUDED.overall_score,
			matched_skills = EXCLUDED.matched_skills,
			missing_skills = EXCLUDED.missing_skills,
			matched_preferred = EXCLUDED.matched_preferred,
			low_confidence = EXCLUDED.low_confidence,
			shortlisted = EXCLUDED.shortlisted
		RETURNING id, created_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		match.ID, match.CandidateID, match.JobID,
		match.SkillsScore, match.ExperienceScore, match.EducationScore,
		match.OverallScore, pq.StringArray(match.MatchedSkills),
		pq.StringArray(match.MissingSkills), pq.StringArray(match.MatchedPreferred),
		match.LowConfidence, match.Shortlisted,
	).Scan(&match.ID, &match.CreatedAt)
	if err != nil {
		if appErr := database.MapPQError(err); appErr != nil {
			return appErr
		}
		return err
	}

	return nil
}

// GetByID gets a match result by ID
func (r *MatchRepository) GetByID(ctx context.Context, id string) (*domain.MatchResult, error) {
	var row matchRow
	query := `SELECT * FROM matches WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFound("match")
		}
		return nil, err
	}
	return row.toDomain(), nil
}

// ListByJob lists match results for a job, best first with ties broken by
// candidate ID so repeated listings return the same order.
func (r *MatchRepository) ListByJob(ctx context.Context, jobID string, shortlistedOnly bool) ([]*domain.MatchResult, error) {
	query := `
		SELECT * FROM matches
		WHERE job_id = $1
		ORDER BY overall_score DESC, candidate_id
	`
	args := []interface{}{jobID}
	if shortlistedOnly {
		query = `
			SELECT * FROM matches
			WHERE job_id = $1 AND shortlisted = true
			ORDER BY overall_score DESC, candidate_id
		`
	}

	var rows []matchRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	matches := make([]*domain.MatchResult, 0, len(rows))
	for i := range rows {
		matches = append(matches, rows[i].toDomain())
	}
	return matches, nil
}

// SetShortlisted overrides the shortlist flag on a match. Recruiters can
// pull a match onto or off the shortlist regardless of its score.
func (r *MatchRepository) SetShortlisted(ctx context.Context, id string, shortlisted bool) error {
	query := `UPDATE matches SET shortlisted = $2 WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id, shortlisted)
	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.NotFound("match")
	}

	return nil
}
