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

// jobRow is the persistence shape of a job record
type jobRow struct {
	ID                 string         `db:"id"`
	Title              string         `db:"title"`
	RequiredSkills     pq.StringArray `db:"required_skills"`
	PreferredSkills    pq.StringArray `db:"preferred_skills"`
	MinExperienceYears float64        `db:"min_experience_years"`
	RequiredEducation  string         `db:"required_education"`
	Responsibilities   pq.StringArray `db:"responsibilities"`
	NeedsReview        bool           `db:"needs_review"`
	Warnings           pq.StringArray `db:"warnings"`
	RawText            string         `db:"raw_text"`
	CreatedAt          time.Time      `db:"created_at"`
}

func (r *jobRow) toDomain() *domain.JobRecord {
	return &domain.JobRecord{
		ID:                 r.ID,
		Title:              r.Title,
		RequiredSkills:     []string(r.RequiredSkills),
		PreferredSkills:    []string(r.PreferredSkills),
		MinExperienceYears: r.MinExperienceYears,
		RequiredEducation:  domain.EducationLevel(r.RequiredEducation),
		Responsibilities:   []string(r.Responsibilities),
		NeedsReview:        r.NeedsReview,
		Warnings:           []string(r.Warnings),
		RawText:            r.RawText,
		CreatedAt:          r.CreatedAt,
	}
}

// JobRepository handles job record persistence
type JobRepository struct {
	db *database.DB
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *database.DB) *JobRepository {
	return &JobRepository{db: db}
}

// Create persists a new job record and fills in ID and CreatedAt
func (r *JobRepository) Create(ctx context.Context, job *domain.JobRecord) error {
	if job.ID == "" {
		job.ID = uuid.New().String()
	}

	query := `
		INSERT INTO jobs (
			id, title, required_skills, preferred_skills, min_experience_years,
			required_education, responsibilities, needs_review, warnings, raw_text
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		job.ID, job.Title, pq.StringArray(job.RequiredSkills),
		pq.StringArray(job.PreferredSkills), job.MinExperienceYears,
		string(job.RequiredEducation), pq.StringArray(job.Responsibilities),
		job.NeedsReview, pq.StringArray(job.Warnings), job.RawText,
	).Scan(&job.CreatedAt)
	if err != nil {
		if appErr := database.MapPQError(err); appErr != nil {
			return appErr
		}
		return err
	}

	return nil
}

// GetByID gets a job record by ID
func (r *JobRepository) GetByID(ctx context.Context, id string) (*domain.JobRecord, error) {
	var row jobRow
	query := `SELECT * FROM jobs WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFound("job")
		}
		return nil, err
	}
	return row.toDomain(), nil
}

// List lists all job records, newest first
func (r *JobRepository) List(ctx context.Context) ([]*domain.JobRecord, error) {
	var rows []jobRow
	query := `SELECT * FROM jobs ORDER BY created_at DESC, id`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	jobs := make([]*domain.JobRecord, 0, len(rows))
	for i := range rows {
		jobs = append(jobs, rows[i].toDomain())
	}
	return jobs, nil
}
