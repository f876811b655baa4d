package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/matchwise/matchwise-backend/internal/interview/domain"
	"github.com/matchwise/matchwise-backend/pkg/database"
	"github.com/matchwise/matchwise-backend/pkg/errors"
)

// interviewRow is the persistence shape of an interview
type interviewRow struct {
	ID            string     `db:"id"`
	MatchID       string     `db:"match_id"`
	JobID         string     `db:"job_id"`
	JobTitle      string     `db:"job_title"`
	CandidateID   string     `db:"candidate_id"`
	CandidateName string     `db:"candidate_name"`
	OverallScore  float64    `db:"overall_score"`
	Status        string     `db:"status"`
	Date          *string    `db:"date"`
	TimeSlot      *string    `db:"time_slot"`
	Format        *string    `db:"format"`
	CreatedAt     time.Time  `db:"created_at"`
	ScheduledAt   *time.Time `db:"scheduled_at"`
}

func (r *interviewRow) toDomain() *domain.Interview {
	interview := &domain.Interview{
		ID:            r.ID,
		MatchID:       r.MatchID,
		JobID:         r.JobID,
		JobTitle:      r.JobTitle,
		CandidateID:   r.CandidateID,
		CandidateName: r.CandidateName,
		OverallScore:  r.OverallScore,
		Status:        domain.InterviewStatus(r.Status),
		Date:          r.Date,
		TimeSlot:      r.TimeSlot,
		CreatedAt:     r.CreatedAt,
		ScheduledAt:   r.ScheduledAt,
	}
	if r.Format != nil {
		format := domain.InterviewFormat(*r.Format)
		interview.Format = &format
	}
	return interview
}

// InterviewRepository handles interview persistence
type InterviewRepository struct {
	db *database.DB
}

// NewInterviewRepository creates a new interview repository
func NewInterviewRepository(db *database.DB) *InterviewRepository {
	return &InterviewRepository{db: db}
}

// Create persists a pending interview. A second create for the same match
// is a no-op and reports false, which keeps event redelivery idempotent.
func (r *InterviewRepository) Create(ctx context.Context, interview *domain.Interview) (bool, error) {
	if interview.ID == "" {
		interview.ID = uuid.New().String()
	}

	query := `
		INSERT INTO interviews (
			id, match_id, job_id, job_title, candidate_id, candidate_name,
			overall_score, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (match_id) DO NOTHING
	`

	result, err := r.db.ExecContext(ctx, query,
		interview.ID, interview.MatchID, interview.JobID, interview.JobTitle,
		interview.CandidateID, interview.CandidateName, interview.OverallScore,
		string(interview.Status),
	)
	if err != nil {
		if appErr := database.MapPQError(err); appErr != nil {
			return false, appErr
		}
		return false, err
	}

	affected, _ := result.RowsAffected()
	return affected > 0, nil
}

// GetByID gets an interview by ID
func (r *InterviewRepository) GetByID(ctx context.Context, id string) (*domain.Interview, error) {
	var row interviewRow
	query := `SELECT * FROM interviews WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFound("interview")
		}
		return nil, err
	}
	return row.toDomain(), nil
}

// List lists interviews, optionally filtered by job, newest first
func (r *InterviewRepository) List(ctx context.Context, jobID string) ([]*domain.Interview, error) {
	query := `SELECT * FROM interviews ORDER BY created_at DESC, id`
	args := []interface{}{}
	if jobID != "" {
		query = `SELECT * FROM interviews WHERE job_id = $1 ORDER BY created_at DESC, id`
		args = append(args, jobID)
	}

	var rows []interviewRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	interviews := make([]*domain.Interview, 0, len(rows))
	for i := range rows {
		interviews = append(interviews, rows[i].toDomain())
	}
	return interviews, nil
}

// Schedule confirms a slot for an interview and marks it scheduled
func (r *InterviewRepository) Schedule(ctx context.Context, id, date, timeSlot string, format domain.InterviewFormat) error {
	query := `
		UPDATE interviews SET
			status = $2, date = $3, time_slot = $4, format = $5, scheduled_at = now()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		id, string(domain.StatusScheduled), date, timeSlot, string(format),
	)
	if err != nil {
		if appErr := database.MapPQError(err); appErr != nil {
			return appErr
		}
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.NotFound("interview")
	}

	return nil
}
