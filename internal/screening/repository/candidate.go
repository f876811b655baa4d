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

// candidateRow is the persistence shape of a candidate record
type candidateRow struct {
	ID              string         `db:"id"`
	Name            string         `db:"name"`
	Email           *string        `db:"email"`
	Phone           *string        `db:"phone"`
	Skills          pq.StringArray `db:"skills"`
	ExperienceYears float64        `db:"experience_years"`
	EducationLevel  string         `db:"education_level"`
	LowConfidence   bool           `db:"low_confidence"`
	Warnings        pq.StringArray `db:"warnings"`
	RawText         string         `db:"raw_text"`
	CreatedAt       time.Time      `db:"created_at"`
}

func (r *candidateRow) toDomain() *domain.CandidateRecord {
	return &domain.CandidateRecord{
		ID:              r.ID,
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Skills:          []string(r.Skills),
		ExperienceYears: r.ExperienceYears,
		EducationLevel:  domain.EducationLevel(r.EducationLevel),
		LowConfidence:   r.LowConfidence,
		Warnings:        []string(r.Warnings),
		RawText:         r.RawText,
		CreatedAt:       r.CreatedAt,
	}
}

// CandidateRepository handles candidate record persistence
type CandidateRepository struct {
	db *database.DB
}

// NewCandidateRepository creates a new candidate repository
func NewCandidateRepository(db *database.DB) *CandidateRepository {
	return &CandidateRepository{db: db}
}

// Create persists a new candidate record and fills in ID and CreatedAt
func (r *CandidateRepository) Create(ctx context.Context, candidate *domain.CandidateRecord) error {
	if candidate.ID == "" {
		candidate.ID = uuid.New().String()
	}

	query := `
		INSERT INTO candidates (
			id, name, email, phone, skills, experience_years,
			education_level, low_confidence, warnings, raw_text
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		candidate.ID, candidate.Name, candidate.Email, candidate.Phone,
		pq.StringArray(candidate.Skills), candidate.ExperienceYears,
		string(candidate.EducationLevel), candidate.LowConfidence,
		pq.StringArray(candidate.Warnings), candidate.RawText,
	).Scan(&candidate.CreatedAt)
	if err != nil {
		if appErr := database.MapPQError(err); appErr != nil {
			return appErr
		}
		return err
	}

	return nil
}

// GetByID gets a candidate record by ID
func (r *CandidateRepository) GetByID(ctx context.Context, id string) (*domain.CandidateRecord, error) {
	var row candidateRow
	query := `SELECT * FROM candidates WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFound("candidate")
		}
		return nil, err
	}
	return row.toDomain(), nil
}

// List lists all candidate records, newest first
func (r *CandidateRepository) List(ctx context.Context) ([]*domain.CandidateRecord, error) {
	var rows []candidateRow
	query := `SELECT * FROM candidates ORDER BY created_at DESC, id`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	candidates := make([]*domain.CandidateRecord, 0, len(rows))
	for i := range rows {
		candidates = append(candidates, rows[i].toDomain())
	}
	return candidates, nil
}
