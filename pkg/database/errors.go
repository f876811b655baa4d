package database

import (
	"strings"

	"github.com/lib/pq"
	"github.com/matchwise/matchwise-backend/pkg/errors"
)

// MapPQError converts a PostgreSQL error to an AppError with meaningful messages.
// Returns nil if the error is not a pq.Error.
func MapPQError(err error) *errors.AppError {
	pqErr, ok := err.(*pq.Error)
	if !ok {
		return nil
	}

	switch pqErr.Code {
	// Check constraint violation (23514)
	case "23514":
		return mapCheckConstraint(pqErr)

	// Unique constraint violation (23505)
	case "23505":
		return errors.Conflict(formatConstraintMessage(pqErr))

	// Foreign key violation (23503)
	case "23503":
		return errors.BadRequest("referenced record does not exist")

	// Not null violation (23502)
	case "23502":
		col := pqErr.Column
		if col == "" {
			col = "required field"
		}
		return errors.Validation(map[string]string{
			col: "must not be empty",
		})

	default:
		return nil
	}
}

// mapCheckConstraint maps specific CHECK constraint names to user-friendly messages.
func mapCheckConstraint(pqErr *pq.Error) *errors.AppError {
	constraint := pqErr.Constraint

	switch {
	case strings.Contains(constraint, "score_range"):
		return errors.Validation(map[string]string{
			"score": "must be between 0 and 100",
		})

	case strings.Contains(constraint, "education_level_valid"):
		return errors.Validation(map[string]string{
			"education_level": "must be one of: none, highschool, associate, bachelor, master, doctorate",
		})

	case strings.Contains(constraint, "experience_non_negative"):
		return errors.Validation(map[string]string{
			"experience_years": "must not be negative",
		})

	case strings.Contains(constraint, "interview_format_valid"):
		return errors.Validation(map[string]string{
			"format": "must be one of: video, phone, onsite",
		})

	default:
		return errors.BadRequest("data validation failed: " + constraint)
	}
}

// formatConstraintMessage creates a user-friendly message for unique constraint violations.
func formatConstraintMessage(pqErr *pq.Error) string {
	constraint := pqErr.Constraint

	switch {
	case strings.Contains(constraint, "matches_job_candidate"):
		return "a match for this job and candidate already exists"
	case strings.Contains(constraint, "interviews_match"):
		return "an interview for this match already exists"
	default:
		return "a record with these values already exists"
	}
}
