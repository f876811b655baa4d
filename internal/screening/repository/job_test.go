package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchwise/matchwise-backend/internal/screening/domain"
	"github.com/matchwise/matchwise-backend/internal/screening/repository"
	"github.com/matchwise/matchwise-backend/pkg/testutil"
)

var jobColumns = []string{
	"id", "title", "required_skills", "preferred_skills", "min_experience_years",
	"required_education", "responsibilities", "needs_review", "warnings",
	"raw_text", "created_at",
}

func TestJobRepository_Create(t *testing.T) {
	mockDB, db := newTestDB(t)
	defer mockDB.Close()

	repo := repository.NewJobRepository(db)

	mockDB.ExpectQuery("INSERT INTO jobs").
		WillReturnRows(testutil.MockRows("created_at").AddRow(testutil.FixedTime))

	job := &domain.JobRecord{
		Title:              "Backend Engineer",
		RequiredSkills:     []string{"docker", "python", "sql"},
		PreferredSkills:    []string{"aws"},
		MinExperienceYears: 3,
		RequiredEducation:  domain.EducationBachelor,
		RawText:            "backend engineer\nrequirements: python, sql, docker",
	}

	err := repo.Create(context.Background(), job)
	require.NoError(t, err)
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, testutil.FixedTime, job.CreatedAt)

	mockDB.ExpectationsWereMet(t)
}

func TestJobRepository_GetByID(t *testing.T) {
	mockDB, db := newTestDB(t)
	defer mockDB.Close()

	repo := repository.NewJobRepository(db)
	id := testutil.NewID()

	mockDB.ExpectQuery("SELECT * FROM jobs WHERE id = $1").
		WithArgs(id).
		WillReturnRows(testutil.MockRows(jobColumns...).AddRow(
			id, "backend engineer", "{docker,python,sql}", "{aws}", 3.0,
			"bachelor", "{}", false, "{}", "raw", testutil.FixedTime,
		))

	job, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, []string{"docker", "python", "sql"}, job.RequiredSkills)
	assert.Equal(t, domain.EducationBachelor, job.RequiredEducation)
	assert.False(t, job.NeedsReview)
}
