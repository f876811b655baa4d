package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchwise/matchwise-backend/internal/screening/domain"
	"github.com/matchwise/matchwise-backend/internal/screening/repository"
	"github.com/matchwise/matchwise-backend/pkg/database"
	"github.com/matchwise/matchwise-backend/pkg/errors"
	"github.com/matchwise/matchwise-backend/pkg/logger"
	"github.com/matchwise/matchwise-backend/pkg/testutil"
)

func newTestDB(t *testing.T) (*testutil.MockDB, *database.DB) {
	t.Helper()
	mockDB := testutil.NewMockDB(t)
	log := logger.New("repository-test", "development")
	return mockDB, database.NewFromSqlx(mockDB.DB, log)
}

var candidateColumns = []string{
	"id", "name", "email", "phone", "skills", "experience_years",
	"education_level", "low_confidence", "warnings", "raw_text", "created_at",
}

func TestCandidateRepository_Create(t *testing.T) {
	mockDB, db := newTestDB(t)
	defer mockDB.Close()

	repo := repository.NewCandidateRepository(db)

	mockDB.ExpectQuery("INSERT INTO candidates").
		WillReturnRows(testutil.MockRows("created_at").AddRow(testutil.FixedTime))

	candidate := &domain.CandidateRecord{
		Name:            "Jane Smith",
		Email:           testutil.StringPtr("jane.smith@example.com"),
		Skills:          []string{"python", "sql"},
		ExperienceYears: 5,
		EducationLevel:  domain.EducationBachelor,
		RawText:         "jane smith\npython and sql",
	}

	err := repo.Create(context.Background(), candidate)
	require.NoError(t, err)
	assert.NotEmpty(t, candidate.ID)
	assert.Equal(t, testutil.FixedTime, candidate.CreatedAt)

	mockDB.ExpectationsWereMet(t)
}

func TestCandidateRepository_GetByID(t *testing.T) {
	mockDB, db := newTestDB(t)
	defer mockDB.Close()

	repo := repository.NewCandidateRepository(db)
	id := testutil.NewID()

	mockDB.ExpectQuery("SELECT * FROM candidates WHERE id = $1").
		WithArgs(id).
		WillReturnRows(testutil.MockRows(candidateColumns...).AddRow(
			id, "jane smith", nil, nil, "{python,sql}", 5.0,
			"bachelor", false, "{}", "raw", testutil.FixedTime,
		))

	candidate, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, candidate.ID)
	assert.Equal(t, []string{"python", "sql"}, candidate.Skills)
	assert.Equal(t, domain.EducationBachelor, candidate.EducationLevel)
	assert.Empty(t, candidate.Warnings)

	mockDB.ExpectationsWereMet(t)
}

func TestCandidateRepository_GetByID_NotFound(t *testing.T) {
	mockDB, db := newTestDB(t)
	defer mockDB.Close()

	repo := repository.NewCandidateRepository(db)

	mockDB.ExpectQuery("SELECT * FROM candidates WHERE id = $1").
		WithArgs("missing").
		WillReturnRows(testutil.MockRows(candidateColumns...))

	_, err := repo.GetByID(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNotFound)
}

func TestCandidateRepository_List(t *testing.T) {
	mockDB, db := newTestDB(t)
	defer mockDB.Close()

	repo := repository.NewCandidateRepository(db)

	mockDB.ExpectQuery("SELECT * FROM candidates ORDER BY created_at DESC, id").
		WillReturnRows(testutil.MockRows(candidateColumns...).
			AddRow("c2", "second", nil, nil, "{go}", 2.0, "master", false, "{}", "raw", testutil.FixedTime).
			AddRow("c1", "first", nil, nil, "{python}", 4.0, "bachelor", false, "{}", "raw", testutil.FixedTime.Add(-time.Hour)))

	candidates, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "c2", candidates[0].ID)
	assert.Equal(t, "c1", candidates[1].ID)
}
