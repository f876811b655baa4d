package extract_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchwise/matchwise-backend/internal/screening/domain"
	"github.com/matchwise/matchwise-backend/internal/screening/extract"
	"github.com/matchwise/matchwise-backend/pkg/testutil"
)

func mustNormalize(t *testing.T, raw string) *extract.NormalizedText {
	t.Helper()
	doc, err := extract.Normalize(raw)
	require.NoError(t, err)
	return doc
}

func TestExtractCandidate_FullCV(t *testing.T) {
	vocab := extract.NewVocabulary(testutil.FixtureVocabulary())
	doc := mustNormalize(t, testutil.SampleCV)

	record := extract.ExtractCandidate(doc, vocab)

	assert.Equal(t, "Jane Smith", record.Name)
	require.NotNil(t, record.Email)
	assert.Equal(t, "jane.smith@example.com", *record.Email)
	require.NotNil(t, record.Phone)
	assert.Equal(t, []string{"aws", "docker", "go", "python", "sql"}, record.Skills)
	assert.Equal(t, 5.0, record.ExperienceYears)
	assert.Equal(t, domain.EducationBachelor, record.EducationLevel)
	assert.False(t, record.LowConfidence)
	assert.Empty(t, record.Warnings)
}

func TestExtractCandidate_MinimalCV(t *testing.T) {
	vocab := extract.NewVocabulary(testutil.FixtureVocabulary())
	doc := mustNormalize(t, testutil.SampleCVMinimal)

	record := extract.ExtractCandidate(doc, vocab)

	assert.Equal(t, "John Doe", record.Name)
	assert.Nil(t, record.Email)
	assert.Nil(t, record.Phone)
	assert.Empty(t, record.Skills)
	assert.Equal(t, 0.0, record.ExperienceYears)
	assert.Equal(t, domain.EducationNone, record.EducationLevel)
	assert.True(t, record.LowConfidence)
	assert.Len(t, record.Warnings, 3)
}

func TestExtractCandidate_Experience(t *testing.T) {
	vocab := extract.NewVocabulary(testutil.FixtureVocabulary())

	tests := []struct {
		name string
		text string
		want float64
	}{
		{
			name: "years of experience",
			text: "7 years of experience in backend development",
			want: 7,
		},
		{
			name: "plus suffix",
			text: "10+ years of professional software experience",
			want: 10,
		},
		{
			name: "experience prefix form",
			text: "experience: 4 years",
			want: 4,
		},
		{
			name: "fractional years",
			text: "2.5 years of experience",
			want: 2.5,
		},
		{
			name: "months convert to years",
			text: "18 months of experience with python",
			want: 1.5,
		},
		{
			name: "year range",
			text: "software engineer, acme corp, 2016-2021",
			want: 5,
		},
		{
			name: "longest claim wins across statements",
			text: "3 years of experience in go\nbackend developer 2012-2020",
			want: 8,
		},
		{
			name: "implausible values are ignored",
			text: "i have 99 years of experience",
			want: 0,
		},
		{
			name: "no statement at all",
			text: "passionate about clean code",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := extract.ExtractCandidate(mustNormalize(t, tt.text), vocab)
			assert.Equal(t, tt.want, record.ExperienceYears)
		})
	}
}

func TestExtractCandidate_OpenEndedRange(t *testing.T) {
	vocab := extract.NewVocabulary(testutil.FixtureVocabulary())
	start := time.Now().Year() - 4
	doc := mustNormalize(t, fmt.Sprintf("data engineer, %d to present", start))

	record := extract.ExtractCandidate(doc, vocab)
	assert.Equal(t, 4.0, record.ExperienceYears)
}

func TestExtractCandidate_Education(t *testing.T) {
	vocab := extract.NewVocabulary(testutil.FixtureVocabulary())

	tests := []struct {
		name string
		text string
		want domain.EducationLevel
	}{
		{"doctorate", "phd in computer science", domain.EducationDoctorate},
		{"masters apostrophe form", "master's degree in data science", domain.EducationMaster},
		{"bachelor abbreviation", "b.sc. computer science", domain.EducationBachelor},
		{"highest level wins", "bachelor of science, later completed a master", domain.EducationMaster},
		{"high school", "high school graduate", domain.EducationHighschool},
		{"none mentioned", "self-taught developer", domain.EducationNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := extract.ExtractCandidate(mustNormalize(t, tt.text), vocab)
			assert.Equal(t, tt.want, record.EducationLevel)
		})
	}
}

func TestExtractCandidate_Deterministic(t *testing.T) {
	vocab := extract.NewVocabulary(testutil.FixtureVocabulary())
	doc := mustNormalize(t, testutil.SampleCV)

	first := extract.ExtractCandidate(doc, vocab)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, extract.ExtractCandidate(doc, vocab))
	}
}
