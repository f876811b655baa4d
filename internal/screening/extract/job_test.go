package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matchwise/matchwise-backend/internal/screening/domain"
	"github.com/matchwise/matchwise-backend/internal/screening/extract"
	"github.com/matchwise/matchwise-backend/pkg/testutil"
)

func TestExtractJob_FullPosting(t *testing.T) {
	vocab := extract.NewVocabulary(testutil.FixtureVocabulary())
	doc := mustNormalize(t, testutil.SampleJob)

	record := extract.ExtractJob(doc, vocab)

	assert.Equal(t, "Backend Engineer", record.Title)
	assert.Equal(t, []string{"docker", "python", "sql"}, record.RequiredSkills)
	assert.Equal(t, []string{"aws", "kubernetes"}, record.PreferredSkills)
	assert.Equal(t, 3.0, record.MinExperienceYears)
	assert.Equal(t, domain.EducationBachelor, record.RequiredEducation)
	assert.Len(t, record.Responsibilities, 2)
	assert.False(t, record.NeedsReview)
	assert.Empty(t, record.Warnings)
}

func TestExtractJob_SparsePosting(t *testing.T) {
	vocab := extract.NewVocabulary(testutil.FixtureVocabulary())
	doc := mustNormalize(t, testutil.SampleJobSparse)

	record := extract.ExtractJob(doc, vocab)

	assert.Equal(t, "Team Lead", record.Title)
	assert.Empty(t, record.RequiredSkills)
	assert.Empty(t, record.PreferredSkills)
	assert.Equal(t, 0.0, record.MinExperienceYears)
	assert.True(t, record.NeedsReview)
	assert.NotEmpty(t, record.Warnings)
}

func TestExtractJob_SkillClassification(t *testing.T) {
	vocab := extract.NewVocabulary(testutil.FixtureVocabulary())

	tests := []struct {
		name          string
		text          string
		wantRequired  []string
		wantPreferred []string
	}{
		{
			name:          "unqualified skills default to required",
			text:          "looking for someone with python and sql",
			wantRequired:  []string{"python", "sql"},
			wantPreferred: []string{},
		},
		{
			name:          "inline preferred qualifier",
			text:          "python required.\nkubernetes is a plus.",
			wantRequired:  []string{"python"},
			wantPreferred: []string{"kubernetes"},
		},
		{
			name:          "section headings carry over lines",
			text:          "requirements:\npython\nsql\nnice to have:\ndocker\naws",
			wantRequired:  []string{"python", "sql"},
			wantPreferred: []string{"aws", "docker"},
		},
		{
			name:          "required wins when listed in both",
			text:          "must have python\nnice to have: python, docker",
			wantRequired:  []string{"python"},
			wantPreferred: []string{"docker"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := extract.ExtractJob(mustNormalize(t, tt.text), vocab)
			assert.Equal(t, tt.wantRequired, record.RequiredSkills)
			assert.Equal(t, tt.wantPreferred, record.PreferredSkills)
		})
	}
}

func TestExtractJob_MinExperienceIsInclusive(t *testing.T) {
	vocab := extract.NewVocabulary(testutil.FixtureVocabulary())

	tests := []struct {
		name string
		text string
		want float64
	}{
		{
			name: "explicit at least",
			text: "at least 2 years of experience with go",
			want: 2,
		},
		{
			name: "plus form counts as floor",
			text: "5+ years experience required",
			want: 5,
		},
		{
			name: "smallest floor wins across statements",
			text: "minimum 3 years of experience. senior candidates bring 8+ years.",
			want: 3,
		},
		{
			name: "no statement means no floor",
			text: "python developer wanted",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := extract.ExtractJob(mustNormalize(t, tt.text), vocab)
			assert.Equal(t, tt.want, record.MinExperienceYears)
		})
	}
}

func TestExtractJob_EducationTakesLowestMentioned(t *testing.T) {
	vocab := extract.NewVocabulary(testutil.FixtureVocabulary())
	doc := mustNormalize(t, "bachelor or master degree in computer science")

	record := extract.ExtractJob(doc, vocab)
	assert.Equal(t, domain.EducationBachelor, record.RequiredEducation)
}
