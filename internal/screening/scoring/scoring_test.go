package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matchwise/matchwise-backend/internal/screening/domain"
	"github.com/matchwise/matchwise-backend/internal/screening/scoring"
	"github.com/matchwise/matchwise-backend/pkg/config"
)

func defaultPolicy() *config.ScreeningConfig {
	return &config.ScreeningConfig{
		Weights: config.ScoringWeights{
			Skills:     0.5,
			Experience: 0.25,
			Education:  0.25,
		},
		PreferredBonus:       10,
		EducationStepPenalty: 25,
		ShortlistThreshold:   59,
	}
}

func candidate(skills []string, years float64, education domain.EducationLevel) *domain.CandidateRecord {
	return &domain.CandidateRecord{
		ID:              "cand-1",
		Skills:          skills,
		ExperienceYears: years,
		EducationLevel:  education,
	}
}

func job(required []string, minYears float64, education domain.EducationLevel) *domain.JobRecord {
	return &domain.JobRecord{
		ID:                 "job-1",
		RequiredSkills:     required,
		MinExperienceYears: minYears,
		RequiredEducation:  education,
	}
}

func TestEngine_Score_PartialSkillCoverage(t *testing.T) {
	engine := scoring.NewEngine(defaultPolicy())

	c := candidate([]string{"python", "sql"}, 3, domain.EducationBachelor)
	j := job([]string{"python", "sql", "docker"}, 2, domain.EducationBachelor)

	result := engine.Score(c, j)

	assert.InDelta(t, 66.67, result.SkillsScore, 0.01)
	assert.Equal(t, 100.0, result.ExperienceScore)
	assert.Equal(t, 100.0, result.EducationScore)
	assert.InDelta(t, 83.33, result.OverallScore, 0.01)
	assert.Equal(t, []string{"python", "sql"}, result.MatchedSkills)
	assert.Equal(t, []string{"docker"}, result.MissingSkills)
	assert.False(t, result.LowConfidence)
}

func TestEngine_Score_PreferredBonusIsCapped(t *testing.T) {
	engine := scoring.NewEngine(defaultPolicy())

	j := job([]string{"python"}, 0, domain.EducationNone)
	j.PreferredSkills = []string{"docker", "kubernetes"}

	tests := []struct {
		name       string
		skills     []string
		wantSkills float64
	}{
		{
			name:       "no preferred matched",
			skills:     []string{"python"},
			wantSkills: 100,
		},
		{
			name:       "half the preferred matched but full coverage stays capped",
			skills:     []string{"python", "docker"},
			wantSkills: 100,
		},
		{
			name:       "bonus lifts partial coverage",
			skills:     []string{"docker", "kubernetes"},
			wantSkills: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.Score(candidate(tt.skills, 0, domain.EducationNone), j)
			assert.InDelta(t, tt.wantSkills, result.SkillsScore, 0.01)
			assert.LessOrEqual(t, result.SkillsScore, 100.0)
		})
	}
}

func TestEngine_Score_NoRequiredSkillsFlagsLowConfidence(t *testing.T) {
	engine := scoring.NewEngine(defaultPolicy())

	result := engine.Score(
		candidate([]string{"python"}, 5, domain.EducationMaster),
		job(nil, 0, domain.EducationNone),
	)

	assert.Equal(t, 100.0, result.SkillsScore)
	assert.True(t, result.LowConfidence)
}

func TestEngine_Score_Experience(t *testing.T) {
	engine := scoring.NewEngine(defaultPolicy())

	tests := []struct {
		name     string
		years    float64
		minYears float64
		want     float64
	}{
		{"at the floor", 3, 3, 100},
		{"above the floor", 10, 3, 100},
		{"proportional below", 1.5, 3, 50},
		{"zero experience", 0, 3, 0},
		{"no floor gives full credit", 0, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.Score(
				candidate([]string{"python"}, tt.years, domain.EducationNone),
				job([]string{"python"}, tt.minYears, domain.EducationNone),
			)
			assert.InDelta(t, tt.want, result.ExperienceScore, 0.01)
		})
	}
}

func TestEngine_Score_Education(t *testing.T) {
	engine := scoring.NewEngine(defaultPolicy())

	tests := []struct {
		name      string
		candidate domain.EducationLevel
		required  domain.EducationLevel
		want      float64
	}{
		{"exactly required", domain.EducationBachelor, domain.EducationBachelor, 100},
		{"above required", domain.EducationDoctorate, domain.EducationBachelor, 100},
		{"one step below", domain.EducationAssociate, domain.EducationBachelor, 75},
		{"two steps below", domain.EducationHighschool, domain.EducationBachelor, 50},
		{"floor at zero", domain.EducationNone, domain.EducationDoctorate, 0},
		{"no requirement", domain.EducationNone, domain.EducationNone, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.Score(
				candidate([]string{"python"}, 0, tt.candidate),
				job([]string{"python"}, 0, tt.required),
			)
			assert.InDelta(t, tt.want, result.EducationScore, 0.01)
		})
	}
}

func TestEngine_Score_Monotonicity(t *testing.T) {
	engine := scoring.NewEngine(defaultPolicy())
	j := job([]string{"python", "sql", "docker"}, 5, domain.EducationMaster)

	weak := engine.Score(candidate([]string{"python"}, 1, domain.EducationHighschool), j)
	stronger := engine.Score(candidate([]string{"python", "sql"}, 3, domain.EducationBachelor), j)
	full := engine.Score(candidate([]string{"python", "sql", "docker"}, 6, domain.EducationDoctorate), j)

	assert.Less(t, weak.OverallScore, stronger.OverallScore)
	assert.Less(t, stronger.OverallScore, full.OverallScore)
	assert.Equal(t, 100.0, full.OverallScore)
}

func TestEngine_Score_Bounds(t *testing.T) {
	engine := scoring.NewEngine(defaultPolicy())

	results := []*domain.MatchResult{
		engine.Score(candidate(nil, 0, domain.EducationNone), job([]string{"python", "go"}, 10, domain.EducationDoctorate)),
		engine.Score(candidate([]string{"python", "go"}, 20, domain.EducationDoctorate), job([]string{"python"}, 1, domain.EducationHighschool)),
	}

	for _, r := range results {
		for _, s := range []float64{r.SkillsScore, r.ExperienceScore, r.EducationScore, r.OverallScore} {
			assert.GreaterOrEqual(t, s, 0.0)
			assert.LessOrEqual(t, s, 100.0)
		}
	}
}

func TestEngine_Score_Deterministic(t *testing.T) {
	engine := scoring.NewEngine(defaultPolicy())
	c := candidate([]string{"python", "sql"}, 3, domain.EducationBachelor)
	j := job([]string{"python", "sql", "docker"}, 2, domain.EducationBachelor)

	first := engine.Score(c, j)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, engine.Score(c, j))
	}
}

func TestShouldShortlist_StrictThreshold(t *testing.T) {
	threshold := 59.0

	tests := []struct {
		name  string
		score float64
		want  bool
	}{
		{"well above", 80, true},
		{"just above", 59.01, true},
		{"exactly at threshold stays off", 59, false},
		{"below", 40, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := &domain.MatchResult{OverallScore: tt.score}
			assert.Equal(t, tt.want, scoring.ShouldShortlist(result, threshold))
		})
	}
}

func TestSortResults_Ordering(t *testing.T) {
	results := []*domain.MatchResult{
		{CandidateID: "c", OverallScore: 70},
		{CandidateID: "a", OverallScore: 90},
		{CandidateID: "b", OverallScore: 70},
	}

	domain.SortResults(results)

	assert.Equal(t, "a", results[0].CandidateID)
	assert.Equal(t, "b", results[1].CandidateID)
	assert.Equal(t, "c", results[2].CandidateID)
}
