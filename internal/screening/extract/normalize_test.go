package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchwise/matchwise-backend/internal/screening/extract"
	"github.com/matchwise/matchwise-backend/pkg/errors"
	"github.com/matchwise/matchwise-backend/pkg/testutil"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantText  string
		wantLines []string
	}{
		{
			name:      "lowercases and collapses whitespace",
			input:     "Senior   Engineer\t\tPython",
			wantText:  "senior engineer python",
			wantLines: []string{"senior engineer python"},
		},
		{
			name:      "drops empty lines",
			input:     "first\n\n\n  \nsecond",
			wantText:  "first\nsecond",
			wantLines: []string{"first", "second"},
		},
		{
			name:      "strips control characters",
			input:     "before\x00\x07after",
			wantText:  "before after",
			wantLines: []string{"before after"},
		},
		{
			name:      "keeps unicode letters",
			input:     "Café Zürich",
			wantText:  "café zürich",
			wantLines: []string{"café zürich"},
		},
		{
			name:      "empty input normalizes to empty document",
			input:     "",
			wantText:  "",
			wantLines: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := extract.Normalize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, doc.Text)
			assert.Equal(t, tt.wantLines, doc.Lines)
		})
	}
}

func TestNormalize_InvalidUTF8(t *testing.T) {
	_, err := extract.Normalize("valid prefix \xff\xfe invalid")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}

func TestVocabulary_Match(t *testing.T) {
	vocab := extract.NewVocabulary(testutil.FixtureVocabulary())

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "canonical names",
			text: "worked with python and docker daily",
			want: []string{"docker", "python"},
		},
		{
			name: "aliases resolve to canonical",
			text: "deployed on k8s, scripting in js",
			want: []string{"javascript", "kubernetes"},
		},
		{
			name: "no substring matches",
			text: "wrote javascript for the frontend",
			want: []string{"javascript"},
		},
		{
			name: "symbolic skill names",
			text: "systems programming in c++ and go",
			want: []string{"c++", "go"},
		},
		{
			name: "skill at end of sentence",
			text: "experience with python.",
			want: []string{"python"},
		},
		{
			name: "nothing recognizable",
			text: "great communicator and team player",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, vocab.Match(tt.text))
		})
	}
}

func TestVocabulary_MatchDeterministic(t *testing.T) {
	vocab := extract.NewVocabulary(testutil.FixtureVocabulary())
	text := "python, go, sql, docker, kubernetes, aws"

	first := vocab.Match(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, vocab.Match(text))
	}
}
