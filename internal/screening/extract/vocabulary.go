package extract

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

// Vocabulary is the closed set of recognizable skills. Each canonical skill
// carries a list of aliases; matching is alias-aware and whole-word, and
// always reports the canonical name. The vocabulary is immutable after
// construction so concurrent extraction needs no locking.
type Vocabulary struct {
	entries []vocabularyEntry
}

type vocabularyEntry struct {
	canonical string
	terms     []string
}

// NewVocabulary builds a vocabulary from canonical skill -> aliases. Names
// and aliases are lower-cased; the canonical name itself is always a term.
func NewVocabulary(skills map[string][]string) *Vocabulary {
	entries := make([]vocabularyEntry, 0, len(skills))
	for canonical, aliases := range skills {
		canonical = strings.ToLower(strings.TrimSpace(canonical))
		if canonical == "" {
			continue
		}
		terms := []string{canonical}
		for _, a := range aliases {
			a = strings.ToLower(strings.TrimSpace(a))
			if a != "" && a != canonical {
				terms = append(terms, a)
			}
		}
		entries = append(entries, vocabularyEntry{canonical: canonical, terms: terms})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].canonical < entries[j].canonical
	})
	return &Vocabulary{entries: entries}
}

// LoadVocabulary reads a vocabulary YAML file of the form:
//
//	skills:
//	  python: [py]
//	  kubernetes: [k8s]
func LoadVocabulary(path string) (*Vocabulary, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}

	skills := v.GetStringMapStringSlice("skills")
	if len(skills) == 0 {
		return nil, fmt.Errorf("vocabulary file %s defines no skills", path)
	}

	return NewVocabulary(skills), nil
}

// Match returns the canonical names of all vocabulary skills found in the
// text, sorted alphabetically. A skill matches if any of its terms occurs
// as a whole word.
func (v *Vocabulary) Match(text string) []string {
	matched := make([]string, 0)
	for _, e := range v.entries {
		for _, term := range e.terms {
			if containsWholeWord(text, term) {
				matched = append(matched, e.canonical)
				break
			}
		}
	}
	return matched
}

// Size returns the number of canonical skills in the vocabulary
func (v *Vocabulary) Size() int {
	return len(v.entries)
}
