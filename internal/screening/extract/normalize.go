package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/matchwise/matchwise-backend/pkg/errors"
)

// NormalizedText is the canonical form all extractors operate on: lower-cased
// text with control characters stripped and whitespace collapsed, both as a
// full string and as the list of non-empty lines.
type NormalizedText struct {
	Text  string
	Lines []string
}

// Normalize converts raw document text into its canonical form. Messy but
// decodable input always normalizes; only invalid UTF-8 is rejected.
func Normalize(raw string) (*NormalizedText, error) {
	if !utf8.ValidString(raw) {
		return nil, errors.InvalidInput("document text is not valid UTF-8")
	}

	lower := strings.ToLower(raw)

	var lines []string
	for _, line := range strings.Split(lower, "\n") {
		var b strings.Builder
		for _, r := range line {
			if unicode.IsControl(r) || !unicode.IsPrint(r) {
				b.WriteRune(' ')
				continue
			}
			b.WriteRune(r)
		}
		cleaned := strings.Join(strings.Fields(b.String()), " ")
		if cleaned != "" {
			lines = append(lines, cleaned)
		}
	}

	return &NormalizedText{
		Text:  strings.Join(lines, "\n"),
		Lines: lines,
	}, nil
}

// containsWholeWord reports whether term occurs in text bounded by
// non-alphanumeric runes on both sides. Plain substring matching would turn
// "java" into a hit inside "javascript"; regex word boundaries mishandle
// terms like "c++" and ".net", so boundaries are checked by hand.
func containsWholeWord(text, term string) bool {
	if term == "" {
		return false
	}
	for start := 0; ; {
		idx := strings.Index(text[start:], term)
		if idx < 0 {
			return false
		}
		idx += start

		before := true
		if idx > 0 {
			r, _ := utf8.DecodeLastRuneInString(text[:idx])
			before = !isWordRune(r)
		}
		after := true
		if end := idx + len(term); end < len(text) {
			r, _ := utf8.DecodeRuneInString(text[end:])
			after = !isWordRune(r)
		}
		if before && after {
			return true
		}
		start = idx + 1
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
