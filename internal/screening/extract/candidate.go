package extract

import (
	"strings"
	"time"

	"github.com/matchwise/matchwise-backend/internal/screening/domain"
)

// ExtractCandidate turns normalized CV text into a structured candidate
// record. Extraction is deterministic and never fails: missing signal
// produces zero values plus a low-confidence flag, not an error.
func ExtractCandidate(doc *NormalizedText, vocab *Vocabulary) *domain.CandidateRecord {
	return extractCandidateAt(doc, vocab, time.Now().Year())
}

// extractCandidateAt is the reference-year-injectable core, so "2019 to
// present" ranges stay testable.
func extractCandidateAt(doc *NormalizedText, vocab *Vocabulary, refYear int) *domain.CandidateRecord {
	record := &domain.CandidateRecord{
		Name:           extractName(doc),
		Skills:         vocab.Match(doc.Text),
		EducationLevel: highestEducation(doc.Text),
	}

	if email := emailPattern.FindString(doc.Text); email != "" {
		record.Email = &email
	}
	if phone := extractPhone(doc.Text); phone != "" {
		record.Phone = &phone
	}

	years, found := maxExperience(doc.Text, refYear)
	record.ExperienceYears = years

	var warnings []string
	if len(record.Skills) == 0 {
		warnings = append(warnings, "no recognizable skills found")
	}
	if !found {
		warnings = append(warnings, "no experience statement found")
	}
	if record.EducationLevel == domain.EducationNone {
		warnings = append(warnings, "no education level found")
	}
	record.Warnings = warnings
	record.LowConfidence = len(warnings) > 0

	return record
}

// maxExperience scans every experience pattern and returns the largest
// plausible value. A CV listing several roles describes one career, so the
// longest claim wins over summing overlapping ranges.
func maxExperience(text string, refYear int) (float64, bool) {
	var max float64
	found := false
	for _, p := range experiencePatterns {
		for _, m := range p.re.FindAllStringSubmatch(text, -1) {
			years, ok := p.interpret(m, refYear)
			if !ok {
				continue
			}
			found = true
			if years > max {
				max = years
			}
		}
	}
	return max, found
}

// extractName uses the common CV convention of the name being the first
// line. Lines that look like contact details or headings are skipped.
func extractName(doc *NormalizedText) string {
	for i, line := range doc.Lines {
		if i >= 3 {
			break
		}
		if strings.ContainsRune(line, '@') || digitPattern.MatchString(line) {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		return titleCase(line)
	}
	return ""
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		if len(r) > 0 {
			words[i] = strings.ToUpper(string(r[0])) + string(r[1:])
		}
	}
	return strings.Join(words, " ")
}

// extractPhone finds the first phone-shaped token with a sane digit count
func extractPhone(text string) string {
	for _, m := range phonePattern.FindAllString(text, -1) {
		digits := len(digitPattern.FindAllString(m, -1))
		if digits >= 7 && digits <= 15 {
			return strings.TrimSpace(m)
		}
	}
	return ""
}
