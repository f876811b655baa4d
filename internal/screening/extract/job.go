package extract

import (
	"sort"
	"strings"

	"github.com/matchwise/matchwise-backend/internal/screening/domain"
)

type jobSection int

const (
	sectionRequired jobSection = iota
	sectionPreferred
	sectionResponsibilities
)

// ExtractJob turns normalized job posting text into a structured job record.
// Skills are classified required or preferred by the section they appear in;
// without any qualifier context a skill counts as required. Like candidate
// extraction this never fails on messy input.
func ExtractJob(doc *NormalizedText, vocab *Vocabulary) *domain.JobRecord {
	record := &domain.JobRecord{
		Title:              extractTitle(doc),
		MinExperienceYears: minRequiredExperience(doc.Text),
		RequiredEducation:  lowestEducation(doc.Text),
	}

	required := make(map[string]bool)
	preferred := make(map[string]bool)
	var responsibilities []string

	section := sectionRequired
	for _, line := range doc.Lines {
		lineSection := section
		switch {
		case lineHasMarker(line, preferredMarkers):
			lineSection = sectionPreferred
		case lineHasMarker(line, requiredMarkers):
			lineSection = sectionRequired
		case lineHasMarker(line, responsibilityMarkers):
			lineSection = sectionResponsibilities
		}

		skills := vocab.Match(line)
		switch lineSection {
		case sectionPreferred:
			for _, s := range skills {
				preferred[s] = true
			}
		case sectionResponsibilities:
			if item := trimBullet(line); !lineHasMarker(line, responsibilityMarkers) && item != "" {
				responsibilities = append(responsibilities, item)
			}
			// Skills named while describing the work still gate the role
			for _, s := range skills {
				required[s] = true
			}
		default:
			for _, s := range skills {
				required[s] = true
			}
		}

		// A marker line with no skills is a section heading
		if lineSection != section && len(skills) == 0 {
			section = lineSection
		}
	}

	// A skill listed as both required and preferred is required
	for s := range required {
		delete(preferred, s)
	}

	record.RequiredSkills = sortedKeys(required)
	record.PreferredSkills = sortedKeys(preferred)
	record.Responsibilities = responsibilities

	var warnings []string
	if len(record.RequiredSkills) == 0 {
		warnings = append(warnings, "no required skills found")
	}
	if record.MinExperienceYears == 0 {
		warnings = append(warnings, "no minimum experience found")
	}
	record.Warnings = warnings
	record.NeedsReview = len(record.RequiredSkills) == 0

	return record
}

// minRequiredExperience extracts the job's experience floor. Explicit
// lower-bound phrasing wins; among several candidates the smallest is taken
// so the requirement stays inclusive.
func minRequiredExperience(text string) float64 {
	min := -1.0
	consider := func(years float64, ok bool) {
		if ok && (min < 0 || years < min) {
			min = years
		}
	}

	for _, re := range minExperiencePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			consider(interpretYears(m, 0))
		}
	}
	if min >= 0 {
		return min
	}

	// No explicit floor; fall back to any experience statement
	for _, p := range experiencePatterns {
		for _, m := range p.re.FindAllStringSubmatch(text, -1) {
			consider(p.interpret(m, 0))
		}
	}
	if min < 0 {
		return 0
	}
	return min
}

// extractTitle takes the first line unless it is a section heading
func extractTitle(doc *NormalizedText) string {
	if len(doc.Lines) == 0 {
		return ""
	}
	first := doc.Lines[0]
	if lineHasMarker(first, requiredMarkers) || lineHasMarker(first, responsibilityMarkers) {
		return ""
	}
	return titleCase(first)
}

func trimBullet(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, "-*•· "))
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
