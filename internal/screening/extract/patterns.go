package extract

import (
	"regexp"
	"strconv"

	"github.com/matchwise/matchwise-backend/internal/screening/domain"
)

// maxPlausibleYears caps extracted experience values. A loose numeric match
// (zip codes, years in addresses) must not produce a 90-year career.
const maxPlausibleYears = 50.0

// experiencePattern pairs a compiled pattern with an interpretation of its
// capture groups. Patterns are tried in order; every match across every
// pattern contributes a candidate value.
type experiencePattern struct {
	re        *regexp.Regexp
	interpret func(m []string, refYear int) (float64, bool)
}

var experiencePatterns = []experiencePattern{
	// "5+ years of professional software experience", "3 yrs experience"
	{
		re:        regexp.MustCompile(`(\d+(?:\.\d+)?)\s*\+?\s*(?:years?|yrs?)(?:\s+of)?(?:\s+[a-z]+){0,3}\s+experience`),
		interpret: interpretYears,
	},
	// "experience: 4 years", "experience of 4+ yrs"
	{
		re:        regexp.MustCompile(`experience\s*(?:of|:)?\s*(\d+(?:\.\d+)?)\s*\+?\s*(?:years?|yrs?)`),
		interpret: interpretYears,
	},
	// "18 months of experience"
	{
		re: regexp.MustCompile(`(\d+)\s*months?(?:\s+of)?(?:\s+[a-z]+){0,3}\s+experience`),
		interpret: func(m []string, _ int) (float64, bool) {
			months, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				return 0, false
			}
			return plausibleYears(months / 12)
		},
	},
	// employment ranges: "2018-2022", "2019 to present"
	{
		re: regexp.MustCompile(`\b((?:19|20)\d{2})\s*(?:-|–|—|to)\s*((?:19|20)\d{2}|present|current|now)\b`),
		interpret: func(m []string, refYear int) (float64, bool) {
			start, err := strconv.Atoi(m[1])
			if err != nil {
				return 0, false
			}
			end := refYear
			switch m[2] {
			case "present", "current", "now":
			default:
				end, err = strconv.Atoi(m[2])
				if err != nil {
					return 0, false
				}
			}
			if end < start {
				return 0, false
			}
			return plausibleYears(float64(end - start))
		},
	},
}

// minExperiencePatterns match explicit lower-bound phrasing in job postings.
// "3+ years" counts as a floor even without an "at least" qualifier.
var minExperiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:at least|minimum(?: of)?|min\.?)\s*(\d+(?:\.\d+)?)\s*\+?\s*(?:years?|yrs?)`),
	regexp.MustCompile(`(\d+(?:\.\d+)?)\s*\+\s*(?:years?|yrs?)`),
}

func interpretYears(m []string, _ int) (float64, bool) {
	years, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return plausibleYears(years)
}

func plausibleYears(years float64) (float64, bool) {
	if years < 0 || years > maxPlausibleYears {
		return 0, false
	}
	return years, true
}

// educationKeyword maps whole-word terms to an education level. Entries are
// ordered highest first so the first matching entry is the highest level
// present in the text.
type educationKeyword struct {
	level domain.EducationLevel
	terms []string
}

var educationKeywords = []educationKeyword{
	{domain.EducationDoctorate, []string{"phd", "ph.d", "doctorate", "doctoral", "dphil"}},
	{domain.EducationMaster, []string{"master", "masters", "msc", "m.sc", "m.s", "mba", "meng"}},
	{domain.EducationBachelor, []string{"bachelor", "bachelors", "bsc", "b.sc", "b.s", "b.a", "beng", "undergraduate degree"}},
	{domain.EducationAssociate, []string{"associate degree", "associates degree", "associate's degree", "diploma"}},
	{domain.EducationHighschool, []string{"high school", "highschool", "secondary school", "ged"}},
}

// highestEducation returns the highest education level mentioned in the text
func highestEducation(text string) domain.EducationLevel {
	for _, kw := range educationKeywords {
		for _, term := range kw.terms {
			if containsWholeWord(text, term) {
				return kw.level
			}
		}
	}
	return domain.EducationNone
}

// lowestEducation returns the lowest education level mentioned in the text.
// Job postings listing several acceptable degrees require only the lowest.
func lowestEducation(text string) domain.EducationLevel {
	lowest := domain.EducationNone
	for _, kw := range educationKeywords {
		for _, term := range kw.terms {
			if containsWholeWord(text, term) {
				lowest = kw.level
				break
			}
		}
	}
	return lowest
}

var (
	emailPattern = regexp.MustCompile(`[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}`)
	phonePattern = regexp.MustCompile(`\+?\d{1,3}[\s.-]?\(?\d{2,4}\)?[\s.-]?\d{3,4}[\s.-]?\d{3,4}`)
	digitPattern = regexp.MustCompile(`\d`)
)

// Section markers classify job posting lines. A marker line switches the
// section for all following lines until the next marker.
var (
	preferredMarkers = []string{
		"nice to have", "nice-to-have", "preferred", "bonus", "a plus",
		"desirable", "good to have",
	}
	requiredMarkers = []string{
		"required", "requirements", "must have", "must-have",
		"qualifications", "essential", "what we need",
	}
	responsibilityMarkers = []string{
		"responsibilities", "duties", "what you will do", "what you'll do",
		"your role", "day to day", "day-to-day",
	}
)

func lineHasMarker(line string, markers []string) bool {
	for _, m := range markers {
		if containsWholeWord(line, m) {
			return true
		}
	}
	return false
}
