package textproc

import (
	"regexp"
	"strings"
)

// Section header patterns. Matched against lowercased, colon-stripped lines.
var (
	experienceHeaderRe = regexp.MustCompile(`\b(experience|employment|work history|career history|professional background)\b`)
	educationHeaderRe  = regexp.MustCompile(`\b(education|academic|qualifications|degree|university|certifications?)\b`)
	skillsHeaderRe     = regexp.MustCompile(`\b(skills|technologies|competencies|technical proficienc|tools)\b`)
	summaryHeaderRe    = regexp.MustCompile(`\b(summary|objective|profile|about me)\b`)
	contactHeaderRe    = regexp.MustCompile(`\b(contact|personal details)\b`)
)

// Contact shape patterns.
var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phoneRe = regexp.MustCompile(`\+?\d[\d\s().\-]{7,}\d`)
	urlRe   = regexp.MustCompile(`(?i)https?://\S+|\b(linkedin\.com|github\.com)/\S+|\bportfolio\b`)
)

// locationRe matches location-indicating words or a "City, ST" shape.
var locationRe = regexp.MustCompile(`(?i)\b(remote|hybrid|relocat\w*|based in|location)\b|\b[A-Z][a-z]+,\s*[A-Z]{2}\b`)

// metricRe is the basic metric shape used by the recruiter scan:
// a percentage, a currency amount, or any standalone number.
var metricRe = regexp.MustCompile(`\d+(?:\.\d+)?%|\$\s?\d|\b\d+\b`)

// yearsOfExperienceRe matches explicit tenure phrases like "7+ years".
var yearsOfExperienceRe = regexp.MustCompile(`(?i)\b\d+\+?\s+years?\b`)

// taskLanguagePhrases open bullets that describe duties instead of achievements.
var taskLanguagePhrases = []string{
	"responsible for",
	"duties include",
	"duties included",
	"tasked with",
	"in charge of",
}

// buzzwords are filler terms a time-pressured recruiter reacts badly to.
var buzzwords = []string{"synergy", "leverage", "utilize", "facilitate"}

// roleTitleKeywords are generic role words used by the F-pattern scan.
var roleTitleKeywords = []string{
	"engineer", "developer", "manager", "analyst", "designer",
	"consultant", "director", "specialist", "architect", "lead",
	"scientist", "administrator", "coordinator",
}

// ToolNames are widely recognized tool and language names. Shared with the
// keyword matcher's tools category.
var ToolNames = []string{
	"python", "java", "javascript", "typescript", "golang", "ruby", "php",
	"react", "angular", "vue", "node", "django", "spring",
	"sql", "postgresql", "mysql", "mongodb", "redis",
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform",
	"excel", "salesforce", "tableau", "jira", "figma",
}

// BusinessOutcomeKeywords signal business impact in achievement language.
var BusinessOutcomeKeywords = []string{
	"revenue", "cost", "profit", "savings", "customer", "retention",
	"efficiency", "growth", "conversion", "churn", "roi", "sales",
	"satisfaction", "market share", "uptime", "adoption",
}

// HasEmail reports whether s contains an email-shaped substring.
func HasEmail(s string) bool { return emailRe.MatchString(s) }

// HasPhone reports whether s contains a phone-number-shaped substring.
func HasPhone(s string) bool { return phoneRe.MatchString(s) }

// HasURL reports whether s contains a LinkedIn, GitHub, or portfolio reference.
func HasURL(s string) bool { return urlRe.MatchString(s) }

// HasLocation reports whether s contains a location-indicating word.
func HasLocation(s string) bool { return locationRe.MatchString(s) }

// HasMetric reports whether s contains a basic metric shape.
func HasMetric(s string) bool { return metricRe.MatchString(s) }

// HasYearsOfExperience reports whether s contains an explicit tenure phrase.
func HasYearsOfExperience(s string) bool { return yearsOfExperienceRe.MatchString(s) }

// HasTaskLanguage reports whether s opens with or contains duty-style phrasing.
func HasTaskLanguage(s string) bool {
	lower := strings.ToLower(s)
	for _, phrase := range taskLanguagePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// HasBuzzword reports whether s contains a known filler buzzword.
func HasBuzzword(s string) bool {
	lower := strings.ToLower(s)
	for _, w := range buzzwords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// HasRoleTitleKeyword reports whether s names a generic role title.
func HasRoleTitleKeyword(s string) bool {
	lower := strings.ToLower(s)
	for _, w := range roleTitleKeywords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// HasToolName reports whether s names a recognized tool or language.
func HasToolName(s string) bool {
	lower := strings.ToLower(s)
	for _, w := range ToolNames {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// HasBusinessOutcome reports whether s contains business-impact language.
func HasBusinessOutcome(s string) bool {
	lower := strings.ToLower(s)
	for _, w := range BusinessOutcomeKeywords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
