package industry

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/cv-scorer/internal/textproc"
	"github.com/jonathan/cv-scorer/internal/types"
)

// coverLetterPhrases identify a document written as correspondence, not a CV.
var coverLetterPhrases = []string{
	"cover letter",
	"dear hiring",
	"dear sir",
	"dear madam",
	"sincerely yours",
	"thank you for considering",
}

// CV indicator patterns. At least two of the five must be present for a
// document to count as a CV.
var (
	experienceWordsRe = regexp.MustCompile(`(?i)\b(experience|employment|worked|position)\b`)
	educationWordsRe  = regexp.MustCompile(`(?i)\b(education|degree|university|college|diploma)\b`)
	skillsWordsRe     = regexp.MustCompile(`(?i)\b(skills?|proficien|technologies)\b`)
	resumeWordsRe     = regexp.MustCompile(`(?i)\b(resume|curriculum vitae|cv)\b`)
)

// countCVIndicators counts how many of the five CV indicator patterns match.
func countCVIndicators(cvText string) int {
	count := 0
	for _, re := range []*regexp.Regexp{experienceWordsRe, educationWordsRe, skillsWordsRe, resumeWordsRe} {
		if re.MatchString(cvText) {
			count++
		}
	}
	if textproc.HasEmail(cvText) {
		count++
	}
	return count
}

// hasCoverLetterSignals reports whether any correspondence phrase is present.
func hasCoverLetterSignals(cvLower string) bool {
	for _, phrase := range coverLetterPhrases {
		if strings.Contains(cvLower, phrase) {
			return true
		}
	}
	return false
}

// Validate runs the CV validity gate and the industry mismatch gate, in that
// order. Both gates are evaluated before score fusion; a triggered gate caps
// the fused score via PenalizedScore regardless of the sub-scores.
func Validate(cvText, jobDescription string, bulletCount int, pairs []ExclusivePair) types.ValidityResult {
	cvLower := strings.ToLower(cvText)
	jobLower := strings.ToLower(jobDescription)

	result := types.ValidityResult{
		IsValidCV:   true,
		Issues:      []string{},
		CVIndustry:  Classify(cvText),
		JobIndustry: Classify(jobDescription),
	}

	// Validity gate: correspondence signals, no bullets, or too few CV indicators.
	switch {
	case hasCoverLetterSignals(cvLower):
		result.IsValidCV = false
		result.Issues = append(result.Issues, "document reads as a cover letter, not a CV")
	case bulletCount == 0:
		result.IsValidCV = false
		result.Issues = append(result.Issues, "no achievement bullets could be extracted")
	case countCVIndicators(cvText) < 2:
		result.IsValidCV = false
		result.Issues = append(result.Issues, "document lacks the basic markers of a CV")
	}
	if !result.IsValidCV {
		result.PenalizedScore = notACVScore
		return result
	}

	// Industry mismatch gate. The exclusive-pair table short-circuits the
	// overlap checks for known incompatible vocabularies.
	if pairTriggered(pairs, jobLower, cvLower) {
		result.IsMismatch = true
	} else if result.JobIndustry != result.CVIndustry && result.JobIndustry != types.IndustryGeneral {
		overlap := tokenOverlap(jobDescription, cvText)
		if overlap < minTokenOverlap {
			if !cvHasAnyIndustrySkill(cvLower, result.JobIndustry) {
				result.IsMismatch = true
			} else {
				result.SoftMismatch = true
			}
		}
	}
	if result.IsMismatch {
		result.PenalizedScore = hardMismatchScore
		result.Issues = append(result.Issues, fmt.Sprintf(
			"CV appears to target %s roles while the job is in %s", result.CVIndustry, result.JobIndustry))
	}

	return result
}

// Cap returns the maximum overall score a gated analysis may report, or 100
// when no gate fired.
func Cap(v types.ValidityResult) int {
	switch {
	case !v.IsValidCV:
		return notACVCap
	case v.IsMismatch:
		return hardMismatchCap
	default:
		return 100
	}
}
