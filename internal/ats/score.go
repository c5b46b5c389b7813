// Package ats simulates how an applicant tracking system would parse, match,
// and rank a CV against a job description.
package ats

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/cv-scorer/internal/industry"
	"github.com/jonathan/cv-scorer/internal/keywords"
	"github.com/jonathan/cv-scorer/internal/textproc"
	"github.com/jonathan/cv-scorer/internal/types"
)

// Parsing penalties. An ATS reads text linearly; anything that breaks linear
// extraction costs points.
const (
	nonASCIIPenalty   = 15
	wideLayoutPenalty = 10
	tooShortPenalty   = 20
	minLineCount      = 10
)

// Ranking weights: keyword match dominates ATS ranking, structural parsing is
// a secondary gate.
const (
	parsingWeight      = 0.2
	sectionPoints      = 20.0
	mandatoryWeight    = 0.4
	niceToHaveWeight   = 0.2
	sectionConfidence  = 75
	recommendThreshold = 80
	mandatoryFloor     = 70.0
)

var wideSpacingRe = regexp.MustCompile(`\t| {4,}`)

// parsingScore starts at 100 and is penalized for layout traits that break
// linear text extraction. Recognized bullet glyphs are exempt from the
// non-ASCII penalty; parsers strip them cleanly. Floors at 0.
func parsingScore(cvText string) int {
	score := 100
	for _, r := range cvText {
		if r > 127 && !textproc.IsBulletRune(r) {
			score -= nonASCIIPenalty
			break
		}
	}
	if wideSpacingRe.MatchString(cvText) {
		score -= wideLayoutPenalty
	}
	if len(textproc.NonBlankLines(cvText)) < minLineCount {
		score -= tooShortPenalty
	}
	if score < 0 {
		score = 0
	}
	return score
}

// detectSections models a parser that either finds a canonical header or fails
// outright; no partial credit.
func detectSections(lines []textproc.Line) types.SectionDetection {
	var det types.SectionDetection
	mark := func(s *types.SectionAnalysis) {
		s.Detected = true
		s.Confidence = sectionConfidence
	}
	for _, l := range lines {
		switch {
		case l.Kind == textproc.LineSectionHeader && l.Section == textproc.SectionExperience:
			mark(&det.Experience)
		case l.Kind == textproc.LineSectionHeader && l.Section == textproc.SectionEducation:
			mark(&det.Education)
		case l.Kind == textproc.LineSectionHeader && l.Section == textproc.SectionSkills:
			mark(&det.Skills)
		case l.Kind == textproc.LineContact,
			l.Kind == textproc.LineSectionHeader && l.Section == textproc.SectionContact:
			mark(&det.Contact)
		}
	}
	return det
}

// filteringIssues reports auto-reject conditions a real ATS applies before a
// human ever sees the document.
func filteringIssues(cvText string) []types.FilteringIssue {
	issues := []types.FilteringIssue{}
	if !textproc.HasEmail(cvText) {
		issues = append(issues, types.FilteringIssue{
			Severity: types.SeverityCritical,
			Message:  "no email address found; most ATS systems auto-reject without one",
		})
	}
	if !textproc.HasPhone(cvText) {
		issues = append(issues, types.FilteringIssue{
			Severity: types.SeverityWarning,
			Message:  "no phone number found",
		})
	}
	return issues
}

// jobToolNames returns recognized tool names present in the job description.
func jobToolNames(jobDescription string) []string {
	lower := strings.ToLower(jobDescription)
	var tools []string
	for _, tool := range textproc.ToolNames {
		if strings.Contains(lower, tool) {
			tools = append(tools, tool)
		}
	}
	return tools
}

// Score runs the full ATS simulation for one CV and job description pair.
func Score(cvText, jobDescription string) *types.ATSResult {
	lines := textproc.Classify(cvText)
	cvKeywords := keywords.ExtractCVKeywords(cvText)
	reqs := keywords.ExtractRequirements(jobDescription)

	jobIndustry := industry.Classify(jobDescription)
	skills := industry.SkillKeywords(jobIndustry)

	result := &types.ATSResult{
		ParsingScore:    parsingScore(cvText),
		Sections:        detectSections(lines),
		KeywordMatch:    keywords.MatchSet(reqs, cvKeywords, skills, jobToolNames(jobDescription)),
		FilteringIssues: filteringIssues(cvText),
	}

	ranking := float64(result.ParsingScore)*parsingWeight +
		float64(result.Sections.DetectedCount())/4.0*sectionPoints +
		result.KeywordMatch.Mandatory.Percentage*mandatoryWeight +
		result.KeywordMatch.NiceToHave.Percentage*niceToHaveWeight
	result.RankingScore = int(math.Round(ranking))

	result.Recommendations = recommendations(result)
	return result
}

// recommendations derives fixed-threshold suggestions from the scores.
func recommendations(r *types.ATSResult) []types.Recommendation {
	recs := []types.Recommendation{}
	if r.ParsingScore < recommendThreshold {
		recs = append(recs, types.Recommendation{
			Priority: types.PriorityHigh,
			Section:  "formatting",
			Message:  "simplify formatting: remove tables, columns, and special characters so ATS parsers read the text linearly",
		})
	}
	if r.KeywordMatch.Mandatory.Total > 0 && r.KeywordMatch.Mandatory.Percentage < mandatoryFloor {
		missing := r.KeywordMatch.Mandatory.Missing
		if len(missing) > 3 {
			missing = missing[:3]
		}
		recs = append(recs, types.Recommendation{
			Priority: types.PriorityCritical,
			Section:  "keywords",
			Message:  fmt.Sprintf("add the missing mandatory keywords: %s", strings.Join(missing, ", ")),
		})
	}
	return recs
}
