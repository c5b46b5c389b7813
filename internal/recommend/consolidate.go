// Package recommend consolidates sub-analysis output into a priority-ordered
// set of recommendations, critical issues, and a verdict.
package recommend

import (
	"fmt"
	"sort"

	"github.com/jonathan/cv-scorer/internal/types"
)

// maxRecommendations truncates the merged list after priority sorting.
const maxRecommendations = 8

// Critical issue thresholds.
const (
	lowMandatoryMatchPct = 50.0
	weakBulletIssueCount = 3
)

// Output is the consolidated recommendation set.
type Output struct {
	Recommendations []types.Recommendation
	CriticalIssues  []types.CriticalIssue
	Improvements    []types.Improvement
	Summary         types.Summary
}

// Consolidate merges all sub-analysis recommendations, derives critical
// issues from fixed thresholds, and writes the summary verdict. Near-duplicate
// recommendations from different analyzers may coexist; only priority orders
// the list.
func Consolidate(ats *types.ATSResult, recruiter *types.RecruiterResult, bullets *types.BulletAnalysis, overallScore int) Output {
	out := Output{
		Recommendations: mergeRecommendations(ats, recruiter),
		CriticalIssues:  criticalIssues(ats, recruiter, bullets),
		Improvements:    improvements(ats, recruiter, bullets),
	}
	out.Summary = summary(overallScore, len(out.CriticalIssues), len(out.Improvements))
	return out
}

// mergeRecommendations concatenates, sorts by priority rank, and truncates.
// The sort is stable so same-priority items keep their analyzer order.
func mergeRecommendations(ats *types.ATSResult, recruiter *types.RecruiterResult) []types.Recommendation {
	merged := []types.Recommendation{}
	merged = append(merged, ats.Recommendations...)
	merged = append(merged, recruiter.Recommendations...)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Priority.Rank() < merged[j].Priority.Rank()
	})
	if len(merged) > maxRecommendations {
		merged = merged[:maxRecommendations]
	}
	return merged
}

// criticalIssues applies the fixed thresholds. Impact statements and fix-time
// estimates are fixed strings, not computed.
func criticalIssues(ats *types.ATSResult, recruiter *types.RecruiterResult, bullets *types.BulletAnalysis) []types.CriticalIssue {
	issues := []types.CriticalIssue{}

	if ats.KeywordMatch.Mandatory.Total > 0 && ats.KeywordMatch.Mandatory.Percentage < lowMandatoryMatchPct {
		issues = append(issues, types.CriticalIssue{
			Severity:         types.SeverityCritical,
			Description:      "low mandatory keyword match",
			BusinessImpact:   "automated screens rank the CV below candidates who name the required skills",
			EstimatedFixTime: "30-45 minutes",
		})
	}
	if recruiter.StopReadingPoint != nil {
		issues = append(issues, types.CriticalIssue{
			Severity:         types.SeverityCritical,
			Description:      "early recruiter dropout risk",
			BusinessImpact:   "the strongest material is never seen if reading stops in the first half page",
			EstimatedFixTime: "45-60 minutes",
		})
	}
	if len(bullets.WeakBullets) > weakBulletIssueCount {
		issues = append(issues, types.CriticalIssue{
			Severity:         types.SeverityCritical,
			Description:      "multiple weak achievement statements",
			BusinessImpact:   "duty-style bullets read as filler and undersell real results",
			EstimatedFixTime: "60-90 minutes",
		})
	}
	return issues
}

// improvements lists non-blocking follow-ups.
func improvements(ats *types.ATSResult, recruiter *types.RecruiterResult, bullets *types.BulletAnalysis) []types.Improvement {
	imps := []types.Improvement{}
	for _, issue := range ats.FilteringIssues {
		if issue.Severity == types.SeverityWarning {
			imps = append(imps, types.Improvement{Area: "contact", Message: issue.Message})
		}
	}
	if recruiter.FirstImpressionScore < 70 {
		imps = append(imps, types.Improvement{
			Area:    "summary",
			Message: "add a one-line summary with role, tenure, and a headline result",
		})
	}
	if bullets.StrongCount == 0 && len(bullets.Bullets) > 0 {
		imps = append(imps, types.Improvement{
			Area:    "experience",
			Message: "no standout bullet; aim for at least one with a verb, metric, and business outcome",
		})
	}
	return imps
}

// Verdict buckets over the overall score.
const (
	excellentFloor = 85
	goodFloor      = 70
	fairFloor      = 55
)

// summary maps the overall score to a 4-bucket verdict with a fixed
// description and an improvement-time estimate derived from issue counts.
func summary(overallScore, criticalCount, improvementCount int) types.Summary {
	var verdict, description string
	switch {
	case overallScore >= excellentFloor:
		verdict = "Excellent"
		description = "the CV should clear automated screens and hold a recruiter's attention"
	case overallScore >= goodFloor:
		verdict = "Good"
		description = "the CV is competitive but leaves points on the table"
	case overallScore >= fairFloor:
		verdict = "Fair"
		description = "the CV needs targeted fixes before it ranks well"
	default:
		verdict = "Poor"
		description = "the CV is unlikely to pass screening in its current form"
	}

	var estimate string
	switch {
	case criticalCount > 2:
		estimate = "2-3 hours"
	case criticalCount > 0 || improvementCount > 2:
		estimate = "1-2 hours"
	default:
		estimate = "30-60 minutes"
	}

	return types.Summary{
		Verdict:                  verdict,
		Description:              fmt.Sprintf("%s.", description),
		EstimatedImprovementTime: estimate,
	}
}
