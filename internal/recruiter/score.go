package recruiter

import (
	"fmt"

	"github.com/jonathan/cv-scorer/internal/textproc"
	"github.com/jonathan/cv-scorer/internal/types"
)

// Feedback thresholds.
const (
	lowScanScore        = 60
	lowFirstImpression  = 50
	weakBulletRecsLimit = 3
)

// Score runs the full recruiter scan simulation.
func Score(cvText, jobDescription, targetRole string) *types.RecruiterResult {
	lines := textproc.Classify(cvText)

	result := &types.RecruiterResult{
		ScanScore:            scanScore(lines),
		StopReadingPoint:     stopReadingPoint(lines),
		FirstImpressionScore: firstImpressionScore(lines, targetRole),
		BulletAnalysis:       analyzeBullets(lines),
		CareerProgression:    careerProgression(lines),
	}
	result.Feedback = feedback(result)
	result.Recommendations = recommendations(result)
	return result
}

// feedback derives textual observations from score thresholds.
func feedback(r *types.RecruiterResult) []types.FeedbackItem {
	items := []types.FeedbackItem{}
	if r.ScanScore < lowScanScore {
		items = append(items, types.FeedbackItem{
			Severity: types.SeverityCritical,
			Message:  "a quick scan finds little to hold attention: lead with role, tools, and quantified wins",
		})
	}
	if r.StopReadingPoint != nil {
		items = append(items, types.FeedbackItem{
			Severity: types.SeverityWarning,
			Message:  fmt.Sprintf("a recruiter would likely stop reading around line %d", *r.StopReadingPoint+1),
		})
	}
	if !r.CareerProgression.ShowsProgression && len(r.CareerProgression.TitleSequence) >= 2 {
		items = append(items, types.FeedbackItem{
			Severity: types.SeverityWarning,
			Message:  "job titles do not show increasing seniority",
		})
	}
	return items
}

// recommendations derives actionable suggestions from the scan.
func recommendations(r *types.RecruiterResult) []types.Recommendation {
	recs := []types.Recommendation{}
	if len(r.BulletAnalysis.WeakBullets) > weakBulletRecsLimit {
		recs = append(recs, types.Recommendation{
			Priority: types.PriorityHigh,
			Section:  "experience",
			Message: fmt.Sprintf("rework the %d weakest bullets to open with a strong verb and state a measurable result",
				len(r.BulletAnalysis.WeakBullets)),
		})
	} else if len(r.BulletAnalysis.WeakBullets) > 0 {
		recs = append(recs, types.Recommendation{
			Priority: types.PriorityMedium,
			Section:  "experience",
			Message:  "a few bullets describe duties rather than achievements",
			Example:  r.BulletAnalysis.WeakBullets[0].RewriteSuggestion,
		})
	}
	if r.FirstImpressionScore < lowFirstImpression {
		recs = append(recs, types.Recommendation{
			Priority: types.PriorityMedium,
			Section:  "summary",
			Message:  "strengthen the top of the document: role title, contact details, and a summary line",
		})
	}
	return recs
}
