package recommend

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-scorer/internal/types"
)

func TestMergeRecommendations_PrioritySortAndTruncate(t *testing.T) {
	ats := &types.ATSResult{}
	recruiter := &types.RecruiterResult{}
	for i := 0; i < 6; i++ {
		ats.Recommendations = append(ats.Recommendations,
			types.Recommendation{Priority: types.PriorityLow, Message: fmt.Sprintf("ats-%d", i)})
	}
	recruiter.Recommendations = []types.Recommendation{
		{Priority: types.PriorityCritical, Message: "fix now"},
		{Priority: types.PriorityHigh, Message: "fix soon"},
		{Priority: types.PriorityMedium, Message: "fix later"},
		{Priority: types.PriorityLow, Message: "someday"},
	}

	merged := mergeRecommendations(ats, recruiter)

	require.Len(t, merged, 8)
	assert.Equal(t, "fix now", merged[0].Message)
	assert.Equal(t, "fix soon", merged[1].Message)
	assert.Equal(t, "fix later", merged[2].Message)
	// Stable sort keeps ATS lows ahead of the recruiter's low.
	assert.Equal(t, "ats-0", merged[3].Message)
}

func TestCriticalIssues_FixedThresholds(t *testing.T) {
	stop := 5
	ats := &types.ATSResult{
		KeywordMatch: types.KeywordMatchSet{
			Mandatory: types.KeywordMatch{Total: 4, Matched: 1, Percentage: 25},
		},
	}
	recruiter := &types.RecruiterResult{StopReadingPoint: &stop}
	bullets := &types.BulletAnalysis{
		WeakBullets: make([]types.BulletRecord, 4),
	}

	issues := criticalIssues(ats, recruiter, bullets)

	require.Len(t, issues, 3)
	assert.Equal(t, "low mandatory keyword match", issues[0].Description)
	assert.Equal(t, "early recruiter dropout risk", issues[1].Description)
	assert.Equal(t, "multiple weak achievement statements", issues[2].Description)
	for _, issue := range issues {
		assert.NotEmpty(t, issue.BusinessImpact)
		assert.NotEmpty(t, issue.EstimatedFixTime)
	}
}

func TestCriticalIssues_NoneOnHealthyInput(t *testing.T) {
	ats := &types.ATSResult{
		KeywordMatch: types.KeywordMatchSet{
			Mandatory: types.KeywordMatch{Total: 4, Matched: 4, Percentage: 100},
		},
	}
	issues := criticalIssues(ats, &types.RecruiterResult{}, &types.BulletAnalysis{})

	assert.Empty(t, issues)
}

func TestSummary_VerdictBuckets(t *testing.T) {
	tests := []struct {
		score   int
		verdict string
	}{
		{90, "Excellent"},
		{85, "Excellent"},
		{70, "Good"},
		{55, "Fair"},
		{54, "Poor"},
		{5, "Poor"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.verdict, summary(tt.score, 0, 0).Verdict, tt.score)
	}
}

func TestSummary_ImprovementTimeEstimate(t *testing.T) {
	assert.Equal(t, "2-3 hours", summary(50, 3, 0).EstimatedImprovementTime)
	assert.Equal(t, "1-2 hours", summary(50, 1, 0).EstimatedImprovementTime)
	assert.Equal(t, "1-2 hours", summary(50, 0, 3).EstimatedImprovementTime)
	assert.Equal(t, "30-60 minutes", summary(90, 0, 0).EstimatedImprovementTime)
}

func TestConsolidate_EndToEnd(t *testing.T) {
	ats := &types.ATSResult{
		FilteringIssues: []types.FilteringIssue{
			{Severity: types.SeverityWarning, Message: "no phone number found"},
		},
		KeywordMatch: types.KeywordMatchSet{
			Mandatory: types.KeywordMatch{Total: 2, Matched: 2, Percentage: 100},
		},
	}
	recruiter := &types.RecruiterResult{FirstImpressionScore: 40}
	bullets := &types.BulletAnalysis{Bullets: make([]types.BulletRecord, 2)}

	out := Consolidate(ats, recruiter, bullets, 72)

	assert.Equal(t, "Good", out.Summary.Verdict)
	assert.Empty(t, out.CriticalIssues)
	assert.Len(t, out.Improvements, 3)
}
