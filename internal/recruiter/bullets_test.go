package recruiter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-scorer/internal/textproc"
)

func TestScoreBullet_FullMarks(t *testing.T) {
	raw, rec := scoreBullet("Led checkout redesign that grew revenue by 12%")

	assert.Equal(t, 80, raw) // metric + verb + outcome
	assert.True(t, rec.HasActionVerb)
	assert.True(t, rec.HasMetric)
	assert.True(t, rec.HasBusinessOutcome)
	assert.Empty(t, rec.Issues)
}

func TestScoreBullet_TaskLanguageGoesNegativeBeforeFloor(t *testing.T) {
	raw, rec := scoreBullet("Responsible for general administration")

	assert.Equal(t, -20, raw)
	assert.Equal(t, 0, rec.Score) // floored in the record
	assert.NotEmpty(t, rec.Issues)
}

func TestScoreBullet_ResponsibleForManagingIsWeak(t *testing.T) {
	// "managing" is duty phrasing, not a strong verb. "sales" names an
	// outcome, but the task opener drags the raw sum to 25 - 20 = 5.
	raw, rec := scoreBullet("Responsible for managing the sales team")

	assert.False(t, rec.HasActionVerb)
	assert.Equal(t, 5, raw)
	assert.Less(t, raw, weakThreshold)
}

func TestAnalyzeBullets_WeakGetSuggestions(t *testing.T) {
	cv := `Experience
• Responsible for managing the sales team
• Led expansion into 3 new markets, growing revenue 40%`
	a := analyzeBullets(textproc.Classify(cv))

	require.Len(t, a.Bullets, 2)
	require.Len(t, a.WeakBullets, 1)
	assert.Contains(t, a.WeakBullets[0].RewriteSuggestion, "Led")
	// The quick-read factors sum to at most 80, so nothing clears the
	// strong threshold on this path; only the industry-aware scorer does.
	assert.Equal(t, 0, a.StrongCount)
}

func TestCareerProgression_RecentFirstLadder(t *testing.T) {
	cv := `Experience
Senior Engineer at Acme
• Led things
Junior Engineer at Start
• Built things`
	prog := careerProgression(textproc.Classify(cv))

	assert.True(t, prog.ShowsProgression)
	assert.Len(t, prog.TitleSequence, 2)
	assert.Empty(t, prog.Gaps) // gap detection is a documented no-op
}

func TestCareerProgression_FlatTitles(t *testing.T) {
	cv := "Engineer at A\nEngineer at B"
	prog := careerProgression(textproc.Classify(cv))

	assert.False(t, prog.ShowsProgression)
}

func TestScore_EndToEnd(t *testing.T) {
	r := Score(strongCV, "Required: python kubernetes", "software engineer")

	assert.GreaterOrEqual(t, r.ScanScore, 60)
	assert.Nil(t, r.StopReadingPoint)
	assert.NotEmpty(t, r.BulletAnalysis.Bullets)
	assert.Empty(t, r.Feedback)
}

func TestScore_WeakCVGetsCriticalFeedback(t *testing.T) {
	cv := "Worker\n• Organized files\n• Sorted mail\n• Filed documents\n• Arranged supplies"

	r := Score(cv, "", "")

	assert.Less(t, r.ScanScore, 60)
	require.NotEmpty(t, r.Feedback)
	assert.Equal(t, "critical", string(r.Feedback[0].Severity))
	assert.NotEmpty(t, r.Recommendations)
}
