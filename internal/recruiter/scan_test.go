package recruiter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-scorer/internal/textproc"
)

const strongCV = `Jane Doe — Senior Software Engineer
jane@example.com | 555-123-4567 | linkedin.com/in/janedoe
Remote, open to hybrid
8+ years building distributed systems in Go and Python
Experience
• Led 10 engineers through a replatform, cutting costs by 30%
• Delivered a python billing service handling $4M monthly revenue
• Built kubernetes tooling adopted by 40 teams
• Increased conversion by 12% through checkout redesign
• Reduced page load time by 800 ms
Education
BSc Computer Science`

func TestScanScore_StrongTopAndMetricDensity(t *testing.T) {
	lines := textproc.Classify(strongCV)

	score := scanScore(lines)

	// Role title, tool name, and tenure phrase all in the top 6 lines (+50),
	// all 5 bullets carry metrics (+25), all carry strong verbs (+25): capped.
	assert.Equal(t, 100, score)
}

func TestScanScore_EmptyishCV(t *testing.T) {
	score := scanScore(textproc.Classify("some text\nmore text"))

	assert.Equal(t, 0, score)
}

func TestScanScore_PartialMetricDensity(t *testing.T) {
	cv := `Plain intro line
• Led the team to ship 3 features
• Organized files
• Sorted mail
• Watered plants
• Arranged meetings`
	score := scanScore(textproc.Classify(cv))

	// 1/5 bullets with metric (+5), 1/5 with strong verb (2 points, ratio
	// 0.2 -> 2 tenths -> 10 points): no top-line signals.
	assert.Equal(t, 15, score)
}

func TestStopReadingPoint_TaskLanguageAfterLineThree(t *testing.T) {
	cv := `Jane Doe
jane@example.com
Summary line
Experience
Responsible for day to day operations
• Led projects worth $2M`
	lines := textproc.Classify(cv)

	stop := stopReadingPoint(lines)

	require.NotNil(t, stop)
	assert.Equal(t, 4, *stop)
}

func TestStopReadingPoint_BuzzwordWithoutMetricStopsImmediately(t *testing.T) {
	cv := `Leveraged synergy to facilitate outcomes
• Led projects worth $2M`
	stop := stopReadingPoint(textproc.Classify(cv))

	require.NotNil(t, stop)
	assert.Equal(t, 0, *stop)
}

func TestStopReadingPoint_NoMetricBulletsByLineSeven(t *testing.T) {
	cv := `Jane Doe
jane@example.com
Summary
Experience
• Organized files
• Sorted mail
• Arranged supplies
• Watered plants
• Filed paperwork`
	stop := stopReadingPoint(textproc.Classify(cv))

	require.NotNil(t, stop)
	assert.Equal(t, 7, *stop)
}

func TestStopReadingPoint_ReadsStrongCVInFull(t *testing.T) {
	assert.Nil(t, stopReadingPoint(textproc.Classify(strongCV)))
}

func TestFirstImpressionScore_AllSignals(t *testing.T) {
	lines := textproc.Classify(strongCV)

	score := firstImpressionScore(lines, "software engineer")

	// Target role (+30), long summary-ish line (+20), email+phone (+20),
	// profile URL (+15), location word (+15).
	assert.Equal(t, 100, score)
}

func TestFirstImpressionScore_NoTargetRoleGiven(t *testing.T) {
	lines := textproc.Classify(strongCV)

	assert.Equal(t, 70, firstImpressionScore(lines, ""))
}
