package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-scorer/internal/types"
)

const techCV = `Jane Doe
jane@example.com | 555-123-4567
Summary
Senior software engineer with 8+ years of experience
Experience
• Led migration to kubernetes, cutting infrastructure costs by 30%
• Built python services used by 2M customers
• Increased deployment frequency by 4x across 5 teams
Education
BSc Computer Science
Skills
python, kubernetes, docker, terraform, aws`

const techJob = `We are hiring a senior backend engineer.
Required: python, kubernetes, aws
Nice to have: terraform, docker`

const caregiverCV = `Mary Smith
mary@example.com | 555-987-6543
Experience
• Provided daily care for elderly patient with dementia
• Managed medication schedules for nursing home residents
• Supported caregiver team across two clinical facilities
Education
Certified Nursing Assistant`

const financeCV = `Alan Poe
alan@example.com | 555-222-3333
Experience
• Led quarterly audit and reconciliation for the banking portfolio
• Cut tax reporting errors by 40% through better forecasting
• Managed compliance and underwriting reviews for investment accounts
Education
BSc Accounting
Skills
financial modeling, budgeting, trading operations`

func TestAnalyze_HappyPath(t *testing.T) {
	engine := New(nil, nil)

	rec, err := engine.Analyze(context.Background(), Request{
		CVText:         techCV,
		JobDescription: techJob,
		TargetRole:     "engineer",
		Tier:           types.TierFree,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.Timestamp.IsZero())
	assert.Equal(t, "enhanced", rec.Strategy)
	assert.Equal(t, types.TierFree, rec.Tier)

	assert.GreaterOrEqual(t, rec.OverallScore, 0)
	assert.LessOrEqual(t, rec.OverallScore, 100)
	assert.GreaterOrEqual(t, rec.MatchPercentage, 0)
	assert.LessOrEqual(t, rec.MatchPercentage, 100)

	require.NotNil(t, rec.ATSAnalysis)
	require.NotNil(t, rec.RecruiterAnalysis)
	require.NotNil(t, rec.BulletAnalysis)
	assert.True(t, rec.Validity.IsValidCV)
	assert.False(t, rec.IndustryMismatch)
	assert.Len(t, rec.BulletAnalysis.Bullets, 3)
	assert.NotEmpty(t, rec.Summary.Verdict)
}

func TestAnalyze_InputFloors(t *testing.T) {
	engine := New(nil, nil)

	_, err := engine.Analyze(context.Background(), Request{
		CVText:         "too short",
		JobDescription: techJob,
	})
	assert.ErrorIs(t, err, ErrCVTooShort)

	_, err = engine.Analyze(context.Background(), Request{
		CVText:         techCV,
		JobDescription: "short",
	})
	assert.ErrorIs(t, err, ErrJobTooShort)
}

func TestAnalyze_IndustryMismatchGate(t *testing.T) {
	engine := New(nil, nil)

	rec, err := engine.Analyze(context.Background(), Request{
		CVText:         caregiverCV,
		JobDescription: "Hiring a javascript developer. Required: react, javascript, node",
	})
	require.NoError(t, err)

	assert.True(t, rec.IndustryMismatch)
	assert.LessOrEqual(t, rec.OverallScore, 15)
}

func TestAnalyze_BulletIndustryUsesCombinedText(t *testing.T) {
	engine := New(nil, nil)

	rec, err := engine.Analyze(context.Background(), Request{
		CVText:         financeCV,
		JobDescription: "Hiring a software developer. Required: python, api experience",
	})
	require.NoError(t, err)

	// The job text alone reads as tech, but the CV dominates the combined count.
	assert.Equal(t, types.IndustryFinance, rec.BulletAnalysis.Industry)
}

func TestAnalyze_CoverLetterGate(t *testing.T) {
	engine := New(nil, nil)

	coverLetter := `Dear Hiring Manager,
I am writing to express my interest in the senior engineer position.
I believe my background makes me a strong fit for your team.
Sincerely, Jane`

	rec, err := engine.Analyze(context.Background(), Request{
		CVText:         coverLetter,
		JobDescription: techJob,
	})
	require.NoError(t, err)

	assert.False(t, rec.Validity.IsValidCV)
	assert.LessOrEqual(t, rec.OverallScore, 10)
}

func TestAnalyze_Idempotent(t *testing.T) {
	engine := New(nil, nil)
	req := Request{
		CVText:         techCV,
		JobDescription: techJob,
		TargetRole:     "engineer",
		Tier:           types.TierFree,
	}

	first, err := engine.Analyze(context.Background(), req)
	require.NoError(t, err)
	second, err := engine.Analyze(context.Background(), req)
	require.NoError(t, err)

	// Only the id and timestamp may differ between runs.
	first.ID, second.ID = "", ""
	second.Timestamp = first.Timestamp
	assert.Equal(t, first, second)
}

func TestAnalyze_FreeTierGetsRuleBasedRewrites(t *testing.T) {
	engine := New(nil, nil)

	weakCV := `John Doe
john@example.com | 555-111-2222
Experience
• Responsible for managing the ticket queue
• Helped with various tasks around the office
Education
High school diploma`

	rec, err := engine.Analyze(context.Background(), Request{
		CVText:         weakCV,
		JobDescription: techJob,
		Tier:           types.TierFree,
	})
	require.NoError(t, err)

	require.NotEmpty(t, rec.BulletAnalysis.WeakBullets)
	for _, b := range rec.BulletAnalysis.WeakBullets {
		assert.NotEmpty(t, b.RewriteSuggestion)
	}
}

func TestAnalyzeBasic_SubstringMatching(t *testing.T) {
	res, err := AnalyzeBasic(Request{
		CVText:         techCV,
		JobDescription: techJob,
	})
	require.NoError(t, err)

	// Every required token appears verbatim in the CV text.
	assert.Equal(t, 100.0, res.Keywords.Mandatory.Percentage)
	assert.True(t, res.Validity.IsValidCV)
	assert.GreaterOrEqual(t, res.OverallScore, 0)
	assert.LessOrEqual(t, res.OverallScore, 100)
}

func TestAnalyzeBasic_MismatchGateStillApplies(t *testing.T) {
	res, err := AnalyzeBasic(Request{
		CVText:         caregiverCV,
		JobDescription: "Hiring a javascript developer. Required: react, javascript, node",
	})
	require.NoError(t, err)

	assert.True(t, res.Validity.IsMismatch)
	assert.LessOrEqual(t, res.OverallScore, 15)
}
