package industry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/cv-scorer/internal/types"
)

const validTechCV = `Jane Doe
jane@example.com
Experience
• Built software APIs in Python
• Led a team of engineers
Education
BSc Computer Science
Skills: docker, kubernetes`

func TestValidate_AcceptsOrdinaryCV(t *testing.T) {
	jd := "Required: python developer with software engineering and docker experience"

	v := Validate(validTechCV, jd, 2, DefaultExclusivePairs)

	assert.True(t, v.IsValidCV)
	assert.False(t, v.IsMismatch)
	assert.Equal(t, 0, v.PenalizedScore)
	assert.Equal(t, 100, Cap(v))
}

func TestValidate_CoverLetterIsNotACV(t *testing.T) {
	doc := "Dear Hiring Manager,\nI am excited to apply.\nSincerely yours, Jane"

	v := Validate(doc, "any job", 0, DefaultExclusivePairs)

	assert.False(t, v.IsValidCV)
	assert.Equal(t, notACVScore, v.PenalizedScore)
	assert.Equal(t, notACVCap, Cap(v))
	assert.NotEmpty(t, v.Issues)
}

func TestValidate_NoBulletsIsNotACV(t *testing.T) {
	doc := "Experience in software\nEducation at university\njane@example.com"

	v := Validate(doc, "any job", 0, DefaultExclusivePairs)

	assert.False(t, v.IsValidCV)
}

func TestValidate_TooFewIndicatorsIsNotACV(t *testing.T) {
	doc := "Some random text\n• a bullet point about nothing in particular"

	v := Validate(doc, "any job", 1, DefaultExclusivePairs)

	assert.False(t, v.IsValidCV)
}

func TestValidate_ExclusivePairTriggersHardMismatch(t *testing.T) {
	cv := `Experience
• Caregiver for elderly patients
• Managed nursing schedules and medication
Education: nursing school
jane@example.com`
	jd := "Required: senior javascript developer, react engineer"

	v := Validate(cv, jd, 2, DefaultExclusivePairs)

	assert.True(t, v.IsValidCV)
	assert.True(t, v.IsMismatch)
	assert.Equal(t, hardMismatchScore, v.PenalizedScore)
	assert.Equal(t, hardMismatchCap, Cap(v))
}

func TestValidate_SoftMismatchWhenSomeTargetSkillsPresent(t *testing.T) {
	// Finance CV against a marketing job: industries differ, token overlap is
	// tiny, but one target-industry skill word ("analytics") appears in the CV.
	cv := `Experience
• Prepared financial audit reports for banking clients
• Tracked investment portfolio compliance with analytics dashboards
Education: accounting degree
jane@example.com
Skills: tax, forecasting`
	jd := "Required: marketing campaign manager, seo and brand content, social media advertising"

	v := Validate(cv, jd, 2, DefaultExclusivePairs)

	assert.True(t, v.IsValidCV)
	assert.False(t, v.IsMismatch)
	assert.True(t, v.SoftMismatch)
	assert.Equal(t, types.IndustryFinance, v.CVIndustry)
	assert.Equal(t, types.IndustryMarketing, v.JobIndustry)
}
