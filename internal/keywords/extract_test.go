package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize_DropsShortAndNonLetterTokens(t *testing.T) {
	tokens := Tokenize("Go and C++ required: 5+ years of Python, REST APIs")

	assert.Contains(t, tokens, "required")
	assert.Contains(t, tokens, "python")
	assert.Contains(t, tokens, "rest")
	assert.Contains(t, tokens, "apis")
	// "and" is length 3 and letters only, so it survives; "go", "of", and the
	// "c" split from "c++" are too short.
	assert.Contains(t, tokens, "and")
	assert.NotContains(t, tokens, "go")
	assert.NotContains(t, tokens, "of")
	assert.NotContains(t, tokens, "c")
}

func TestExtractRequirements_CategorizesByLineLanguage(t *testing.T) {
	jd := "Senior role on our platform team\n" +
		"Required: kubernetes and terraform experience\n" +
		"Nice to have: grafana dashboards\n" +
		"We offer great benefits\n"

	reqs := ExtractRequirements(jd)

	var mandatory, nice []string
	for _, r := range reqs {
		if r.Mandatory {
			mandatory = append(mandatory, r.Keyword)
		} else {
			nice = append(nice, r.Keyword)
		}
	}
	assert.Contains(t, mandatory, "kubernetes")
	assert.Contains(t, mandatory, "terraform")
	assert.Contains(t, nice, "grafana")
	assert.Contains(t, nice, "dashboards")
	assert.NotContains(t, mandatory, "platform") // neutral line contributes nothing
	assert.NotContains(t, nice, "benefits")
}

func TestExtractRequirements_MandatoryWinsWhenBothCuesPresent(t *testing.T) {
	reqs := ExtractRequirements("Required skills, bonus for certification")

	for _, r := range reqs {
		assert.True(t, r.Mandatory, r.Keyword)
	}
}

func TestExtractRequirements_DuplicatesTolerated(t *testing.T) {
	jd := "Required: python\nMust have python experience\n"

	reqs := ExtractRequirements(jd)

	count := 0
	for _, r := range reqs {
		if r.Keyword == "python" {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func TestExtractCVKeywords_WholeBody(t *testing.T) {
	kws := ExtractCVKeywords("Jane Doe\nBuilt Python services\nSkills: docker")

	assert.Contains(t, kws, "python")
	assert.Contains(t, kws, "docker")
	assert.Contains(t, kws, "built")
}
