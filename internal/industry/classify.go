// Package industry infers the dominant professional domain of a document and
// flags gross mismatches between a CV and a job description.
package industry

import (
	"strings"

	"github.com/jonathan/cv-scorer/internal/types"
)

// skillKeywords maps each industry to its characteristic skill vocabulary.
var skillKeywords = map[types.Industry][]string{
	types.IndustryTech: {
		"software", "developer", "engineer", "programming", "javascript",
		"python", "java", "react", "api", "database", "cloud", "docker",
		"kubernetes", "frontend", "backend", "devops", "agile", "git",
	},
	types.IndustryFinance: {
		"financial", "accounting", "audit", "banking", "investment",
		"portfolio", "compliance", "tax", "trading", "budgeting",
		"forecasting", "reconciliation", "underwriting",
	},
	types.IndustrySales: {
		"sales", "quota", "pipeline", "prospecting", "crm", "negotiation",
		"leads", "closing", "upsell", "territory", "salesforce",
	},
	types.IndustryMarketing: {
		"marketing", "campaign", "seo", "brand", "content", "advertising",
		"social media", "engagement", "analytics", "copywriting",
	},
	types.IndustryHealthcare: {
		"patient", "caregiver", "nursing", "nurse", "clinical", "medical",
		"elderly", "hospital", "therapy", "medication", "hygiene",
		"rehabilitation", "cpr",
	},
}

// classificationOrder fixes enumeration order; on equal keyword counts the
// industry checked first wins. The tie-break is deliberate and stable.
var classificationOrder = []types.Industry{
	types.IndustryTech,
	types.IndustryFinance,
	types.IndustrySales,
	types.IndustryMarketing,
	types.IndustryHealthcare,
}

// SkillKeywords returns the skill vocabulary for an industry.
func SkillKeywords(ind types.Industry) []string {
	return skillKeywords[ind]
}

// countSkillHits counts how many of an industry's skill keywords appear in text.
func countSkillHits(lowerText string, ind types.Industry) int {
	hits := 0
	for _, kw := range skillKeywords[ind] {
		if strings.Contains(lowerText, kw) {
			hits++
		}
	}
	return hits
}

// Classify infers the dominant industry of a document by counting skill
// keyword hits per industry and picking the maximum. Documents matching no
// vocabulary classify as general.
func Classify(text string) types.Industry {
	lower := strings.ToLower(text)
	best := types.IndustryGeneral
	bestHits := 0
	for _, ind := range classificationOrder {
		if hits := countSkillHits(lower, ind); hits > bestHits {
			best = ind
			bestHits = hits
		}
	}
	return best
}

// Weight returns the per-industry multiplier applied to bullet quality scores.
// Metric-driven achievement language is valued differently by field convention.
func Weight(ind types.Industry) float64 {
	switch ind {
	case types.IndustryTech:
		return 1.2
	case types.IndustryFinance, types.IndustrySales:
		return 1.1
	default:
		return 1.0
	}
}
