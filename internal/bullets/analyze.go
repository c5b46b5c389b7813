package bullets

import (
	"math"
	"strings"

	"github.com/jonathan/cv-scorer/internal/industry"
	"github.com/jonathan/cv-scorer/internal/textproc"
	"github.com/jonathan/cv-scorer/internal/types"
)

// Factor weights and caps.
const (
	leadershipVerbScore  = 30
	achievementVerbScore = 25
	otherVerbScore       = 20

	metricPointsPer = 15
	metricCap       = 35

	skillPointsPer = 10
	skillCap       = 20

	impactPointsPer = 8
	impactCap       = 15
)

// Thresholds classifying bullet quality.
const (
	weakThreshold   = 40
	strongThreshold = 80
)

// verbScore maps the leading verb category to its factor score.
func verbScore(category textproc.VerbCategory) int {
	switch category {
	case textproc.VerbLeadership:
		return leadershipVerbScore
	case textproc.VerbAchievement:
		return achievementVerbScore
	case textproc.VerbCreation, textproc.VerbImprovement, textproc.VerbGrowth:
		return otherVerbScore
	default:
		return 0
	}
}

// countSkillMatches counts industry skill keywords present in the bullet.
func countSkillMatches(bullet string, ind types.Industry) int {
	lower := strings.ToLower(bullet)
	matches := 0
	for _, kw := range industry.SkillKeywords(ind) {
		if strings.Contains(lower, kw) {
			matches++
		}
	}
	return matches
}

// countImpactMatches counts business-impact keywords present in the bullet.
func countImpactMatches(bullet string) int {
	lower := strings.ToLower(bullet)
	matches := 0
	for _, kw := range textproc.BusinessOutcomeKeywords {
		if strings.Contains(lower, kw) {
			matches++
		}
	}
	return matches
}

// AnalyzeBullet decomposes a single bullet into its factor scores, weighted by
// the industry's achievement-language convention.
func AnalyzeBullet(bulletText string, ind types.Industry) types.BulletFactorResult {
	result := types.BulletFactorResult{
		ActionVerbScore: verbScore(textproc.LeadingVerbCategory(bulletText)),
		MetricScore:     min(MetricOccurrences(bulletText)*metricPointsPer, metricCap),
		SkillScore:      min(countSkillMatches(bulletText, ind)*skillPointsPer, skillCap),
		ImpactScore:     min(countImpactMatches(bulletText)*impactPointsPer, impactCap),
		IndustryWeight:  industry.Weight(ind),
	}
	raw := result.ActionVerbScore + result.MetricScore + result.SkillScore + result.ImpactScore
	final := int(math.Round(float64(raw) * result.IndustryWeight))
	if final > 100 {
		final = 100
	}
	result.FinalScore = final
	return result
}

// record builds the BulletRecord for one bullet from its factor breakdown.
func record(text string, factors types.BulletFactorResult) types.BulletRecord {
	rec := types.BulletRecord{
		OriginalText:       text,
		HasActionVerb:      factors.ActionVerbScore > 0,
		HasMetric:          factors.MetricScore > 0,
		HasSkill:           factors.SkillScore > 0,
		HasBusinessOutcome: factors.ImpactScore > 0,
		Score:              factors.FinalScore,
		Issues:             []string{},
	}
	if !rec.HasActionVerb {
		rec.Issues = append(rec.Issues, "does not open with a strong action verb")
	}
	if !rec.HasMetric {
		rec.Issues = append(rec.Issues, "no quantified result")
	}
	if !rec.HasBusinessOutcome {
		rec.Issues = append(rec.Issues, "no business impact stated")
	}
	if textproc.HasTaskLanguage(text) {
		rec.Issues = append(rec.Issues, "uses duty language instead of achievement language")
	}
	return rec
}

// Analyze scores every bullet line of the CV against the given industry and
// aggregates weak/strong classification and the average score.
func Analyze(lines []textproc.Line, ind types.Industry) types.BulletAnalysis {
	analysis := types.BulletAnalysis{
		Bullets:     []types.BulletRecord{},
		WeakBullets: []types.BulletRecord{},
		Industry:    ind,
	}
	total := 0
	for _, text := range textproc.Bullets(lines) {
		rec := record(text, AnalyzeBullet(text, ind))
		analysis.Bullets = append(analysis.Bullets, rec)
		total += rec.Score
		if rec.Score < weakThreshold {
			analysis.WeakBullets = append(analysis.WeakBullets, rec)
		}
		if rec.Score > strongThreshold {
			analysis.StrongCount++
		}
	}
	if n := len(analysis.Bullets); n > 0 {
		analysis.AverageScore = int(math.Round(float64(total) / float64(n)))
	}
	return analysis
}
