// Package fusion combines the per-aspect analyses into one overall score.
// Two strategies coexist for different entry points; callers select one
// explicitly. Merging them would change observable scores.
package fusion

import (
	"math"

	"github.com/jonathan/cv-scorer/internal/types"
)

// Input carries every sub-analysis a strategy may draw on.
type Input struct {
	ATS       *types.ATSResult
	Recruiter *types.RecruiterResult
	Bullets   *types.BulletAnalysis
	Keywords  types.KeywordMatchSet
	Validity  types.ValidityResult
}

// Result is the fused outcome.
type Result struct {
	OverallScore    int
	MatchPercentage int
}

// ScoringStrategy fuses sub-analyses into an overall score.
type ScoringStrategy interface {
	Name() string
	Fuse(in Input) Result
}

// Match percentage weights, shared by both strategies.
const (
	matchMandatoryWeight  = 0.7
	matchNiceToHaveWeight = 0.3
)

// MatchPercentage blends mandatory and nice-to-have match rates.
func MatchPercentage(km types.KeywordMatchSet) int {
	return int(math.Round(km.Mandatory.Percentage*matchMandatoryWeight +
		km.NiceToHave.Percentage*matchNiceToHaveWeight))
}

// clampScore bounds a fused score to [0,100].
func clampScore(v float64) int {
	rounded := int(math.Round(v))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}

// Select returns the strategy for a name, defaulting to enhanced.
func Select(name string) ScoringStrategy {
	if name == LegacyName {
		return Legacy{}
	}
	return Enhanced{}
}
