package fusion

import "github.com/jonathan/cv-scorer/internal/industry"

// EnhancedName selects the gated four-component strategy.
const EnhancedName = "enhanced"

// Enhanced strategy weights. Keyword match splits into a mandatory/skills blend.
const (
	enhancedATSWeight       = 0.3
	enhancedRecruiterWeight = 0.25
	enhancedKeywordWeight   = 0.25
	enhancedBulletWeight    = 0.2

	keywordMandatoryShare = 0.6
	keywordSkillsShare    = 0.4

	// softMismatchFactor is applied when industries disagree without the
	// hard gate firing.
	softMismatchFactor = 0.2
)

// Enhanced is the gated strategy used by the enhanced analysis entry point.
type Enhanced struct{}

// Name implements ScoringStrategy.
func (Enhanced) Name() string { return EnhancedName }

// Fuse applies the validity and mismatch gates before the weighted blend.
// A triggered gate short-circuits: the fused score never exceeds its cap.
func (Enhanced) Fuse(in Input) Result {
	result := Result{MatchPercentage: MatchPercentage(in.Keywords)}

	if !in.Validity.IsValidCV || in.Validity.IsMismatch {
		penalty := in.Validity.PenalizedScore
		if limit := industry.Cap(in.Validity); penalty > limit {
			penalty = limit
		}
		result.OverallScore = penalty
		return result
	}

	keywordScore := in.Keywords.Mandatory.Percentage*keywordMandatoryShare +
		in.Keywords.Skills.Percentage*keywordSkillsShare

	overall := float64(in.ATS.RankingScore)*enhancedATSWeight +
		float64(in.Recruiter.ScanScore)*enhancedRecruiterWeight +
		keywordScore*enhancedKeywordWeight +
		float64(in.Bullets.AverageScore)*enhancedBulletWeight

	if in.Validity.SoftMismatch {
		overall *= softMismatchFactor
	}
	result.OverallScore = clampScore(overall)
	return result
}
