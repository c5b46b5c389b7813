package fusion

// LegacyName selects the original three-component strategy.
const LegacyName = "legacy"

// Legacy strategy weights. No mismatch gating; this is the blend the
// top-level aggregate analyzer has always used.
const (
	legacyATSWeight       = 0.4
	legacyRecruiterWeight = 0.4
	legacyBulletWeight    = 0.2
)

// Legacy is the ungated strategy kept as an alternative entry point.
type Legacy struct{}

// Name implements ScoringStrategy.
func (Legacy) Name() string { return LegacyName }

// Fuse blends ATS ranking, recruiter scan, and bullet quality with fixed
// weights and no validity gating.
func (Legacy) Fuse(in Input) Result {
	overall := float64(in.ATS.RankingScore)*legacyATSWeight +
		float64(in.Recruiter.ScanScore)*legacyRecruiterWeight +
		float64(in.Bullets.AverageScore)*legacyBulletWeight
	return Result{
		OverallScore:    clampScore(overall),
		MatchPercentage: MatchPercentage(in.Keywords),
	}
}
