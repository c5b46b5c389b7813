package types

// BulletRecord is one scored achievement/responsibility line extracted from the CV body.
// Immutable once computed; the rewrite suggestion is advisory and never feeds back into the score.
type BulletRecord struct {
	OriginalText       string   `json:"original_text"`
	HasActionVerb      bool     `json:"has_action_verb"`
	HasMetric          bool     `json:"has_metric"`
	HasSkill           bool     `json:"has_skill"`
	HasBusinessOutcome bool     `json:"has_business_outcome"`
	Score              int      `json:"score"`
	Issues             []string `json:"issues"`
	RewriteSuggestion  string   `json:"rewrite_suggestion,omitempty"`
}

// BulletFactorResult is the industry-aware factor breakdown for a single bullet.
type BulletFactorResult struct {
	ActionVerbScore int     `json:"action_verb_score"`
	MetricScore     int     `json:"metric_score"`
	SkillScore      int     `json:"skill_score"`
	ImpactScore     int     `json:"impact_score"`
	IndustryWeight  float64 `json:"industry_weight"`
	FinalScore      int     `json:"final_score"`
}

// BulletAnalysis aggregates bullet scoring over the whole CV.
type BulletAnalysis struct {
	Bullets      []BulletRecord `json:"bullets"`
	WeakBullets  []BulletRecord `json:"weak_bullets"`
	StrongCount  int            `json:"strong_count"`
	AverageScore int            `json:"average_score"`
	Industry     Industry       `json:"industry"`
}
