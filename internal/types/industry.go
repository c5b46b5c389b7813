package types

// Industry is an inferred professional domain.
type Industry string

const (
	IndustryTech       Industry = "tech"
	IndustryFinance    Industry = "finance"
	IndustrySales      Industry = "sales"
	IndustryMarketing  Industry = "marketing"
	IndustryHealthcare Industry = "healthcare"
	IndustryGeneral    Industry = "general"
)

// ValidityResult is the outcome of the CV validity and industry-mismatch gates.
// When either gate fails, PenalizedScore caps the fused overall score.
type ValidityResult struct {
	IsValidCV      bool     `json:"is_valid_cv"`
	IsMismatch     bool     `json:"is_mismatch"`
	SoftMismatch   bool     `json:"soft_mismatch"`
	PenalizedScore int      `json:"penalized_score"`
	Issues         []string `json:"issues"`
	CVIndustry     Industry `json:"cv_industry"`
	JobIndustry    Industry `json:"job_industry"`
}
