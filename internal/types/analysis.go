package types

import "time"

// AnalysisRecord is the top-level aggregate produced once per analysis request.
// It owns all sub-analyses and is read-only after construction.
type AnalysisRecord struct {
	ID                string           `json:"id"`
	Timestamp         time.Time        `json:"timestamp"`
	Strategy          string           `json:"strategy"`
	Tier              Tier             `json:"tier"`
	OverallScore      int              `json:"overall_score"`
	MatchPercentage   int              `json:"match_percentage"`
	ATSAnalysis       *ATSResult       `json:"ats_analysis"`
	RecruiterAnalysis *RecruiterResult `json:"recruiter_analysis"`
	BulletAnalysis    *BulletAnalysis  `json:"bullet_analysis"`
	Validity          ValidityResult   `json:"validity"`
	IndustryMismatch  bool             `json:"industry_mismatch"`
	CriticalIssues    []CriticalIssue  `json:"critical_issues"`
	Recommendations   []Recommendation `json:"recommendations"`
	Improvements      []Improvement    `json:"improvements"`
	Summary           Summary          `json:"summary"`
}
