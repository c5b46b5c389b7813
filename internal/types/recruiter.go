package types

// FeedbackItem is a single piece of recruiter-simulation feedback.
type FeedbackItem struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// CareerProgression holds the seniority-ladder heuristic result.
// Gap detection is a deliberate no-op: Gaps is always empty.
type CareerProgression struct {
	ShowsProgression bool     `json:"shows_progression"`
	TitleSequence    []string `json:"title_sequence"`
	Gaps             []string `json:"gaps"`
	Notes            string   `json:"notes,omitempty"`
}

// RecruiterResult is the output of the recruiter scan simulation.
// StopReadingPoint is the zero-based line index where the simulated recruiter
// abandons the document, or nil when they read it in full.
type RecruiterResult struct {
	ScanScore            int               `json:"scan_score"`
	StopReadingPoint     *int              `json:"stop_reading_point"`
	FirstImpressionScore int               `json:"first_impression_score"`
	BulletAnalysis       BulletAnalysis    `json:"bullet_analysis"`
	CareerProgression    CareerProgression `json:"career_progression"`
	Feedback             []FeedbackItem    `json:"feedback"`
	Recommendations      []Recommendation  `json:"recommendations"`
}
