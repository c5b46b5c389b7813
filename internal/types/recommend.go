package types

// Priority orders recommendations for presentation.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Rank maps a priority to its sort order. Unknown priorities sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// Recommendation is one actionable suggestion for improving the CV.
type Recommendation struct {
	Priority Priority `json:"priority"`
	Section  string   `json:"section"`
	Message  string   `json:"message"`
	Example  string   `json:"example,omitempty"`
}

// CriticalIssue is a blocking problem with a fixed impact statement and fix-time estimate.
type CriticalIssue struct {
	Severity         Severity `json:"severity"`
	Description      string   `json:"description"`
	BusinessImpact   string   `json:"business_impact"`
	EstimatedFixTime string   `json:"estimated_fix_time"`
}

// Improvement is a non-blocking suggestion surfaced alongside recommendations.
type Improvement struct {
	Area    string `json:"area"`
	Message string `json:"message"`
}

// Summary is the human-readable verdict over the whole analysis.
type Summary struct {
	Verdict                  string `json:"verdict"`
	Description              string `json:"description"`
	EstimatedImprovementTime string `json:"estimated_improvement_time"`
}
