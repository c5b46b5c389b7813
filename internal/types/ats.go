package types

// Severity classifies a filtering issue raised by the ATS simulation.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
)

// SectionAnalysis is the detection result for one logical CV section.
// Confidence is coarse: a detected canonical header scores 75, anything else 0.
type SectionAnalysis struct {
	Detected   bool `json:"detected"`
	Confidence int  `json:"confidence"`
}

// SectionDetection holds per-section detection results.
type SectionDetection struct {
	Experience SectionAnalysis `json:"experience"`
	Education  SectionAnalysis `json:"education"`
	Skills     SectionAnalysis `json:"skills"`
	Contact    SectionAnalysis `json:"contact"`
}

// DetectedCount returns how many of the four sections were detected.
func (d SectionDetection) DetectedCount() int {
	count := 0
	for _, s := range []SectionAnalysis{d.Experience, d.Education, d.Skills, d.Contact} {
		if s.Detected {
			count++
		}
	}
	return count
}

// FilteringIssue is a reason an automated screen would reject or flag the CV.
type FilteringIssue struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// ATSResult is the output of the ATS compatibility scorer.
type ATSResult struct {
	ParsingScore    int              `json:"parsing_score"`
	Sections        SectionDetection `json:"sections"`
	KeywordMatch    KeywordMatchSet  `json:"keyword_match"`
	RankingScore    int              `json:"ranking_score"`
	FilteringIssues []FilteringIssue `json:"filtering_issues"`
	Recommendations []Recommendation `json:"recommendations"`
}
