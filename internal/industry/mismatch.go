package industry

import (
	"strings"

	"github.com/jonathan/cv-scorer/internal/keywords"
	"github.com/jonathan/cv-scorer/internal/types"
)

// Score caps applied when a gate fires. The fused score is never allowed to
// exceed the cap regardless of how well individual sub-scores look.
const (
	notACVScore       = 5
	notACVCap         = 20
	hardMismatchScore = 10
	hardMismatchCap   = 15
)

// minTokenOverlap is the job/CV token overlap ratio below which a cross-industry
// pair is treated as a mismatch candidate.
const minTokenOverlap = 0.15

// ExclusivePair declares two industries whose vocabularies should never both
// describe the same candidate. Signals are checked symmetrically, so one table
// entry covers both directions.
type ExclusivePair struct {
	A        types.Industry
	B        types.Industry
	ASignals []string
	BSignals []string
}

// minSignalHits is how many of a side's signal words must appear before the
// pair is considered triggered for that side.
const minSignalHits = 2

// DefaultExclusivePairs is the seed table. New pairs are added here, not as
// special-cased conditionals.
var DefaultExclusivePairs = []ExclusivePair{
	{
		A:        types.IndustryTech,
		B:        types.IndustryHealthcare,
		ASignals: []string{"developer", "engineer", "javascript", "react", "software", "programming"},
		BSignals: []string{"caregiver", "patient", "elderly", "nursing", "medication", "clinical"},
	},
}

// signalHits counts how many signal words appear in lowered text.
func signalHits(lowerText string, signals []string) int {
	hits := 0
	for _, s := range signals {
		if strings.Contains(lowerText, s) {
			hits++
		}
	}
	return hits
}

// pairTriggered reports whether any exclusive pair fires for the given job and
// CV texts, in either direction.
func pairTriggered(pairs []ExclusivePair, jobLower, cvLower string) bool {
	for _, p := range pairs {
		if signalHits(jobLower, p.ASignals) >= minSignalHits && signalHits(cvLower, p.BSignals) >= minSignalHits {
			return true
		}
		if signalHits(jobLower, p.BSignals) >= minSignalHits && signalHits(cvLower, p.ASignals) >= minSignalHits {
			return true
		}
	}
	return false
}

// tokenOverlap returns the share of unique job tokens that also appear in the CV.
func tokenOverlap(jobText, cvText string) float64 {
	jobTokens := keywords.Tokenize(jobText)
	if len(jobTokens) == 0 {
		return 0
	}
	cvSet := make(map[string]bool)
	for _, t := range keywords.Tokenize(cvText) {
		cvSet[t] = true
	}
	jobSet := make(map[string]bool)
	shared := 0
	for _, t := range jobTokens {
		if jobSet[t] {
			continue
		}
		jobSet[t] = true
		if cvSet[t] {
			shared++
		}
	}
	return float64(shared) / float64(len(jobSet))
}

// cvHasAnyIndustrySkill reports whether any of the target industry's skill
// keywords appear in the CV.
func cvHasAnyIndustrySkill(cvLower string, ind types.Industry) bool {
	return countSkillHits(cvLower, ind) > 0
}
