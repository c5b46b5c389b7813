package analysis

import (
	"math"
	"strings"

	"github.com/jonathan/cv-scorer/internal/fusion"
	"github.com/jonathan/cv-scorer/internal/industry"
	"github.com/jonathan/cv-scorer/internal/keywords"
	"github.com/jonathan/cv-scorer/internal/types"
)

// softMismatchFactor mirrors the enhanced strategy's soft-mismatch penalty.
const softMismatchFactor = 0.2

// basicBulletMarkers is the reduced marker set the basic path counts with.
var basicBulletMarkers = []string{"•", "- ", "* "}

// BasicResult is the keyword-only output of the basic path. It carries no
// ATS or recruiter simulation and no bullet records.
type BasicResult struct {
	OverallScore    int                   `json:"overall_score"`
	MatchPercentage int                   `json:"match_percentage"`
	Keywords        types.KeywordMatchSet `json:"keywords"`
	Validity        types.ValidityResult  `json:"validity"`
}

// substringMatch is the reduced-fidelity matcher: plain substring containment
// against the lowercased CV, no tokenizing and no fuzzy comparison.
func substringMatch(categoryKeywords []string, cvLower string) types.KeywordMatch {
	match := types.KeywordMatch{Missing: []string{}}
	for _, kw := range categoryKeywords {
		match.Total++
		if strings.Contains(cvLower, kw) {
			match.Matched++
		} else {
			match.Missing = append(match.Missing, kw)
		}
	}
	if match.Total > 0 {
		match.Percentage = float64(match.Matched) / float64(match.Total) * 100
	}
	return match
}

// basicBulletCount counts lines that open with a bullet marker. The validity
// gates only need to know whether any bullets exist at all.
func basicBulletCount(cvText string) int {
	count := 0
	for _, line := range strings.Split(cvText, "\n") {
		trimmed := strings.TrimSpace(line)
		for _, marker := range basicBulletMarkers {
			if strings.HasPrefix(trimmed, marker) {
				count++
				break
			}
		}
	}
	return count
}

// AnalyzeBasic runs the keyword-only path. The same validity and mismatch
// gates apply as in the full pipeline, evaluated over the substring matches,
// so a mismatched or non-CV input cannot score well here either.
func AnalyzeBasic(req Request) (*BasicResult, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	cvLower := strings.ToLower(req.CVText)
	reqs := keywords.ExtractRequirements(req.JobDescription)
	var mandatory, niceToHave []string
	for _, r := range reqs {
		if r.Mandatory {
			mandatory = append(mandatory, r.Keyword)
		} else {
			niceToHave = append(niceToHave, r.Keyword)
		}
	}

	jobIndustry := industry.Classify(req.JobDescription)
	km := types.KeywordMatchSet{
		Mandatory:  substringMatch(mandatory, cvLower),
		NiceToHave: substringMatch(niceToHave, cvLower),
		Skills:     substringMatch(industry.SkillKeywords(jobIndustry), cvLower),
	}

	validity := industry.Validate(req.CVText, req.JobDescription, basicBulletCount(req.CVText), industry.DefaultExclusivePairs)

	result := &BasicResult{
		MatchPercentage: fusion.MatchPercentage(km),
		Keywords:        km,
		Validity:        validity,
	}

	score := float64(result.MatchPercentage)
	switch {
	case !validity.IsValidCV || validity.IsMismatch:
		penalized := validity.PenalizedScore
		if limit := industry.Cap(validity); limit < penalized {
			penalized = limit
		}
		score = float64(penalized)
	case validity.SoftMismatch:
		score = math.Round(score * softMismatchFactor)
	}
	result.OverallScore = int(score)
	return result, nil
}
