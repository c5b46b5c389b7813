package keywords

import (
	"github.com/xrash/smetrics"

	"github.com/jonathan/cv-scorer/internal/types"
)

// fuzzyThreshold is the Jaro-Winkler score above which two keywords are
// considered equivalent. Tolerates pluralization and minor spelling variance
// without a full stemmer.
const fuzzyThreshold = 0.8

// Jaro-Winkler parameters: standard boost threshold and prefix size.
const (
	jwBoostThreshold = 0.7
	jwPrefixSize     = 4
)

// Equivalent reports whether two lowercase keywords match exactly or fuzzily.
func Equivalent(a, b string) bool {
	if a == b {
		return true
	}
	return smetrics.JaroWinkler(a, b, jwBoostThreshold, jwPrefixSize) > fuzzyThreshold
}

// containsEquivalent reports whether any CV keyword is equivalent to keyword.
func containsEquivalent(keyword string, cvKeywords []string) bool {
	for _, cv := range cvKeywords {
		if Equivalent(keyword, cv) {
			return true
		}
	}
	return false
}

// uniqueKeywords deduplicates while preserving first-seen order.
func uniqueKeywords(kws []string) []string {
	seen := make(map[string]bool, len(kws))
	out := make([]string, 0, len(kws))
	for _, kw := range kws {
		if !seen[kw] {
			seen[kw] = true
			out = append(out, kw)
		}
	}
	return out
}

// MatchCategory matches one category's keyword set against the CV keyword bag.
// Invariants: Matched + len(Missing) == Total, and Percentage is
// Matched/Total*100 when Total > 0, else 0.
func MatchCategory(categoryKeywords, cvKeywords []string) types.KeywordMatch {
	unique := uniqueKeywords(categoryKeywords)
	result := types.KeywordMatch{Total: len(unique), Missing: []string{}}
	for _, kw := range unique {
		if containsEquivalent(kw, cvKeywords) {
			result.Matched++
		} else {
			result.Missing = append(result.Missing, kw)
		}
	}
	if result.Total > 0 {
		result.Percentage = float64(result.Matched) / float64(result.Total) * 100
	}
	return result
}

// MatchSet matches all four categories against the CV keyword bag.
// Requirements supply the mandatory and nice-to-have categories; skills and
// tools are supplied by the caller (industry skill keywords and recognized
// tool names present in the job description).
func MatchSet(reqs []types.JobRequirement, cvKeywords, skills, tools []string) types.KeywordMatchSet {
	var mandatory, niceToHave []string
	for _, r := range reqs {
		if r.Mandatory {
			mandatory = append(mandatory, r.Keyword)
		} else {
			niceToHave = append(niceToHave, r.Keyword)
		}
	}
	return types.KeywordMatchSet{
		Mandatory:  MatchCategory(mandatory, cvKeywords),
		NiceToHave: MatchCategory(niceToHave, cvKeywords),
		Skills:     MatchCategory(skills, cvKeywords),
		Tools:      MatchCategory(tools, cvKeywords),
	}
}
