// Package types provides type definitions for structured data used throughout the cv-scorer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Tier is the caller-supplied access level gating the AI-assisted path.
type Tier string

const (
	TierFree    Tier = "free"
	TierPremium Tier = "premium"
)

// JobRequirement is a single keyword extracted from a job description,
// flagged mandatory when the surrounding line used required/must/essential language.
type JobRequirement struct {
	Keyword   string `json:"keyword"`
	Mandatory bool   `json:"mandatory"`
}

// KeywordMatch holds the match result for one keyword category.
type KeywordMatch struct {
	Total      int      `json:"total"`
	Matched    int      `json:"matched"`
	Missing    []string `json:"missing"`
	Percentage float64  `json:"percentage"`
}

// KeywordMatchSet groups match results by category.
type KeywordMatchSet struct {
	Mandatory  KeywordMatch `json:"mandatory"`
	NiceToHave KeywordMatch `json:"nice_to_have"`
	Skills     KeywordMatch `json:"skills"`
	Tools      KeywordMatch `json:"tools"`
}
