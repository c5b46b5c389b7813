// Package keywords extracts categorized keywords from job descriptions and CV
// text and matches them with fuzzy string equivalence.
package keywords

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/cv-scorer/internal/types"
)

var (
	mandatoryLineRe  = regexp.MustCompile(`(?i)required|must|essential`)
	niceToHaveLineRe = regexp.MustCompile(`(?i)preferred|nice|bonus|plus`)
)

// minTokenLength drops stray short words; precision over recall.
const minTokenLength = 3

// stopWords excludes requirement cue words and common filler from the keyword
// sets. Without this, "required" itself would become an unmatched keyword on
// every extraction.
var stopWords = map[string]bool{
	"required": true, "require": true, "requires": true, "must": true,
	"essential": true, "preferred": true, "nice": true, "bonus": true,
	"plus": true, "have": true, "and": true, "the": true, "for": true,
	"with": true, "you": true, "are": true, "will": true, "this": true,
	"that": true, "our": true, "your": true, "work": true, "team": true,
	"role": true, "job": true, "years": true, "strong": true, "ability": true,
	"knowledge": true, "excellent": true, "experience": true, "skills": true,
}

// Tokenize splits text into lowercase tokens of length >= 3 composed purely of
// letters. Tokens containing digits or punctuation are discarded.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < minTokenLength {
			continue
		}
		tokens = append(tokens, strings.ToLower(f))
	}
	return tokens
}

// ExtractRequirements turns a job description into keyword requirements.
// Lines using required/must/essential language contribute mandatory keywords,
// lines using preferred/nice/bonus/plus language contribute nice-to-haves, and
// all other lines contribute nothing. Duplicates are tolerated.
func ExtractRequirements(jobDescription string) []types.JobRequirement {
	var reqs []types.JobRequirement
	for _, line := range strings.Split(jobDescription, "\n") {
		var mandatory bool
		switch {
		case mandatoryLineRe.MatchString(line):
			mandatory = true
		case niceToHaveLineRe.MatchString(line):
			mandatory = false
		default:
			continue
		}
		for _, token := range Tokenize(line) {
			if stopWords[token] {
				continue
			}
			reqs = append(reqs, types.JobRequirement{Keyword: token, Mandatory: mandatory})
		}
	}
	return reqs
}

// ExtractCVKeywords tokenizes the whole CV body into a flat keyword bag.
func ExtractCVKeywords(cvText string) []string {
	return Tokenize(cvText)
}
