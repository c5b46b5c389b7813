// Package bullets scores individual achievement lines with an industry-aware
// factor breakdown.
package bullets

import "regexp"

// Expanded metric pattern set: percentages, currency, magnitude suffixes,
// time units, people counts, and multipliers.
var metricPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+(?:\.\d+)?%`),
	regexp.MustCompile(`[$€£]\s?\d+(?:[.,]\d+)?`),
	regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?[kmb]\b`),
	regexp.MustCompile(`(?i)\b\d+\s*(?:hours?|days?|weeks?|months?|years?|minutes?)\b`),
	regexp.MustCompile(`(?i)\b\d+\+?\s*(?:people|engineers?|members?|reports?|clients?|customers?|users?|employees?|students?|patients?)\b`),
	regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?x\b`),
}

// MetricOccurrences counts metric-shaped substrings across the expanded
// pattern set. One phrase can contribute through several patterns; the score
// cap keeps that harmless.
func MetricOccurrences(text string) int {
	count := 0
	for _, re := range metricPatterns {
		count += len(re.FindAllString(text, -1))
	}
	return count
}
