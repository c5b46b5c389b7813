// Package recruiter simulates a time-pressured human recruiter scanning a CV
// with an F-pattern reading model.
package recruiter

import (
	"strings"

	"github.com/jonathan/cv-scorer/internal/textproc"
)

// F-pattern attention concentrates on the top of the document.
const (
	topLineCount  = 6
	scanLineLimit = 15
)

// Scan score components.
const (
	roleTitlePoints = 20
	toolNamePoints  = 15
	tenurePoints    = 15

	metricDensityHigh   = 25
	metricDensityMid    = 15
	metricDensityLow    = 5
	verbDensityPerTenth = 5
	verbDensityCap      = 25
)

// First impression components.
const (
	targetRolePoints      = 30
	summaryLinePoints     = 20
	fullContactPoints     = 20
	profileURLPoints      = 15
	locationPoints        = 15
	summaryLineMinLength  = 50
	stopAfterTaskLine     = 3
	stopAfterNoMetricLine = 6
)

// topLines returns up to n leading non-blank lines.
func topLines(lines []textproc.Line, n int) []textproc.Line {
	if len(lines) < n {
		return lines
	}
	return lines[:n]
}

// scanScore builds the F-pattern engagement score additively, capped at 100.
func scanScore(lines []textproc.Line) int {
	score := 0

	top := topLines(lines, topLineCount)
	var hasRole, hasTool, hasTenure bool
	for _, l := range top {
		hasRole = hasRole || textproc.HasRoleTitleKeyword(l.Text)
		hasTool = hasTool || textproc.HasToolName(l.Text)
		hasTenure = hasTenure || textproc.HasYearsOfExperience(l.Text)
	}
	if hasRole {
		score += roleTitlePoints
	}
	if hasTool {
		score += toolNamePoints
	}
	if hasTenure {
		score += tenurePoints
	}

	bullets := textproc.Bullets(lines)
	if len(bullets) > 0 {
		withMetric := 0
		withVerb := 0
		for _, b := range bullets {
			if textproc.HasMetric(b) {
				withMetric++
			}
			if textproc.HasStrongVerb(b) {
				withVerb++
			}
		}
		metricRatio := float64(withMetric) / float64(len(bullets))
		switch {
		case metricRatio >= 0.6:
			score += metricDensityHigh
		case metricRatio >= 0.4:
			score += metricDensityMid
		case metricRatio >= 0.2:
			score += metricDensityLow
		}

		verbRatio := float64(withVerb) / float64(len(bullets))
		verbPoints := int(verbRatio*10) * verbDensityPerTenth
		if verbPoints > verbDensityCap {
			verbPoints = verbDensityCap
		}
		score += verbPoints
	}

	if score > 100 {
		score = 100
	}
	return score
}

// stopReadingPoint returns the first line index within the first 15 lines
// where the simulated recruiter abandons the document, or nil when they read
// it in full. First trigger encountered top-to-bottom wins.
func stopReadingPoint(lines []textproc.Line) *int {
	metricBulletSeen := false
	for i, l := range lines {
		if i >= scanLineLimit {
			break
		}
		if l.Kind == textproc.LineBullet && textproc.HasMetric(l.Text) {
			metricBulletSeen = true
		}
		if i > stopAfterTaskLine && textproc.HasTaskLanguage(l.Text) {
			idx := i
			return &idx
		}
		if i > stopAfterNoMetricLine && !metricBulletSeen {
			idx := i
			return &idx
		}
		if textproc.HasBuzzword(l.Text) && !textproc.HasMetric(l.Text) {
			idx := i
			return &idx
		}
	}
	return nil
}

// firstImpressionScore scores the top six lines additively: the place a
// recruiter's eyes land first.
func firstImpressionScore(lines []textproc.Line, targetRole string) int {
	top := topLines(lines, topLineCount)
	score := 0

	if targetRole != "" {
		roleLower := strings.ToLower(targetRole)
		for _, l := range top {
			if strings.Contains(strings.ToLower(l.Text), roleLower) {
				score += targetRolePoints
				break
			}
		}
	}

	var hasSummary, hasEmail, hasPhone, hasURL, hasLocation bool
	for _, l := range top {
		hasSummary = hasSummary || len(l.Text) > summaryLineMinLength
		hasEmail = hasEmail || textproc.HasEmail(l.Text)
		hasPhone = hasPhone || textproc.HasPhone(l.Text)
		hasURL = hasURL || textproc.HasURL(l.Text)
		hasLocation = hasLocation || textproc.HasLocation(l.Text)
	}
	if hasSummary {
		score += summaryLinePoints
	}
	if hasEmail && hasPhone {
		score += fullContactPoints
	}
	if hasURL {
		score += profileURLPoints
	}
	if hasLocation {
		score += locationPoints
	}

	if score > 100 {
		score = 100
	}
	return score
}
