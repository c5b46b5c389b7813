// Package textproc provides the shared line classification pass over raw CV text.
// Every downstream analyzer consumes the same classified lines instead of
// re-implementing its own string-shape sniffing.
package textproc

import "strings"

// LineKind tags the shape of a single CV line.
type LineKind int

const (
	LinePlainText LineKind = iota
	LineSectionHeader
	LineBullet
	LineContact
)

// SectionKind identifies the logical section a header line opens.
type SectionKind string

const (
	SectionExperience SectionKind = "experience"
	SectionEducation  SectionKind = "education"
	SectionSkills     SectionKind = "skills"
	SectionSummary    SectionKind = "summary"
	SectionContact    SectionKind = "contact"
	SectionNone       SectionKind = ""
)

// Line is one classified line of the input document.
// Index is the position among non-blank lines, in document order.
type Line struct {
	Index   int
	Text    string
	Kind    LineKind
	Section SectionKind
}

// bulletMarkers are the leading runes that mark a line as a bullet.
var bulletMarkers = []string{"•", "●", "▪", "‣", "·", "- ", "* ", "– ", "— "}

// maxHeaderLength bounds how long a line can be and still count as a section header.
const maxHeaderLength = 48

// IsBulletLine reports whether a trimmed line starts with a bullet marker.
func IsBulletLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, marker := range bulletMarkers {
		if strings.HasPrefix(trimmed, marker) {
			return true
		}
	}
	return false
}

// IsBulletRune reports whether r is a recognized list-marker glyph.
func IsBulletRune(r rune) bool {
	for _, marker := range bulletMarkers {
		if r == []rune(marker)[0] {
			return true
		}
	}
	return false
}

// StripBulletMarker removes the leading bullet marker and surrounding whitespace.
func StripBulletMarker(line string) string {
	trimmed := strings.TrimSpace(line)
	for _, marker := range bulletMarkers {
		if strings.HasPrefix(trimmed, marker) {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, marker))
		}
	}
	return trimmed
}

// headerSection returns the section a line opens, or SectionNone.
func headerSection(line string) SectionKind {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) == 0 || len(trimmed) > maxHeaderLength {
		return SectionNone
	}
	lower := strings.ToLower(strings.TrimSuffix(trimmed, ":"))
	switch {
	case experienceHeaderRe.MatchString(lower):
		return SectionExperience
	case educationHeaderRe.MatchString(lower):
		return SectionEducation
	case skillsHeaderRe.MatchString(lower):
		return SectionSkills
	case summaryHeaderRe.MatchString(lower):
		return SectionSummary
	case contactHeaderRe.MatchString(lower):
		return SectionContact
	}
	return SectionNone
}

// Classify splits text into non-blank lines and tags each one.
// Classification precedence: bullet, section header, contact, plain text.
func Classify(text string) []Line {
	raw := strings.Split(text, "\n")
	lines := make([]Line, 0, len(raw))
	index := 0
	for _, r := range raw {
		trimmed := strings.TrimSpace(r)
		if trimmed == "" {
			continue
		}
		line := Line{Index: index, Text: trimmed, Kind: LinePlainText, Section: SectionNone}
		switch {
		case IsBulletLine(trimmed):
			line.Kind = LineBullet
		case headerSection(trimmed) != SectionNone:
			line.Kind = LineSectionHeader
			line.Section = headerSection(trimmed)
		case HasEmail(trimmed) || HasPhone(trimmed) || HasURL(trimmed):
			line.Kind = LineContact
		}
		lines = append(lines, line)
		index++
	}
	return lines
}

// Bullets returns the stripped text of every bullet line, in document order.
func Bullets(lines []Line) []string {
	var out []string
	for _, l := range lines {
		if l.Kind == LineBullet {
			out = append(out, StripBulletMarker(l.Text))
		}
	}
	return out
}

// NonBlankLines returns the trimmed non-blank lines of text, in order.
func NonBlankLines(text string) []string {
	var out []string
	for _, l := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(l); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
