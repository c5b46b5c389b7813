package recruiter

import (
	"strings"

	"github.com/jonathan/cv-scorer/internal/textproc"
	"github.com/jonathan/cv-scorer/internal/types"
)

// seniorityLadder orders title keywords from junior to senior. Comparing the
// indices of consecutive titles approximates career trajectory.
var seniorityLadder = []string{
	"intern", "junior", "associate", "senior", "staff", "lead",
	"principal", "manager", "director", "vp", "chief", "head of",
}

// seniorityLevel returns the ladder index of the most senior keyword in the
// line, or -1 when the line names no rung.
func seniorityLevel(line string) int {
	lower := strings.ToLower(line)
	level := -1
	for i, rung := range seniorityLadder {
		if strings.Contains(lower, rung) {
			level = i
		}
	}
	return level
}

// careerProgression walks non-bullet lines top to bottom collecting seniority
// rungs. CVs list recent roles first, so a descending rung sequence reads as
// upward progression. Gap detection is a deliberate no-op.
func careerProgression(lines []textproc.Line) types.CareerProgression {
	prog := types.CareerProgression{
		TitleSequence: []string{},
		Gaps:          []string{},
	}
	var levels []int
	for _, l := range lines {
		if l.Kind == textproc.LineBullet {
			continue
		}
		if !textproc.HasRoleTitleKeyword(l.Text) {
			continue
		}
		if level := seniorityLevel(l.Text); level >= 0 {
			levels = append(levels, level)
			prog.TitleSequence = append(prog.TitleSequence, l.Text)
		}
	}
	for i := 1; i < len(levels); i++ {
		if levels[i] < levels[i-1] {
			prog.ShowsProgression = true
			break
		}
	}
	switch {
	case len(levels) < 2:
		prog.Notes = "not enough titled roles to judge trajectory"
	case prog.ShowsProgression:
		prog.Notes = "titles show increasing seniority"
	default:
		prog.Notes = "no clear seniority increase across roles"
	}
	return prog
}
