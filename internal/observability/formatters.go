// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-scorer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScores outputs the headline numbers of an analysis.
func (p *Printer) PrintScores(record *types.AnalysisRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:   %d/100 (%s)\n", record.OverallScore, record.Summary.Verdict))
	sb.WriteString(fmt.Sprintf("Match:     %d%%\n", record.MatchPercentage))
	sb.WriteString(fmt.Sprintf("Strategy:  %s\n", record.Strategy))
	sb.WriteString("\n")
	if record.ATSAnalysis != nil {
		sb.WriteString(fmt.Sprintf("ATS ranking:      %d\n", record.ATSAnalysis.RankingScore))
		sb.WriteString(fmt.Sprintf("ATS parsing:      %d\n", record.ATSAnalysis.ParsingScore))
	}
	if record.RecruiterAnalysis != nil {
		sb.WriteString(fmt.Sprintf("Recruiter scan:   %d\n", record.RecruiterAnalysis.ScanScore))
		sb.WriteString(fmt.Sprintf("First impression: %d\n", record.RecruiterAnalysis.FirstImpressionScore))
	}
	if record.BulletAnalysis != nil {
		sb.WriteString(fmt.Sprintf("Bullet average:   %d\n", record.BulletAnalysis.AverageScore))
	}

	p.printBox("ANALYSIS SCORES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintKeywords outputs keyword coverage with the top missing terms.
func (p *Printer) PrintKeywords(record *types.AnalysisRecord) {
	if record == nil || record.ATSAnalysis == nil {
		return
	}
	km := record.ATSAnalysis.KeywordMatch

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Mandatory:    %d/%d (%.0f%%)\n", km.Mandatory.Matched, km.Mandatory.Total, km.Mandatory.Percentage))
	sb.WriteString(fmt.Sprintf("Nice-to-have: %d/%d (%.0f%%)\n", km.NiceToHave.Matched, km.NiceToHave.Total, km.NiceToHave.Percentage))
	sb.WriteString(fmt.Sprintf("Skills:       %d/%d (%.0f%%)\n", km.Skills.Matched, km.Skills.Total, km.Skills.Percentage))

	if len(km.Mandatory.Missing) > 0 {
		sb.WriteString("\nMissing mandatory:\n")
		count := min(len(km.Mandatory.Missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", km.Mandatory.Missing[i]))
		}
		if len(km.Mandatory.Missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(km.Mandatory.Missing)-maxItemsToShow))
		}
	}

	p.printBox("KEYWORD COVERAGE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintWeakBullets outputs the weakest bullets with their issues and any
// rewrite suggestion.
func (p *Printer) PrintWeakBullets(record *types.AnalysisRecord) {
	if record == nil || record.BulletAnalysis == nil || len(record.BulletAnalysis.WeakBullets) == 0 {
		return
	}
	weak := record.BulletAnalysis.WeakBullets

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Weak bullets: %d of %d\n\n", len(weak), len(record.BulletAnalysis.Bullets)))

	count := min(len(weak), maxItemsToShow)
	for i := 0; i < count; i++ {
		bullet := weak[i]
		text := bullet.OriginalText
		if len(text) > 50 {
			text = text[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s (score %d)\n", text, bullet.Score))
		for _, issue := range bullet.Issues {
			if len(issue) > 48 {
				issue = issue[:45] + "..."
			}
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", issue))
		}
		if bullet.RewriteSuggestion != "" {
			suggestion := bullet.RewriteSuggestion
			if len(suggestion) > 48 {
				suggestion = suggestion[:45] + "..."
			}
			sb.WriteString(fmt.Sprintf("  → %s\n", suggestion))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(weak) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more bullets", len(weak)-maxItemsToShow))
	}

	p.printBox("WEAK BULLETS", sb.String())
}

// PrintRecommendations outputs critical issues and the merged recommendation
// list. An empty list prints a single all-clear box.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRecommendations(record *types.AnalysisRecord) {
	if record == nil {
		return
	}
	if len(record.CriticalIssues) == 0 && len(record.Recommendations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO ISSUES FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	if len(record.CriticalIssues) > 0 {
		sb.WriteString(fmt.Sprintf("Critical issues (%d):\n", len(record.CriticalIssues)))
		for _, issue := range record.CriticalIssues {
			msg := issue.Description
			if len(msg) > 48 {
				msg = msg[:45] + "..."
			}
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", msg))
		}
		sb.WriteString("\n")
	}

	for i, rec := range record.Recommendations {
		msg := rec.Message
		if len(msg) > 45 {
			msg = msg[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("[%s] %s\n", rec.Priority, rec.Section))
		sb.WriteString(fmt.Sprintf("  %s\n", msg))
		if i < len(record.Recommendations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}
