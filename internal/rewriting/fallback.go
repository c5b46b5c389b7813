// Package rewriting produces advisory rewrite suggestions for weak bullets.
// Suggestions are attached to bullet records but never influence scores.
package rewriting

import (
	"strings"

	"github.com/jonathan/cv-scorer/internal/textproc"
)

// taskOpenerReplacements maps duty-style openers to a strong verb. Matching is
// case-insensitive against the start of the bullet.
var taskOpenerReplacements = []struct {
	opener      string
	replacement string
}{
	{"responsible for managing", "Led"},
	{"responsible for", "Led"},
	{"duties included", "Delivered"},
	{"duties include", "Delivered"},
	{"tasked with", "Drove"},
	{"in charge of", "Led"},
	{"worked on", "Built"},
	{"helped with", "Contributed to"},
}

// Suggest produces a deterministic rule-based rewrite suggestion: duty-style
// openers are replaced with a strong verb, and a missing metric is called out.
// This is also the degradation path when AI generation fails.
func Suggest(bulletText string) string {
	rewritten := strings.TrimSpace(bulletText)
	lower := strings.ToLower(rewritten)

	for _, r := range taskOpenerReplacements {
		if strings.HasPrefix(lower, r.opener) {
			rest := strings.TrimSpace(rewritten[len(r.opener):])
			rewritten = r.replacement + " " + rest
			break
		}
	}

	if !textproc.HasStrongVerb(rewritten) && !startsWithReplacement(rewritten) {
		rewritten = "Delivered " + lowerFirst(rewritten)
	}

	if !textproc.HasMetric(rewritten) {
		rewritten += " [add a number: %, $, time saved, or team size]"
	}
	return rewritten
}

// startsWithReplacement reports whether the bullet already begins with one of
// the replacement verbs, so we do not prepend a second one.
func startsWithReplacement(s string) bool {
	lower := strings.ToLower(s)
	for _, r := range taskOpenerReplacements {
		if strings.HasPrefix(lower, strings.ToLower(r.replacement)+" ") {
			return true
		}
	}
	return false
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
