package rewriting

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/cv-scorer/internal/llm"
	"github.com/jonathan/cv-scorer/internal/types"
)

// maxSuggestionLength truncates runaway model output; one bullet, one line.
const maxSuggestionLength = 220

// Rewriter attaches rewrite suggestions to weak bullets. With no client it
// always uses the rule-based path, which is the free tier's behavior.
type Rewriter struct {
	client llm.Client
}

// New creates a Rewriter. A nil client selects the rule-based path.
func New(client llm.Client) *Rewriter {
	return &Rewriter{client: client}
}

// buildPrompt asks for exactly one rewritten bullet, nothing else.
func buildPrompt(bullet types.BulletRecord, jobDescription string) string {
	var sb strings.Builder
	sb.WriteString("Rewrite this resume bullet so it opens with a strong action verb and includes a quantified result.\n")
	sb.WriteString("Keep every fact; invent nothing. Return ONLY the rewritten bullet, no markdown.\n\n")
	sb.WriteString("Bullet: ")
	sb.WriteString(bullet.OriginalText)
	if len(bullet.Issues) > 0 {
		sb.WriteString("\nKnown problems: ")
		sb.WriteString(strings.Join(bullet.Issues, "; "))
	}
	if jobDescription != "" {
		sb.WriteString("\n\nTarget job description (for vocabulary only):\n")
		sb.WriteString(jobDescription)
	}
	return sb.String()
}

// SuggestRewrites fills RewriteSuggestion on every weak bullet, in both the
// WeakBullets list and the corresponding Bullets entry. Each bullet's
// suggestion is independent; generation failures degrade to the rule-based
// suggestion and are never surfaced as errors.
func (r *Rewriter) SuggestRewrites(ctx context.Context, analysis *types.BulletAnalysis, jobDescription string) {
	for i := range analysis.WeakBullets {
		weak := &analysis.WeakBullets[i]
		weak.RewriteSuggestion = r.suggestOne(ctx, *weak, jobDescription)
		for j := range analysis.Bullets {
			full := &analysis.Bullets[j]
			if full.OriginalText == weak.OriginalText && full.RewriteSuggestion == "" {
				full.RewriteSuggestion = weak.RewriteSuggestion
				break
			}
		}
	}
}

// suggestOne tries the model once and falls back to the deterministic rewrite.
func (r *Rewriter) suggestOne(ctx context.Context, bullet types.BulletRecord, jobDescription string) string {
	if r.client == nil {
		return Suggest(bullet.OriginalText)
	}
	generated, err := r.client.GenerateContent(ctx, buildPrompt(bullet, jobDescription), llm.TierLite)
	if err != nil {
		log.Printf("rewrite generation failed, using rule-based fallback: %v", err)
		return Suggest(bullet.OriginalText)
	}
	generated = strings.TrimSpace(generated)
	if generated == "" {
		return Suggest(bullet.OriginalText)
	}
	if len(generated) > maxSuggestionLength {
		generated = generated[:maxSuggestionLength]
	}
	return generated
}

// Close releases the underlying client, if any.
func (r *Rewriter) Close() error {
	if r.client == nil {
		return nil
	}
	if err := r.client.Close(); err != nil {
		return fmt.Errorf("failed to close generation client: %w", err)
	}
	return nil
}
