// Package analysis orchestrates the full CV analysis pipeline: the ATS and
// recruiter simulations run concurrently, then industry validation, bullet
// scoring, score fusion, and recommendation consolidation run over their
// output. The resulting AnalysisRecord is read-only and, apart from AI
// rewrite text, deterministic for a given input.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-scorer/internal/ats"
	"github.com/jonathan/cv-scorer/internal/bullets"
	"github.com/jonathan/cv-scorer/internal/fusion"
	"github.com/jonathan/cv-scorer/internal/industry"
	"github.com/jonathan/cv-scorer/internal/recommend"
	"github.com/jonathan/cv-scorer/internal/recruiter"
	"github.com/jonathan/cv-scorer/internal/rewriting"
	"github.com/jonathan/cv-scorer/internal/textproc"
	"github.com/jonathan/cv-scorer/internal/types"
)

// Input floors. Upstream extraction promises at least this much text; anything
// shorter is rejected before analysis starts.
const (
	minCVLength  = 50
	minJobLength = 20
)

// Input validation errors. They surface to the caller as-is and analysis
// never starts.
var (
	ErrCVTooShort  = errors.New("cv text is missing or too short to analyze")
	ErrJobTooShort = errors.New("job description is missing or too short to analyze")
)

// Request carries one analysis invocation.
type Request struct {
	CVText         string
	JobDescription string
	TargetRole     string
	Tier           types.Tier
	Strategy       string
}

// Engine runs analyses. The premium rewriter is optional; when absent, or for
// free-tier requests, weak bullets get rule-based rewrite suggestions instead.
type Engine struct {
	premiumRewriter *rewriting.Rewriter
	pairs           []industry.ExclusivePair
}

// New creates an Engine. Pass a nil rewriter to disable AI rewrites entirely
// and nil pairs to use the default exclusive-industry table.
func New(premiumRewriter *rewriting.Rewriter, pairs []industry.ExclusivePair) *Engine {
	if pairs == nil {
		pairs = industry.DefaultExclusivePairs
	}
	return &Engine{premiumRewriter: premiumRewriter, pairs: pairs}
}

// validate applies the input floors.
func validate(req Request) error {
	if len(strings.TrimSpace(req.CVText)) < minCVLength {
		return ErrCVTooShort
	}
	if len(strings.TrimSpace(req.JobDescription)) < minJobLength {
		return ErrJobTooShort
	}
	return nil
}

// Analyze runs the full pipeline and assembles the AnalysisRecord. Failures
// after validation are wrapped as a single hard error with no partial results.
func (e *Engine) Analyze(ctx context.Context, req Request) (*types.AnalysisRecord, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	var (
		atsResult       *types.ATSResult
		recruiterResult *types.RecruiterResult
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		atsResult = ats.Score(req.CVText, req.JobDescription)
		return gctx.Err()
	})
	g.Go(func() error {
		recruiterResult = recruiter.Score(req.CVText, req.JobDescription, req.TargetRole)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("CV analysis failed: %w", err)
	}

	lines := textproc.Classify(req.CVText)
	// Bullet weighting follows the dominant industry of the combined text, not
	// the job posting alone; a CV can shift the maximum.
	bulletIndustry := industry.Classify(req.JobDescription + "\n" + req.CVText)
	bulletAnalysis := bullets.Analyze(lines, bulletIndustry)

	validity := industry.Validate(req.CVText, req.JobDescription, len(bulletAnalysis.Bullets), e.pairs)

	strategy := fusion.Select(req.Strategy)
	fused := strategy.Fuse(fusion.Input{
		ATS:       atsResult,
		Recruiter: recruiterResult,
		Bullets:   &bulletAnalysis,
		Keywords:  atsResult.KeywordMatch,
		Validity:  validity,
	})

	e.suggestRewrites(ctx, req, &bulletAnalysis)

	consolidated := recommend.Consolidate(atsResult, recruiterResult, &bulletAnalysis, fused.OverallScore)

	return &types.AnalysisRecord{
		ID:                uuid.New().String(),
		Timestamp:         time.Now().UTC(),
		Strategy:          strategy.Name(),
		Tier:              req.Tier,
		OverallScore:      fused.OverallScore,
		MatchPercentage:   fused.MatchPercentage,
		ATSAnalysis:       atsResult,
		RecruiterAnalysis: recruiterResult,
		BulletAnalysis:    &bulletAnalysis,
		Validity:          validity,
		IndustryMismatch:  validity.IsMismatch,
		CriticalIssues:    consolidated.CriticalIssues,
		Recommendations:   consolidated.Recommendations,
		Improvements:      consolidated.Improvements,
		Summary:           consolidated.Summary,
	}, nil
}

// suggestRewrites attaches rewrite suggestions to weak bullets. Premium
// requests go through the AI rewriter when one is configured; everything else
// takes the rule-based path. Generation failures degrade inside the rewriter
// and never surface here.
func (e *Engine) suggestRewrites(ctx context.Context, req Request, analysis *types.BulletAnalysis) {
	rw := e.premiumRewriter
	if req.Tier != types.TierPremium || rw == nil {
		rw = rewriting.New(nil)
	}
	rw.SuggestRewrites(ctx, analysis, req.JobDescription)
}
