package recruiter

import (
	"math"

	"github.com/jonathan/cv-scorer/internal/rewriting"
	"github.com/jonathan/cv-scorer/internal/textproc"
	"github.com/jonathan/cv-scorer/internal/types"
)

// Simple bullet factor scoring. The industry-aware variant lives in the
// bullets package; this one models the recruiter's quick read.
const (
	metricFactor       = 30
	strongVerbFactor   = 25
	outcomeFactor      = 25
	taskLanguageFactor = -20

	weakThreshold   = 40
	strongThreshold = 80
)

// scoreBullet computes the raw factor sum. It is not hard-clamped: a bullet
// with only task language comes out negative and is floored in the record.
func scoreBullet(text string) (int, types.BulletRecord) {
	rec := types.BulletRecord{
		OriginalText:       text,
		HasActionVerb:      textproc.HasStrongVerb(text),
		HasMetric:          textproc.HasMetric(text),
		HasBusinessOutcome: textproc.HasBusinessOutcome(text),
		Issues:             []string{},
	}
	raw := 0
	if rec.HasMetric {
		raw += metricFactor
	} else {
		rec.Issues = append(rec.Issues, "no quantified result")
	}
	if rec.HasActionVerb {
		raw += strongVerbFactor
	} else {
		rec.Issues = append(rec.Issues, "no strong action verb")
	}
	if rec.HasBusinessOutcome {
		raw += outcomeFactor
	} else {
		rec.Issues = append(rec.Issues, "no business outcome named")
	}
	if textproc.HasTaskLanguage(text) {
		raw += taskLanguageFactor
		rec.Issues = append(rec.Issues, "duty language instead of achievement language")
	}

	rec.Score = raw
	if rec.Score < 0 {
		rec.Score = 0
	}
	return raw, rec
}

// analyzeBullets scores every bullet with the quick-read factors. Weak bullets
// are collected with a rule-based improvement suggestion attached.
func analyzeBullets(lines []textproc.Line) types.BulletAnalysis {
	analysis := types.BulletAnalysis{
		Bullets:     []types.BulletRecord{},
		WeakBullets: []types.BulletRecord{},
	}
	total := 0
	for _, text := range textproc.Bullets(lines) {
		raw, rec := scoreBullet(text)
		total += raw
		if raw < weakThreshold {
			rec.RewriteSuggestion = rewriting.Suggest(text)
			analysis.WeakBullets = append(analysis.WeakBullets, rec)
		}
		if raw > strongThreshold {
			analysis.StrongCount++
		}
		analysis.Bullets = append(analysis.Bullets, rec)
	}
	if n := len(analysis.Bullets); n > 0 {
		avg := math.Round(float64(total) / float64(n))
		if avg < 0 {
			avg = 0
		}
		analysis.AverageScore = int(avg)
	}
	return analysis
}
