package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-scorer/internal/analysis"
	"github.com/jonathan/cv-scorer/internal/config"
	"github.com/jonathan/cv-scorer/internal/fetch"
	"github.com/jonathan/cv-scorer/internal/llm"
	"github.com/jonathan/cv-scorer/internal/observability"
	"github.com/jonathan/cv-scorer/internal/rewriting"
	"github.com/jonathan/cv-scorer/internal/schemas"
	"github.com/jonathan/cv-scorer/internal/tier"
)

var (
	analyzeCVPath     string
	analyzeJobPath    string
	analyzeJobURL     string
	analyzeTargetRole string
	analyzeStrategy   string
	analyzeTierToken  string
	analyzeConfigPath string
	analyzeUseBrowser bool
	analyzeVerbose    bool
	analyzeBasic      bool
	analyzeOutPath    string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a CV against a job posting",
	Long:  "Runs the full analysis pipeline on a CV and a job posting (from a file or a URL) and prints the resulting record as JSON. With --verbose, a human-readable breakdown is printed to stderr.",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeCVPath, "cv", "", "Path to the CV text file (required)")
	analyzeCmd.Flags().StringVar(&analyzeJobPath, "job", "", "Path to the job posting text file")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL of the job posting to fetch")
	analyzeCmd.Flags().StringVar(&analyzeTargetRole, "target-role", "", "Role title to check the CV headline against")
	analyzeCmd.Flags().StringVar(&analyzeStrategy, "strategy", "", "Scoring strategy: enhanced or legacy (default enhanced)")
	analyzeCmd.Flags().StringVar(&analyzeTierToken, "tier-token", "", "Signed tier token; omit for the free tier")
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to a JSON config file with flag defaults")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Render the job URL in a headless browser when the static page is JS-heavy")
	analyzeCmd.Flags().BoolVar(&analyzeVerbose, "verbose", false, "Print a detailed analysis breakdown")
	analyzeCmd.Flags().BoolVar(&analyzeBasic, "basic", false, "Run the reduced keyword-only analysis instead of the full pipeline")
	analyzeCmd.Flags().StringVar(&analyzeOutPath, "out", "", "Write the JSON record to this file instead of stdout")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := config.Config{
		CV:         analyzeCVPath,
		Job:        analyzeJobPath,
		JobURL:     analyzeJobURL,
		TargetRole: analyzeTargetRole,
		Strategy:   analyzeStrategy,
		UseBrowser: analyzeUseBrowser,
		Verbose:    analyzeVerbose,
	}

	if analyzeConfigPath != "" {
		fileCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	cfg.APIKey = firstNonEmpty(cfg.APIKey, os.Getenv("GEMINI_API_KEY"))
	cfg.TierSecret = firstNonEmpty(cfg.TierSecret, os.Getenv("TIER_SECRET"))

	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.CV == "" {
		return fmt.Errorf("--cv is required")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("one of --job or --job-url is required")
	}

	cvBytes, err := os.ReadFile(cfg.CV)
	if err != nil {
		return fmt.Errorf("failed to read CV file: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 3*time.Minute)
	defer cancel()

	jobText, err := loadJobText(ctx, cfg)
	if err != nil {
		return err
	}

	callerTier := tier.NewResolver([]byte(cfg.TierSecret)).Resolve(analyzeTierToken)

	if analyzeBasic {
		result, err := analysis.AnalyzeBasic(analysis.Request{
			CVText:         string(cvBytes),
			JobDescription: jobText,
			Tier:           callerTier,
		})
		if err != nil {
			return err
		}
		return writeJSON(result)
	}

	var rewriter *rewriting.Rewriter
	if cfg.APIKey != "" {
		client, err := llm.NewGeminiClient(ctx, cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to initialize Gemini client: %w", err)
		}
		rewriter = rewriting.New(client)
		defer rewriter.Close()
	}

	engine := analysis.New(rewriter, nil)
	record, err := engine.Analyze(ctx, analysis.Request{
		CVText:         string(cvBytes),
		JobDescription: jobText,
		TargetRole:     cfg.TargetRole,
		Tier:           callerTier,
		Strategy:       cfg.Strategy,
	})
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintScores(record)
		printer.PrintKeywords(record)
		printer.PrintWeakBullets(record)
		printer.PrintRecommendations(record)
	}

	payload, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode analysis record: %w", err)
	}

	schemaPath := schemas.ResolveSchemaPath("schemas/analysis_record.schema.json")
	if err := schemas.ValidateJSONFile(schemaPath, payload); err != nil {
		return fmt.Errorf("analysis record failed schema validation: %w", err)
	}

	if analyzeOutPath != "" {
		if err := os.WriteFile(analyzeOutPath, append(payload, '\n'), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Analysis written to %s (overall score %d)\n", analyzeOutPath, record.OverallScore)
		return nil
	}

	fmt.Fprintln(os.Stdout, string(payload))
	return nil
}

func loadJobText(ctx context.Context, cfg config.Config) (string, error) {
	if cfg.Job != "" {
		data, err := os.ReadFile(cfg.Job)
		if err != nil {
			return "", fmt.Errorf("failed to read job file: %w", err)
		}
		return string(data), nil
	}
	text, err := fetch.FromURL(ctx, cfg.JobURL, cfg.UseBrowser, cfg.Verbose)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job posting: %w", err)
	}
	return text, nil
}

func writeJSON(v any) error {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	if analyzeOutPath != "" {
		return os.WriteFile(analyzeOutPath, append(payload, '\n'), 0o644)
	}
	fmt.Fprintln(os.Stdout, string(payload))
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
