package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_scorer",
	Short: "CV scoring and recommendation engine",
	Long:  "Scores a CV against a job description using ATS simulation, recruiter scan modeling, bullet quality analysis, and industry validation, then produces prioritized recommendations.",
}

func main() {
	// Load .env if present. Missing file is fine; env vars may come from the shell.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
