package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-scorer/internal/server"
)

var (
	servePort       int
	serveUseBrowser bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the analysis HTTP server",
	Long:  "Starts the HTTP API. DATABASE_URL enables the PostgreSQL store (in-memory otherwise), GEMINI_API_KEY enables AI rewrites for premium callers, and TIER_SECRET verifies tier tokens.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "HTTP listen port (default 8080, or PORT env var)")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Render JS-heavy job URLs in a headless browser")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	port := servePort
	if port == 0 {
		if p, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
			port = p
		}
	}
	if port == 0 {
		port = 8080
	}

	srv, err := server.New(context.Background(), server.Config{
		Port:        port,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		TierSecret:  os.Getenv("TIER_SECRET"),
		UseBrowser:  serveUseBrowser,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	return srv.Start()
}
