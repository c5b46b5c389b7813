package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-scorer/internal/tier"
	"github.com/jonathan/cv-scorer/internal/types"
)

var (
	tokenTier string
	tokenTTL  time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a signed tier token",
	Long:  "Signs a tier token with TIER_SECRET for use as a Bearer token against the HTTP API or with --tier-token.",
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenTier, "tier", "premium", "Tier to encode: free or premium")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "Token lifetime")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, args []string) error {
	secret := os.Getenv("TIER_SECRET")
	if secret == "" {
		return fmt.Errorf("TIER_SECRET is required to sign tokens")
	}

	t := types.TierFree
	if tokenTier == "premium" {
		t = types.TierPremium
	} else if tokenTier != "free" {
		return fmt.Errorf("invalid tier %q: must be free or premium", tokenTier)
	}

	token, err := tier.NewResolver([]byte(secret)).IssueToken(t, tokenTTL)
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}

	fmt.Fprintln(os.Stdout, token)
	return nil
}
