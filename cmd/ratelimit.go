package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Biki-dev/Contrib-Aura-Farming/config"
	"github.com/Biki-dev/Contrib-Aura-Farming/internal/ghclient"
)

// NewCmdRateLimit creates the ratelimit command.
func NewCmdRateLimit(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "ratelimit",
		Short: "Check GitHub API rate limit status",
		Long:  `Display the current GitHub API rate limit status for core, search, and GraphQL APIs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRateLimitStatus(cmd, opts)
		},
	}
}

func runRateLimitStatus(cmd *cobra.Command, opts *Options) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	client := ghclient.NewClient(cmd.Context(), cfg.ResolveToken(opts.Token))

	limits, err := client.RateLimits(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get rate limits: %w", err)
	}

	fmt.Println("GitHub API Rate Limits:")
	fmt.Println()

	if limits.Core != nil {
		fmt.Printf("Core API:   %d/%d remaining (resets in %s)\n",
			limits.Core.Remaining, limits.Core.Limit, untilReset(limits.Core.Reset.Time))
	}

	if limits.Search != nil {
		fmt.Printf("Search API: %d/%d remaining (resets in %s)\n",
			limits.Search.Remaining, limits.Search.Limit, untilReset(limits.Search.Reset.Time))
	}

	if limits.GraphQL != nil {
		fmt.Printf("GraphQL:    %d/%d remaining (resets in %s)\n",
			limits.GraphQL.Remaining, limits.GraphQL.Limit, untilReset(limits.GraphQL.Reset.Time))
	}

	return nil
}

func untilReset(reset time.Time) time.Duration {
	resetIn := time.Until(reset).Round(time.Second)
	if resetIn < 0 {
		resetIn = 0
	}
	return resetIn
}
