package cmd

import (
	"github.com/spf13/cobra"
)

// New creates the root command with all subcommands registered.
func New() *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:   "aura <username>",
		Short: "Summarize a GitHub user's merged pull requests",
		Long: `A CLI tool that searches a GitHub user's merged pull requests,
groups them by repository, enriches each repository with stars and
description, and ranks the result by popularity.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd, args[0], opts)
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	addSummaryFlags(rootCmd, opts)

	// Register subcommands
	rootCmd.AddCommand(NewCmdCalendar(opts))
	rootCmd.AddCommand(NewCmdConfig())
	rootCmd.AddCommand(NewCmdVersion())
	rootCmd.AddCommand(NewCmdRateLimit(opts))

	return rootCmd
}
