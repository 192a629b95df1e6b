package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Biki-dev/Contrib-Aura-Farming/config"
	"github.com/Biki-dev/Contrib-Aura-Farming/internal/ghclient"
	"github.com/Biki-dev/Contrib-Aura-Farming/internal/output"
	"github.com/Biki-dev/Contrib-Aura-Farming/internal/service"
	"github.com/Biki-dev/Contrib-Aura-Farming/internal/tui"
)

// NewCmdCalendar creates the calendar command.
func NewCmdCalendar(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar <username>",
		Short: "Show a user's contribution calendar",
		Long: `Fetches a user's contribution calendar for a given year via the
GitHub GraphQL API and renders it as a heatmap. Requires a token.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalendar(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "output", "o", "", "Output format (table, json, markdown)")
	cmd.Flags().StringVarP(&opts.Token, "token", "t", "", "GitHub personal access token (defaults to GITHUB_TOKEN)")
	cmd.Flags().IntVar(&opts.Year, "year", 0, "Calendar year (default: current year)")
	cmd.Flags().CountVarP(&opts.Verbosity, "verbose", "v", "Increase verbosity (-v info, -vv debug, -vvv trace)")
	cmd.Flags().Var(newTUIFlag(opts), "tui", "Enable/disable TUI progress (default: auto-detect)")

	return cmd
}

func runCalendar(cmd *cobra.Command, username string, opts *Options) error {
	ctx := cmd.Context()

	rt := setupRuntime(opts)
	rt.startTUI(tui.WithTasks(tui.CalendarTasks()))

	cfg, err := config.Load()
	if err != nil {
		rt.close()
		return fmt.Errorf("failed to load config: %w", err)
	}

	token := cfg.ResolveToken(opts.Token)
	client, err := ghclient.NewCalendarClient(token)
	if err != nil {
		rt.sendEvent(tui.TaskCalendar, tui.StatusError, tui.WithError(err))
		rt.close()
		return err
	}

	year := opts.Year
	if year == 0 {
		year = time.Now().Year()
	}

	rt.sendEvent(tui.TaskCalendar, tui.StatusRunning)

	session := service.NewCalendarSession(client)
	state := session.Fetch(ctx, username, year)
	if state.Err != nil {
		var calErr *ghclient.CalendarError
		if errors.As(state.Err, &calErr) && calErr.NoData() {
			rt.sendEvent(tui.TaskCalendar, tui.StatusComplete, tui.WithMessage("no data"))
			rt.close()
			fmt.Printf("No contributions found for %s in %d.\n", username, year)
			return nil
		}
		rt.sendEvent(tui.TaskCalendar, tui.StatusError, tui.WithError(state.Err))
		rt.close()
		return state.Err
	}

	rt.sendEvent(tui.TaskCalendar, tui.StatusComplete, tui.WithCount(len(state.Calendar.Days)))
	rt.close()

	format := output.Format(opts.Format)
	if format == "" {
		format = output.Format(cfg.DefaultFormat)
	}
	formatter := output.NewFormatter(format)
	return formatter.FormatCalendar(state.Calendar, os.Stdout)
}
