package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Biki-dev/Contrib-Aura-Farming/config"
	"github.com/Biki-dev/Contrib-Aura-Farming/internal/ghclient"
	"github.com/Biki-dev/Contrib-Aura-Farming/internal/log"
	"github.com/Biki-dev/Contrib-Aura-Farming/internal/model"
	"github.com/Biki-dev/Contrib-Aura-Farming/internal/output"
	"github.com/Biki-dev/Contrib-Aura-Farming/internal/render"
	"github.com/Biki-dev/Contrib-Aura-Farming/internal/service"
	"github.com/Biki-dev/Contrib-Aura-Farming/internal/tui"
)

// summaryRuntime bundles TUI-related state threaded through the summary command.
type summaryRuntime struct {
	useTUI  bool
	events  chan tui.Event
	tuiDone chan error
}

// startTUI initializes and starts the TUI goroutine if TUI mode is enabled.
func (rt *summaryRuntime) startTUI(opts ...tui.ModelOption) {
	if !rt.useTUI {
		return
	}
	rt.events = make(chan tui.Event, 100)
	rt.tuiDone = make(chan error, 1)
	go func() {
		rt.tuiDone <- tui.Run(rt.events, opts...)
	}()
}

// close closes the event channel and waits for the TUI to finish.
func (rt *summaryRuntime) close() {
	if rt.events == nil {
		return
	}
	close(rt.events)
	rt.events = nil
	if rt.tuiDone != nil {
		<-rt.tuiDone
	}
}

// sendEvent sends a task event to the TUI channel if it exists.
func (rt *summaryRuntime) sendEvent(task tui.TaskID, status tui.TaskStatus, opts ...tui.TaskEventOption) {
	if rt.events == nil {
		return
	}
	tui.SendTaskEvent(rt.events, task, status, opts...)
}

// addSummaryFlags adds the summary flags to a command.
func addSummaryFlags(cmd *cobra.Command, opts *Options) {
	cmd.Flags().StringVarP(&opts.Format, "output", "o", "", "Output format (table, json, markdown)")
	cmd.Flags().StringVarP(&opts.Token, "token", "t", "", "GitHub personal access token (defaults to GITHUB_TOKEN)")
	cmd.Flags().StringVar(&opts.SVGPath, "svg", "", "Write an SVG contribution card to the given path")
	cmd.Flags().StringVar(&opts.Theme, "theme", "", "SVG card theme (classic, midnight)")
	cmd.Flags().IntVar(&opts.Year, "year", 0, "Contribution calendar year for the SVG card (default: current year)")
	cmd.Flags().StringSliceVar(&opts.ExcludeRepos, "exclude", nil, "Repositories to exclude (owner/repo, repeatable)")
	cmd.Flags().CountVarP(&opts.Verbosity, "verbose", "v", "Increase verbosity (-v info, -vv debug, -vvv trace)")

	// TUI flag with tri-state: nil = auto, true = force, false = disable
	cmd.Flags().Var(newTUIFlag(opts), "tui", "Enable/disable TUI progress (default: auto-detect)")
}

func runSummary(cmd *cobra.Command, username string, opts *Options) error {
	ctx := cmd.Context()

	rt := setupRuntime(opts)
	rt.startTUI()

	cfg, err := config.Load()
	if err != nil {
		rt.close()
		return fmt.Errorf("failed to load config: %w", err)
	}

	token := cfg.ResolveToken(opts.Token)
	client := ghclient.NewClient(ctx, token)

	excluded := opts.ExcludeRepos
	if len(excluded) == 0 {
		excluded = cfg.ExcludeRepos
	}

	rt.sendEvent(tui.TaskSearch, tui.StatusRunning)
	rt.sendEvent(tui.TaskProfile, tui.StatusRunning)

	runner := service.NewRunner(client,
		service.WithProgress(rt.progressFunc()),
		service.WithExcludedRepos(excluded),
	)

	result, err := runner.Run(ctx, username)
	if err != nil {
		rt.sendEvent(tui.TaskSearch, tui.StatusError, tui.WithError(err))
		rt.close()
		return err
	}

	if result.Profile != nil {
		rt.sendEvent(tui.TaskProfile, tui.StatusComplete, tui.WithMessage(result.Profile.Login))
	} else {
		rt.sendEvent(tui.TaskProfile, tui.StatusSkipped)
	}

	if remaining, _, resetAt, limited := ghclient.GetRateLimitStatus(); limited && remaining == 0 {
		tui.SendEvent(rt.events, tui.RateLimitEvent{Limited: true, ResetAt: resetAt})
	}

	rt.close()

	if opts.SVGPath != "" {
		if err := writeSVGCard(ctx, result, token, username, opts, cfg); err != nil {
			return err
		}
	}

	format := output.Format(opts.Format)
	if format == "" {
		format = output.Format(cfg.DefaultFormat)
	}
	formatter := output.NewFormatter(format)
	if md, ok := formatter.(*output.MarkdownFormatter); ok {
		md.TopPRs = cfg.TopPRsPerRepo
	}
	return formatter.Format(result, os.Stdout)
}

// setupRuntime decides on TUI mode and initializes logging.
func setupRuntime(opts *Options) *summaryRuntime {
	useTUI := shouldUseTUI(opts)

	// Suppress logs during TUI to avoid interleaving with the display
	if useTUI {
		log.Initialize(opts.Verbosity, io.Discard)
	} else {
		log.Initialize(opts.Verbosity, os.Stderr)
	}

	return &summaryRuntime{useTUI: useTUI}
}

// progressFunc maps pipeline stages onto TUI task events.
func (rt *summaryRuntime) progressFunc() service.ProgressFunc {
	return func(stage service.Stage, count int) {
		switch stage {
		case service.StageSearch:
			rt.sendEvent(tui.TaskSearch, tui.StatusComplete, tui.WithCount(count))
			rt.sendEvent(tui.TaskEnrich, tui.StatusRunning)
		case service.StageEnrich:
			rt.sendEvent(tui.TaskEnrich, tui.StatusComplete, tui.WithCount(count))
			rt.sendEvent(tui.TaskRank, tui.StatusRunning)
		case service.StageRank:
			rt.sendEvent(tui.TaskRank, tui.StatusComplete, tui.WithCount(count))
		}
	}
}

// writeSVGCard renders the contribution card, attaching the calendar
// heatmap when one can be fetched.
func writeSVGCard(ctx context.Context, result *service.Result, token, username string, opts *Options, cfg *config.Config) error {
	calendar := fetchCardCalendar(ctx, token, username, opts.Year)

	theme := opts.Theme
	if theme == "" {
		theme = cfg.Theme
	}

	svg, err := render.Card(result, calendar, render.ThemeOrDefault(theme))
	if err != nil {
		return err
	}

	if err := os.WriteFile(opts.SVGPath, svg, 0o644); err != nil {
		return fmt.Errorf("failed to write SVG card: %w", err)
	}
	log.Info("wrote SVG card", "path", opts.SVGPath)
	return nil
}

// fetchCardCalendar fetches the contribution calendar for the card.
// The heatmap is best-effort: without a token or on error the card is
// rendered without it.
func fetchCardCalendar(ctx context.Context, token, username string, year int) *model.ContributionCalendar {
	if year == 0 {
		year = time.Now().Year()
	}

	client, err := ghclient.NewCalendarClient(token)
	if err != nil {
		log.Warn("skipping calendar heatmap", "error", err)
		return nil
	}

	calendar, err := client.FetchContributionCalendar(ctx, username, year)
	if err != nil {
		log.Warn("skipping calendar heatmap", "error", err)
		return nil
	}
	return calendar
}
