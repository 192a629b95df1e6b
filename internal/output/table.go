package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/Biki-dev/Contrib-Aura-Farming/internal/format"
	"github.com/Biki-dev/Contrib-Aura-Farming/internal/model"
	"github.com/Biki-dev/Contrib-Aura-Farming/internal/service"
)

// TableFormatter formats output as a terminal table
type TableFormatter struct{}

var (
	headerColor = color.New(color.Bold)
	starColor   = color.New(color.FgYellow)
	dimColor    = color.New(color.Faint)
	linkColor   = color.New(color.FgCyan)
)

// hyperlink creates a clickable terminal hyperlink using OSC 8.
func hyperlink(text, url string) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return text
	}
	return fmt.Sprintf("\033]8;;%s\033\\%s\033]8;;\033\\", url, text)
}

// terminalWidth returns the usable terminal width, defaulting to 100
// columns when stdout is not a terminal.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 100
	}
	return width
}

// Format outputs the pipeline result as a table
func (f *TableFormatter) Format(result *service.Result, w io.Writer) error {
	if result.Profile != nil {
		f.formatProfile(result.Profile, result.MergedCount, w)
	} else {
		fmt.Fprintf(w, "%s merged pull requests\n\n", headerColor.Sprint(result.MergedCount))
	}

	if len(result.Repos) == 0 {
		fmt.Fprintln(w, "No merged pull requests found.")
		return nil
	}

	nameWidth := len("REPOSITORY")
	for _, repo := range result.Repos {
		if w := format.DisplayWidth(repo.FullName); w > nameWidth {
			nameWidth = w
		}
	}

	descWidth := terminalWidth() - nameWidth - 18
	if descWidth < 20 {
		descWidth = 20
	}

	fmt.Fprintf(w, "%s  %s  %s  %s\n",
		headerColor.Sprint(format.PadRight("STARS", 7)),
		headerColor.Sprint(format.PadRight("REPOSITORY", nameWidth)),
		headerColor.Sprint("PRS"),
		headerColor.Sprint("DESCRIPTION"),
	)

	for _, repo := range result.Repos {
		desc := repo.Description
		if repo.Fallback {
			desc = dimColor.Sprint(desc)
		}

		fmt.Fprintf(w, "%s  %s  %s  %s\n",
			format.PadRight(starColor.Sprint("★ "+format.Stars(repo.Stars)), 7),
			format.PadRight(linkColor.Sprint(hyperlink(repo.FullName, repo.HTMLURL)), nameWidth),
			format.PadRight(fmt.Sprintf("%d", len(repo.PullRequests)), 3),
			format.TruncateToWidth(desc, descWidth),
		)
	}

	fmt.Fprintf(w, "\n%d repositories\n", len(result.Repos))
	return nil
}

func (f *TableFormatter) formatProfile(p *model.Profile, mergedCount int, w io.Writer) {
	fmt.Fprintf(w, "%s %s\n", headerColor.Sprint(p.DisplayName()), dimColor.Sprint("@"+p.Login))
	if p.Bio != "" {
		fmt.Fprintln(w, p.Bio)
	}
	fmt.Fprintf(w, "%d followers · %d following · %s merged pull requests\n\n",
		p.Followers, p.Following, headerColor.Sprint(mergedCount))
}

// heatmapShades maps contribution intensity to block characters, darkest
// last.
var heatmapShades = []rune{'·', '░', '▒', '▓', '█'}

// FormatCalendar renders a contribution calendar as a weekly heatmap
// grid, one row per weekday, one column per week.
func (f *TableFormatter) FormatCalendar(calendar *model.ContributionCalendar, w io.Writer) error {
	fmt.Fprintf(w, "%s contributions in %d\n\n",
		headerColor.Sprint(calendar.Total), calendar.Year)

	max := calendar.MaxDailyCount()

	// Rebuild the week columns the calendar was flattened from. The
	// first column is padded so each row stays on its weekday.
	offset := calendar.LeadingWeekdayOffset()
	weeks := (offset + len(calendar.Days) + 6) / 7

	for row := 0; row < 7; row++ {
		for week := 0; week < weeks; week++ {
			idx := week*7 + row - offset
			if idx < 0 || idx >= len(calendar.Days) {
				fmt.Fprint(w, " ")
				continue
			}
			fmt.Fprint(w, string(shadeFor(calendar.Days[idx].Count, max)))
		}
		fmt.Fprintln(w)
	}

	return nil
}

// shadeFor picks a heatmap shade for a daily count scaled to the year's
// maximum.
func shadeFor(count, max int) rune {
	if count == 0 || max == 0 {
		return heatmapShades[0]
	}
	idx := 1 + (count*(len(heatmapShades)-2))/max
	if idx >= len(heatmapShades) {
		idx = len(heatmapShades) - 1
	}
	return heatmapShades[idx]
}
