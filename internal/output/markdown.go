package output

import (
	"fmt"
	"io"
	"time"

	"github.com/Biki-dev/Contrib-Aura-Farming/internal/format"
	"github.com/Biki-dev/Contrib-Aura-Farming/internal/model"
	"github.com/Biki-dev/Contrib-Aura-Farming/internal/service"
)

// defaultListedPRs bounds the pull requests listed per repository; the
// rest collapse into an "and N more" line. Presentation only, the
// underlying data is never truncated.
const defaultListedPRs = 5

// MarkdownFormatter formats output as Markdown
type MarkdownFormatter struct {
	// TopPRs overrides how many pull requests are listed per repository.
	// Zero means the default.
	TopPRs int
}

// Format outputs the pipeline result as Markdown
func (f *MarkdownFormatter) Format(result *service.Result, w io.Writer) error {
	title := "Merged contributions"
	if result.Profile != nil {
		title = fmt.Sprintf("%s's merged contributions", result.Profile.Login)
	}
	fmt.Fprintf(w, "# %s\n", title)
	fmt.Fprintf(w, "\n*Generated: %s*\n\n", time.Now().Format("2006-01-02 15:04"))

	if result.Profile != nil {
		f.formatProfile(result.Profile, result.MergedCount, w)
	} else {
		fmt.Fprintf(w, "**%d merged pull requests**\n\n", result.MergedCount)
	}

	if len(result.Repos) == 0 {
		fmt.Fprintln(w, "No merged pull requests found.")
		return nil
	}

	for _, repo := range result.Repos {
		f.formatRepo(repo, w)
	}

	return nil
}

func (f *MarkdownFormatter) formatProfile(p *model.Profile, mergedCount int, w io.Writer) {
	fmt.Fprintf(w, "**%s** (@%s)", p.DisplayName(), p.Login)
	if p.Bio != "" {
		fmt.Fprintf(w, " — %s", p.Bio)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "\n%d followers · %d following · %d merged pull requests\n\n",
		p.Followers, p.Following, mergedCount)
}

func (f *MarkdownFormatter) formatRepo(repo model.RepoSummary, w io.Writer) {
	fmt.Fprintf(w, "## [%s](%s) ★ %s\n\n", repo.FullName, repo.HTMLURL, format.Stars(repo.Stars))

	if repo.Description != "" {
		fmt.Fprintf(w, "%s\n\n", repo.Description)
	}

	limit := f.TopPRs
	if limit <= 0 {
		limit = defaultListedPRs
	}

	listed := repo.PullRequests
	extra := 0
	if len(listed) > limit {
		extra = len(listed) - limit
		listed = listed[:limit]
	}

	for _, pr := range listed {
		fmt.Fprintf(w, "- [#%d %s](%s)\n", pr.Number, pr.Title, pr.URL)
	}
	if extra > 0 {
		fmt.Fprintf(w, "- *and %d more…*\n", extra)
	}
	fmt.Fprintln(w)
}

// FormatCalendar outputs a contribution calendar as a Markdown summary
func (f *MarkdownFormatter) FormatCalendar(calendar *model.ContributionCalendar, w io.Writer) error {
	fmt.Fprintf(w, "# Contributions in %d\n\n", calendar.Year)
	fmt.Fprintf(w, "**%d contributions** across %d days\n\n", calendar.Total, len(calendar.Days))

	// Monthly rollup keeps the report compact while preserving totals.
	monthTotals := make(map[string]int)
	var months []string
	for _, day := range calendar.Days {
		if len(day.Date) < 7 {
			continue
		}
		month := day.Date[:7]
		if _, seen := monthTotals[month]; !seen {
			months = append(months, month)
		}
		monthTotals[month] += day.Count
	}

	fmt.Fprintln(w, "| Month | Contributions |")
	fmt.Fprintln(w, "|-------|---------------|")
	for _, month := range months {
		fmt.Fprintf(w, "| %s | %d |\n", month, monthTotals[month])
	}

	return nil
}
