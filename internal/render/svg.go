// Package render produces the shareable SVG contribution card.
package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/Biki-dev/Contrib-Aura-Farming/internal/format"
	"github.com/Biki-dev/Contrib-Aura-Farming/internal/model"
	"github.com/Biki-dev/Contrib-Aura-Farming/internal/service"
)

const (
	svgWidth = 800

	headerHeight  = 110
	repoRowHeight = 64
	heatmapHeight = 140
	footerHeight  = 40

	// maxCardRepos bounds the repositories drawn on the card; the data
	// set itself is never truncated.
	maxCardRepos = 6
	// maxCardPRs bounds pull request titles shown per repository.
	maxCardPRs = 3
)

//go:embed templates/contribcard.svg.tmpl
var contribcardTemplate string

var contribcardTmpl = template.Must(
	template.New("contribcard").
		Funcs(template.FuncMap{
			"mul": func(a, b int) int { return a * b },
			"add": func(a, b int) int { return a + b },
			"esc": xmlEscaper.Replace,
		}).
		Parse(contribcardTemplate),
)

// xmlEscaper escapes text interpolated into SVG markup.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Theme holds the card color palette.
type Theme struct {
	Background string
	CardBg     string
	Border     string
	Text       string
	TextMuted  string
	Accent     string
	HeatLevels [5]string
}

// Themes are the available card palettes, keyed by config name.
var Themes = map[string]Theme{
	"classic": {
		Background: "#ffffff",
		CardBg:     "#f9fafb",
		Border:     "#e5e7eb",
		Text:       "#111827",
		TextMuted:  "#6b7280",
		Accent:     "#2563eb",
		HeatLevels: [5]string{"#ebedf0", "#9be9a8", "#40c463", "#30a14e", "#216e39"},
	},
	"midnight": {
		Background: "#0f172a",
		CardBg:     "#1e293b",
		Border:     "#334155",
		Text:       "#f8fafc",
		TextMuted:  "#94a3b8",
		Accent:     "#22d3ee",
		HeatLevels: [5]string{"#1e293b", "#14532d", "#15803d", "#22c55e", "#86efac"},
	},
}

// ThemeOrDefault resolves a theme name, falling back to classic.
func ThemeOrDefault(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["classic"]
}

type repoViewModel struct {
	Y           int
	FullName    string
	Description string
	Stars       string
	PRCount     int
	PRTitles    []string
}

type heatCell struct {
	X     int
	Y     int
	Color string
}

type cardViewModel struct {
	Width  int
	Height int
	Theme  Theme

	Title       string
	Login       string
	Bio         string
	Followers   int
	Following   int
	MergedCount int

	Repos []repoViewModel

	HasCalendar   bool
	CalendarYear  int
	CalendarTotal int
	HeatmapY      int
	HeatCells     []heatCell

	FooterY int
}

// Card renders the pipeline result, and optionally a contribution
// calendar, as an SVG image.
func Card(result *service.Result, calendar *model.ContributionCalendar, theme Theme) ([]byte, error) {
	vm := cardViewModel{
		Width:       svgWidth,
		Theme:       theme,
		MergedCount: result.MergedCount,
	}

	if result.Profile != nil {
		vm.Title = result.Profile.DisplayName()
		vm.Login = result.Profile.Login
		vm.Bio = format.TruncateToWidth(result.Profile.Bio, 90)
		vm.Followers = result.Profile.Followers
		vm.Following = result.Profile.Following
	} else {
		vm.Title = "Merged contributions"
	}

	repos := result.Repos
	if len(repos) > maxCardRepos {
		repos = repos[:maxCardRepos]
	}

	y := headerHeight
	for _, repo := range repos {
		titles := prTitles(repo.PullRequests)
		vm.Repos = append(vm.Repos, repoViewModel{
			Y:           y,
			FullName:    repo.FullName,
			Description: format.TruncateToWidth(repo.Description, 70),
			Stars:       format.Stars(repo.Stars),
			PRCount:     len(repo.PullRequests),
			PRTitles:    titles,
		})
		y += repoRowHeight + 14*len(titles)
	}

	if calendar != nil {
		vm.HasCalendar = true
		vm.CalendarYear = calendar.Year
		vm.CalendarTotal = calendar.Total
		vm.HeatmapY = y + 20
		vm.HeatCells = heatCells(calendar, theme, vm.HeatmapY)
		y += heatmapHeight
	}

	vm.FooterY = y + footerHeight/2
	vm.Height = y + footerHeight

	var buf bytes.Buffer
	if err := contribcardTmpl.Execute(&buf, vm); err != nil {
		return nil, fmt.Errorf("render card: %w", err)
	}
	return buf.Bytes(), nil
}

func prTitles(prs []model.PullRequest) []string {
	n := len(prs)
	if n > maxCardPRs {
		n = maxCardPRs
	}
	titles := make([]string, 0, n)
	for _, pr := range prs[:n] {
		titles = append(titles, format.TruncateToWidth(fmt.Sprintf("#%d %s", pr.Number, pr.Title), 60))
	}
	return titles
}

// heatCells lays out one 10x10 cell per day, columns per week. The
// first day is shifted to its weekday row so the columns line up with
// real calendar weeks.
func heatCells(calendar *model.ContributionCalendar, theme Theme, originY int) []heatCell {
	max := calendar.MaxDailyCount()
	offset := calendar.LeadingWeekdayOffset()

	cells := make([]heatCell, 0, len(calendar.Days))
	for i, day := range calendar.Days {
		pos := i + offset
		week := pos / 7
		weekday := pos % 7
		cells = append(cells, heatCell{
			X:     24 + week*14,
			Y:     originY + 30 + weekday*14,
			Color: heatColor(day.Count, max, theme),
		})
	}
	return cells
}

func heatColor(count, max int, theme Theme) string {
	if count == 0 || max == 0 {
		return theme.HeatLevels[0]
	}
	idx := 1 + (count*3)/max
	if idx > 4 {
		idx = 4
	}
	return theme.HeatLevels[idx]
}
