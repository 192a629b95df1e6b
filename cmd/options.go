package cmd

// Options holds the shared command-line options for the aura CLI.
type Options struct {
	Token     string // GitHub personal access token (optional for REST calls)
	Format    string // Output format (table, json, markdown)
	Theme     string // SVG card theme
	Year      int    // Calendar year (0 = current year)
	SVGPath   string // Write an SVG contribution card to this path
	Verbosity int
	TUI       *bool // nil = auto-detect, true = force TUI, false = disable TUI

	ExcludeRepos []string // "owner/repo" keys dropped from the results
}

// Option is a functional option for configuring Options.
type Option func(*Options)

// NewOptions creates a new Options with defaults and applies any provided options.
func NewOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithToken sets the GitHub personal access token.
func WithToken(token string) Option {
	return func(o *Options) {
		o.Token = token
	}
}

// WithFormat sets the output format (table, json, markdown).
func WithFormat(format string) Option {
	return func(o *Options) {
		o.Format = format
	}
}

// WithTheme sets the SVG card theme.
func WithTheme(theme string) Option {
	return func(o *Options) {
		o.Theme = theme
	}
}

// WithYear sets the contribution calendar year.
func WithYear(year int) Option {
	return func(o *Options) {
		o.Year = year
	}
}

// WithSVGPath sets the SVG card output path.
func WithSVGPath(path string) Option {
	return func(o *Options) {
		o.SVGPath = path
	}
}

// WithVerbosity sets the verbosity level.
func WithVerbosity(v int) Option {
	return func(o *Options) {
		o.Verbosity = v
	}
}

// WithTUI controls TUI mode (nil = auto-detect, true = force, false = disable).
func WithTUI(tui *bool) Option {
	return func(o *Options) {
		o.TUI = tui
	}
}

// WithExcludeRepos sets the excluded repository keys.
func WithExcludeRepos(repos []string) Option {
	return func(o *Options) {
		o.ExcludeRepos = repos
	}
}
