package cmd

import (
	"fmt"
	"strconv"

	"github.com/Biki-dev/Contrib-Aura-Farming/internal/tui"
)

// tuiFlag is a pflag.Value for --tui with three states: unset means
// auto-detect, otherwise any boolean spelling forces the mode.
type tuiFlag struct {
	opts *Options
}

// newTUIFlag creates a new tuiFlag bound to the given options.
func newTUIFlag(opts *Options) *tuiFlag {
	return &tuiFlag{opts: opts}
}

func (f *tuiFlag) String() string {
	if f.opts.TUI == nil {
		return "auto"
	}
	return strconv.FormatBool(*f.opts.TUI)
}

func (f *tuiFlag) Set(s string) error {
	if s == "auto" {
		f.opts.TUI = nil
		return nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("invalid value %q: use true, false, or auto", s)
	}
	f.opts.TUI = &v
	return nil
}

func (f *tuiFlag) Type() string {
	return "bool"
}

func (f *tuiFlag) IsBoolFlag() bool {
	return true
}

// shouldUseTUI determines whether to use TUI based on options.
func shouldUseTUI(opts *Options) bool {
	// Disable TUI when verbose logging is requested so logs are visible
	if opts.Verbosity > 0 {
		return false
	}
	if opts.TUI != nil {
		return *opts.TUI
	}
	return tui.ShouldUseTUI()
}
