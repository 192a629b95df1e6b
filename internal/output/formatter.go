// Package output renders pipeline results as a terminal table, JSON, or
// Markdown.
package output

import (
	"io"

	"github.com/Biki-dev/Contrib-Aura-Farming/internal/model"
	"github.com/Biki-dev/Contrib-Aura-Farming/internal/service"
)

// Format represents the output format
type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Formatter defines the interface for output formatters
type Formatter interface {
	Format(result *service.Result, w io.Writer) error
	FormatCalendar(calendar *model.ContributionCalendar, w io.Writer) error
}

// NewFormatter creates a formatter for the specified format
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	case FormatMarkdown:
		return &MarkdownFormatter{}
	default:
		return &TableFormatter{}
	}
}
