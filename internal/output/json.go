package output

import (
	"encoding/json"
	"io"

	"github.com/Biki-dev/Contrib-Aura-Farming/internal/model"
	"github.com/Biki-dev/Contrib-Aura-Farming/internal/service"
)

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format outputs the pipeline result as JSON
func (f *JSONFormatter) Format(result *service.Result, w io.Writer) error {
	encoder := json.NewEncoder(w)
	if f.Pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(result)
}

// FormatCalendar outputs a contribution calendar as JSON
func (f *JSONFormatter) FormatCalendar(calendar *model.ContributionCalendar, w io.Writer) error {
	encoder := json.NewEncoder(w)
	if f.Pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(calendar)
}
