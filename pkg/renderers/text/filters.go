package text

import (
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-ctxgen/pkg/model"
	"github.com/goliatone/go-ctxgen/pkg/render/template"
)

// LinesFilter splits a value into its trimmed, non-empty lines. Layouts use it
// to itemise list fields.
const LinesFilter = "lines"

var (
	filtersOnce sync.Once
	filtersErr  error
)

// Globals are the envelope literals visible to every layout.
func Globals() map[string]any {
	return map[string]any{
		"entry_begin":   model.EntryBegin,
		"entry_end":     model.EntryEnd,
		"message_begin": model.MessageBegin,
		"message_end":   model.MessageEnd,
		"checkbox":      model.Checkbox,
	}
}

// prepareEngine registers the layout filters and globals on engine. pongo2
// filters are process wide, so they are registered once.
func prepareEngine(engine template.TemplateRenderer) error {
	filtersOnce.Do(func() {
		filtersErr = engine.RegisterFilter(LinesFilter, splitLines)
	})
	if filtersErr != nil {
		return fmt.Errorf("text: register filters: %w", filtersErr)
	}
	if err := engine.GlobalContext(Globals()); err != nil {
		return fmt.Errorf("text: template globals: %w", err)
	}
	return nil
}

// SplitLines returns the trimmed, non-empty lines of raw.
func SplitLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func splitLines(input any, _ any) (any, error) {
	if input == nil {
		return []string{}, nil
	}
	raw, ok := input.(string)
	if !ok {
		raw = fmt.Sprint(input)
	}
	lines := SplitLines(raw)
	if lines == nil {
		lines = []string{}
	}
	return lines, nil
}
