package form

import (
	"strings"

	"github.com/goliatone/go-ctxgen/pkg/model"
)

// Collect extracts the entered values keyed by label. Values are trimmed,
// multi-line values equal to their placeholder count as empty, and empty
// values are dropped. Required fields are not enforced here.
func Collect(state *State) map[string]string {
	out := make(map[string]string)
	if state == nil {
		return out
	}
	for _, field := range state.Fields() {
		raw, _ := state.Value(field.Label)
		if value, ok := CollectValue(field, raw); ok {
			out[field.Label] = value
		}
	}
	return out
}

// CollectValue normalises a single raw value for field.
func CollectValue(field model.Field, raw string) (string, bool) {
	value := strings.TrimSpace(raw)
	if in, ok := field.Input.(model.MultiLine); ok {
		if placeholder := strings.TrimSpace(in.Placeholder); placeholder != "" && value == placeholder {
			return "", false
		}
	}
	if value == "" {
		return "", false
	}
	return value, true
}

// Missing returns the labels of required fields that have no collected value.
// Front-ends use it for a cosmetic notice only; generation is never blocked.
func Missing(state *State) []string {
	if state == nil {
		return nil
	}
	data := Collect(state)
	var out []string
	for _, field := range state.Fields() {
		if !field.Required {
			continue
		}
		if _, ok := data[field.Label]; !ok {
			out = append(out, field.Label)
		}
	}
	return out
}
