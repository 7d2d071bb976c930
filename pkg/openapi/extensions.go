package openapi

import (
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-ctxgen/pkg/model"
)

const (
	formgenExtension = "x-formgen"
	ctxgenExtension  = "x-ctxgen"

	widgetInput    = "input"
	widgetSelect   = "select"
	widgetTextarea = "textarea"
)

// fieldHints is stored under x-formgen on every property schema.
type fieldHints struct {
	Label       string `json:"label"`
	Widget      string `json:"widget"`
	Placeholder string `json:"placeholder,omitempty"`
	Rows        int    `json:"rows,omitempty"`
	Order       int    `json:"order"`
}

// templateHints is stored under x-ctxgen on every operation. It carries the
// output layout, which has no place in the request schema.
type templateHints struct {
	Kind          string          `json:"kind"`
	Order         int             `json:"order"`
	Envelope      model.Envelope  `json:"envelope"`
	Sections      []model.Section `json:"sections,omitempty"`
	Checklist     []string        `json:"checklist,omitempty"`
	QualityChecks []string        `json:"qualityChecks,omitempty"`
}

// decodeExtension converts a loaded extension value (decoded JSON or raw
// message) into target.
func decodeExtension(ext map[string]any, key string, target any) (bool, error) {
	raw, ok := ext[key]
	if !ok || raw == nil {
		return false, nil
	}
	payload, err := json.Marshal(raw)
	if err != nil {
		return false, fmt.Errorf("openapi: encode %s: %w", key, err)
	}
	if err := json.Unmarshal(payload, target); err != nil {
		return false, fmt.Errorf("openapi: decode %s: %w", key, err)
	}
	return true, nil
}
