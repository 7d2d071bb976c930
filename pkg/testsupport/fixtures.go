package testsupport

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-ctxgen/pkg/catalog"
	"github.com/goliatone/go-ctxgen/pkg/form"
	"github.com/goliatone/go-ctxgen/pkg/model"
)

// FixedTime is the instant used by deterministic assembly tests:
// Tuesday 2025-03-04 09:05:06.789 at UTC+02:00.
var FixedTime = time.Date(2025, time.March, 4, 9, 5, 6, 789_000_000, time.FixedZone("EET", 2*60*60))

// FixedClock returns a clock that always reports FixedTime.
func FixedClock() func() time.Time {
	return func() time.Time { return FixedTime }
}

// BugReportScenario is the canonical bug report input used across packages.
func BugReportScenario() map[string]string {
	return map[string]string{
		"Bug Title":          "Login fails",
		"Current Behavior":   "500 error",
		"Expected Behavior":  "Login succeeds",
		"Steps to Reproduce": "1. Go to login 2. Submit",
		"Environment":        "macOS 14, Go 1.23",
	}
}

// FeatureRequestScenario is a feature request with list valued fields.
func FeatureRequestScenario() map[string]string {
	return map[string]string{
		"Feature Name":        "Dark mode",
		"Feature Description": "Offer a dark theme",
		"User Stories":        "As a user, I want a dark theme\n\n  As an admin, I want a default  \n",
		"Acceptance Criteria": "Toggle persists",
		"Priority":            "High",
	}
}

// WebAppScenario is a web application specification carrying markup
// characters that the XML format must escape.
func WebAppScenario() map[string]string {
	return map[string]string{
		"Project Name":           "Task Board",
		"Project Description":    "Shared kanban boards for small teams",
		"Target Users":           "Small teams",
		"Core Features":          "Boards and cards\nDrag & drop ordering\n<Realtime> sync",
		"Frontend Framework":     "React",
		"Backend Framework":      "Go (Gin)",
		"Database":               "PostgreSQL",
		"Authentication":         "OAuth with GitHub",
		"Styling/CSS":            "Tailwind CSS",
		"Technical Requirements": "Page load under 2 seconds\nMap<String, Integer> caches",
		"Deployment":             "Docker on Fly.io",
	}
}

// MustState renders kind in a fresh session and applies values by label.
func MustState(t *testing.T, kind model.TemplateKind, values map[string]string) *form.State {
	t.Helper()

	state, err := form.NewSession(catalog.Default()).Render(kind)
	if err != nil {
		t.Fatalf("render %s: %v", kind, err)
	}
	for label, value := range values {
		if err := state.Set(label, value); err != nil {
			t.Fatalf("set %q: %v", label, err)
		}
	}
	return state
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
