package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-ctxgen/pkg/renderers/tui"
	"github.com/goliatone/go-ctxgen/pkg/testsupport"
)

// scriptedDriver answers prompts from a queue; every entry must match the
// prompt type it is consumed by.
type scriptedDriver struct {
	answers []any
	info    []string
}

func (s *scriptedDriver) next(kind string) (any, error) {
	if len(s.answers) == 0 {
		return nil, fmt.Errorf("no %s scripted", kind)
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

func (s *scriptedDriver) Input(_ context.Context, _ tui.InputConfig) (string, error) {
	answer, err := s.next("input")
	if err != nil {
		return "", err
	}
	value, ok := answer.(string)
	if !ok {
		return "", fmt.Errorf("input: expected string, got %T", answer)
	}
	return value, nil
}

func (s *scriptedDriver) TextArea(_ context.Context, _ tui.TextAreaConfig) (string, error) {
	return s.Input(context.Background(), tui.InputConfig{})
}

func (s *scriptedDriver) Select(_ context.Context, _ tui.SelectConfig) (int, error) {
	answer, err := s.next("select")
	if err != nil {
		return -1, err
	}
	value, ok := answer.(int)
	if !ok {
		return -1, fmt.Errorf("select: expected int, got %T", answer)
	}
	return value, nil
}

func (s *scriptedDriver) Confirm(_ context.Context, _ tui.ConfirmConfig) (bool, error) {
	answer, err := s.next("confirm")
	if err != nil {
		return false, err
	}
	value, ok := answer.(bool)
	if !ok {
		return false, fmt.Errorf("confirm: expected bool, got %T", answer)
	}
	return value, nil
}

func (s *scriptedDriver) Info(_ context.Context, msg string) error {
	s.info = append(s.info, msg)
	return nil
}

type harness struct {
	app       *app
	stdout    bytes.Buffer
	stderr    bytes.Buffer
	clipboard bytes.Buffer
}

func newHarness(t *testing.T, driver tui.PromptDriver) *harness {
	t.Helper()
	h := &harness{}
	h.app = newApp(&h.stdout, &h.stderr)
	h.app.clipboard = &h.clipboard
	h.app.now = testsupport.FixedClock()
	h.app.driver = driver
	return h
}

func (h *harness) run(t *testing.T, args ...string) int {
	t.Helper()
	config := filepath.Join(t.TempDir(), "ctxgen.yaml")
	if err := os.WriteFile(config, []byte("format: plain\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return runApp(h.app, append([]string{"--config", config}, args...))
}

func TestKinds(t *testing.T) {
	h := newHarness(t, nil)

	if code := h.run(t, "kinds"); code != 0 {
		t.Fatalf("exit %d: %s", code, h.stderr.String())
	}
	out := h.stdout.String()
	for _, kind := range []string{"app_development", "mcp_development", "bug_report", "feature_request", "web_app", "cli_tool", "mobile_app"} {
		if !strings.Contains(out, kind) {
			t.Fatalf("expected %s in output:\n%s", kind, out)
		}
	}
}

func TestFields_YAML(t *testing.T) {
	h := newHarness(t, nil)

	if code := h.run(t, "fields", "Feature Request", "--yaml"); code != 0 {
		t.Fatalf("exit %d: %s", code, h.stderr.String())
	}
	out := h.stdout.String()
	for _, want := range []string{"name: feature_name", "label: Acceptance Criteria", "input: multi_line", "- High"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestFields_UnknownKind(t *testing.T) {
	h := newHarness(t, nil)

	if code := h.run(t, "fields", "nonsense"); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(h.stderr.String(), "nonsense") {
		t.Fatalf("expected error to name the kind, got %q", h.stderr.String())
	}
}

func TestGenerate_SetFlagsToStdout(t *testing.T) {
	h := newHarness(t, nil)

	code := h.run(t, "generate", "bug_report",
		"--set", "Bug Title=Login fails",
		"--set", "environment=macOS 14",
		"--set", "current_behavior=500 on submit",
	)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, h.stderr.String())
	}

	out := h.stdout.String()
	for _, want := range []string{
		"--- CONTEXT ENTRY BEGIN ---\nGenerated by AI Context Template Builder\nTemplate: Bug Report\n",
		"Created: Tuesday, 2025-03-04T09:05:06.789+02:00",
		"BUG REPORT: Login fails",
		"CURRENT BEHAVIOR:\n500 on submit",
		"EXPECTED BEHAVIOR:\nNot specified",
		"ENVIRONMENT:\nmacOS 14",
		"--- USER MESSAGE BEGIN ---\n[Your request here]\n--- USER MESSAGE END ---\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "ERROR MESSAGES:") {
		t.Fatalf("optional empty field should be omitted:\n%s", out)
	}
	if !strings.Contains(h.stderr.String(), "Expected Behavior") {
		t.Fatalf("expected missing required notice, got %q", h.stderr.String())
	}
}

func TestGenerate_ValuesFileAndOutputDir(t *testing.T) {
	dir := t.TempDir()
	values := filepath.Join(dir, "values.yaml")
	if err := os.WriteFile(values, []byte("feature_name: Dark mode\nUser Stories: As a user, I want dark\n"), 0o644); err != nil {
		t.Fatalf("write values: %v", err)
	}
	outDir := filepath.Join(dir, "out")
	if err := os.Mkdir(outDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	h := newHarness(t, nil)
	code := h.run(t, "generate", "feature-request", "--values", values, "--format", "xml", "--output", outDir)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, h.stderr.String())
	}

	path := filepath.Join(outDir, "feature_request_context_20250304_090506.xml")
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(raw), "<feature_name>\nDark mode\n</feature_name>") ||
		!strings.Contains(string(raw), "<user_stories>\n<story>As a user, I want dark</story>\n</user_stories>") {
		t.Fatalf("unexpected document:\n%s", raw)
	}
	if !strings.Contains(h.stderr.String(), "application/xml") {
		t.Fatalf("expected MIME label in notice, got %q", h.stderr.String())
	}
	if h.stdout.Len() != 0 {
		t.Fatalf("expected nothing on stdout, got %q", h.stdout.String())
	}
}

func TestGenerate_Clipboard(t *testing.T) {
	t.Setenv("TMUX", "")
	h := newHarness(t, nil)

	if code := h.run(t, "generate", "bug_report", "--set", "Bug Title=x", "--clipboard"); code != 0 {
		t.Fatalf("exit %d: %s", code, h.stderr.String())
	}
	if !strings.HasPrefix(h.clipboard.String(), "\x1b]52;c;") {
		t.Fatalf("expected OSC 52 sequence, got %q", h.clipboard.String())
	}
}

func TestGenerate_Errors(t *testing.T) {
	cases := map[string][]string{
		"missing kind":   {"generate"},
		"bad set":        {"generate", "bug_report", "--set", "novalue"},
		"foreign field":  {"generate", "bug_report", "--set", "Feature Name=x"},
		"unknown format": {"generate", "bug_report", "--format", "pdf"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t, nil)
			if code := h.run(t, args...); code != 1 {
				t.Fatalf("expected exit 1, got %d (stdout %q)", code, h.stdout.String())
			}
		})
	}
}

func TestGenerate_Interactive(t *testing.T) {
	driver := &scriptedDriver{answers: []any{
		"Dark mode",                // Feature Name
		"Offer a dark theme",       // Feature Description
		"As a user, I want dark\n", // User Stories
		"",                         // Acceptance Criteria
		"",                         // Technical Requirements
		"",                         // Integration Points
		1,                          // Priority: Medium
	}}
	h := newHarness(t, driver)

	if code := h.run(t, "generate", "feature_request", "--interactive", "--format", "markdown"); code != 0 {
		t.Fatalf("exit %d: %s", code, h.stderr.String())
	}
	out := h.stdout.String()
	if !strings.Contains(out, "## Priority\n\nMedium\n") || !strings.Contains(out, "## User Stories\n\n- As a user, I want dark\n") {
		t.Fatalf("unexpected markdown:\n%s", out)
	}
	if len(driver.answers) != 0 {
		t.Fatalf("unconsumed answers: %v", driver.answers)
	}
}

func TestInteractive_SwitchDiscardsAndSaves(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "bug.txt")

	driver := &scriptedDriver{answers: []any{
		// feature request form
		"Dark mode", "Offer a dark theme", "", "", "", "", 0,
		5,    // menu: switch template
		true, // confirm discard
		2,    // bug_report
		// bug report form
		"Crash", "", "Boom", "", "", "", "",
		1,      // menu: save
		target, // path
		6,      // menu: quit
	}}
	h := newHarness(t, driver)

	if code := h.run(t, "interactive", "feature_request"); code != 0 {
		t.Fatalf("exit %d: %s", code, h.stderr.String())
	}
	raw, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	doc := string(raw)
	if !strings.Contains(doc, "BUG REPORT: Crash") {
		t.Fatalf("expected bug report document:\n%s", doc)
	}
	if strings.Contains(doc, "Dark mode") {
		t.Fatalf("values leaked across template switch:\n%s", doc)
	}
}

func TestInteractive_AbortExitsNonZero(t *testing.T) {
	h := newHarness(t, abortDriver{})

	if code := h.run(t, "interactive", "bug_report"); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(h.stderr.String(), "Aborted") {
		t.Fatalf("expected abort notice, got %q", h.stderr.String())
	}
}

type abortDriver struct{}

func (abortDriver) Input(context.Context, tui.InputConfig) (string, error) {
	return "", tui.ErrAborted
}

func (abortDriver) TextArea(context.Context, tui.TextAreaConfig) (string, error) {
	return "", tui.ErrAborted
}

func (abortDriver) Select(context.Context, tui.SelectConfig) (int, error) {
	return -1, tui.ErrAborted
}

func (abortDriver) Confirm(context.Context, tui.ConfirmConfig) (bool, error) {
	return false, tui.ErrAborted
}

func (abortDriver) Info(context.Context, string) error { return nil }

func TestSchema_ExportAndReload(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "templates.json")

	h := newHarness(t, nil)
	if code := h.run(t, "schema", "--output", schemaPath); code != 0 {
		t.Fatalf("exit %d: %s", code, h.stderr.String())
	}
	raw, err := os.ReadFile(schemaPath)
	if err != nil {
		t.Fatalf("read schema: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("schema is not JSON: %v", err)
	}

	reload := newHarness(t, nil)
	if code := reload.run(t, "--templates", schemaPath, "kinds"); code != 0 {
		t.Fatalf("exit %d: %s", code, reload.stderr.String())
	}
	if !strings.Contains(reload.stdout.String(), "bug_report") {
		t.Fatalf("expected kinds from custom templates:\n%s", reload.stdout.String())
	}
}

func TestGuide(t *testing.T) {
	h := newHarness(t, nil)
	if code := h.run(t, "guide", "CLI Tool"); code != 0 {
		t.Fatalf("exit %d: %s", code, h.stderr.String())
	}
	out := h.stdout.String()
	if !strings.Contains(out, "## CLI Tool Template") || strings.Contains(out, "## Mobile App Template") {
		t.Fatalf("unexpected guide:\n%s", out)
	}

	h = newHarness(t, nil)
	if code := h.run(t, "guide", "bug_report"); code != 1 {
		t.Fatalf("expected exit 1 for a kind without guide, got %d", code)
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	config := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(config, []byte("format: pdf\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	var stdout, stderr bytes.Buffer

	if code := run([]string{"--config", config, "kinds"}, &stdout, &stderr); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "invalid configuration") {
		t.Fatalf("expected config error, got %q", stderr.String())
	}
}
