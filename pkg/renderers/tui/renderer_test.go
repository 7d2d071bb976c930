package tui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-ctxgen/pkg/catalog"
	"github.com/goliatone/go-ctxgen/pkg/form"
	"github.com/goliatone/go-ctxgen/pkg/model"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	confirm      []bool
	textAreas    []string
	infoMessages []string
	inputPos     int
	selectPos    int
	confirmPos   int
	textPos      int

	inputCfgs  []InputConfig
	selectCfgs []SelectConfig
	textCfgs   []TextAreaConfig
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.inputCfgs = append(s.inputCfgs, cfg)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.selectCfgs = append(s.selectCfgs, cfg)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, cfg TextAreaConfig) (string, error) {
	s.textCfgs = append(s.textCfgs, cfg)
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func newState(t *testing.T, kind model.TemplateKind) *form.State {
	t.Helper()
	state, err := form.NewSession(catalog.Default()).Render(kind)
	if err != nil {
		t.Fatalf("render %s: %v", kind, err)
	}
	return state
}

func plainTheme(t *testing.T) Theme {
	t.Helper()
	th, err := ResolveTheme(NewSelector(), "", "plain")
	if err != nil {
		t.Fatalf("resolve theme: %v", err)
	}
	return th
}

func TestFill_FeatureRequest(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Dark mode"},
		selectIdx: []int{1},
		textAreas: []string{
			"Offer a dark theme",
			"  As a user, I want a dark theme  ",
			"Toggle persists",
			"",
			"",
		},
	}
	filler := New(WithPromptDriver(driver), WithTheme(plainTheme(t)))
	state := newState(t, model.KindFeatureRequest)

	if err := filler.Fill(context.Background(), state); err != nil {
		t.Fatalf("fill: %v", err)
	}

	want := map[string]string{
		"Feature Name":        "Dark mode",
		"Feature Description": "Offer a dark theme",
		"User Stories":        "As a user, I want a dark theme",
		"Acceptance Criteria": "Toggle persists",
		"Priority":            "Medium",
	}
	if diff := cmp.Diff(want, form.Collect(state)); diff != "" {
		t.Fatalf("collected values mismatch (-want +got):\n%s", diff)
	}
	if driver.inputPos != 1 || driver.selectPos != 1 || driver.textPos != 5 {
		t.Fatalf("prompts not consumed as expected: %+v", driver)
	}
}

func TestFill_PromptConfiguration(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Dark mode"},
		selectIdx: []int{2},
		textAreas: []string{"a", "b", "c", "", ""},
	}
	filler := New(WithPromptDriver(driver), WithTheme(plainTheme(t)))
	state := newState(t, model.KindFeatureRequest)

	if err := filler.Fill(context.Background(), state); err != nil {
		t.Fatalf("fill: %v", err)
	}

	if got := driver.inputCfgs[0].Message; got != "Feature Name"+RequiredMarker {
		t.Fatalf("expected required marker on label, got %q", got)
	}
	priority := driver.selectCfgs[0]
	if diff := cmp.Diff([]string{"High", "Medium", "Low"}, priority.Options); diff != "" {
		t.Fatalf("required choice must not offer %q (-want +got):\n%s", NoneOption, diff)
	}
	if priority.Message != "Priority"+RequiredMarker {
		t.Fatalf("unexpected priority label %q", priority.Message)
	}
	if value, _ := state.Value("Priority"); value != "Low" {
		t.Fatalf("expected Low, got %q", value)
	}
	if got := driver.textCfgs[0].Default; got != "What should this feature do?" {
		t.Fatalf("expected placeholder as textarea default, got %q", got)
	}
	if got := driver.textCfgs[4].Message; got != "Integration Points" {
		t.Fatalf("optional field should not carry the required marker, got %q", got)
	}
}

func TestFill_OptionalChoiceOffersNone(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Task Board"},
		selectIdx: []int{0, 1, 0, 1},
		textAreas: []string{"Kanban", "Teams", "Boards", "", "", "", "", ""},
	}
	filler := New(WithPromptDriver(driver), WithTheme(plainTheme(t)))
	state := newState(t, model.KindWebApp)

	if err := filler.Fill(context.Background(), state); err != nil {
		t.Fatalf("fill: %v", err)
	}

	if got := driver.selectCfgs[0].Options[0]; got != NoneOption {
		t.Fatalf("expected optional choice to offer %q first, got %q", NoneOption, got)
	}
	if got := driver.selectCfgs[1].Options[0]; got != "Python (Django)" {
		t.Fatalf("required choice must start with its first option, got %q", got)
	}
	want := map[string]string{
		"Project Name":        "Task Board",
		"Project Description": "Kanban",
		"Target Users":        "Teams",
		"Core Features":       "Boards",
		"Backend Framework":   "Python (Flask)",
		"Database":            "PostgreSQL",
		"Styling/CSS":         "Tailwind CSS",
	}
	if diff := cmp.Diff(want, form.Collect(state)); diff != "" {
		t.Fatalf("collected values mismatch (-want +got):\n%s", diff)
	}
}

func TestFill_NoticeForMissingRequired(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{""},
		selectIdx: []int{0},
		textAreas: []string{"", "", "", "", ""},
	}
	filler := New(WithPromptDriver(driver), WithTheme(plainTheme(t)))
	state := newState(t, model.KindFeatureRequest)

	if err := filler.Fill(context.Background(), state); err != nil {
		t.Fatalf("fill: %v", err)
	}

	last := driver.infoMessages[len(driver.infoMessages)-1]
	for _, label := range []string{"Feature Name", "Feature Description", "User Stories", "Acceptance Criteria"} {
		if !strings.Contains(last, label) {
			t.Fatalf("expected notice to mention %q, got %q", label, last)
		}
	}
	if strings.Contains(last, "Priority") {
		t.Fatalf("selected priority must not be reported missing: %q", last)
	}
	if !strings.Contains(last, "default text") {
		t.Fatalf("expected notice to mention the default text, got %q", last)
	}
}

func TestFill_PropagatesAbort(t *testing.T) {
	filler := New(WithPromptDriver(&stubDriver{}))
	state := newState(t, model.KindBugReport)

	err := filler.Fill(context.Background(), state)
	if err == nil {
		t.Fatalf("expected driver error to propagate")
	}
}

func TestFill_NilState(t *testing.T) {
	filler := New(WithPromptDriver(&stubDriver{}))

	if err := filler.Fill(context.Background(), nil); !errors.Is(err, form.ErrNoActiveForm) {
		t.Fatalf("expected ErrNoActiveForm, got %v", err)
	}
}

func TestSelectKind(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{2}}
	filler := New(WithPromptDriver(driver))

	kind, err := filler.SelectKind(context.Background(), catalog.Default(), model.KindMCPDevelopment)
	if err != nil {
		t.Fatalf("select kind: %v", err)
	}
	if kind != model.KindBugReport {
		t.Fatalf("expected bug_report, got %s", kind)
	}
	cfg := driver.selectCfgs[0]
	if cfg.DefaultIndex != 1 {
		t.Fatalf("expected current kind as default, got %d", cfg.DefaultIndex)
	}
	if cfg.Options[2] != "Bug Report" {
		t.Fatalf("expected template titles as options, got %v", cfg.Options)
	}
}

func TestChoose_OutOfRange(t *testing.T) {
	filler := New(WithPromptDriver(&stubDriver{selectIdx: []int{5}}))

	if _, err := filler.Choose(context.Background(), "Next", []string{"a", "b"}); err == nil {
		t.Fatalf("expected out of range error")
	}
}

func TestResolveTheme_Variants(t *testing.T) {
	base, err := ResolveTheme(nil, "", "")
	if err != nil {
		t.Fatalf("resolve base: %v", err)
	}
	light, err := ResolveTheme(nil, DefaultThemeName, "light")
	if err != nil {
		t.Fatalf("resolve light: %v", err)
	}
	if base.Accent == light.Accent {
		t.Fatalf("expected light variant to override accent")
	}
	if base.PromptPrefix != light.PromptPrefix {
		t.Fatalf("expected variant to inherit untouched tokens")
	}

	if _, err := ResolveTheme(nil, "", "neon"); !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
	if _, err := ResolveTheme(nil, "missing", ""); err == nil {
		t.Fatalf("expected unknown theme error")
	}
}

func TestResolveTheme_CustomManifest(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			TokenWarnPrefix: "WARN",
		},
	}

	th, err := ResolveTheme(NewSelector(manifest), "acme", "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if th.Name != "acme" || th.WarnPrefix != "WARN" {
		t.Fatalf("unexpected theme: %+v", th)
	}
}

func TestVariants(t *testing.T) {
	if diff := cmp.Diff([]string{"light", "plain"}, Variants(DefaultManifest())); diff != "" {
		t.Fatalf("variants mismatch (-want +got):\n%s", diff)
	}
}

func TestNotifier_Warn(t *testing.T) {
	var buf bytes.Buffer
	notifier := NewNotifier(&buf, plainTheme(t))

	notifier.Warn("nothing to export")

	if got := buf.String(); !strings.Contains(got, "! nothing to export") {
		t.Fatalf("unexpected warning output %q", got)
	}
}
