package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func envMap(values map[string]string) Option {
	return WithLookupEnv(func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok
	})
}

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	previous, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(previous)
	})
}

func TestLoad_DefaultsWhenDefaultFileMissing(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("", WithEnvFile(""), envMap(nil))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	if _, err := Load(missing, WithEnvFile(""), envMap(nil)); err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}

func TestLoad_ReadsYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "ctxgen.yaml", `
format: XML
kind: bug-report
output_dir: ./contexts
clipboard: true
theme_variant: Light
`)

	cfg, err := Load(path, WithEnvFile(""), envMap(nil))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Config{
		Format:       "xml",
		Kind:         "bug-report",
		OutputDir:    "./contexts",
		Clipboard:    true,
		ThemeVariant: "light",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "ctxgen.yaml", "format: xml\nkind: bug_report\n")

	cfg, err := Load(path, WithEnvFile(""), envMap(map[string]string{
		EnvFormat:       "markdown",
		EnvKind:         "Feature Request",
		EnvOutputDir:    "/tmp/out",
		EnvClipboard:    "true",
		EnvThemeVariant: "dark",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Config{
		Format:       "markdown",
		Kind:         "Feature Request",
		OutputDir:    "/tmp/out",
		Clipboard:    true,
		ThemeVariant: "dark",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", EnvOutputDir+"=from-dotenv\n")

	t.Setenv(EnvOutputDir, "")
	if err := os.Unsetenv(EnvOutputDir); err != nil {
		t.Fatalf("unsetenv: %v", err)
	}

	chdir(t, dir)
	cfg, err := Load("", WithEnvFile(envFile))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.OutputDir != "from-dotenv" {
		t.Fatalf("expected output dir from .env, got %q", cfg.OutputDir)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]map[string]string{
		"format":    {EnvFormat: "pdf"},
		"kind":      {EnvKind: "nonsense"},
		"clipboard": {EnvClipboard: "sometimes"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			chdir(t, t.TempDir())
			_, err := Load("", WithEnvFile(""), envMap(env))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestValidate_CustomTemplatesSkipKindCheck(t *testing.T) {
	cfg := Default()
	cfg.Kind = "code_review"
	cfg.Templates = "templates.json"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected custom kind to be accepted, got %v", err)
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("format: [")); err == nil {
		t.Fatalf("expected parse error")
	}
}
