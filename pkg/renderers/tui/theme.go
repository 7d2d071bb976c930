package tui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	theme "github.com/goliatone/go-theme"
)

// DefaultThemeName identifies the built-in manifest.
const DefaultThemeName = "ctxgen"

// Token keys read from a theme manifest.
const (
	TokenPromptPrefix  = "prompt.prefix"
	TokenInfoPrefix    = "info.prefix"
	TokenWarnPrefix    = "warn.prefix"
	TokenErrorPrefix   = "error.prefix"
	TokenSuccessPrefix = "success.prefix"
	TokenAccent        = "color.accent"
	TokenInfo          = "color.info"
	TokenWarning       = "color.warning"
	TokenError         = "color.error"
	TokenSuccess       = "color.success"
	TokenMuted         = "color.muted"
)

// Theme captures the prefixes and colours used for terminal output. Empty
// colours render unstyled.
type Theme struct {
	Name    string
	Variant string

	PromptPrefix  string
	InfoPrefix    string
	WarnPrefix    string
	ErrorPrefix   string
	SuccessPrefix string

	Accent  string
	Info    string
	Warning string
	Error   string
	Success string
	Muted   string
}

// DefaultManifest returns the built-in theme with "light" and "plain" variants.
func DefaultManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    DefaultThemeName,
		Version: "1.0.0",
		Tokens: map[string]string{
			TokenPromptPrefix:  "?",
			TokenInfoPrefix:    "•",
			TokenWarnPrefix:    "!",
			TokenErrorPrefix:   "✗",
			TokenSuccessPrefix: "✓",
			TokenAccent:        "#AF87FF",
			TokenInfo:          "#5FAFFF",
			TokenWarning:       "#FFAF00",
			TokenError:         "#FF5F87",
			TokenSuccess:       "#00D787",
			TokenMuted:         "#888888",
		},
		Variants: map[string]theme.Variant{
			"light": {
				Tokens: map[string]string{
					TokenAccent:  "#5F00AF",
					TokenInfo:    "#005FAF",
					TokenWarning: "#AF5F00",
					TokenError:   "#AF0000",
					TokenSuccess: "#008700",
					TokenMuted:   "#585858",
				},
			},
			"plain": {
				Tokens: map[string]string{
					TokenInfoPrefix:    "-",
					TokenErrorPrefix:   "x",
					TokenSuccessPrefix: "ok",
					TokenAccent:        "",
					TokenInfo:          "",
					TokenWarning:       "",
					TokenError:         "",
					TokenSuccess:       "",
					TokenMuted:         "",
				},
			},
		},
	}
}

// Variants lists the variant names a manifest declares, sorted.
func Variants(manifest *theme.Manifest) []string {
	if manifest == nil {
		return nil
	}
	out := make([]string, 0, len(manifest.Variants))
	for name := range manifest.Variants {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// ThemeFromSelection merges the manifest tokens with the selected variant's
// overrides. An empty variant uses the manifest tokens as-is.
func ThemeFromSelection(selection *theme.Selection) (Theme, error) {
	if selection == nil || selection.Manifest == nil {
		return Theme{}, fmt.Errorf("tui: theme selection is empty")
	}
	manifest := selection.Manifest

	tokens := make(map[string]string, len(manifest.Tokens))
	for key, value := range manifest.Tokens {
		tokens[key] = value
	}
	if selection.Variant != "" {
		variant, ok := manifest.Variants[selection.Variant]
		if !ok {
			return Theme{}, fmt.Errorf("%w: %q (theme %s)", ErrUnknownVariant, selection.Variant, manifest.Name)
		}
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
	}

	name := selection.Theme
	if name == "" {
		name = manifest.Name
	}
	return Theme{
		Name:          name,
		Variant:       selection.Variant,
		PromptPrefix:  tokens[TokenPromptPrefix],
		InfoPrefix:    tokens[TokenInfoPrefix],
		WarnPrefix:    tokens[TokenWarnPrefix],
		ErrorPrefix:   tokens[TokenErrorPrefix],
		SuccessPrefix: tokens[TokenSuccessPrefix],
		Accent:        tokens[TokenAccent],
		Info:          tokens[TokenInfo],
		Warning:       tokens[TokenWarning],
		Error:         tokens[TokenError],
		Success:       tokens[TokenSuccess],
		Muted:         tokens[TokenMuted],
	}, nil
}

// ResolveTheme asks selector for name/variant and converts the selection.
func ResolveTheme(selector theme.ThemeSelector, name, variant string) (Theme, error) {
	if selector == nil {
		selector = NewSelector()
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return Theme{}, fmt.Errorf("tui: select theme %q: %w", name, err)
	}
	return ThemeFromSelection(selection)
}

// DefaultTheme resolves the built-in manifest without a variant.
func DefaultTheme() Theme {
	t, err := ThemeFromSelection(&theme.Selection{
		Theme:    DefaultThemeName,
		Manifest: DefaultManifest(),
	})
	if err != nil {
		panic(err)
	}
	return t
}

type manifestSelector struct {
	manifests map[string]*theme.Manifest
	fallback  string
}

// NewSelector returns a theme.ThemeSelector over the supplied manifests. The
// built-in manifest is always available and is used for empty names.
func NewSelector(manifests ...*theme.Manifest) theme.ThemeSelector {
	s := &manifestSelector{
		manifests: map[string]*theme.Manifest{DefaultThemeName: DefaultManifest()},
		fallback:  DefaultThemeName,
	}
	for _, manifest := range manifests {
		if manifest == nil || manifest.Name == "" {
			continue
		}
		s.manifests[manifest.Name] = manifest
	}
	return s
}

func (s *manifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if name == "" {
		name = s.fallback
	}
	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("tui: unknown theme %q", name)
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("%w: %q (theme %s)", ErrUnknownVariant, variant, name)
		}
	}
	return &theme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}

func (t Theme) style(color string) lipgloss.Style {
	style := lipgloss.NewStyle()
	if color != "" {
		style = style.Foreground(lipgloss.Color(color))
	}
	return style
}

func (t Theme) line(prefix, color, msg string) string {
	if prefix == "" {
		return t.style(color).Render(msg)
	}
	return t.style(color).Bold(true).Render(prefix) + " " + msg
}

// InfoLine formats an informational message.
func (t Theme) InfoLine(msg string) string { return t.line(t.InfoPrefix, t.Info, msg) }

// WarnLine formats a warning.
func (t Theme) WarnLine(msg string) string { return t.line(t.WarnPrefix, t.Warning, msg) }

// ErrorLine formats an error message.
func (t Theme) ErrorLine(msg string) string { return t.line(t.ErrorPrefix, t.Error, msg) }

// SuccessLine formats a success message.
func (t Theme) SuccessLine(msg string) string { return t.line(t.SuccessPrefix, t.Success, msg) }

// Heading renders a bold accent title.
func (t Theme) Heading(msg string) string { return t.style(t.Accent).Bold(true).Render(msg) }

// Faint renders secondary text.
func (t Theme) Faint(msg string) string { return t.style(t.Muted).Render(msg) }
