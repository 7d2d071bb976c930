package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-ctxgen/pkg/assemble"
	"github.com/goliatone/go-ctxgen/pkg/catalog"
	"github.com/goliatone/go-ctxgen/pkg/config"
	"github.com/goliatone/go-ctxgen/pkg/export"
	"github.com/goliatone/go-ctxgen/pkg/openapi"
	"github.com/goliatone/go-ctxgen/pkg/renderers/tui"
)

// app carries the state shared by every command once the root command has
// loaded configuration.
type app struct {
	stdout io.Writer
	stderr io.Writer
	// clipboard receives OSC 52 sequences; the terminal (stderr) by default.
	clipboard io.Writer
	now       func() time.Time
	driver    tui.PromptDriver

	configPath    string
	templatesPath string
	verbose       bool

	cfg       config.Config
	logger    zerolog.Logger
	catalog   *catalog.Catalog
	theme     tui.Theme
	notifier  *tui.Notifier
	assembler *assemble.Assembler
	exporter  *export.Exporter
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout:    stdout,
		stderr:    stderr,
		clipboard: stderr,
		now:       time.Now,
		logger:    zerolog.Nop(),
		theme:     tui.DefaultTheme(),
	}
}

// setup loads configuration and builds the shared services.
func (a *app) setup(ctx context.Context) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.templatesPath != "" {
		cfg.Templates = a.templatesPath
	}
	a.cfg = cfg

	level := zerolog.WarnLevel
	if a.verbose {
		level = zerolog.DebugLevel
	}
	a.logger = zerolog.New(zerolog.ConsoleWriter{Out: a.stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Str("app", "ctxgen").
		Logger()

	th, err := tui.ResolveTheme(nil, "", cfg.ThemeVariant)
	if err != nil {
		return err
	}
	a.theme = th
	a.notifier = tui.NewNotifier(a.stderr, th)

	cat, err := a.loadCatalog(ctx)
	if err != nil {
		return err
	}
	a.catalog = cat

	a.assembler, err = assemble.New(
		assemble.WithCatalog(cat),
		assemble.WithClock(a.now),
		assemble.WithLogger(a.logger),
	)
	if err != nil {
		return err
	}
	a.exporter = export.New(
		export.WithNotifier(a.notifier),
		export.WithLogger(a.logger),
	)

	a.logger.Debug().
		Str("config", a.configPath).
		Str("format", cfg.Format).
		Str("templates", cfg.Templates).
		Str("theme_variant", cfg.ThemeVariant).
		Msg("configuration loaded")
	return nil
}

func (a *app) loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	if a.cfg.Templates == "" {
		return catalog.Default(), nil
	}
	raw, err := os.ReadFile(a.cfg.Templates)
	if err != nil {
		return nil, fmt.Errorf("read templates %s: %w", a.cfg.Templates, err)
	}
	cat, err := openapi.Parse(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("templates %s: %w", a.cfg.Templates, err)
	}
	a.logger.Debug().Int("kinds", len(cat.Kinds())).Str("path", a.cfg.Templates).Msg("custom templates loaded")
	return cat, nil
}

func (a *app) notify() *tui.Notifier {
	if a.notifier == nil {
		a.notifier = tui.NewNotifier(a.stderr, a.theme)
	}
	return a.notifier
}

func (a *app) filler() *tui.Filler {
	return tui.New(
		tui.WithPromptDriver(a.driver),
		tui.WithTheme(a.theme),
		tui.WithOutput(a.stdout),
		tui.WithLogger(a.logger),
	)
}

// exportText writes text to dest and reports the outcome.
func (a *app) exportText(ctx context.Context, text string, dest export.Destination) error {
	res, err := a.exporter.Export(ctx, text, dest)
	if err != nil {
		return err
	}
	switch {
	case res.MIMEType != "":
		a.notify().Success(fmt.Sprintf("Saved %s (%s, %d bytes)", res.Destination, res.MIMEType, res.Bytes))
	default:
		a.notify().Success(fmt.Sprintf("Copied to %s (%d bytes)", res.Destination, res.Bytes))
	}
	return nil
}

// resolveOutputPath turns an --output value into a file path. Directories
// (existing, or written with a trailing separator) receive the default
// filename.
func (a *app) resolveOutputPath(output, kind, ext string) string {
	output = strings.TrimSpace(output)
	if output == "" {
		output = a.cfg.OutputDir
	}
	isDir := strings.HasSuffix(output, string(os.PathSeparator)) || strings.HasSuffix(output, "/")
	if !isDir {
		if info, err := os.Stat(output); err == nil && info.IsDir() {
			isDir = true
		}
	}
	if isDir {
		return filepath.Join(output, export.DefaultFilename(kind, ext, a.now()))
	}
	return output
}

func (a *app) clipboardDestination() export.Clipboard {
	return export.Clipboard{
		Writer: a.clipboard,
		Tmux:   os.Getenv("TMUX") != "",
	}
}
