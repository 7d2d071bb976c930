package export

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
)

// Notifier surfaces user facing warnings (the terminal equivalent of a modal
// notice).
type Notifier interface {
	Warn(msg string)
}

// NotifierFunc adapts a function into a Notifier.
type NotifierFunc func(msg string)

// Warn calls fn.
func (fn NotifierFunc) Warn(msg string) {
	fn(msg)
}

// Result describes a completed export.
type Result struct {
	Destination string
	Bytes       int
	MIMEType    string
}

// Exporter writes assembled context to a Destination.
type Exporter struct {
	notifier Notifier
	logger   zerolog.Logger
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithNotifier sets the warning sink.
func WithNotifier(n Notifier) Option {
	return func(e *Exporter) {
		if n != nil {
			e.notifier = n
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Exporter) {
		e.logger = logger
	}
}

// New builds an Exporter.
func New(options ...Option) *Exporter {
	e := &Exporter{
		notifier: NotifierFunc(func(string) {}),
		logger:   zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// Export writes text to dest. Blank text is refused with a warning and
// ErrEmptyOutput; write failures are returned wrapped.
func (e *Exporter) Export(ctx context.Context, text string, dest Destination) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("export: context is required")
	}
	if dest == nil {
		return Result{}, errors.New("export: destination is required")
	}
	if strings.TrimSpace(text) == "" {
		e.notifier.Warn("Nothing to export: generate a context document first.")
		return Result{}, ErrEmptyOutput
	}
	if err := dest.Write(ctx, text); err != nil {
		e.logger.Error().Err(err).Str("destination", dest.Describe()).Msg("export failed")
		return Result{}, err
	}

	res := Result{Destination: dest.Describe(), Bytes: len(text)}
	if f, ok := dest.(File); ok {
		res.MIMEType = f.MIMEType()
	}
	e.logger.Debug().Str("destination", res.Destination).Int("bytes", res.Bytes).Msg("context exported")
	return res, nil
}
