package form

import (
	"github.com/rs/zerolog"

	"github.com/goliatone/go-ctxgen/pkg/catalog"
	"github.com/goliatone/go-ctxgen/pkg/model"
)

// Session owns the active form. Rendering a kind always discards the previous
// state so no value outlives a kind switch.
type Session struct {
	catalog *catalog.Catalog
	state   *State
	logger  zerolog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger attaches a logger used for debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// NewSession builds a session over cat, falling back to the default catalog.
func NewSession(cat *catalog.Catalog, options ...Option) *Session {
	if cat == nil {
		cat = catalog.Default()
	}
	s := &Session{
		catalog: cat,
		logger:  zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Catalog returns the catalog backing the session.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// Render replaces the active form with a fresh one for kind.
func (s *Session) Render(kind model.TemplateKind) (*State, error) {
	tpl, err := s.catalog.Template(kind)
	if err != nil {
		return nil, err
	}
	if s.state != nil {
		s.logger.Debug().
			Str("from", string(s.state.Kind())).
			Str("to", string(kind)).
			Msg("discarding form values on kind switch")
	}
	s.state = newState(tpl)
	return s.state, nil
}

// State returns the active form or nil before the first Render.
func (s *Session) State() *State {
	return s.state
}

// Kind reports the active template kind.
func (s *Session) Kind() model.TemplateKind {
	return s.state.Kind()
}
