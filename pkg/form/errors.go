package form

import "errors"

var (
	// ErrUnknownField signals a label that does not belong to the active kind.
	ErrUnknownField = errors.New("form: unknown field")
	// ErrNoActiveForm is returned when values are accessed before Render.
	ErrNoActiveForm = errors.New("form: no active form")
)
