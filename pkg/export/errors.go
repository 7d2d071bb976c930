package export

import "errors"

// ErrEmptyOutput is returned when there is nothing to export yet. Nothing is
// written in that case.
var ErrEmptyOutput = errors.New("export: no content generated yet")
