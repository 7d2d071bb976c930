package catalog

import "errors"

// ErrUnknownKind is returned when a kind outside the fixed catalog is requested.
var ErrUnknownKind = errors.New("catalog: unknown template kind")
