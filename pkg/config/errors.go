package config

import "errors"

// ErrInvalidConfig is returned when a loaded setting fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")
