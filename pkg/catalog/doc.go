// Package catalog holds the fixed set of template kinds, their ordered field
// descriptors and their output layout. The catalog is built once and never
// mutated; lookups of unknown kinds return ErrUnknownKind.
package catalog
