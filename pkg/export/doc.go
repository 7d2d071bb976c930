// Package export persists assembled context documents to files or to the
// terminal clipboard. Exporting before anything was generated is refused with
// a warning; filesystem errors are returned to the caller.
package export
