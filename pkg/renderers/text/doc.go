// Package text provides the built-in output formats for assembled context
// documents: plain text with fixed headers, XML tagged, and Markdown. Each
// format is a pongo2 layout embedded in the binary; layouts can be overridden
// from a directory.
package text
