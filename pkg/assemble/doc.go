// Package assemble renders collected form values into a context document.
//
// Assembly is deterministic apart from the generation timestamp: the same
// kind, data and format always yield the same sections in the same order. The
// assembler never looks at form state, only at the collected label -> value
// mapping.
package assemble
