// Package form keeps the values a user enters for the active template kind and
// extracts them for assembly.
//
// A Session renders one State per kind; switching kinds discards the previous
// State entirely. Collect turns a State into the label -> value mapping the
// assembler consumes, independent of how the values were entered.
package form
