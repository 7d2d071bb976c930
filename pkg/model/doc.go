// Package model defines the typed template model shared by the catalog, the
// form session, the assembler and the output renderers.
//
// Field inputs form a closed sum type (SingleLine, Choice, MultiLine) so each
// control carries exactly the attributes it needs: choices only exist on
// Choice, heights and pre-seeded placeholders only on MultiLine. Templates pair
// the ordered fields with the fixed output layout (Sections) used when a
// context document is assembled. Document is the renderer facing projection of
// one assembly and never references form state.
package model
