// Package openapi publishes the template catalog as an OpenAPI 3 document and
// reads such documents back into a catalog.
//
// Every template kind becomes a POST /contexts/{kind} operation whose JSON
// request body has one string property per field. Renderer hints live under
// the x-formgen extension (label, widget, placeholder, rows, order) so form
// generators that understand those hints can render the same forms; the
// output layout lives under x-ctxgen.
package openapi
