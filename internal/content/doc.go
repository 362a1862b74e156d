// Package content holds the static material shown by the viewer.
//
// The navigation table and the Section enum are defined in Go; the section
// bodies live in an embedded YAML document decoded once into a Guide.
package content
