// Package app provides the main Bubble Tea application model for tourguide.
//
// It owns the sidebar selection, the filter and help states, and the
// scrollable content pane. Every selection change re-renders the chosen
// section through the render package and restyles it with glamour. Images
// and links found in the section can be opened in an external viewer.
//
// The main type is Model, which implements the Bubble Tea interface
// (Init, Update, View).
package app
