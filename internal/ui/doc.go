// Package ui provides rendering functions for the tourguide terminal UI.
//
// It contains the Render function which takes RenderParams and produces
// the terminal output, the layout arithmetic shared with the app model,
// and Lipgloss style definitions for theming. Rendering is pure (no side
// effects) and separated from state management.
package ui
