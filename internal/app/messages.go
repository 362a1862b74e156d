package app

// Message types for the bubbletea app.

// OpenedMsg is sent when an image or link has been handed to an external viewer.
type OpenedMsg struct {
	// Target is the image filename or URL that was opened
	Target string
	Err    error
}
