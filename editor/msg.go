package editor

// Msg is a passable message conveying some event, data, or just a friendly
// hello
type Msg interface{}

// A Model represents the state of an application
type Model interface {
	// Update is called when a Msg is received. The Update method should
	// handle all Model mutations
	Update(Msg)

	// Draw is called after Update. Draw draws the application state to
	// the provided Surface.
	Draw(Surface)

	// Done reports whether the model has asked to quit
	Done() bool
}

// InitMsg will always be the first Msg delivered
type InitMsg struct{}

// QuitMsg asks the model to stop. It is delivered when the terminal is
// closing, for example on an interrupt
type QuitMsg struct{}

// Resize is delivered whenever the terminal size changes
type Resize struct {
	Cols int
	Rows int
}

// PasteMsg is delivered when a bracketed paste was detected. The value of
// PasteMsg is the pasted content
type PasteMsg string
