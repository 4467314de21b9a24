// ABOUTME: Render state domain model for the output region
// ABOUTME: A tagged variant of idle, loading, error and success states

package domain

// RenderKind tags the variant held by a RenderState
type RenderKind string

const (
	RenderIdle    RenderKind = "idle"
	RenderLoading RenderKind = "loading"
	RenderError   RenderKind = "error"
	RenderSuccess RenderKind = "success"
)

// ErrorKind names a user-visible preview failure
type ErrorKind string

const (
	EmptyFile             ErrorKind = "empty_file"
	UnsupportedType       ErrorKind = "unsupported_type"
	WhitespaceOnlyContent ErrorKind = "whitespace_only_content"
	ReadFailure           ErrorKind = "read_failure"
	ProcessingFailure     ErrorKind = "processing_failure"
)

// RenderState is what the output region currently shows. Exactly one
// variant is current; every render replaces the previous one.
type RenderState struct {
	Kind RenderKind

	// ErrorKind and Message are set for RenderError
	ErrorKind ErrorKind
	Message   string

	// Filename and Lines are set for RenderSuccess
	Filename string
	Lines    LinePreview
}

// Idle is the state before any file was handled
func Idle() RenderState {
	return RenderState{Kind: RenderIdle}
}

// Loading is rendered as soon as a file is picked up
func Loading() RenderState {
	return RenderState{Kind: RenderLoading}
}

// Failed builds an error state
func Failed(kind ErrorKind, message string) RenderState {
	return RenderState{Kind: RenderError, ErrorKind: kind, Message: message}
}

// Succeeded builds a success state. The lines are copied so the state
// stays immutable once produced.
func Succeeded(filename string, lines LinePreview) RenderState {
	cp := make(LinePreview, len(lines))
	copy(cp, lines)
	return RenderState{Kind: RenderSuccess, Filename: filename, Lines: cp}
}

// IsTerminal reports whether the state is only left by a new trigger
func (s RenderState) IsTerminal() bool {
	return s.Kind == RenderError || s.Kind == RenderSuccess
}
