// ABOUTME: Response DTOs for preview session endpoints
// ABOUTME: A snapshot carries the render state and the HTML of the output region

package responses

// SnapshotResponse is the current state of a session's output region
type SnapshotResponse struct {
	State      string   `json:"state" enum:"idle,loading,error,success" doc:"Render state of the output region"`
	ErrorKind  string   `json:"error_kind,omitempty" doc:"Failure kind when state is error"`
	Message    string   `json:"message,omitempty" doc:"User-facing message when state is error"`
	Filename   string   `json:"filename,omitempty" doc:"Previewed file name when state is success"`
	Lines      []string `json:"lines,omitempty" doc:"Up to 10 raw preview lines when state is success"`
	DragActive bool     `json:"drag_active" doc:"Whether the drop target shows the drag-over highlight"`
	HTML       string   `json:"html" doc:"Escaped HTML that replaces the output region"`
	Revision   uint64   `json:"revision" doc:"Render counter, grows by one per render"`
}

// SessionResponse is returned when a session is opened
type SessionResponse struct {
	ID       string           `json:"id" doc:"Session identifier"`
	Snapshot SnapshotResponse `json:"snapshot" doc:"Initial snapshot"`
}

// DragEventResponse acknowledges a drag event
type DragEventResponse struct {
	DefaultPrevented bool             `json:"default_prevented" doc:"Whether the page should suppress the browser default for this event"`
	Snapshot         SnapshotResponse `json:"snapshot"`
}
