// ABOUTME: Request DTOs for preview session endpoints
// ABOUTME: Drag events are validated against the accepted event kinds

package requests

// DragEventRequest forwards a drag event from the drop target
type DragEventRequest struct {
	// Kind is the DOM event name
	Kind string `json:"kind" enum:"dragenter,dragover,dragleave" doc:"Drag event raised on the drop target"`
}
