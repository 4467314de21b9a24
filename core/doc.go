// Package core contains the preview logic of the File Preview service.
// It has no dependency on the HTTP layer and can be driven directly.
//
// The core package is organized into several sub-packages:
//
// - domain: Candidate files, verdicts, line previews and render states
// - preview: HTML escaping, file validation and line extraction
// - reader: Non-blocking UTF-8 file reader
// - ui: The state controller, its event bindings and the render-state surface
// - session: Per-browser sessions owning one controller each
// - errors: Error kinds and HTTP-facing error types
// - interfaces: Contracts for logging, caching and the preview collaborators
//
// # Event Loop
//
// Every controller runs one goroutine that executes event handlers and read
// completions in order. Reads run elsewhere and post their outcome back to
// that goroutine, so render state is only ever written from the loop.
//
// # Usage Example
//
//	c := ui.NewController(ui.Config{Logger: logger})
//	defer c.Close()
//
//	c.Dispatch(ui.Event{Kind: ui.Drop, Files: []domain.CandidateFile{file}})
//	if err := c.Settle(ctx); err != nil {
//	    // still loading or closed
//	}
//
//	snap := c.Surface().Snapshot()
//	fmt.Println(snap.State.Kind, snap.HTML)
package core
