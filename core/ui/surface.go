// ABOUTME: Render-state holder standing in for the page's output region and drop target
// ABOUTME: Written by the controller loop, read by any goroutine through snapshots

package ui

import (
	"sync"

	"filepreview-app/core/domain"
)

// Snapshot is a point-in-time copy of a Surface
type Snapshot struct {
	DragActive bool
	State      domain.RenderState
	HTML       string
	Revision   uint64
}

// Surface holds the drag-active flag and the current render state together
// with the HTML that replaced the output region. Revision grows by one per render.
type Surface struct {
	mu         sync.RWMutex
	dragActive bool
	state      domain.RenderState
	html       string
	revision   uint64
}

// NewSurface creates an idle surface
func NewSurface() *Surface {
	return &Surface{state: domain.Idle()}
}

// SetDragActive sets or clears the drag-over visual flag
func (s *Surface) SetDragActive(active bool) {
	s.mu.Lock()
	s.dragActive = active
	s.mu.Unlock()
}

// Render replaces the whole output region with state
func (s *Surface) Render(state domain.RenderState) {
	html := RenderHTML(state)

	s.mu.Lock()
	s.state = state
	s.html = html
	s.revision++
	s.mu.Unlock()
}

// Snapshot returns a copy of the current surface
func (s *Surface) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		DragActive: s.dragActive,
		State:      s.state,
		HTML:       s.html,
		Revision:   s.revision,
	}
}
