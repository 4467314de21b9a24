// ABOUTME: Input events accepted by the UI controller and their handler bindings
// ABOUTME: The binding table maps each event kind to the handlers it fans out to

package ui

import (
	"fmt"

	"filepreview-app/core/domain"
)

// EventKind names an input event on the drop target or the file picker
type EventKind string

const (
	DragEnter EventKind = "dragenter"
	DragOver  EventKind = "dragover"
	DragLeave EventKind = "dragleave"
	Drop      EventKind = "drop"
	Change    EventKind = "change"
)

// Target receives default-behaviour suppression for an event
type Target interface {
	PreventDefault()
	StopPropagation()
}

// Event is one input event. Files is set for Drop and Change.
type Event struct {
	Kind   EventKind
	Files  []domain.CandidateFile
	Target Target
}

// ParseEventKind converts a wire name into an EventKind
func ParseEventKind(name string) (EventKind, error) {
	switch kind := EventKind(name); kind {
	case DragEnter, DragOver, DragLeave, Drop, Change:
		return kind, nil
	default:
		return "", fmt.Errorf("unknown event kind %q", name)
	}
}

type handler func(e Event)

// bindings is the declarative event table
func (c *Controller) bindings() map[EventKind][]handler {
	return map[EventKind][]handler{
		DragEnter: {suppressDefault, c.highlight},
		DragOver:  {suppressDefault, c.highlight},
		DragLeave: {suppressDefault, c.unhighlight},
		Drop:      {suppressDefault, c.unhighlight, c.handleFiles},
		Change:    {c.handleFiles},
	}
}

func suppressDefault(e Event) {
	if e.Target == nil {
		return
	}
	e.Target.PreventDefault()
	e.Target.StopPropagation()
}
