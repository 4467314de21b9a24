// ABOUTME: Mappers for converting UI snapshots to API DTOs
// ABOUTME: Keeps render-state variants out of the wire format

package mappers

import (
	"filepreview-app/api/dto/responses"
	"filepreview-app/core/domain"
	"filepreview-app/core/ui"
)

// ToSnapshotResponse converts a surface snapshot to its response DTO.
// Only the fields of the current variant are set.
func ToSnapshotResponse(s ui.Snapshot) responses.SnapshotResponse {
	resp := responses.SnapshotResponse{
		State:      string(s.State.Kind),
		DragActive: s.DragActive,
		HTML:       s.HTML,
		Revision:   s.Revision,
	}

	switch s.State.Kind {
	case domain.RenderError:
		resp.ErrorKind = string(s.State.ErrorKind)
		resp.Message = s.State.Message
	case domain.RenderSuccess:
		resp.Filename = s.State.Filename
		resp.Lines = append([]string{}, s.State.Lines...)
	}

	return resp
}
