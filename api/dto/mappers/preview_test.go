package mappers

import (
	"testing"

	"filepreview-app/core/domain"
	"filepreview-app/core/ui"
	"github.com/stretchr/testify/assert"
)

func TestToSnapshotResponse_Success(t *testing.T) {
	snap := ui.Snapshot{
		DragActive: true,
		State:      domain.Succeeded("notes.md", domain.LinePreview{"# Title", "body"}),
		HTML:       "<div>x</div>",
		Revision:   3,
	}

	resp := ToSnapshotResponse(snap)

	assert.Equal(t, "success", resp.State)
	assert.Equal(t, "notes.md", resp.Filename)
	assert.Equal(t, []string{"# Title", "body"}, resp.Lines)
	assert.True(t, resp.DragActive)
	assert.Equal(t, "<div>x</div>", resp.HTML)
	assert.Equal(t, uint64(3), resp.Revision)
	assert.Empty(t, resp.ErrorKind)
	assert.Empty(t, resp.Message)
}

func TestToSnapshotResponse_Error(t *testing.T) {
	snap := ui.Snapshot{State: domain.Failed(domain.EmptyFile, "File is empty!")}

	resp := ToSnapshotResponse(snap)

	assert.Equal(t, "error", resp.State)
	assert.Equal(t, "empty_file", resp.ErrorKind)
	assert.Equal(t, "File is empty!", resp.Message)
	assert.Empty(t, resp.Filename)
	assert.Nil(t, resp.Lines)
}

func TestToSnapshotResponse_LinesAreCopied(t *testing.T) {
	lines := domain.LinePreview{"a"}
	snap := ui.Snapshot{State: domain.RenderState{Kind: domain.RenderSuccess, Filename: "a.txt", Lines: lines}}

	resp := ToSnapshotResponse(snap)
	lines[0] = "changed"

	assert.Equal(t, []string{"a"}, resp.Lines)
}

func TestToSnapshotResponse_Idle(t *testing.T) {
	resp := ToSnapshotResponse(ui.Snapshot{State: domain.Idle()})

	assert.Equal(t, "idle", resp.State)
	assert.Empty(t, resp.HTML)
}
