// ABOUTME: Preview session handlers forwarding page events to a session's UI controller
// ABOUTME: Uploads are dispatched as drop or change events and answered once the preview settles

package handlers

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"sync/atomic"
	"time"

	"filepreview-app/api/dto/mappers"
	"filepreview-app/api/dto/requests"
	"filepreview-app/api/dto/responses"
	"filepreview-app/core/domain"
	coreerrors "filepreview-app/core/errors"
	"filepreview-app/core/interfaces"
	"filepreview-app/core/session"
	"filepreview-app/core/ui"
	"github.com/danielgtaylor/huma/v2"
)

// SessionManager opens, finds and closes preview sessions
type SessionManager interface {
	Open() *session.Session
	Get(id string) (*session.Session, error)
	Close(id string) error
}

// PreviewHandler handles preview session endpoints
type PreviewHandler struct {
	sessions       SessionManager
	logger         interfaces.Logger
	settleTimeout  time.Duration
	maxUploadBytes int64
}

// NewPreviewHandler creates a new preview handler
func NewPreviewHandler(sessions SessionManager, logger interfaces.Logger, settleTimeout time.Duration, maxUploadBytes int64) *PreviewHandler {
	return &PreviewHandler{
		sessions:       sessions,
		logger:         logger,
		settleTimeout:  settleTimeout,
		maxUploadBytes: maxUploadBytes,
	}
}

// RegisterRoutes registers preview session routes
func (h *PreviewHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "openSession",
		Method:        http.MethodPost,
		Path:          "/sessions",
		Summary:       "Open a preview session",
		Description:   "Creates a session with an idle output region",
		Tags:          []string{"Sessions"},
		DefaultStatus: http.StatusCreated,
	}, h.OpenSession)

	huma.Register(api, huma.Operation{
		OperationID: "getSession",
		Method:      http.MethodGet,
		Path:        "/sessions/{id}",
		Summary:     "Get session snapshot",
		Description: "Returns the current render state and output HTML",
		Tags:        []string{"Sessions"},
	}, h.GetSession)

	huma.Register(api, huma.Operation{
		OperationID: "sendDragEvent",
		Method:      http.MethodPost,
		Path:        "/sessions/{id}/events",
		Summary:     "Forward a drag event",
		Description: "Updates the drag-over highlight of the drop target",
		Tags:        []string{"Sessions"},
	}, h.SendDragEvent)

	// Multipart bodies bypass huma's MaxBodyBytes; part sizes are checked
	// in UploadFiles and the router's body limit caps the stream.
	huma.Register(api, huma.Operation{
		OperationID: "uploadFiles",
		Method:      http.MethodPost,
		Path:        "/sessions/{id}/files",
		Summary:     "Drop or pick files",
		Description: "Previews the first uploaded file and returns the settled snapshot",
		Tags:        []string{"Sessions"},
	}, h.UploadFiles)

	huma.Register(api, huma.Operation{
		OperationID:   "closeSession",
		Method:        http.MethodDelete,
		Path:          "/sessions/{id}",
		Summary:       "Close a session",
		Tags:          []string{"Sessions"},
		DefaultStatus: http.StatusNoContent,
	}, h.CloseSession)
}

// SessionPathInput identifies a session
type SessionPathInput struct {
	ID string `path:"id" doc:"Session identifier"`
}

// DragEventInput defines the input for a drag event
type DragEventInput struct {
	ID   string `path:"id" doc:"Session identifier"`
	Body requests.DragEventRequest
}

// UploadInput defines the multipart input for dropped or picked files
type UploadInput struct {
	ID      string `path:"id" doc:"Session identifier"`
	Trigger string `query:"trigger" enum:"drop,change" default:"change" doc:"Whether the files were dropped or picked"`
	RawBody multipart.Form
}

// SessionOutput defines the output of opening a session
type SessionOutput struct {
	Body responses.SessionResponse
}

// SnapshotOutput defines the output carrying a snapshot
type SnapshotOutput struct {
	Body responses.SnapshotResponse
}

// DragEventOutput defines the output of a drag event
type DragEventOutput struct {
	Body responses.DragEventResponse
}

// OpenSession handles POST /sessions
func (h *PreviewHandler) OpenSession(ctx context.Context, input *struct{}) (*SessionOutput, error) {
	s := h.sessions.Open()

	output := &SessionOutput{}
	output.Body.ID = s.ID
	output.Body.Snapshot = mappers.ToSnapshotResponse(s.Snapshot())
	return output, nil
}

// GetSession handles GET /sessions/{id}
func (h *PreviewHandler) GetSession(ctx context.Context, input *SessionPathInput) (*SnapshotOutput, error) {
	s, err := h.sessions.Get(input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	output := &SnapshotOutput{}
	output.Body = mappers.ToSnapshotResponse(s.Snapshot())
	return output, nil
}

// SendDragEvent handles POST /sessions/{id}/events
func (h *PreviewHandler) SendDragEvent(ctx context.Context, input *DragEventInput) (*DragEventOutput, error) {
	kind, err := ui.ParseEventKind(input.Body.Kind)
	if err != nil {
		return nil, toHumaError(&coreerrors.ValidationError{Field: "kind", Message: err.Error()})
	}

	target := &pageTarget{}
	snap, err := h.dispatch(ctx, input.ID, ui.Event{Kind: kind, Target: target})
	if err != nil {
		return nil, toHumaError(err)
	}

	output := &DragEventOutput{}
	output.Body.DefaultPrevented = target.prevented.Load()
	output.Body.Snapshot = mappers.ToSnapshotResponse(snap)
	return output, nil
}

// UploadFiles handles POST /sessions/{id}/files
func (h *PreviewHandler) UploadFiles(ctx context.Context, input *UploadInput) (*SnapshotOutput, error) {
	kind := ui.Change
	if input.Trigger == string(ui.Drop) {
		kind = ui.Drop
	}

	headers := input.RawBody.File["files"]
	files := make([]domain.CandidateFile, 0, len(headers))
	for _, fh := range headers {
		if h.maxUploadBytes > 0 && fh.Size > h.maxUploadBytes {
			if h.logger != nil {
				h.logger.Warn("Upload exceeds limit", map[string]interface{}{
					"session_id": input.ID,
					"file_size":  fh.Size,
					"limit":      h.maxUploadBytes,
				})
			}
			return nil, huma.NewError(http.StatusRequestEntityTooLarge, "file exceeds the upload limit")
		}
		files = append(files, toCandidateFile(fh))
	}

	snap, err := h.dispatch(ctx, input.ID, ui.Event{Kind: kind, Files: files, Target: &pageTarget{}})
	if err != nil {
		return nil, toHumaError(err)
	}

	output := &SnapshotOutput{}
	output.Body = mappers.ToSnapshotResponse(snap)
	return output, nil
}

// CloseSession handles DELETE /sessions/{id}
func (h *PreviewHandler) CloseSession(ctx context.Context, input *SessionPathInput) (*struct{}, error) {
	if err := h.sessions.Close(input.ID); err != nil {
		return nil, toHumaError(err)
	}
	return nil, nil
}

// dispatch hands e to the session's controller and waits for it to settle.
// A read still running after the settle timeout leaves the snapshot loading.
func (h *PreviewHandler) dispatch(ctx context.Context, id string, e ui.Event) (ui.Snapshot, error) {
	s, err := h.sessions.Get(id)
	if err != nil {
		return ui.Snapshot{}, err
	}

	if !s.Controller.Dispatch(e) {
		return ui.Snapshot{}, &coreerrors.NotFoundError{Resource: "session", ID: id}
	}

	if h.settleTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.settleTimeout)
		defer cancel()
	}

	if err := s.Controller.Settle(ctx); err != nil {
		if errors.Is(err, ui.ErrClosed) {
			return ui.Snapshot{}, &coreerrors.NotFoundError{Resource: "session", ID: id}
		}
		if h.logger != nil {
			h.logger.Warn("Preview did not settle", map[string]interface{}{
				"session_id": id,
				"event":      string(e.Kind),
				"error":      err.Error(),
			})
		}
	}

	return s.Snapshot(), nil
}

func toCandidateFile(fh *multipart.FileHeader) domain.CandidateFile {
	return domain.CandidateFile{
		Name:     fh.Filename,
		Size:     fh.Size,
		MIMEType: fh.Header.Get("Content-Type"),
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

// pageTarget records default-behaviour suppression so the page can mirror it
type pageTarget struct {
	prevented atomic.Bool
}

func (t *pageTarget) PreventDefault() {
	t.prevented.Store(true)
}

func (t *pageTarget) StopPropagation() {}
