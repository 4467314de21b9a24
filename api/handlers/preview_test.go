package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"filepreview-app/api/dto/responses"
	"filepreview-app/core/interfaces"
	"filepreview-app/core/session"
	"filepreview-app/infrastructure/cache/memory"
	"github.com/PuerkitoBio/goquery"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type uploadFile struct {
	name     string
	mimeType string
	content  string
}

func newTestAPI(t *testing.T) humatest.TestAPI {
	t.Helper()
	return newTestAPIWithLimit(t, 1<<20)
}

func newTestAPIWithLimit(t *testing.T, maxUploadBytes int64) humatest.TestAPI {
	t.Helper()
	cache := memory.NewMemoryCache(time.Minute, time.Minute)
	manager := session.NewManager(interfaces.Dependencies{Sessions: cache}, time.Minute, nil)
	handler := NewPreviewHandler(manager, nil, 5*time.Second, maxUploadBytes)

	_, api := humatest.New(t)
	handler.RegisterRoutes(api)
	return api
}

func openSession(t *testing.T, api humatest.TestAPI) string {
	t.Helper()
	resp := api.Post("/sessions")
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var out responses.SessionResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	require.NotEmpty(t, out.ID)
	return out.ID
}

func multipartBody(t *testing.T, files ...uploadFile) (string, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename="%s"`, f.name))
		h.Set("Content-Type", f.mimeType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write([]byte(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return "Content-Type: " + w.FormDataContentType(), &buf
}

func upload(t *testing.T, api humatest.TestAPI, id, trigger string, files ...uploadFile) responses.SnapshotResponse {
	t.Helper()
	header, body := multipartBody(t, files...)
	resp := api.Post("/sessions/"+id+"/files?trigger="+trigger, header, body)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var out responses.SnapshotResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	return out
}

func sendEvent(t *testing.T, api humatest.TestAPI, id, kind string) responses.DragEventResponse {
	t.Helper()
	resp := api.Post("/sessions/"+id+"/events", map[string]interface{}{"kind": kind})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var out responses.DragEventResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	return out
}

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestPreviewHandler_RegisterRoutes(t *testing.T) {
	api := newTestAPI(t)
	paths := api.OpenAPI().Paths

	require.NotNil(t, paths["/sessions"])
	assert.NotNil(t, paths["/sessions"].Post)
	require.NotNil(t, paths["/sessions/{id}"])
	assert.NotNil(t, paths["/sessions/{id}"].Get)
	assert.NotNil(t, paths["/sessions/{id}"].Delete)
	require.NotNil(t, paths["/sessions/{id}/events"])
	assert.NotNil(t, paths["/sessions/{id}/events"].Post)
	require.NotNil(t, paths["/sessions/{id}/files"])
	assert.NotNil(t, paths["/sessions/{id}/files"].Post)
}

func TestPreviewHandler_OpenSessionIsIdle(t *testing.T) {
	api := newTestAPI(t)
	id := openSession(t, api)

	resp := api.Get("/sessions/" + id)
	require.Equal(t, http.StatusOK, resp.Code)

	var snap responses.SnapshotResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &snap))
	assert.Equal(t, "idle", snap.State)
	assert.False(t, snap.DragActive)
	assert.Empty(t, snap.HTML)
	assert.Zero(t, snap.Revision)
}

func TestPreviewHandler_UnknownSession(t *testing.T) {
	api := newTestAPI(t)

	assert.Equal(t, http.StatusNotFound, api.Get("/sessions/missing").Code)
	assert.Equal(t, http.StatusNotFound, api.Post("/sessions/missing/events", map[string]interface{}{"kind": "dragenter"}).Code)
	assert.Equal(t, http.StatusNotFound, api.Delete("/sessions/missing").Code)
}

func TestPreviewHandler_DragEventsToggleHighlight(t *testing.T) {
	api := newTestAPI(t)
	id := openSession(t, api)

	entered := sendEvent(t, api, id, "dragenter")
	assert.True(t, entered.DefaultPrevented)
	assert.True(t, entered.Snapshot.DragActive)

	over := sendEvent(t, api, id, "dragover")
	assert.True(t, over.Snapshot.DragActive)

	left := sendEvent(t, api, id, "dragleave")
	assert.True(t, left.DefaultPrevented)
	assert.False(t, left.Snapshot.DragActive)
	assert.Equal(t, "idle", left.Snapshot.State)
}

func TestPreviewHandler_DragEventRejectsOtherKinds(t *testing.T) {
	api := newTestAPI(t)
	id := openSession(t, api)

	resp := api.Post("/sessions/"+id+"/events", map[string]interface{}{"kind": "drop"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestPreviewHandler_DropCSV(t *testing.T) {
	api := newTestAPI(t)
	id := openSession(t, api)
	sendEvent(t, api, id, "dragenter")

	snap := upload(t, api, id, "drop", uploadFile{"data.csv", "text/csv", "a,b\n1,2"})

	assert.Equal(t, "success", snap.State)
	assert.Equal(t, "data.csv", snap.Filename)
	assert.Equal(t, []string{"a,b", "1,2"}, snap.Lines)
	assert.False(t, snap.DragActive)

	doc := parseHTML(t, snap.HTML)
	assert.Equal(t, "✅ Loaded 2 lines from data.csv", strings.TrimSpace(doc.Find(".success").Text()))
	assert.Equal(t, 2, doc.Find(".line").Length())
	assert.Equal(t, "1,2", doc.Find(".line-text").Eq(1).Text())
}

func TestPreviewHandler_PickedFileByExtension(t *testing.T) {
	api := newTestAPI(t)
	id := openSession(t, api)

	snap := upload(t, api, id, "change", uploadFile{"server.log", "application/octet-stream", "boot\nready\n"})

	assert.Equal(t, "success", snap.State)
	assert.Equal(t, []string{"boot", "ready", ""}, snap.Lines)
}

func TestPreviewHandler_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		file     uploadFile
		wantKind string
		wantMsg  string
	}{
		{
			name:     "empty file",
			file:     uploadFile{"empty.txt", "text/plain", ""},
			wantKind: "empty_file",
			wantMsg:  "File is empty!",
		},
		{
			name:     "unsupported type",
			file:     uploadFile{"photo.png", "image/png", "\x89PNG"},
			wantKind: "unsupported_type",
			wantMsg:  "Please upload a text file (.txt, .log, .csv, .md, .js)",
		},
		{
			name:     "whitespace only",
			file:     uploadFile{"blank.txt", "text/plain", "   \n\n"},
			wantKind: "whitespace_only_content",
			wantMsg:  "File is empty or contains only whitespace!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			id := openSession(t, api)

			snap := upload(t, api, id, "change", tt.file)

			assert.Equal(t, "error", snap.State)
			assert.Equal(t, tt.wantKind, snap.ErrorKind)
			assert.Equal(t, tt.wantMsg, snap.Message)
			assert.Contains(t, parseHTML(t, snap.HTML).Find(".error").Text(), tt.wantMsg)
		})
	}
}

func TestPreviewHandler_EscapesContent(t *testing.T) {
	api := newTestAPI(t)
	id := openSession(t, api)

	snap := upload(t, api, id, "drop", uploadFile{"x.txt", "text/plain", "<script>alert(1)</script>"})

	require.Equal(t, "success", snap.State)
	assert.Contains(t, snap.HTML, "&lt;script&gt;alert(1)&lt;/script&gt;")

	doc := parseHTML(t, snap.HTML)
	assert.Zero(t, doc.Find("script").Length())
	assert.Equal(t, "<script>alert(1)</script>", doc.Find(".line-text").Text())
}

func TestPreviewHandler_TruncatesToTenLines(t *testing.T) {
	api := newTestAPI(t)
	id := openSession(t, api)

	var content []string
	for i := 1; i <= 11; i++ {
		content = append(content, fmt.Sprintf("row %d", i))
	}
	snap := upload(t, api, id, "change", uploadFile{"long.txt", "text/plain", strings.Join(content, "\n")})

	require.Len(t, snap.Lines, 10)
	assert.Equal(t, "row 10", snap.Lines[9])
	assert.Equal(t, 10, parseHTML(t, snap.HTML).Find(".line").Length())
}

func TestPreviewHandler_OnlyFirstFileIsPreviewed(t *testing.T) {
	api := newTestAPI(t)
	id := openSession(t, api)

	snap := upload(t, api, id, "drop",
		uploadFile{"first.md", "text/markdown", "# first"},
		uploadFile{"second.md", "text/markdown", "# second"},
	)

	assert.Equal(t, "first.md", snap.Filename)
	assert.Equal(t, []string{"# first"}, snap.Lines)
}

func TestPreviewHandler_NoFilesIsNoop(t *testing.T) {
	api := newTestAPI(t)
	id := openSession(t, api)

	snap := upload(t, api, id, "change")

	assert.Equal(t, "idle", snap.State)
	assert.Zero(t, snap.Revision)
}

func TestPreviewHandler_LaterUploadReplacesOutput(t *testing.T) {
	api := newTestAPI(t)
	id := openSession(t, api)

	upload(t, api, id, "change", uploadFile{"a.txt", "text/plain", "alpha"})
	snap := upload(t, api, id, "change", uploadFile{"b.png", "image/png", "beta"})

	assert.Equal(t, "error", snap.State)
	assert.Empty(t, snap.Filename)
	assert.Zero(t, parseHTML(t, snap.HTML).Find(".line").Length())
}

func TestPreviewHandler_CloseSession(t *testing.T) {
	api := newTestAPI(t)
	id := openSession(t, api)

	assert.Equal(t, http.StatusNoContent, api.Delete("/sessions/"+id).Code)
	assert.Equal(t, http.StatusNotFound, api.Get("/sessions/"+id).Code)
}

func TestPreviewHandler_OversizeUploadRejected(t *testing.T) {
	api := newTestAPIWithLimit(t, 1024)
	id := openSession(t, api)

	header, body := multipartBody(t, uploadFile{"big.txt", "text/plain", strings.Repeat("a", 200*1024)})
	resp := api.Post("/sessions/"+id+"/files?trigger=drop", header, body)

	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.Code, resp.Body.String())
	assert.Contains(t, resp.Body.String(), "file exceeds the upload limit")

	snap := api.Get("/sessions/" + id)
	require.Equal(t, http.StatusOK, snap.Code)
	var out responses.SnapshotResponse
	require.NoError(t, json.Unmarshal(snap.Body.Bytes(), &out))
	assert.Equal(t, "idle", out.State)
}

func TestPreviewHandler_UploadAtLimitAccepted(t *testing.T) {
	api := newTestAPIWithLimit(t, 1024)
	id := openSession(t, api)

	snap := upload(t, api, id, "drop", uploadFile{"edge.txt", "text/plain", strings.Repeat("a", 1024)})

	assert.Equal(t, "success", snap.State)
}
