package ui

import (
	"context"
	"io"
	"strings"
	"sync"

	"filepreview-app/core/domain"
)

// mockReader completes reads only when the test resolves them
type mockReader struct {
	mu       sync.Mutex
	requests []*pendingRead
	started  chan *pendingRead
}

type pendingRead struct {
	file domain.CandidateFile
	ctx  context.Context
	out  chan domain.ReadOutcome
}

func newMockReader() *mockReader {
	return &mockReader{started: make(chan *pendingRead, 16)}
}

func (m *mockReader) Read(ctx context.Context, f domain.CandidateFile) <-chan domain.ReadOutcome {
	p := &pendingRead{file: f, ctx: ctx, out: make(chan domain.ReadOutcome, 1)}
	m.mu.Lock()
	m.requests = append(m.requests, p)
	m.mu.Unlock()
	m.started <- p
	return p.out
}

func (m *mockReader) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

func (p *pendingRead) succeed(text string) {
	p.out <- domain.ReadOutcome{Text: text}
}

func (p *pendingRead) fail(err error) {
	p.out <- domain.ReadOutcome{Err: err}
}

// mockExtractor lets a test override extraction
type mockExtractor struct {
	extractFunc func(text string) (domain.LinePreview, error)
}

func (m *mockExtractor) Extract(text string) (domain.LinePreview, error) {
	return m.extractFunc(text)
}

// recordingTarget records default suppression
type recordingTarget struct {
	mu        sync.Mutex
	prevented int
	stopped   int
}

func (r *recordingTarget) PreventDefault() {
	r.mu.Lock()
	r.prevented++
	r.mu.Unlock()
}

func (r *recordingTarget) StopPropagation() {
	r.mu.Lock()
	r.stopped++
	r.mu.Unlock()
}

func (r *recordingTarget) counts() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.prevented, r.stopped
}

func textFile(name, mimeType, content string) domain.CandidateFile {
	return domain.CandidateFile{
		Name:     name,
		Size:     int64(len(content)),
		MIMEType: mimeType,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(content)), nil
		},
	}
}
