// ABOUTME: UI state controller wiring drag, drop and picker events to file previews
// ABOUTME: Runs every handler and read completion on a single event loop goroutine

package ui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"filepreview-app/core/domain"
	coreerrors "filepreview-app/core/errors"
	"filepreview-app/core/interfaces"
	"filepreview-app/core/preview"
	"filepreview-app/core/reader"
)

// ErrClosed is returned by Settle once the controller has been closed
var ErrClosed = errors.New("controller closed")

const defaultQueueSize = 64

// Config holds the collaborators of a Controller. Nil fields get defaults.
type Config struct {
	Surface   *Surface
	Validator interfaces.FileValidator
	Reader    interfaces.FileReader
	Extractor interfaces.LineExtractor
	Logger    interfaces.Logger

	// CancelSupersededReads cancels an in-flight read when a new file is
	// handled and drops its completion. When false the later-completing
	// read renders last.
	CancelSupersededReads bool

	// QueueSize bounds pending events before Dispatch blocks
	QueueSize int
}

// Controller owns one Surface and drives it from input events. All event
// handlers and read completions run on the controller's loop goroutine.
type Controller struct {
	surface          *Surface
	validator        interfaces.FileValidator
	reader           interfaces.FileReader
	extractor        interfaces.LineExtractor
	logger           interfaces.Logger
	cancelSuperseded bool

	handlers  map[EventKind][]handler
	queue     chan func()
	done      chan struct{}
	closeOnce sync.Once
	work      *workTracker

	ctx    context.Context
	cancel context.CancelFunc

	// loop-owned
	generation uint64
	cancelRead context.CancelFunc
}

// NewController creates a controller and starts its event loop
func NewController(cfg Config) *Controller {
	if cfg.Surface == nil {
		cfg.Surface = NewSurface()
	}
	if cfg.Logger == nil {
		cfg.Logger = nopLogger{}
	}
	if cfg.Validator == nil {
		cfg.Validator = preview.DefaultValidator()
	}
	if cfg.Extractor == nil {
		cfg.Extractor = preview.NewExtractor()
	}
	if cfg.Reader == nil {
		cfg.Reader = reader.NewReader(cfg.Logger)
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = defaultQueueSize
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		surface:          cfg.Surface,
		validator:        cfg.Validator,
		reader:           cfg.Reader,
		extractor:        cfg.Extractor,
		logger:           cfg.Logger,
		cancelSuperseded: cfg.CancelSupersededReads,
		queue:            make(chan func(), cfg.QueueSize),
		done:             make(chan struct{}),
		work:             newWorkTracker(),
		ctx:              ctx,
		cancel:           cancel,
	}
	c.handlers = c.bindings()

	go c.loop()
	return c
}

// Surface returns the render-state holder driven by this controller
func (c *Controller) Surface() *Surface {
	return c.surface
}

// Dispatch queues e for the event loop. It reports false once the
// controller is closed.
func (c *Controller) Dispatch(e Event) bool {
	c.work.add()
	return c.enqueue(func() { c.handle(e) })
}

// Settle waits until no event is queued and no read is in flight
func (c *Controller) Settle(ctx context.Context) error {
	select {
	case <-c.done:
		return ErrClosed
	default:
	}

	select {
	case <-c.work.idle():
		return nil
	case <-c.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops the event loop and cancels in-flight reads
func (c *Controller) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.cancel()
	})
}

// enqueue hands fn to the loop. The caller must hold a work unit; the loop
// releases it after fn ran.
func (c *Controller) enqueue(fn func()) bool {
	select {
	case <-c.done:
		c.work.done()
		return false
	default:
	}

	select {
	case c.queue <- fn:
		return true
	case <-c.done:
		c.work.done()
		return false
	}
}

func (c *Controller) loop() {
	for {
		select {
		case fn := <-c.queue:
			fn()
			c.work.done()
		case <-c.done:
			return
		}
	}
}

func (c *Controller) handle(e Event) {
	handlers, ok := c.handlers[e.Kind]
	if !ok {
		c.logger.Debug("Ignoring unbound event", map[string]interface{}{
			"event": string(e.Kind),
		})
		return
	}
	for _, h := range handlers {
		h(e)
	}
}

func (c *Controller) highlight(Event) {
	c.surface.SetDragActive(true)
}

func (c *Controller) unhighlight(Event) {
	c.surface.SetDragActive(false)
}

// handleFiles previews the first file of the event; extra files are ignored
func (c *Controller) handleFiles(e Event) {
	if len(e.Files) == 0 {
		return
	}
	file := e.Files[0]
	if len(e.Files) > 1 {
		c.logger.Debug("Ignoring extra files", map[string]interface{}{
			"event":   string(e.Kind),
			"ignored": len(e.Files) - 1,
		})
	}

	c.supersede()
	c.surface.Render(domain.Loading())

	switch c.validator.Validate(file) {
	case domain.RejectedEmpty:
		c.fail(file.Name, domain.EmptyFile, nil)
		return
	case domain.RejectedType:
		c.fail(file.Name, domain.UnsupportedType, nil)
		return
	}

	c.startRead(file)
}

// supersede starts a new generation and, when configured, cancels the read
// of the previous one
func (c *Controller) supersede() {
	c.generation++
	if c.cancelSuperseded && c.cancelRead != nil {
		c.cancelRead()
		c.cancelRead = nil
	}
}

func (c *Controller) startRead(file domain.CandidateFile) {
	gen := c.generation
	ctx := c.ctx
	if c.cancelSuperseded {
		ctx, c.cancelRead = context.WithCancel(c.ctx)
	}

	results := c.reader.Read(ctx, file)

	c.work.add()
	go func() {
		select {
		case outcome := <-results:
			c.enqueue(func() { c.complete(gen, file.Name, outcome) })
		case <-c.done:
			c.work.done()
		}
	}()
}

// complete runs on the loop when a read finishes
func (c *Controller) complete(gen uint64, name string, outcome domain.ReadOutcome) {
	if c.cancelSuperseded {
		if gen != c.generation {
			c.logger.Debug("Dropping superseded read", map[string]interface{}{
				"file": name,
			})
			return
		}
		if c.cancelRead != nil {
			c.cancelRead()
			c.cancelRead = nil
		}
	}

	if outcome.Err != nil {
		c.fail(name, domain.ReadFailure, outcome.Err)
		return
	}
	c.process(name, outcome.Text)
}

// process extracts and renders the preview. Unexpected errors and panics
// render a processing failure.
func (c *Controller) process(name, text string) {
	defer func() {
		if rec := recover(); rec != nil {
			c.fail(name, domain.ProcessingFailure, fmt.Errorf("panic: %v", rec))
		}
	}()

	lines, err := c.extractor.Extract(text)
	if err != nil {
		if coreerrors.IsKind(err, domain.WhitespaceOnlyContent) {
			c.fail(name, domain.WhitespaceOnlyContent, nil)
			return
		}
		c.fail(name, domain.ProcessingFailure, err)
		return
	}
	if len(lines) > domain.PreviewLineLimit {
		lines = lines[:domain.PreviewLineLimit]
	}

	c.surface.Render(domain.Succeeded(name, lines))
	c.logger.Debug("File previewed", map[string]interface{}{
		"file":  name,
		"lines": len(lines),
	})
}

func (c *Controller) fail(name string, kind domain.ErrorKind, cause error) {
	c.surface.Render(domain.Failed(kind, coreerrors.MessageFor(kind)))

	fields := map[string]interface{}{
		"file": name,
		"kind": string(kind),
	}
	if cause != nil {
		fields["error"] = cause.Error()
	}
	c.logger.Info("File preview failed", fields)
}

// workTracker counts queued events and in-flight reads and exposes a
// channel closed whenever the count drops to zero
type workTracker struct {
	mu     sync.Mutex
	n      int
	idleCh chan struct{}
}

func newWorkTracker() *workTracker {
	idle := make(chan struct{})
	close(idle)
	return &workTracker{idleCh: idle}
}

func (w *workTracker) add() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.n == 0 {
		w.idleCh = make(chan struct{})
	}
	w.n++
}

func (w *workTracker) done() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.n--
	if w.n == 0 {
		close(w.idleCh)
	}
}

func (w *workTracker) idle() <-chan struct{} {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.idleCh
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}
