// ABOUTME: File reader adapter decoding a candidate file off the caller's goroutine
// ABOUTME: Delivers exactly one decoded text or read failure per request

package reader

import (
	"context"
	"errors"
	"fmt"
	"io"

	"filepreview-app/core/domain"
	coreerrors "filepreview-app/core/errors"
	"filepreview-app/core/interfaces"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrTooLarge is the cause of a read failure when content exceeds MaxBytes
var ErrTooLarge = errors.New("file exceeds the single read limit")

// Reader decodes candidate files as UTF-8. Invalid byte sequences become
// U+FFFD and a leading byte order mark is dropped.
type Reader struct {
	logger   interfaces.Logger
	maxBytes int64
}

// Option configures a Reader
type Option func(*Reader)

// WithMaxBytes bounds the raw content size of a single read; zero disables the bound
func WithMaxBytes(n int64) Option {
	return func(r *Reader) {
		r.maxBytes = n
	}
}

// NewReader creates a new reader adapter
func NewReader(logger interfaces.Logger, opts ...Option) *Reader {
	r := &Reader{logger: logger}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Read starts decoding f and returns at once. The channel is buffered and
// receives exactly one outcome; a failed outcome carries a read_failure
// PreviewError.
func (r *Reader) Read(ctx context.Context, f domain.CandidateFile) <-chan domain.ReadOutcome {
	out := make(chan domain.ReadOutcome, 1)

	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				out <- failure(fmt.Errorf("decoder panic: %v", rec))
			}
		}()

		text, err := r.decode(ctx, f)
		if err != nil {
			if r.logger != nil {
				r.logger.Warn("File read failed", map[string]interface{}{
					"file":  f.Name,
					"error": err.Error(),
				})
			}
			out <- failure(err)
			return
		}
		out <- domain.ReadOutcome{Text: text}
	}()

	return out
}

func (r *Reader) decode(ctx context.Context, f domain.CandidateFile) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	rc, err := f.OpenContent()
	if err != nil {
		return "", coreerrors.WrapError(err, "open")
	}
	defer rc.Close()

	var src io.Reader = &contextReader{ctx: ctx, r: rc}
	if r.maxBytes > 0 {
		src = io.LimitReader(src, r.maxBytes+1)
	}

	raw, err := io.ReadAll(src)
	if err != nil {
		return "", coreerrors.WrapError(err, "read")
	}
	if r.maxBytes > 0 && int64(len(raw)) > r.maxBytes {
		return "", ErrTooLarge
	}

	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	if err != nil {
		return "", coreerrors.WrapError(err, "decode")
	}
	return string(decoded), nil
}

func failure(err error) domain.ReadOutcome {
	return domain.ReadOutcome{Err: coreerrors.NewPreviewError(domain.ReadFailure, err)}
}

// contextReader stops reading once ctx is done
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
