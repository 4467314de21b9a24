// ABOUTME: Candidate file domain model for a single dropped or selected file
// ABOUTME: Carries metadata plus an opener for the platform-owned content

package domain

import (
	"errors"
	"io"
)

// CandidateFile is the single file the user most recently dropped or selected.
// Its content is reachable only through Open, which the reader adapter calls
// once per read.
type CandidateFile struct {
	// Name is the base file name as reported by the browser
	Name string

	// Size is the content length in bytes
	Size int64

	// MIMEType is the declared type; may be empty or wrong
	MIMEType string

	// Open returns the raw content
	Open func() (io.ReadCloser, error)
}

// ErrNoContent is returned by OpenContent when the file has no opener.
var ErrNoContent = errors.New("file content is not available")

// OpenContent opens the raw content of the file.
func (f CandidateFile) OpenContent() (io.ReadCloser, error) {
	if f.Open == nil {
		return nil, ErrNoContent
	}
	return f.Open()
}

// Verdict is the outcome of validating a CandidateFile
type Verdict int

const (
	// Accepted means the file may be read
	Accepted Verdict = iota

	// RejectedEmpty means the file has zero size
	RejectedEmpty

	// RejectedType means neither the MIME type nor the extension is allowed
	RejectedType
)

// String returns a readable verdict name
func (v Verdict) String() string {
	switch v {
	case Accepted:
		return "accepted"
	case RejectedEmpty:
		return "rejected_empty"
	case RejectedType:
		return "rejected_type"
	default:
		return "unknown"
	}
}

// LinePreview is the ordered list of at most PreviewLineLimit lines shown to the user.
type LinePreview []string

// PreviewLineLimit caps the number of lines in a LinePreview
const PreviewLineLimit = 10

// ReadOutcome is the single result of an asynchronous read: decoded text or a failure.
type ReadOutcome struct {
	Text string
	Err  error
}
