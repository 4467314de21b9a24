// ABOUTME: Service interfaces for the core preview logic
// ABOUTME: Defines contracts for validation, reading and line extraction

package interfaces

import (
	"context"

	"filepreview-app/core/domain"
)

// FileValidator decides whether a candidate file may be read
type FileValidator interface {
	Validate(f domain.CandidateFile) domain.Verdict
}

// FileReader decodes a candidate file asynchronously. The returned channel
// delivers exactly one outcome.
type FileReader interface {
	Read(ctx context.Context, f domain.CandidateFile) <-chan domain.ReadOutcome
}

// LineExtractor computes the line preview of decoded text
type LineExtractor interface {
	Extract(text string) (domain.LinePreview, error)
}
