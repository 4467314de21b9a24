// ABOUTME: Line extraction for the first lines of decoded file content
// ABOUTME: Splits on LF or CRLF and reports whitespace-only content

package preview

import (
	"strings"

	"filepreview-app/core/domain"
	"filepreview-app/core/errors"
)

// SplitLines splits text on "\n" and "\r\n". A lone "\r" is not a separator.
func SplitLines(text string) []string {
	segments := strings.Split(text, "\n")
	for i := 0; i < len(segments)-1; i++ {
		segments[i] = strings.TrimSuffix(segments[i], "\r")
	}
	return segments
}

// Extractor computes a LinePreview from decoded text
type Extractor struct {
	// Limit is the maximum number of lines kept; zero means domain.PreviewLineLimit
	Limit int
}

// NewExtractor creates an extractor keeping the first domain.PreviewLineLimit lines
func NewExtractor() *Extractor {
	return &Extractor{Limit: domain.PreviewLineLimit}
}

// Extract returns the first lines of text in file order.
// It returns errors.ErrWhitespaceOnly when no line has visible content.
func (e *Extractor) Extract(text string) (domain.LinePreview, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.ErrWhitespaceOnly
	}

	limit := e.Limit
	if limit <= 0 {
		limit = domain.PreviewLineLimit
	}

	segments := SplitLines(text)
	if len(segments) > limit {
		segments = segments[:limit]
	}
	return domain.LinePreview(segments), nil
}
