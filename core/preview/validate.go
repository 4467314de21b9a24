// ABOUTME: File validation deciding whether a candidate file may be previewed
// ABOUTME: Accepts files whose MIME type or extension is on the allow-list

package preview

import (
	"path"
	"strings"

	"filepreview-app/core/domain"
)

// Allowed MIME types and extensions. MIME types are unreliable across
// browsers, so passing either check is enough.
var (
	AllowedMIMETypes  = []string{"text/plain", "text/csv", "text/markdown"}
	AllowedExtensions = []string{".txt", ".log", ".csv", ".md", ".js"}
)

// Validator checks candidate files against the allow-lists
type Validator struct {
	mimeTypes  map[string]struct{}
	extensions map[string]struct{}
}

// NewValidator creates a validator for the given allow-lists.
// Extensions are matched case-insensitively and must include the dot.
func NewValidator(mimeTypes, extensions []string) *Validator {
	v := &Validator{
		mimeTypes:  make(map[string]struct{}, len(mimeTypes)),
		extensions: make(map[string]struct{}, len(extensions)),
	}
	for _, m := range mimeTypes {
		v.mimeTypes[m] = struct{}{}
	}
	for _, ext := range extensions {
		v.extensions[strings.ToLower(ext)] = struct{}{}
	}
	return v
}

// DefaultValidator uses the fixed text allow-lists
func DefaultValidator() *Validator {
	return NewValidator(AllowedMIMETypes, AllowedExtensions)
}

// Validate decides whether f may be read. Size is checked before type.
func (v *Validator) Validate(f domain.CandidateFile) domain.Verdict {
	if f.Size == 0 {
		return domain.RejectedEmpty
	}
	if _, ok := v.mimeTypes[f.MIMEType]; ok {
		return domain.Accepted
	}
	if _, ok := v.extensions[strings.ToLower(path.Ext(f.Name))]; ok {
		return domain.Accepted
	}
	return domain.RejectedType
}

// AcceptedTypes returns the allow-lists joined for an input's accept attribute
func AcceptedTypes() string {
	return strings.Join(append(append([]string{}, AllowedExtensions...), AllowedMIMETypes...), ",")
}
