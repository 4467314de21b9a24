// ABOUTME: HTML escaping for user content placed in the output region
// ABOUTME: Replaces the five HTML-significant characters with named entities

package preview

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Escape makes s safe to place inside HTML text or attribute values.
// Escaping twice double-escapes '&'.
func Escape(s string) string {
	return htmlEscaper.Replace(s)
}
