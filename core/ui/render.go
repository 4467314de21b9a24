// ABOUTME: HTML rendering of render states into output region markup
// ABOUTME: Every piece of user content passes through the escaper

package ui

import (
	"fmt"
	"strings"

	"filepreview-app/core/domain"
	"filepreview-app/core/preview"
)

const loadingHTML = `<div class="loading">🔄 Reading file...</div>`

// RenderHTML returns the markup that replaces the output region for state
func RenderHTML(state domain.RenderState) string {
	switch state.Kind {
	case domain.RenderLoading:
		return loadingHTML
	case domain.RenderError:
		return renderMessage(errorIcon(state.ErrorKind)+" "+preview.Escape(state.Message), "error")
	case domain.RenderSuccess:
		return renderLines(state.Filename, state.Lines)
	default:
		return ""
	}
}

func errorIcon(kind domain.ErrorKind) string {
	if kind == domain.WhitespaceOnlyContent {
		return "📭"
	}
	return "❌"
}

func renderMessage(message, class string) string {
	return fmt.Sprintf(`<div class="%s">%s</div>`, class, message)
}

func renderLines(filename string, lines domain.LinePreview) string {
	var b strings.Builder

	plural := "s"
	if len(lines) == 1 {
		plural = ""
	}
	fmt.Fprintf(&b, `<div class="success">✅ Loaded <strong>%d</strong> line%s from <strong>%s</strong></div>`,
		len(lines), plural, preview.Escape(filename))

	b.WriteString(`<div class="output-content">`)
	for i, line := range lines {
		fmt.Fprintf(&b, `<div class="line"><strong class="line-number">Line %d:</strong> <span class="line-text">%s</span></div>`,
			i+1, preview.Escape(line))
	}
	b.WriteString(`</div>`)

	return b.String()
}
