// ABOUTME: Serves the drop page holding the drop target, file picker and output region
// ABOUTME: The page forwards its drag and file events to a preview session

package web

import (
	_ "embed"
	"html/template"
	"net/http"

	"filepreview-app/core/domain"
	coreerrors "filepreview-app/core/errors"
	"filepreview-app/core/interfaces"
	"filepreview-app/core/ui"
	"github.com/go-chi/chi/v5"
)

//go:embed index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

type pageData struct {
	Accept string
	// FailureHTML replaces the output region when a request fails
	FailureHTML string
}

func failureHTML() string {
	return ui.RenderHTML(domain.Failed(domain.ReadFailure, coreerrors.MessageFor(domain.ReadFailure)))
}

// PageHandler renders the drop page. accept fills the file picker's
// accept attribute.
func PageHandler(accept string, logger interfaces.Logger) http.HandlerFunc {
	data := pageData{Accept: accept, FailureHTML: failureHTML()}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := indexTemplate.Execute(w, data); err != nil && logger != nil {
			logger.Error("Failed to render page", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}

// RegisterRoutes mounts the drop page at the root path
func RegisterRoutes(router chi.Router, accept string, logger interfaces.Logger) {
	router.Get("/", PageHandler(accept, logger))
}
