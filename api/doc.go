// Package api provides the HTTP layer of the File Preview service.
// It uses the Huma framework on a chi router for OpenAPI documentation and
// request validation.
//
// # Architecture
//
// - server.go: Huma API configuration, CORS and flag-gated middleware
// - handlers/: Session handlers forwarding page events to UI controllers
// - dto/: Request and response DTOs and their mappers
// - middleware/: Request logging and per-IP rate limiting
// - web/: The embedded drop page
//
// # Endpoints
//
//	POST   /sessions                       open a session
//	GET    /sessions/{id}                  current snapshot
//	POST   /sessions/{id}/events           dragenter, dragover, dragleave
//	POST   /sessions/{id}/files?trigger=   multipart "files", drop or change
//	DELETE /sessions/{id}                  close a session
//
// The OpenAPI spec is served at /openapi.json and the docs UI at /docs.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  120,
//	    RateWindow: time.Minute,
//	    Flags:      flags,
//	})
//	handlers.NewPreviewHandler(sessions, logger, 10*time.Second, 1<<20).RegisterRoutes(humaAPI)
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Preview failures are part of the snapshot and never become HTTP errors.
// Unknown sessions answer 404 in the RFC 7807 format Huma uses:
//
//	{
//	    "status": 404,
//	    "title": "Not Found",
//	    "detail": "session not found: 6f1c..."
//	}
package api
