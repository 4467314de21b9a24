// ABOUTME: Request body size limit middleware
// ABOUTME: Rejects declared oversize bodies with 413 and caps streamed ones

package middleware

import (
	"net/http"
)

// MultipartOverhead is the allowance for multipart boundaries, part headers
// and form fields on top of the file content itself.
const MultipartOverhead int64 = 64 << 10

// BodyLimitMiddleware caps request bodies at limit bytes. Requests that
// declare a larger Content-Length are answered with 413 before the handler
// runs; bodies of unknown length fail on read once they pass the limit.
func BodyLimitMiddleware(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Connection", "close")
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				w.Write([]byte(`{"error":"Request entity too large","message":"Request body exceeds the upload limit."}`))
				return
			}

			if r.Body != nil && r.Body != http.NoBody {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
