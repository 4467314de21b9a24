package interfaces

// Logger is the structured logger used by the core, the API and the
// entrypoint. Fields are attached to the entry as key/value pairs; a nil
// map logs the message alone.
//
//	logger.Info("Session opened", map[string]interface{}{
//		"session_id": id,
//	})
//
//	logger.Warn("File read failed", map[string]interface{}{
//		"file":  name,
//		"error": err.Error(),
//	})
type Logger interface {
	// Debug records state transitions and ignored input
	Debug(msg string, fields map[string]interface{})

	// Info records request flow and rejected files
	Info(msg string, fields map[string]interface{})

	// Warn records failures the user sees as an error render
	Warn(msg string, fields map[string]interface{})

	// Error records failures of the service itself
	Error(msg string, fields map[string]interface{})
}
