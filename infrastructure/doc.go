// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// - cache/memory: Session cache on go-cache with TTL and eviction callbacks
// - logger/structured: logrus logger with optional lumberjack file rotation
//
// # Session Cache
//
//	cache := memory.NewMemoryCache(30*time.Minute, 5*time.Minute)
//	cache.OnEvicted(func(key string, value interface{}) {
//	    // release the session
//	})
//	cache.Set("id", session, 0) // 0 uses the default expiration
//
// # Logger
//
//	logger := structured.NewLogger(structured.Options{Level: "debug", Format: "json"})
//	logger.Info("Session opened", map[string]interface{}{
//	    "session_id": id,
//	})
package infrastructure
