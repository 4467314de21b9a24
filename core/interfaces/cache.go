// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"time"
)

// SessionCache defines the interface for holding live session objects.
// Implementations expire entries after their TTL and report evictions so
// the owner can release resources.
//
// Example usage:
//
//	cache := someCache // implements SessionCache
//
//	// Store a session for 30 minutes
//	cache.Set("3f0c...", sess, 30*time.Minute)
//
//	// Look it up again
//	value, ok := cache.Get("3f0c...")
//
//	// Drop it
//	cache.Delete("3f0c...")
type SessionCache interface {
	// Get retrieves a value by key. The second result is false on a miss
	// or when the entry has expired.
	Get(key string) (interface{}, bool)

	// Set stores a value with the given TTL.
	// If ttl is 0, the cache default applies.
	Set(key string, value interface{}, ttl time.Duration)

	// Replace overwrites an existing, unexpired value and resets its TTL.
	// It returns an error when the key is missing and never creates it.
	Replace(key string, value interface{}, ttl time.Duration) error

	// Items returns all unexpired values keyed by their key.
	Items() map[string]interface{}

	// Delete removes a value. The eviction callback runs for it.
	Delete(key string)

	// OnEvicted registers a callback run when an entry expires or is deleted.
	OnEvicted(fn func(key string, value interface{}))

	// Count returns the number of stored entries, including expired ones
	// not yet cleaned up.
	Count() int
}
