// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core preview logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Sessions stores live preview sessions
	Sessions SessionCache

	// Logger provides structured logging
	Logger Logger
}
