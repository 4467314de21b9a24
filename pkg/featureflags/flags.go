// ABOUTME: Feature flag management for toggling optional behaviour
// ABOUTME: Provides interface-based feature toggling with env and static backends

package featureflags

import (
	"context"
	"os"
	"strconv"
	"strings"
	"sync"
)

// FeatureFlag represents a single feature flag
type FeatureFlag string

const (
	// RateLimitEnabled turns on per-IP rate limiting of API requests
	RateLimitEnabled FeatureFlag = "rate_limit_enabled"

	// RequestLogging turns on the request logging middleware
	RequestLogging FeatureFlag = "request_logging"

	// CancelSupersededReads cancels an in-flight file read when a newer file
	// is handled by the same session, instead of letting the later completion win
	CancelSupersededReads FeatureFlag = "cancel_superseded_reads"
)

// Defaults are the flag states used when nothing overrides them
var Defaults = map[FeatureFlag]bool{
	RateLimitEnabled:      true,
	RequestLogging:        true,
	CancelSupersededReads: false,
}

// Manager defines the interface for feature flag management
type Manager interface {
	// IsEnabled checks if a feature flag is enabled
	IsEnabled(ctx context.Context, flag FeatureFlag) bool

	// SetEnabled pins a flag's state, taking precedence over any source
	SetEnabled(flag FeatureFlag, enabled bool)

	// GetAllFlags returns the state of all flags
	GetAllFlags() map[FeatureFlag]bool
}

// pinned holds flag states set at runtime
type pinned struct {
	mu    sync.RWMutex
	flags map[FeatureFlag]bool
}

func (p *pinned) lookup(flag FeatureFlag) (bool, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	enabled, ok := p.flags[flag]
	return enabled, ok
}

func (p *pinned) SetEnabled(flag FeatureFlag, enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.flags == nil {
		p.flags = make(map[FeatureFlag]bool)
	}
	p.flags[flag] = enabled
}

// EnvManager reads flags from PREFIX + upper-cased flag name, e.g.
// FEATURE_CANCEL_SUPERSEDED_READS=true
type EnvManager struct {
	pinned
	prefix string
}

// NewEnvManager creates a new environment-based feature flag manager
func NewEnvManager(prefix string) *EnvManager {
	if prefix == "" {
		prefix = "FEATURE_"
	}
	return &EnvManager{prefix: prefix}
}

// IsEnabled reports a pinned state first, then the environment. Unset or
// unparseable variables fall back to Defaults.
func (m *EnvManager) IsEnabled(ctx context.Context, flag FeatureFlag) bool {
	if enabled, ok := m.lookup(flag); ok {
		return enabled
	}

	value, ok := os.LookupEnv(m.prefix + strings.ToUpper(string(flag)))
	if !ok {
		return Defaults[flag]
	}
	if enabled, ok := parseFlag(value); ok {
		return enabled
	}
	return Defaults[flag]
}

// GetAllFlags returns the state of all defined flags
func (m *EnvManager) GetAllFlags() map[FeatureFlag]bool {
	ctx := context.Background()
	flags := make(map[FeatureFlag]bool, len(Defaults))
	for flag := range Defaults {
		flags[flag] = m.IsEnabled(ctx, flag)
	}
	return flags
}

// parseFlag accepts strconv bools plus "enabled"/"disabled" and "on"/"off"
func parseFlag(value string) (bool, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	switch value {
	case "enabled", "on":
		return true, true
	case "disabled", "off":
		return false, true
	}
	enabled, err := strconv.ParseBool(value)
	return enabled, err == nil
}

// StaticManager holds a fixed set of flags; anything unset is disabled
type StaticManager struct {
	pinned
}

// NewStaticManager creates a manager with predefined flag states. The map
// is copied.
func NewStaticManager(flags map[FeatureFlag]bool) *StaticManager {
	m := &StaticManager{}
	for flag, enabled := range flags {
		m.SetEnabled(flag, enabled)
	}
	return m
}

// IsEnabled checks if a feature flag is enabled
func (m *StaticManager) IsEnabled(ctx context.Context, flag FeatureFlag) bool {
	enabled, _ := m.lookup(flag)
	return enabled
}

// GetAllFlags returns all flag states that were set
func (m *StaticManager) GetAllFlags() map[FeatureFlag]bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[FeatureFlag]bool, len(m.flags))
	for k, v := range m.flags {
		result[k] = v
	}
	return result
}

type contextKey struct{}

// WithManager adds a feature flag manager to the context
func WithManager(ctx context.Context, manager Manager) context.Context {
	return context.WithValue(ctx, contextKey{}, manager)
}

// FromContext retrieves the feature flag manager from context. Without
// one, every flag reads as disabled.
func FromContext(ctx context.Context) Manager {
	if manager, ok := ctx.Value(contextKey{}).(Manager); ok {
		return manager
	}
	return NewStaticManager(nil)
}

// IsEnabled is a convenience function to check if a feature is enabled
func IsEnabled(ctx context.Context, flag FeatureFlag) bool {
	return FromContext(ctx).IsEnabled(ctx, flag)
}
