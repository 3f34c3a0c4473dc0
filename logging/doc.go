// Package logging provides a tiny abstraction over slog so the rest of
// the backend can depend on a minimal interface (Logger) while allowing
// users to plug their own implementation. The built-in AppLogger adds
// contextual helpers (component, request id) and a domain specific
// record for provider calls.
//
// API credentials never pass through this package: callers log provider
// names, models and durations, not request bodies.
package logging
