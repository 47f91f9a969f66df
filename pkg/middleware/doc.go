// Package middleware provides the HTTP middlewares and runtime
// instrumentation for the liftlog server: Prometheus metrics and
// OpenTelemetry tracing.
//
// Both middlewares are standard func(http.Handler) http.Handler wrappers
// and compose with chi's Use. The Record* helpers let the live-session
// layer feed session and render counts into the same registry.
package middleware
