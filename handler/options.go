package handler

import "log/slog"

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger used for per-invocation outcome records.
func WithLogger(log *slog.Logger) Option {
	return func(h *Handler) {
		if log != nil {
			h.log = log
		}
	}
}

// WithCORS adds a wildcard Access-Control-Allow-Origin header to every
// response, for deployments where the form is served from another origin.
func WithCORS() Option {
	return func(h *Handler) { h.cors = true }
}

// WithErrorPropagation switches the boundary policy: instead of catching
// failures and rendering a 500 response, the handler returns the error to
// the invoking runtime uncaught. One policy applies to all error kinds.
func WithErrorPropagation() Option {
	return func(h *Handler) { h.propagate = true }
}
