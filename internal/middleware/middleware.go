// Package middleware holds the global Echo middleware and the error
// handler that turns every failure into the {"error": "..."} envelope.
//
// Cross-cutting concerns covered here: request ids, request-scoped
// logging, New Relic tracing, Prometheus metrics, CORS, body size and
// rate limits, and panic recovery.
package middleware
