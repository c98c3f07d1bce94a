// Package server exposes the number-to-words conversion over HTTP.
//
// Routes:
//
//	GET  /v1/words?value=X   convert a single value
//	POST /v1/words           convert {"values": [...]} in order
//	GET  /health             liveness probe with host and runtime stats
//	GET  /metrics            Prometheus exposition
//
// Every route runs behind SecurityMiddleware, the request-ID middleware and
// the metrics middleware. Requests keep a caller-supplied X-Request-ID or
// get a fresh UUID, echoed in the response. Conversion handlers record an
// OpenTelemetry span tagged with that ID.
package server
