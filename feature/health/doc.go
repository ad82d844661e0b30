// Package health reports whether the service can reach its storage bucket.
//
// The storage check is a single BucketExists round trip. The agent and database
// are optional, so their absence is reported but never makes the service
// degraded.
//
// # HTTP Endpoints
//
//   - GET /health : Runs all checks. Answers 503 when degraded.
package health
