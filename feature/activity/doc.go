// Package activity persists every tool invocation to the optional database.
//
// Store is a files.Observer; registering it on the files service is enough to
// start recording. The table is tool_activities and is migrated when the
// feature loads.
//
// # HTTP Endpoints
//
//   - GET /api/activity : Recent invocations (supports ?limit=N, default 50, max 500).
package activity
