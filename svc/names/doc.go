// Package names serves random names from an in-memory, append-only store.
//
// Store holds the names, Service trims and validates input and reports to
// logs and metrics, and Handler exposes both operations on /api/random-name:
//
//	GET  -> {"name":"Grace Lee"}                                  (404 {"error":"No names available"} when empty)
//	POST -> {"success":true,"message":"Name added successfully"}  (name from query or form)
//
// A POST with a missing or blank name answers
// {"success":false,"message":"Name cannot be empty"} with the status set by
// WithInvalidInputStatus, 200 by default.
//
// The store lives for the lifetime of the process and starts from
// DefaultNames on every boot.
package names
