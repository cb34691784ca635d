// Package favorites implements the curated-list tracking feature.
//
// A sync run is strictly sequential:
//  1. Fetch the current list from LeetCode (core/leetcode).
//  2. Read the previous snapshot, if any (core/snapshot).
//  3. Reconcile the two (core/reconcile).
//  4. Write the dated report (core/snapshot).
//
// Either a complete report is written or none is.
//
// # Errors
//
// Every failure is returned as an *Error carrying a Kind (fetch, snapshot read,
// write, invalid input). Callers switch on KindOf(err) instead of inspecting
// messages; the HTTP handler maps kinds to status codes.
//
// # HTTP Endpoints
//
//   - GET /favorites : Well-known list identifiers.
//   - GET /favorites/:slug/questions : Current contents of a list.
//   - GET /favorites/:slug/report : Reconciliation against the latest saved report, nothing written.
//   - POST /favorites/:slug/sync : Full sync, writes the dated report (supports ?dry_run=true).
package favorites
