// Package reconcile merges a freshly fetched question list with the previous
// snapshot of that list.
//
// The previous snapshot is the CSV report of an earlier run. It may carry columns
// the user added by hand (notes, completion status, dates). Reconciliation keeps
// every one of those columns and produces one row per question:
//
//  1. Current rows, in fetch order. title_slug, url and is_outdated always come
//     from the current fetch; every other column is forwarded from the snapshot
//     row with the same title_slug.
//  2. Outdated rows, in snapshot order. Every snapshot row whose title_slug is no
//     longer in the current list is copied unchanged with is_outdated set to "T".
//
// # Columns
//
// The output header is title_slug, url, is_outdated followed by every other
// column of the snapshot in first-seen order. Historical columns are never
// dropped, even when no current row has a value for them.
//
// # Duplicate keys
//
// A snapshot with repeated title_slug values is not normalised. The lookup used
// for forwarding keeps the later row, and each duplicate that is absent from the
// current list is emitted as its own outdated row.
//
// # Usage
//
//	report := reconcile.Reconcile(questions, previous, "https://leetcode.com")
//	for _, row := range report.Rows {
//	    fmt.Println(row.Values(report.Columns))
//	}
package reconcile
