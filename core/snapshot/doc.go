// Package snapshot reads and writes the dated CSV reports produced by reconciliation.
//
// Every run writes one file per list and day, named
//
//	<prefix>_<favorite-slug>_<date>.csv
//
// with the date formatted by the configured layout (MMDDYYYY by default). Such a
// file is the snapshot input of the next run.
//
// # Reading
//
// Read treats an empty path or a missing file as "no previous snapshot" and
// returns an empty Snapshot. Any other failure is a *ReadError.
//
// # Writing
//
// Write streams the report into a temporary file next to the target and renames
// it into place, so a failed run never leaves a truncated report under the final
// name. Rerunning on the same day replaces that day's file.
package snapshot
