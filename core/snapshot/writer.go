package snapshot

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"leetcode-tracker/core/reconcile"
)

// FileName returns the report file name for a list on the given day.
func FileName(prefix, slug string, t time.Time, layout string) string {
	if layout == "" {
		layout = DefaultDateLayout
	}
	return fmt.Sprintf("%s_%s_%s.csv", prefix, slug, t.Format(layout))
}

// Encode writes the report header and rows as CSV.
func Encode(w io.Writer, report *reconcile.Report) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(report.Columns); err != nil {
		return err
	}
	for _, row := range report.Rows {
		if err := writer.Write(row.Values(report.Columns)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// Write stores the report as dir/name and returns the final path.
func Write(dir, name string, report *reconcile.Report) (string, error) {
	path := filepath.Join(dir, name)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return "", &WriteError{Path: path, Err: err}
	}
	tmpPath := tmp.Name()

	if err := Encode(tmp, report); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", &WriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", &WriteError{Path: path, Err: err}
	}
	// CreateTemp uses 0600.
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return "", &WriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return "", &WriteError{Path: path, Err: err}
	}

	return path, nil
}
