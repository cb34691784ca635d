package snapshot

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"leetcode-tracker/core/reconcile"
)

const utf8BOM = "\ufeff"

// Read loads a previous report. An empty path or a file that does not exist
// yields an empty snapshot and no error.
func Read(path string) (reconcile.Snapshot, error) {
	if path == "" {
		return reconcile.Snapshot{}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return reconcile.Snapshot{}, nil
		}
		return reconcile.Snapshot{}, &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	snap, err := Decode(f)
	if err != nil {
		return reconcile.Snapshot{}, &ReadError{Path: path, Err: err}
	}
	return snap, nil
}

// Decode parses CSV with a header row into a snapshot. The header must contain
// title_slug, url and is_outdated. Short rows are padded with empty values and
// fields beyond the header are ignored.
func Decode(r io.Reader) (reconcile.Snapshot, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return reconcile.Snapshot{}, fmt.Errorf("missing header row")
		}
		return reconcile.Snapshot{}, fmt.Errorf("parse header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	if missing := missingMandatory(header); len(missing) > 0 {
		return reconcile.Snapshot{}, fmt.Errorf("header missing required columns: %s", strings.Join(missing, ", "))
	}

	snap := reconcile.Snapshot{Columns: header}
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return reconcile.Snapshot{}, fmt.Errorf("parse row: %w", err)
		}

		rec := make(reconcile.Record, len(header))
		for i, col := range header {
			if i < len(fields) {
				rec[col] = fields[i]
			} else {
				rec[col] = ""
			}
		}
		snap.Records = append(snap.Records, rec)
	}

	return snap, nil
}

func missingMandatory(header []string) []string {
	present := make(map[string]struct{}, len(header))
	for _, col := range header {
		present[col] = struct{}{}
	}

	var missing []string
	for _, col := range reconcile.MandatoryColumns() {
		if _, ok := present[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}
