package reconcile

import (
	"sort"

	"leetcode-tracker/core/leetcode"
)

// Columns derives the report header from a snapshot: the mandatory columns,
// then every other snapshot column in first-seen order. Columns that appear in
// records but not in the header are appended last, sorted by name.
func Columns(previous Snapshot) []string {
	columns := MandatoryColumns()
	seen := make(map[string]struct{}, len(columns)+len(previous.Columns))
	for _, col := range columns {
		seen[col] = struct{}{}
	}

	add := func(col string) {
		if _, ok := seen[col]; ok {
			return
		}
		seen[col] = struct{}{}
		columns = append(columns, col)
	}

	for _, col := range previous.Columns {
		add(col)
	}

	// Records read from CSV only hold header keys.
	var extra []string
	for _, rec := range previous.Records {
		for col := range rec {
			if _, ok := seen[col]; !ok {
				extra = appendUnique(extra, col)
			}
		}
	}
	sort.Strings(extra)
	for _, col := range extra {
		add(col)
	}

	return columns
}

// Reconcile merges the current question list with the previous snapshot.
// baseURL is the site root used to build each row's url.
func Reconcile(current []leetcode.Question, previous Snapshot, baseURL string) *Report {
	columns := Columns(previous)

	// Later records win when a slug repeats.
	lookup := make(map[string]Record, len(previous.Records))
	for _, rec := range previous.Records {
		lookup[rec[ColumnTitleSlug]] = rec
	}

	var summary Summary
	rows := make([]Row, 0, len(current)+len(previous.Records))

	currentSlugs := make(map[string]struct{}, len(current))
	for _, q := range current {
		currentSlugs[q.TitleSlug] = struct{}{}

		row := Row{
			ColumnTitleSlug:  q.TitleSlug,
			ColumnURL:        leetcode.ProblemURL(baseURL, q.TitleSlug),
			ColumnIsOutdated: "",
		}

		if prev, ok := lookup[q.TitleSlug]; ok {
			for _, col := range columns {
				if _, set := row[col]; set {
					continue
				}
				if val, has := prev[col]; has {
					row[col] = val
				}
			}
			summary.Retained++
			if prev[ColumnIsOutdated] == OutdatedMarker {
				summary.Reactivated++
			}
		} else {
			summary.New++
		}

		rows = append(rows, row)
		summary.Current++
	}

	for _, prev := range previous.Records {
		if _, ok := currentSlugs[prev[ColumnTitleSlug]]; ok {
			continue
		}
		row := make(Row, len(prev)+1)
		for col, val := range prev {
			row[col] = val
		}
		row[ColumnIsOutdated] = OutdatedMarker
		rows = append(rows, row)
		summary.Outdated++
	}

	summary.Total = len(rows)

	return &Report{
		Columns: columns,
		Rows:    rows,
		Summary: summary,
	}
}

func appendUnique(list []string, s string) []string {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}
