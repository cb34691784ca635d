package reconcile

import (
	"testing"

	"leetcode-tracker/core/leetcode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://leetcode.com"

func q(slug string) leetcode.Question {
	return leetcode.Question{Title: slug, TitleSlug: slug, Difficulty: "Medium"}
}

// TestReconcile_EmptyPrevious covers the first run for a list.
func TestReconcile_EmptyPrevious(t *testing.T) {
	report := Reconcile([]leetcode.Question{q("two-sum")}, Snapshot{}, testBaseURL)

	assert.Equal(t, []string{"title_slug", "url", "is_outdated"}, report.Columns)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, Row{
		"title_slug":  "two-sum",
		"url":         "https://leetcode.com/problems/two-sum",
		"is_outdated": "",
	}, report.Rows[0])
	assert.Equal(t, Summary{Total: 1, Current: 1, New: 1}, report.Summary)
}

// TestReconcile_OutdatedDetection checks that removed questions trail the current ones.
func TestReconcile_OutdatedDetection(t *testing.T) {
	previous := Snapshot{
		Columns: []string{"title_slug", "url", "is_outdated"},
		Records: []Record{
			{"title_slug": "a", "url": "https://leetcode.com/problems/a", "is_outdated": ""},
			{"title_slug": "b", "url": "https://leetcode.com/problems/b", "is_outdated": ""},
		},
	}

	report := Reconcile([]leetcode.Question{q("a")}, previous, testBaseURL)

	require.Len(t, report.Rows, 2)
	assert.Equal(t, "a", report.Rows[0][ColumnTitleSlug])
	assert.Equal(t, "", report.Rows[0][ColumnIsOutdated])
	assert.False(t, report.Rows[0].IsOutdated())
	assert.Equal(t, "b", report.Rows[1][ColumnTitleSlug])
	assert.Equal(t, "T", report.Rows[1][ColumnIsOutdated])
	assert.True(t, report.Rows[1].IsOutdated())
	assert.Equal(t, Summary{Total: 2, Current: 1, Retained: 1, Outdated: 1}, report.Summary)
}

// TestReconcile_ForwardsHistoricalColumns keeps hand-added columns for returning questions.
func TestReconcile_ForwardsHistoricalColumns(t *testing.T) {
	previous := Snapshot{
		Columns: []string{"title_slug", "notes", "url", "is_outdated", "done"},
		Records: []Record{
			{"title_slug": "a", "url": "old-url", "is_outdated": "", "notes": "review", "done": "yes"},
		},
	}

	report := Reconcile([]leetcode.Question{q("a"), q("c")}, previous, testBaseURL)

	assert.Equal(t, []string{"title_slug", "url", "is_outdated", "notes", "done"}, report.Columns)
	require.Len(t, report.Rows, 2)

	a := report.Rows[0]
	assert.Equal(t, "review", a["notes"])
	assert.Equal(t, "yes", a["done"])
	assert.Equal(t, "https://leetcode.com/problems/a", a[ColumnURL], "url must come from the current fetch")

	c := report.Rows[1]
	assert.Equal(t, "c", c[ColumnTitleSlug])
	_, hasNotes := c["notes"]
	assert.False(t, hasNotes)
	assert.Equal(t, []string{"c", "https://leetcode.com/problems/c", "", "", ""}, c.Values(report.Columns))
}

// TestReconcile_EmptyCurrent marks every snapshot row outdated.
func TestReconcile_EmptyCurrent(t *testing.T) {
	previous := Snapshot{
		Columns: []string{"title_slug", "url", "is_outdated", "notes"},
		Records: []Record{
			{"title_slug": "a", "url": "u-a", "is_outdated": "", "notes": "x"},
			{"title_slug": "b", "url": "u-b", "is_outdated": "T", "notes": ""},
		},
	}

	report := Reconcile(nil, previous, testBaseURL)

	require.Len(t, report.Rows, 2)
	for _, row := range report.Rows {
		assert.Equal(t, "T", row[ColumnIsOutdated])
	}
	// Outdated rows keep their historical url and columns.
	assert.Equal(t, "u-a", report.Rows[0][ColumnURL])
	assert.Equal(t, "x", report.Rows[0]["notes"])
	assert.Equal(t, 2, report.Summary.Outdated)
}

// TestReconcile_Reactivated clears the outdated flag when a question returns.
func TestReconcile_Reactivated(t *testing.T) {
	previous := Snapshot{
		Columns: []string{"title_slug", "url", "is_outdated"},
		Records: []Record{{"title_slug": "a", "url": "u", "is_outdated": "T"}},
	}

	report := Reconcile([]leetcode.Question{q("a")}, previous, testBaseURL)

	require.Len(t, report.Rows, 1)
	assert.Equal(t, "", report.Rows[0][ColumnIsOutdated])
	assert.Equal(t, 1, report.Summary.Reactivated)
}

// TestReconcile_DoesNotMutatePrevious ensures snapshot records are read only.
func TestReconcile_DoesNotMutatePrevious(t *testing.T) {
	rec := Record{"title_slug": "b", "url": "u", "is_outdated": ""}
	previous := Snapshot{Columns: []string{"title_slug", "url", "is_outdated"}, Records: []Record{rec}}

	_ = Reconcile(nil, previous, testBaseURL)

	assert.Equal(t, "", rec[ColumnIsOutdated])
}

// TestReconcile_DuplicateSlugs documents the undefined duplicate-key behaviour.
func TestReconcile_DuplicateSlugs(t *testing.T) {
	previous := Snapshot{
		Columns: []string{"title_slug", "url", "is_outdated", "notes"},
		Records: []Record{
			{"title_slug": "a", "notes": "first"},
			{"title_slug": "a", "notes": "second"},
			{"title_slug": "b", "notes": "one"},
			{"title_slug": "b", "notes": "two"},
		},
	}

	report := Reconcile([]leetcode.Question{q("a")}, previous, testBaseURL)

	require.Len(t, report.Rows, 3)
	assert.Equal(t, "second", report.Rows[0]["notes"])
	assert.Equal(t, "one", report.Rows[1]["notes"])
	assert.Equal(t, "two", report.Rows[2]["notes"])
}

func TestColumns(t *testing.T) {
	tests := []struct {
		name     string
		previous Snapshot
		want     []string
	}{
		{"Empty", Snapshot{}, []string{"title_slug", "url", "is_outdated"}},
		{
			"HeaderReordered",
			Snapshot{Columns: []string{"is_outdated", "notes", "title_slug", "url"}},
			[]string{"title_slug", "url", "is_outdated", "notes"},
		},
		{
			"DuplicateHeader",
			Snapshot{Columns: []string{"notes", "notes", "done"}},
			[]string{"title_slug", "url", "is_outdated", "notes", "done"},
		},
		{
			"RecordOnlyColumns",
			Snapshot{
				Columns: []string{"title_slug"},
				Records: []Record{{"title_slug": "a", "zeta": "1", "alpha": "2"}},
			},
			[]string{"title_slug", "url", "is_outdated", "alpha", "zeta"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Columns(tt.previous))
		})
	}
}
