package reconcile

// Mandatory column names, in output order.
const (
	ColumnTitleSlug  = "title_slug"
	ColumnURL        = "url"
	ColumnIsOutdated = "is_outdated"
)

// OutdatedMarker is the is_outdated value of a row that left the list.
const OutdatedMarker = "T"

// MandatoryColumns returns the columns every report starts with.
func MandatoryColumns() []string {
	return []string{ColumnTitleSlug, ColumnURL, ColumnIsOutdated}
}

func isMandatory(column string) bool {
	switch column {
	case ColumnTitleSlug, ColumnURL, ColumnIsOutdated:
		return true
	default:
		return false
	}
}

// Record is one row of a previous snapshot, keyed by column name.
type Record map[string]string

// Snapshot is a previously written report.
type Snapshot struct {
	// Columns is the header of the snapshot file, in file order.
	Columns []string `json:"columns"`
	// Records holds the data rows in file order.
	Records []Record `json:"records"`
}

// IsEmpty reports whether the snapshot has neither header nor rows.
func (s Snapshot) IsEmpty() bool {
	return len(s.Columns) == 0 && len(s.Records) == 0
}

// Row is one line of a reconciliation report, keyed by column name.
// Columns without a value are absent from the map.
type Row map[string]string

// IsOutdated reports whether the row belongs to a question that left the list.
func (r Row) IsOutdated() bool {
	return r[ColumnIsOutdated] == OutdatedMarker
}

// Values renders the row in the given column order. Missing columns are "".
func (r Row) Values(columns []string) []string {
	values := make([]string, len(columns))
	for i, col := range columns {
		values[i] = r[col]
	}
	return values
}

// Report is the output of a reconciliation.
type Report struct {
	// Columns is the output header.
	Columns []string `json:"columns"`
	// Rows holds current rows followed by outdated rows.
	Rows []Row `json:"rows"`
	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// Summary provides aggregate statistics for a report.
type Summary struct {
	// Total is the number of emitted rows.
	Total int `json:"total"`

	// Current counts rows from the current fetch.
	Current int `json:"current"`

	// New counts current questions that were not in the snapshot.
	New int `json:"new"`

	// Retained counts current questions that were already in the snapshot.
	Retained int `json:"retained"`

	// Reactivated counts retained questions that the snapshot marked outdated.
	Reactivated int `json:"reactivated"`

	// Outdated counts snapshot rows no longer in the current list.
	Outdated int `json:"outdated"`
}
