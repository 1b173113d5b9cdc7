package tablestore

import (
	"strings"
	"time"
)

// Table names known to the store. Anything else is rejected.
const (
	Users                  = "users"
	AttendanceLogs         = "attendance_logs"
	RegularizationRequests = "regularization_requests"
	Blogs                  = "blogs"
	Holidays               = "holidays"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

var knownTables = map[string]bool{
	Users:                  true,
	AttendanceLogs:         true,
	RegularizationRequests: true,
	Blogs:                  true,
	Holidays:               true,
}

// Known reports whether name is one of the fixed table names.
func Known(name string) bool {
	return knownTables[name]
}

var dateColumns = map[string]bool{
	"date":            true,
	"date_of_birth":   true,
	"date_of_joining": true,
}

var timeColumns = map[string]bool{
	"in_time":            true,
	"out_time":           true,
	"requested_in_time":  true,
	"requested_out_time": true,
}

// Accepted spellings of a calendar date, tried in order.
var dateLayouts = []string{
	DateLayout,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"01-02-2006",
	"2 Jan 2006",
	"January 2, 2006",
}

// Row is one record keyed by column name. A missing or empty cell is a missing value.
type Row map[string]string

// Table is an ordered sequence of rows with a column order used when writing.
type Table struct {
	Columns []string
	Rows    []Row
}

func NewTable(columns ...string) *Table {
	return &Table{Columns: append([]string(nil), columns...)}
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Append adds a row, registering any column the table has not seen yet.
func (t *Table) Append(r Row) {
	for col := range r {
		if !t.hasColumn(col) {
			t.Columns = append(t.Columns, col)
		}
	}
	t.Rows = append(t.Rows, r)
}

func (t *Table) hasColumn(col string) bool {
	for _, c := range t.Columns {
		if c == col {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can mutate rows without touching shared state.
func (t *Table) Clone() *Table {
	if t == nil {
		return NewTable()
	}
	out := &Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([]Row, len(t.Rows)),
	}
	for i, r := range t.Rows {
		cp := make(Row, len(r))
		for k, v := range r {
			cp[k] = v
		}
		out.Rows[i] = cp
	}
	return out
}

// NormalizeDate renders v as YYYY-MM-DD, or "" when it is not a recognizable date.
func NormalizeDate(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, v); err == nil {
			return d.Format(DateLayout)
		}
	}
	return ""
}

// NormalizeTime keeps v only when it matches HH:MM:SS exactly.
func NormalizeTime(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if _, err := time.Parse(TimeLayout, v); err != nil {
		return ""
	}
	return v
}

// Normalize applies the date and time column coercions in place.
func Normalize(t *Table) {
	for _, r := range t.Rows {
		for col, v := range r {
			switch {
			case dateColumns[col]:
				r[col] = NormalizeDate(v)
			case timeColumns[col]:
				r[col] = NormalizeTime(v)
			}
		}
	}
}
