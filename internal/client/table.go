package client

import (
	"backend/internal/uimeta"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Sort directions. A column cycles none -> asc -> desc -> none.
type SortDir int

const (
	SortNone SortDir = iota
	SortAsc
	SortDesc
)

// Table is the view-model of one list view: rows plus sort and filter state.
// The original row order is kept so clearing the sort restores it.
type Table struct {
	Columns uimeta.Columns
	// SelectMode marks the table as a dictionary picker: rows are chosen,
	// not edited.
	SelectMode bool

	rows    []Row
	sortKey string
	sortDir SortDir
	filter  string
}

// NewTable builds a table from a view descriptor and its fetched rows
func NewTable(d uimeta.Descriptor, rows []Row) *Table {
	return &Table{Columns: d.Header, rows: rows}
}

// ToggleSort advances the sort state of a column. Clicking a different
// column starts its cycle from ascending.
func (t *Table) ToggleSort(key string) {
	if t.sortKey != key {
		t.sortKey = key
		t.sortDir = SortAsc
		return
	}
	switch t.sortDir {
	case SortAsc:
		t.sortDir = SortDesc
	case SortDesc:
		t.sortDir = SortNone
		t.sortKey = ""
	default:
		t.sortDir = SortAsc
	}
}

// Sort returns the current sort column and direction
func (t *Table) Sort() (string, SortDir) { return t.sortKey, t.sortDir }

// SetFilter sets the substring filter, empty to clear
func (t *Table) SetFilter(q string) { t.filter = q }

// Filter returns the current filter string
func (t *Table) Filter() string { return t.filter }

// cellString renders a cell for comparison, filtering and display
func cellString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		if val == math.Trunc(val) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

// compareCells orders two cells numerically when both parse as numbers,
// otherwise by case-folded string comparison.
func compareCells(a, b string) int {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func (t *Table) matches(row Row) bool {
	if t.filter == "" {
		return true
	}
	needle := strings.ToLower(t.filter)
	for _, col := range t.Columns {
		if strings.Contains(strings.ToLower(cellString(row[col.Key])), needle) {
			return true
		}
	}
	return false
}

// Rows returns the visible rows: filtered, then sorted by the current state.
// With no sort active the server order is preserved.
func (t *Table) Rows() []Row {
	visible := make([]Row, 0, len(t.rows))
	for _, row := range t.rows {
		if t.matches(row) {
			visible = append(visible, row)
		}
	}
	if t.sortDir == SortNone || t.sortKey == "" {
		return visible
	}
	sort.SliceStable(visible, func(i, j int) bool {
		cmp := compareCells(cellString(visible[i][t.sortKey]), cellString(visible[j][t.sortKey]))
		if t.sortDir == SortDesc {
			return cmp > 0
		}
		return cmp < 0
	})
	return visible
}

// Highlight returns the [start, end) byte ranges of the filter inside a
// rendered cell, for match highlighting.
func (t *Table) Highlight(cell string) [][2]int {
	if t.filter == "" {
		return nil
	}
	var ranges [][2]int
	lower := strings.ToLower(cell)
	needle := strings.ToLower(t.filter)
	for from := 0; ; {
		idx := strings.Index(lower[from:], needle)
		if idx < 0 {
			break
		}
		start := from + idx
		ranges = append(ranges, [2]int{start, start + len(needle)})
		from = start + len(needle)
	}
	return ranges
}
