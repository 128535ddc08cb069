package tabular

import (
	"fmt"
	"strings"
)

// FieldChange records one cell that differs between produced and expected.
type FieldChange struct {
	Column string `json:"column"`
	Got    string `json:"got"`
	Want   string `json:"want"`
}

// RowChange records a row present in both datasets with differing cells.
type RowChange struct {
	Key    string        `json:"key"`
	Fields []FieldChange `json:"fields"`
}

// Diff is the structural delta between a produced and an expected dataset.
// Added means present in the produced dataset but not the expected one,
// removed the reverse.
type Diff struct {
	RowsAdded      []string    `json:"rows_added,omitempty"`
	RowsRemoved    []string    `json:"rows_removed,omitempty"`
	RowsChanged    []RowChange `json:"rows_changed,omitempty"`
	ColumnsAdded   []string    `json:"columns_added,omitempty"`
	ColumnsRemoved []string    `json:"columns_removed,omitempty"`
}

// Compare diffs produced against expected, keyed by each dataset's identity
// column. Cell comparison spans only the columns both datasets share.
func Compare(produced, expected *Dataset) *Diff {
	d := &Diff{}

	expectedCols := make(map[string]bool, len(expected.Columns))
	for _, col := range expected.Columns {
		expectedCols[col] = true
	}
	producedCols := make(map[string]bool, len(produced.Columns))
	for _, col := range produced.Columns {
		producedCols[col] = true
	}

	var shared []string
	for _, col := range produced.Columns {
		if expectedCols[col] {
			shared = append(shared, col)
		} else {
			d.ColumnsAdded = append(d.ColumnsAdded, col)
		}
	}
	for _, col := range expected.Columns {
		if !producedCols[col] {
			d.ColumnsRemoved = append(d.ColumnsRemoved, col)
		}
	}

	for _, key := range produced.Keys {
		want, ok := expected.Rows[key]
		if !ok {
			d.RowsAdded = append(d.RowsAdded, key)
			continue
		}
		got := produced.Rows[key]
		var fields []FieldChange
		for _, col := range shared {
			if got[col] != want[col] {
				fields = append(fields, FieldChange{Column: col, Got: got[col], Want: want[col]})
			}
		}
		if len(fields) > 0 {
			d.RowsChanged = append(d.RowsChanged, RowChange{Key: key, Fields: fields})
		}
	}
	for _, key := range expected.Keys {
		if _, ok := produced.Rows[key]; !ok {
			d.RowsRemoved = append(d.RowsRemoved, key)
		}
	}

	return d
}

// Empty reports whether the two datasets matched structurally.
func (d *Diff) Empty() bool {
	return len(d.RowsAdded) == 0 &&
		len(d.RowsRemoved) == 0 &&
		len(d.RowsChanged) == 0 &&
		len(d.ColumnsAdded) == 0 &&
		len(d.ColumnsRemoved) == 0
}

// Entries returns the total number of recorded differences.
func (d *Diff) Entries() int {
	return len(d.RowsAdded) + len(d.RowsRemoved) + len(d.RowsChanged) +
		len(d.ColumnsAdded) + len(d.ColumnsRemoved)
}

// String renders the diff for console diagnosis.
func (d *Diff) String() string {
	if d.Empty() {
		return "datasets match"
	}
	var b strings.Builder
	for _, col := range d.ColumnsAdded {
		fmt.Fprintf(&b, "+ column %s\n", col)
	}
	for _, col := range d.ColumnsRemoved {
		fmt.Fprintf(&b, "- column %s\n", col)
	}
	for _, key := range d.RowsAdded {
		fmt.Fprintf(&b, "+ row %s\n", key)
	}
	for _, key := range d.RowsRemoved {
		fmt.Fprintf(&b, "- row %s\n", key)
	}
	for _, rc := range d.RowsChanged {
		fmt.Fprintf(&b, "~ row %s\n", rc.Key)
		for _, fc := range rc.Fields {
			fmt.Fprintf(&b, "    %s: got %q, want %q\n", fc.Column, fc.Got, fc.Want)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
