package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Row maps column names to cell values.
type Row map[string]string

// Dataset is a CSV table keyed by an identity column.
type Dataset struct {
	Columns   []string
	KeyColumn string
	Rows      map[string]Row
	Keys      []string // key values in file order
}

// Load reads a CSV file into a Dataset. The first record is the header. The
// identity column is selected by name; when the named column is absent the
// first column is used instead.
func Load(path, keyColumn string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: dataset has no header", path)
	}

	header := records[0]
	keyIdx := 0
	for i, col := range header {
		if col == keyColumn {
			keyIdx = i
			break
		}
	}

	ds := &Dataset{
		Columns:   header,
		KeyColumn: header[keyIdx],
		Rows:      make(map[string]Row, len(records)-1),
	}
	for _, record := range records[1:] {
		row := make(Row, len(header))
		for i, col := range header {
			row[col] = record[i]
		}
		key := record[keyIdx]
		if _, dup := ds.Rows[key]; dup {
			return nil, fmt.Errorf("%s: duplicate key %q in column %s", path, key, ds.KeyColumn)
		}
		ds.Rows[key] = row
		ds.Keys = append(ds.Keys, key)
	}
	return ds, nil
}

// Len returns the number of data rows.
func (d *Dataset) Len() int {
	return len(d.Keys)
}
