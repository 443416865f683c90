// Package dataset contains the in-memory tabular model shared by the
// anonymization transforms and the backing store layer.
package dataset

import (
	"fmt"
)

// Record is a single row keyed by column name.
type Record map[string]interface{}

// Dataset is an ordered sequence of records sharing a column schema.
// Insertion order of rows is preserved; Columns defines the column order
// for rendering and store writes.
type Dataset struct {
	Columns []string
	Rows    []Record
}

// New creates an empty Dataset with the given column order.
func New(columns ...string) *Dataset {
	return &Dataset{
		Columns: append([]string(nil), columns...),
	}
}

// Append adds a record to the dataset.
func (d *Dataset) Append(r Record) {
	d.Rows = append(d.Rows, r)
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.Rows)
}

// HasColumn reports whether the dataset schema contains the named column.
func (d *Dataset) HasColumn(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// AddColumn appends a column to the schema. Existing rows keep a nil value
// until one is assigned. Adding an existing column is a no-op.
func (d *Dataset) AddColumn(name string) {
	if d.HasColumn(name) {
		return
	}
	d.Columns = append(d.Columns, name)
}

// DropColumn removes a column from the schema and from every row.
func (d *Dataset) DropColumn(name string) {
	cols := d.Columns[:0]
	for _, c := range d.Columns {
		if c != name {
			cols = append(cols, c)
		}
	}
	d.Columns = cols
	for _, row := range d.Rows {
		delete(row, name)
	}
}

// Clone returns a deep copy of the dataset. Transforms that must not mutate
// their input operate on a clone.
func (d *Dataset) Clone() *Dataset {
	out := New(d.Columns...)
	out.Rows = make([]Record, len(d.Rows))
	for i, row := range d.Rows {
		cp := make(Record, len(row))
		for k, v := range row {
			cp[k] = v
		}
		out.Rows[i] = cp
	}
	return out
}

// Float64Column returns the values of a numeric column.
// A missing column or a non-numeric value is a descriptive error, never a
// silent coercion.
func (d *Dataset) Float64Column(name string) ([]float64, error) {
	if !d.HasColumn(name) {
		return nil, fmt.Errorf("column %q not found in dataset", name)
	}
	values := make([]float64, len(d.Rows))
	for i, row := range d.Rows {
		f, ok := ToFloat64(row[name])
		if !ok {
			return nil, fmt.Errorf("row %d: column %q: value %v is not numeric", i, name, row[name])
		}
		values[i] = f
	}
	return values, nil
}
