// Package convert turns a delimited text table with longitude/latitude
// columns into a GeoJSON point FeatureCollection.
package convert

import "fmt"

// Coordinate column names.
const (
	Longitude = "longitude"
	Latitude  = "latitude"
)

// Kind is the scalar type inferred for a column.
type Kind int

// Column kinds, from most to least specific.
const (
	KindInt Kind = iota
	KindFloat
	KindBool
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "string"
	}
}

// Column describes a single table column.
type Column struct {
	Name string
	Kind Kind
}

// Table is a fully loaded table with a uniform schema.
// Cell values are int64, float64, bool, string or nil for missing cells.
type Table struct {
	index   map[string]int
	columns []Column
	rows    [][]interface{}
}

func newTable(columns []Column, rows [][]interface{}) *Table {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		index[c.Name] = i
	}
	return &Table{index: index, columns: columns, rows: rows}
}

// Columns returns the columns in header order.
func (t *Table) Columns() []Column {
	return append([]Column(nil), t.columns...)
}

// Column looks up a column by name.
func (t *Table) Column(name string) (Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return Column{}, false
	}
	return t.columns[i], true
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns the i-th data row.
func (t *Table) Row(i int) Row {
	return Row{table: t, values: t.rows[i]}
}

// Row is a view over a single table row. Fields are addressed by column name.
type Row struct {
	table  *Table
	values []interface{}
}

// Value returns the cell of the named column.
func (r Row) Value(name string) (interface{}, bool) {
	i, ok := r.table.index[name]
	if !ok {
		return nil, false
	}
	return r.values[i], true
}

// Float returns the named cell as a float64.
func (r Row) Float(name string) (float64, error) {
	v, ok := r.Value(name)
	if !ok {
		return 0, &SchemaError{Column: name}
	}

	switch n := v.(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("column %q holds %T, not a number", name, v)
	}
}
