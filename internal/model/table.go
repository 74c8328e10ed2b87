package model

import (
	"sort"
	"strings"
)

// ItemNameColumn holds the board item's own name in every normalized row.
const ItemNameColumn = "Item Name"

// Row maps a column title to its text value. A missing key and a blank
// value are both treated as "no value".
type Row map[string]string

// Field is one column value of a source item. Null marks a value the
// source reported as absent; its column is still part of the table.
type Field struct {
	Column string
	Text   string
	Null   bool
}

// Table is an ordered set of rows sharing a column universe. Columns are
// listed in first-appearance order; not every row carries every column.
// A Table is never modified after it is built.
type Table struct {
	columns []string
	rows    []Row
}

// NewTable builds a Table with an explicit column order. Keys found in rows
// but missing from columns are appended in sorted order.
func NewTable(columns []string, rows []Row) Table {
	var b Builder
	for _, col := range columns {
		b.addColumn(col)
	}
	for _, r := range rows {
		keys := make([]string, 0, len(r))
		for k := range r {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fields := make([]Field, len(keys))
		for i, k := range keys {
			fields[i] = Field{Column: k, Text: r[k]}
		}
		b.Add(fields...)
	}
	return b.Table()
}

// Columns returns the column titles in first-appearance order.
func (t Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// Len returns the number of rows.
func (t Table) Len() int { return len(t.rows) }

// Value returns the text of column col in row i. ok is false when the
// value is absent or blank.
func (t Table) Value(i int, col string) (text string, ok bool) {
	v, present := t.rows[i][col]
	if !present || strings.TrimSpace(v) == "" {
		return v, false
	}
	return v, true
}

// Row returns a copy of row i.
func (t Table) Row(i int) Row {
	cp := make(Row, len(t.rows[i]))
	for k, v := range t.rows[i] {
		cp[k] = v
	}
	return cp
}

// Builder accumulates rows in source order.
type Builder struct {
	seen    map[string]bool
	columns []string
	rows    []Row
}

// Add appends one row. Null fields register their column but leave the
// row without a value for it. A repeated column keeps the last value.
func (b *Builder) Add(fields ...Field) {
	row := make(Row, len(fields))
	for _, f := range fields {
		b.addColumn(f.Column)
		if f.Null {
			delete(row, f.Column)
			continue
		}
		row[f.Column] = f.Text
	}
	b.rows = append(b.rows, row)
}

// Table returns the accumulated rows as a Table.
func (b *Builder) Table() Table {
	return Table{columns: b.columns, rows: b.rows}
}

func (b *Builder) addColumn(col string) {
	if b.seen == nil {
		b.seen = make(map[string]bool)
	}
	if !b.seen[col] {
		b.seen[col] = true
		b.columns = append(b.columns, col)
	}
}
