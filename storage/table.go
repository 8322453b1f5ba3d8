package storage

import (
	"strings"

	"github.com/kbanas/baza/errs"
	"github.com/kbanas/baza/strutil"
)

// defaultRowCapacity is the row capacity a freshly created table starts
// with, before any doubling growth.
const defaultRowCapacity = 64

// TableID is a process-unique, monotonically assigned table identity.
type TableID uint64

var nextTableID TableID

func allocTableID() TableID {
	id := nextTableID
	nextTableID++
	return id
}

// Table is an ordered sequence of columns plus a row count. Column
// insertion order defines both table layout and SELECT's print order.
type Table struct {
	id          TableID
	name        string
	rowCount    uint64
	rowCapacity uint64
	columns     []*Column
}

func newTable(name string) *Table {
	return &Table{
		id:          allocTableID(),
		name:        name,
		rowCapacity: defaultRowCapacity,
	}
}

func (t *Table) ID() TableID      { return t.id }
func (t *Table) Name() string     { return t.name }
func (t *Table) RowCount() uint64 { return t.rowCount }

// Columns returns the table's columns in declared order. The slice is
// owned by the table; callers must not mutate it.
func (t *Table) Columns() []*Column { return t.columns }

// AddColumn appends a new column of type t named name. It is rejected
// with TableNotEmpty once any row exists, since a newly added column
// would otherwise leave existing rows with no value to store, and
// with DuplicateColumnName on a name collision.
func (t *Table) AddColumn(typ BaseType, name string) (*Column, error) {
	if t.rowCount > 0 {
		return nil, errs.Newf(errs.TableNotEmpty, "cannot add column %q: table %q already has rows", name, t.name)
	}
	if _, ok := t.findColumn(name); ok {
		return nil, errs.Newf(errs.DuplicateColumnName, "column %q already exists on table %q", name, t.name)
	}

	col := NewColumn(name, typ)
	col.Realloc(t.rowCapacity)
	t.columns = append(t.columns, col)
	return col, nil
}

func (t *Table) findColumn(name string) (*Column, bool) {
	for _, c := range t.columns {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// Column returns the column named name.
func (t *Table) Column(name string) (*Column, error) {
	if c, ok := t.findColumn(name); ok {
		return c, nil
	}
	return nil, errs.Newf(errs.ColumnNotFound, "no such column %q on table %q", name, t.name)
}

// ColumnByID returns the column with the given id.
func (t *Table) ColumnByID(id ColumnID) (*Column, error) {
	for _, c := range t.columns {
		if c.ID() == id {
			return c, nil
		}
	}
	return nil, errs.Newf(errs.ColumnNotFound, "no column with id %d on table %q", id, t.name)
}

// ColumnList resolves names to columns in the given order. A nil names
// slice returns every column of the table in declared order.
func (t *Table) ColumnList(names []string) ([]*Column, error) {
	if names == nil {
		out := make([]*Column, len(t.columns))
		copy(out, t.columns)
		return out, nil
	}

	out := make([]*Column, 0, len(names))
	for _, n := range names {
		c, err := t.Column(n)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// AddRow reserves space for one additional row, growing every column's
// buffer (doubling the table's capacity) if the table is full.
func (t *Table) AddRow() uint64 {
	row := t.rowCount
	t.rowCount++

	if t.rowCount == t.rowCapacity {
		t.rowCapacity *= 2
		for _, c := range t.columns {
			c.Realloc(t.rowCapacity)
		}
	}

	return row
}

// DeleteRow removes row i, shifting every column's subsequent live
// slots down by one and decrementing the row count.
func (t *Table) DeleteRow(i uint64) error {
	if i >= t.rowCount {
		return errs.Newf(errs.IndexOutOfBounds, "row %d is out of bounds (row_count=%d)", i, t.rowCount)
	}

	for _, c := range t.columns {
		c.RowDelete(i, t.rowCount)
	}
	t.rowCount--
	return nil
}

// PrintRow renders row i to w, iterating columns in declared order.
// If only is non-nil, only the named columns (in declared order) are
// printed; otherwise every column is. Each cell is left-aligned and
// padded to padWidth UTF-8 glyphs.
func (t *Table) PrintRow(w *strings.Builder, only []ColumnID, row uint64, padWidth int) {
	for _, c := range t.columns {
		if only != nil && !containsColumnID(only, c.ID()) {
			continue
		}
		w.WriteString(strutil.PadRight(FormatValue(c.Type(), c.RowGet(row)), padWidth))
	}
}

func containsColumnID(ids []ColumnID, id ColumnID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}
