package storage

import (
	"github.com/kbanas/baza/errs"
	"github.com/kbanas/baza/rowset"
)

// ColumnID is a process-unique, monotonically assigned column identity.
type ColumnID uint64

var nextColumnID ColumnID

func allocColumnID() ColumnID {
	id := nextColumnID
	nextColumnID++
	return id
}

// Op is a comparison predicate dispatched by Column.Find: given the
// column's base type, the value already stored in a slot, and the
// needle supplied by the caller, it reports whether the slot matches.
type Op func(t BaseType, stored, needle any) bool

// Column is a named, typed, contiguous growable array belonging to
// exactly one Table. Its buffer length always equals the owning
// table's row capacity; only the first row_count slots are live
// (enforced by the owning Table, not by Column itself).
type Column struct {
	id   ColumnID
	name string
	typ  BaseType
	data []any // length == table.rowCapacity; slots [0,rowCount) are live
}

// NewColumn allocates column metadata and assigns it a fresh id. No
// backing buffer is allocated yet — Realloc does that.
func NewColumn(name string, t BaseType) *Column {
	return &Column{id: allocColumnID(), name: name, typ: t}
}

func (c *Column) ID() ColumnID   { return c.id }
func (c *Column) Name() string   { return c.name }
func (c *Column) Type() BaseType { return c.typ }

// Realloc grows (or creates) the column's backing buffer to hold
// capacity slots. It is idempotent when called with the buffer's
// current length and never shrinks the buffer.
func (c *Column) Realloc(capacity uint64) {
	if uint64(len(c.data)) >= capacity {
		return
	}
	grown := make([]any, capacity)
	copy(grown, c.data)
	c.data = grown
}

// RowGet returns the value stored at slot i. The caller is responsible
// for keeping i within the owning table's row_count.
func (c *Column) RowGet(i uint64) any {
	return c.data[i]
}

// RowSet stores v at slot i, copying semantics: for a String column
// this simply assigns the new Go string (the previous occupant, if
// any, is dropped and left for the garbage collector — there is no
// explicit free, but the slot never holds more than one live
// reference at a time, preserving the single-owner invariant).
func (c *Column) RowSet(i uint64, v any) {
	c.data[i] = v
}

// RowSetNoCopy is semantically identical to RowSet for this
// implementation (Go values have no separate owning/borrowing
// representations the way C pointers do); it exists as a distinct
// entry point for RowDelete's internal shift, keeping that call site
// explicit about which operation it is performing.
func (c *Column) RowSetNoCopy(i uint64, v any) {
	c.data[i] = v
}

// RowDelete removes the value at index i and shifts every subsequent
// live slot (up to, but excluding, live) one position down.
func (c *Column) RowDelete(i uint64, live uint64) {
	for ; i < live-1; i++ {
		c.RowSetNoCopy(i, c.RowGet(i+1))
	}
}

// Find returns the set of row indices k < live for which
// pred(column.Type(), column.RowGet(k), needle) is true, in ascending
// order.
func (c *Column) Find(live uint64, pred Op, needle any) (*rowset.Set, error) {
	if pred == nil {
		return nil, errs.New(errs.ServerError, "nil predicate passed to Column.Find")
	}

	result := rowset.New()
	for i := uint64(0); i < live; i++ {
		if pred(c.typ, c.RowGet(i), needle) {
			result.Add(i)
		}
	}
	return result, nil
}
