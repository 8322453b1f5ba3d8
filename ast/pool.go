package ast

import "sync"

// Node pools for reducing allocations across repeated Parse calls
// (e.g. a script runner executing many statements from one file).
// Use of Release is optional — an unreleased Query is simply garbage
// collected like any other value.

var (
	selectPool = sync.Pool{New: func() any { return &SelectStmt{} }}
	createPool = sync.Pool{New: func() any { return &CreateStmt{} }}
	insertPool = sync.Pool{New: func() any { return &InsertStmt{} }}
	deletePool = sync.Pool{New: func() any { return &DeleteStmt{} }}
	updatePool = sync.Pool{New: func() any { return &UpdateStmt{} }}

	filterSlicePool = sync.Pool{
		New: func() any {
			s := make([]*Filter, 0, 4)
			return &s
		},
	}
	colDefSlicePool = sync.Pool{
		New: func() any {
			s := make([]*ColDef, 0, 8)
			return &s
		},
	}
	literalSlicePool = sync.Pool{
		New: func() any {
			s := make([]*Literal, 0, 8)
			return &s
		},
	}
	assignmentSlicePool = sync.Pool{
		New: func() any {
			s := make([]*Assignment, 0, 4)
			return &s
		},
	}
)

// GetSelectStmt returns a zeroed SelectStmt from the pool.
func GetSelectStmt() *SelectStmt { return selectPool.Get().(*SelectStmt) }

// GetCreateStmt returns a zeroed CreateStmt from the pool.
func GetCreateStmt() *CreateStmt { return createPool.Get().(*CreateStmt) }

// GetInsertStmt returns a zeroed InsertStmt from the pool.
func GetInsertStmt() *InsertStmt { return insertPool.Get().(*InsertStmt) }

// GetDeleteStmt returns a zeroed DeleteStmt from the pool.
func GetDeleteStmt() *DeleteStmt { return deletePool.Get().(*DeleteStmt) }

// GetUpdateStmt returns a zeroed UpdateStmt from the pool.
func GetUpdateStmt() *UpdateStmt { return updatePool.Get().(*UpdateStmt) }

// GetFilterSlice returns a []*Filter from the pool.
func GetFilterSlice() *[]*Filter { return filterSlicePool.Get().(*[]*Filter) }

// GetColDefSlice returns a []*ColDef from the pool.
func GetColDefSlice() *[]*ColDef { return colDefSlicePool.Get().(*[]*ColDef) }

// GetLiteralSlice returns a []*Literal from the pool.
func GetLiteralSlice() *[]*Literal { return literalSlicePool.Get().(*[]*Literal) }

// GetAssignmentSlice returns a []*Assignment from the pool.
func GetAssignmentSlice() *[]*Assignment { return assignmentSlicePool.Get().(*[]*Assignment) }

// Release zeroes q and returns it to its pool, together with its
// column-definition, value or assignment slice. A SELECT's column-name
// slice and a WHERE clause's filter slice are not pooled; they are left
// to the garbage collector. Callers
// that do not need q after the interpreter consumes it may call this
// to cut allocator pressure in long-running script execution; it is
// never required for correctness.
func Release(q Query) {
	switch s := q.(type) {
	case *SelectStmt:
		*s = SelectStmt{}
		selectPool.Put(s)
	case *CreateStmt:
		if s.Columns != nil {
			sl := s.Columns[:0]
			colDefSlicePool.Put(&sl)
		}
		*s = CreateStmt{}
		createPool.Put(s)
	case *InsertStmt:
		if s.Values != nil {
			sl := s.Values[:0]
			literalSlicePool.Put(&sl)
		}
		*s = InsertStmt{}
		insertPool.Put(s)
	case *DeleteStmt:
		*s = DeleteStmt{}
		deletePool.Put(s)
	case *UpdateStmt:
		if s.Set != nil {
			sl := s.Set[:0]
			assignmentSlicePool.Put(&sl)
		}
		*s = UpdateStmt{}
		updatePool.Put(s)
	}
}
