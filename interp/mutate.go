package interp

import (
	"github.com/kbanas/baza/ast"
	"github.com/kbanas/baza/errs"
	"github.com/kbanas/baza/storage"
)

func (in *Interpreter) execCreate(s *ast.CreateStmt) (*Result, error) {
	basetypes := make([]storage.BaseType, len(s.Columns))
	for i, def := range s.Columns {
		bt := storage.BaseTypeFromName(def.Type)
		if bt == storage.Invalid {
			return nil, errs.Newf(errs.ValueType, "unknown column type %q for column %q", def.Type, def.Name)
		}
		basetypes[i] = bt
	}

	tbl, err := in.db.CreateTable(s.Table)
	if err != nil {
		return nil, err
	}

	for i, def := range s.Columns {
		if _, err := tbl.AddColumn(basetypes[i], def.Name); err != nil {
			in.db.DropTable(s.Table)
			return nil, err
		}
	}

	return &Result{}, nil
}

func (in *Interpreter) execInsert(s *ast.InsertStmt) (*Result, error) {
	tbl, err := in.db.GetTable(s.Table)
	if err != nil {
		return nil, err
	}
	cols := tbl.Columns()

	if len(s.Values) != len(cols) {
		return nil, errs.Newf(errs.InvalidQuery, "table %q has %d columns but %d values were given", s.Table, len(cols), len(s.Values))
	}

	// validate every value before mutating anything, so a type error
	// on a later column never leaves a row partially written.
	typed := make([]any, len(cols))
	for i, col := range cols {
		v, err := coerceLiteral(col.Type(), s.Values[i])
		if err != nil {
			return nil, err
		}
		typed[i] = v
	}

	row := tbl.AddRow()
	for i, col := range cols {
		col.RowSet(row, typed[i])
	}

	return &Result{RowsAffected: 1}, nil
}

func (in *Interpreter) execDelete(s *ast.DeleteStmt) (*Result, error) {
	tbl, err := in.db.GetTable(s.Table)
	if err != nil {
		return nil, err
	}

	set, err := in.evalFilterChain(tbl, s.Where)
	if err != nil {
		return nil, err
	}

	// ids are ascending; each prior deletion shifts every later row
	// down by one, so row r must be deleted at index r-deleted.
	ids := set.Rows()
	var deleted uint64
	for _, r := range ids {
		if err := tbl.DeleteRow(r - deleted); err != nil {
			return &Result{RowsAffected: deleted}, err
		}
		deleted++
	}

	return &Result{RowsAffected: deleted}, nil
}

func (in *Interpreter) execUpdate(s *ast.UpdateStmt) (*Result, error) {
	tbl, err := in.db.GetTable(s.Table)
	if err != nil {
		return nil, err
	}

	type plannedSet struct {
		col   *storage.Column
		value any
	}

	plan := make([]plannedSet, len(s.Set))
	for i, a := range s.Set {
		col, err := tbl.Column(a.Column)
		if err != nil {
			return nil, err
		}
		v, err := coerceLiteral(col.Type(), a.Value)
		if err != nil {
			return nil, err
		}
		plan[i] = plannedSet{col: col, value: v}
	}

	set, err := in.evalFilterChain(tbl, s.Where)
	if err != nil {
		return nil, err
	}

	var updated uint64
	for _, row := range set.Rows() {
		for _, p := range plan {
			p.col.RowSet(row, p.value)
		}
		updated++
	}

	return &Result{RowsAffected: updated}, nil
}
