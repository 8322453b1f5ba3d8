package interp

import (
	"sort"

	"github.com/kbanas/baza/ast"
	"github.com/kbanas/baza/storage"
	"github.com/kbanas/baza/strutil"
)

func (in *Interpreter) execSelect(s *ast.SelectStmt) (*Result, error) {
	tbl, err := in.db.GetTable(s.Table)
	if err != nil {
		return nil, err
	}

	cols, err := tbl.ColumnList(s.Columns)
	if err != nil {
		return nil, err
	}

	set, err := in.evalFilterChain(tbl, s.Where)
	if err != nil {
		return nil, err
	}
	rows := set.Rows()

	if s.Order != nil {
		orderCol, err := tbl.Column(s.Order.Column)
		if err != nil {
			return nil, err
		}
		sort.SliceStable(rows, func(i, j int) bool {
			cmp := storage.CompareValue(orderCol.Type(), orderCol.RowGet(rows[i]), orderCol.RowGet(rows[j]))
			if s.Order.Dir == ast.Desc {
				return cmp > 0
			}
			return cmp < 0
		})
	}

	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name()
	}

	out := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(cols))
		for j, c := range cols {
			cells[j] = strutil.PadRight(storage.FormatValue(c.Type(), c.RowGet(row)), in.padWidth())
		}
		out[i] = cells
	}

	return &Result{Columns: names, Rows: out}, nil
}

func (in *Interpreter) padWidth() int {
	if in.PadWidth <= 0 {
		return DefaultPadWidth
	}
	return in.PadWidth
}
