package interp

import (
	"math"

	"github.com/kbanas/baza/ast"
	"github.com/kbanas/baza/errs"
	"github.com/kbanas/baza/rowset"
	"github.com/kbanas/baza/storage"
	"github.com/kbanas/baza/strutil"
)

// coerceLiteral converts a parsed literal to the Go value a column of
// type t stores. A literal's int-vs-string type is only resolved here,
// against the column it is actually being compared or inserted into: a
// quoted literal is always a string, and an unquoted literal is an
// integer if its raw text parses as one, a string otherwise. It fails
// with FilterValueType if the resolved kind doesn't match the column.
func coerceLiteral(t storage.BaseType, lit *ast.Literal) (any, error) {
	switch t {
	case storage.Int32:
		n, ok := literalInt(lit)
		if !ok {
			return nil, errs.Newf(errs.FilterValueType, "%q is not a valid integer literal", lit.Raw)
		}
		if n > math.MaxInt32 || n < math.MinInt32 {
			return nil, errs.Newf(errs.FilterValueType, "%d does not fit in an int32 column", n)
		}
		return int32(n), nil
	case storage.Int64:
		n, ok := literalInt(lit)
		if !ok {
			return nil, errs.Newf(errs.FilterValueType, "%q is not a valid integer literal", lit.Raw)
		}
		return n, nil
	case storage.String:
		return lit.Raw, nil
	default:
		return nil, errs.New(errs.ServerError, "column has an invalid base type")
	}
}

// literalInt reports the integer value of an unquoted literal, if its
// raw text parses as one. A quoted literal is never an integer.
func literalInt(lit *ast.Literal) (int64, bool) {
	if lit.Quoted {
		return 0, false
	}
	return strutil.ParseInt(lit.Raw)
}

func makeOp(op ast.CmpOp) (storage.Op, error) {
	switch op {
	case ast.Eq:
		return func(t storage.BaseType, stored, needle any) bool { return storage.CompareValue(t, stored, needle) == 0 }, nil
	case ast.Ne:
		return func(t storage.BaseType, stored, needle any) bool { return storage.CompareValue(t, stored, needle) != 0 }, nil
	case ast.Lt:
		return func(t storage.BaseType, stored, needle any) bool { return storage.CompareValue(t, stored, needle) < 0 }, nil
	case ast.Gt:
		return func(t storage.BaseType, stored, needle any) bool { return storage.CompareValue(t, stored, needle) > 0 }, nil
	case ast.Le:
		return func(t storage.BaseType, stored, needle any) bool { return storage.CompareValue(t, stored, needle) <= 0 }, nil
	case ast.Ge:
		return func(t storage.BaseType, stored, needle any) bool { return storage.CompareValue(t, stored, needle) >= 0 }, nil
	case ast.LikeOp:
		return func(t storage.BaseType, stored, needle any) bool {
			if t != storage.String {
				return storage.CompareValue(t, stored, needle) == 0
			}
			return storage.Like(stored.(string), needle.(string))
		}, nil
	default:
		return nil, errs.New(errs.ServerError, "unrecognized comparison operator")
	}
}

func allRows(tbl *storage.Table) *rowset.Set {
	set := rowset.New()
	for i := uint64(0); i < tbl.RowCount(); i++ {
		set.Add(i)
	}
	return set
}

func (in *Interpreter) evalFilter(tbl *storage.Table, f *ast.Filter) (*rowset.Set, error) {
	col, err := tbl.Column(f.Column)
	if err != nil {
		return nil, err
	}
	needle, err := coerceLiteral(col.Type(), f.Value)
	if err != nil {
		return nil, err
	}
	op, err := makeOp(f.Op)
	if err != nil {
		return nil, err
	}
	return col.Find(tbl.RowCount(), op, needle)
}

// evalFilterChain folds a WHERE clause's filters left to right with no
// operator precedence: each link's Join (AND/OR) combines the running
// result with that link's match set via Intersection/Union.
// A nil or empty chain matches every row in the table.
func (in *Interpreter) evalFilterChain(tbl *storage.Table, fc *ast.FilterChain) (*rowset.Set, error) {
	if fc == nil || len(fc.Filters) == 0 {
		return allRows(tbl), nil
	}

	var acc *rowset.Set
	for _, f := range fc.Filters {
		matched, err := in.evalFilter(tbl, f)
		if err != nil {
			return nil, err
		}
		if acc == nil {
			acc = matched
			continue
		}

		var combined *rowset.Set
		var ok bool
		switch f.Join {
		case ast.And:
			combined, ok = rowset.Intersection(acc, matched)
		case ast.Or:
			combined, ok = rowset.Union(acc, matched)
		default:
			return nil, errs.New(errs.ServerError, "filter chain link is missing a join operator")
		}
		if !ok {
			return nil, errs.New(errs.ServerError, "row-id set combined with itself")
		}
		acc = combined
	}
	return acc, nil
}
