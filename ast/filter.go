package ast

import (
	"github.com/kbanas/baza/strutil"
	"github.com/kbanas/baza/token"
)

// CmpOp is a filter comparison operator.
type CmpOp int

const (
	Eq CmpOp = iota
	Ne
	Lt
	Gt
	Le
	Ge
	LikeOp
)

func (op CmpOp) String() string {
	switch op {
	case Eq:
		return "="
	case Ne:
		return "!="
	case Lt:
		return "<"
	case Gt:
		return ">"
	case Le:
		return "<="
	case Ge:
		return ">="
	case LikeOp:
		return "LIKE"
	default:
		return "?"
	}
}

// BoolOp joins two filters in a FilterChain. There is no precedence:
// a chain is evaluated strictly left to right.
type BoolOp int

const (
	NoJoin BoolOp = iota // only valid on the chain's first link
	And
	Or
)

func (op BoolOp) String() string {
	switch op {
	case And:
		return "AND"
	case Or:
		return "OR"
	default:
		return ""
	}
}

// Literal is a WHERE/VALUES scalar. Raw holds its token text, quotes
// already stripped for a double-quoted source token; Quoted records
// whether it was double-quoted. A bare (unquoted) token's int-vs-string
// type is left unresolved here — it is only known once it reaches a
// column of a concrete type, so resolution happens there instead of
// during parsing.
type Literal struct {
	Raw    string
	Quoted bool
	TokPos token.Pos
}

func (l *Literal) Pos() token.Pos { return l.TokPos }
func (l *Literal) End() token.Pos { return l.TokPos }

// Value returns the literal's underlying Go value: an int64 if it is
// an unquoted token that parses as one, its raw text as a string
// otherwise.
func (l *Literal) Value() any {
	if !l.Quoted {
		if n, ok := strutil.ParseInt(l.Raw); ok {
			return n
		}
	}
	return l.Raw
}

// Filter is one link of a FilterChain: "Join Column Op Value", where
// Join is NoJoin for the first link in the chain.
type Filter struct {
	Join   BoolOp
	Column string
	Op     CmpOp
	Value  *Literal
	TokPos token.Pos
}

func (f *Filter) Pos() token.Pos { return f.TokPos }
func (f *Filter) End() token.Pos { return f.Value.End() }

// FilterChain is an ordered, left-fold sequence of Filters, the AST
// shape of a WHERE clause. A nil or empty chain means no WHERE clause.
type FilterChain struct {
	Filters []*Filter
}

func (fc *FilterChain) Pos() token.Pos {
	if len(fc.Filters) == 0 {
		return token.Pos{}
	}
	return fc.Filters[0].Pos()
}

func (fc *FilterChain) End() token.Pos {
	if len(fc.Filters) == 0 {
		return token.Pos{}
	}
	return fc.Filters[len(fc.Filters)-1].End()
}

// Direction is an ORDER BY sort direction.
type Direction int

const (
	Asc Direction = iota
	Desc
)

func (d Direction) String() string {
	if d == Desc {
		return "DESC"
	}
	return "ASC"
}

// OrderBy is an optional ORDER BY clause: order by a single column.
type OrderBy struct {
	Column string
	Dir    Direction
	TokPos token.Pos
}

func (o *OrderBy) Pos() token.Pos { return o.TokPos }
func (o *OrderBy) End() token.Pos { return o.TokPos }

// ColDef is one "name type" pair in a CREATE TABLE column list.
type ColDef struct {
	Name   string
	Type   string
	TokPos token.Pos
}

func (c *ColDef) Pos() token.Pos { return c.TokPos }
func (c *ColDef) End() token.Pos { return c.TokPos }

// Assignment is one "column = value" pair in an UPDATE SET clause.
type Assignment struct {
	Column string
	Value  *Literal
	TokPos token.Pos
}

func (a *Assignment) Pos() token.Pos { return a.TokPos }
func (a *Assignment) End() token.Pos { return a.Value.End() }
