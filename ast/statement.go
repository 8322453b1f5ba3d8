package ast

import "github.com/kbanas/baza/token"

// SelectStmt is "SELECT cols FROM table [WHERE ...] [ORDER BY ...]".
// A nil Columns means "select *" (every column, in declared order).
type SelectStmt struct {
	Table   string
	Columns []string
	Where   *FilterChain
	Order   *OrderBy
	TokPos  token.Pos
}

func (s *SelectStmt) Pos() token.Pos { return s.TokPos }
func (s *SelectStmt) End() token.Pos { return s.TokPos }
func (*SelectStmt) queryNode()       {}

// CreateStmt is "CREATE TABLE name (col type, col type, ...)".
type CreateStmt struct {
	Table   string
	Columns []*ColDef
	TokPos  token.Pos
}

func (s *CreateStmt) Pos() token.Pos { return s.TokPos }
func (s *CreateStmt) End() token.Pos { return s.TokPos }
func (*CreateStmt) queryNode()       {}

// InsertStmt is "INSERT INTO table VALUES (v1, v2, ...)". Values are
// positional, matching the table's declared column order.
type InsertStmt struct {
	Table  string
	Values []*Literal
	TokPos token.Pos
}

func (s *InsertStmt) Pos() token.Pos { return s.TokPos }
func (s *InsertStmt) End() token.Pos { return s.TokPos }
func (*InsertStmt) queryNode()       {}

// DeleteStmt is "DELETE FROM table [WHERE ...]". A nil Where deletes
// every row.
type DeleteStmt struct {
	Table  string
	Where  *FilterChain
	TokPos token.Pos
}

func (s *DeleteStmt) Pos() token.Pos { return s.TokPos }
func (s *DeleteStmt) End() token.Pos { return s.TokPos }
func (*DeleteStmt) queryNode()       {}

// UpdateStmt is "UPDATE table SET col=v, ... [WHERE ...]".
type UpdateStmt struct {
	Table  string
	Set    []*Assignment
	Where  *FilterChain
	TokPos token.Pos
}

func (s *UpdateStmt) Pos() token.Pos { return s.TokPos }
func (s *UpdateStmt) End() token.Pos { return s.TokPos }
func (*UpdateStmt) queryNode()       {}
