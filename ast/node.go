// Package ast defines the abstract syntax tree for baza's small SQL
// dialect: SELECT, CREATE TABLE, INSERT, DELETE and UPDATE.
package ast

import "github.com/kbanas/baza/token"

// Node is the base interface for all AST nodes.
type Node interface {
	Pos() token.Pos
	End() token.Pos
}

// Query is a parsed statement: exactly one of SelectStmt, CreateStmt,
// InsertStmt, DeleteStmt or UpdateStmt.
type Query interface {
	Node
	queryNode()
}
