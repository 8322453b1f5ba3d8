// Package interp executes a parsed Query against a storage.Database.
package interp

import (
	"github.com/kbanas/baza/ast"
	"github.com/kbanas/baza/errs"
	"github.com/kbanas/baza/storage"
)

// DefaultPadWidth is the glyph width each printed SELECT cell is
// padded to when a caller doesn't override it.
const DefaultPadWidth = 20

// Interpreter executes queries against a single Database handle.
type Interpreter struct {
	db       *storage.Database
	PadWidth int
}

// New creates an Interpreter bound to db.
func New(db *storage.Database) *Interpreter {
	return &Interpreter{db: db, PadWidth: DefaultPadWidth}
}

// Result is what executing a Query produces: either a row set (SELECT)
// or a count of rows touched (CREATE/INSERT/DELETE/UPDATE).
type Result struct {
	Columns      []string
	Rows         [][]string
	RowsAffected uint64
}

// Execute dispatches q to the matching handler.
func (in *Interpreter) Execute(q ast.Query) (*Result, error) {
	switch s := q.(type) {
	case *ast.SelectStmt:
		return in.execSelect(s)
	case *ast.CreateStmt:
		return in.execCreate(s)
	case *ast.InsertStmt:
		return in.execInsert(s)
	case *ast.DeleteStmt:
		return in.execDelete(s)
	case *ast.UpdateStmt:
		return in.execUpdate(s)
	default:
		return nil, errs.New(errs.InvalidQuery, "unrecognized query type")
	}
}
