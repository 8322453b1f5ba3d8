// Package baza is the small public surface that ties the query
// language together: parsing SQL text into a Query and rendering one
// back to SQL. Storage and execution live in their own packages
// (storage, interp) since a caller embedding just the grammar has no
// need to pull those in.
package baza

import (
	"github.com/kbanas/baza/ast"
	"github.com/kbanas/baza/format"
	"github.com/kbanas/baza/parser"
)

// Parse parses a single SQL statement into its Query AST.
func Parse(sql string) (ast.Query, error) {
	return parser.Parse(sql)
}

// String renders q back to SQL text.
func String(q ast.Query) string {
	return format.String(q)
}

// Release returns q's node and slices to the AST package's pools. It
// is an optional performance hint, never required for correctness.
func Release(q ast.Query) {
	ast.Release(q)
}
