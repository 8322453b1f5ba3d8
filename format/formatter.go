// Package format renders a parsed Query back to SQL text. Round
// tripping a query through parser.Parse and format.String and back
// through parser.Parse again yields an AST equivalent to the original,
// modulo keyword case and whitespace.
package format

import (
	"fmt"
	"strings"

	"github.com/kbanas/baza/ast"
)

// String renders q as SQL text.
func String(q ast.Query) string {
	var b strings.Builder
	switch s := q.(type) {
	case *ast.SelectStmt:
		writeSelect(&b, s)
	case *ast.CreateStmt:
		writeCreate(&b, s)
	case *ast.InsertStmt:
		writeInsert(&b, s)
	case *ast.DeleteStmt:
		writeDelete(&b, s)
	case *ast.UpdateStmt:
		writeUpdate(&b, s)
	}
	return b.String()
}

// writeLiteral renders a literal's raw text, wrapping it in double
// quotes verbatim when it was originally quoted: the lexer performs no
// escape processing on quoted text, so neither does the printer.
func writeLiteral(b *strings.Builder, l *ast.Literal) {
	if l.Quoted {
		b.WriteByte('"')
		b.WriteString(l.Raw)
		b.WriteByte('"')
		return
	}
	b.WriteString(l.Raw)
}

func writeFilterChain(b *strings.Builder, fc *ast.FilterChain) {
	if fc == nil || len(fc.Filters) == 0 {
		return
	}
	b.WriteString(" WHERE ")
	for i, f := range fc.Filters {
		if i > 0 {
			fmt.Fprintf(b, " %s ", f.Join)
		}
		fmt.Fprintf(b, "%s %s ", f.Column, f.Op)
		writeLiteral(b, f.Value)
	}
}

func writeOrderBy(b *strings.Builder, o *ast.OrderBy) {
	if o == nil {
		return
	}
	fmt.Fprintf(b, " ORDER BY %s %s", o.Column, o.Dir)
}

func writeSelect(b *strings.Builder, s *ast.SelectStmt) {
	b.WriteString("SELECT ")
	if s.Columns == nil {
		b.WriteString("*")
	} else {
		b.WriteString(strings.Join(s.Columns, ", "))
	}
	fmt.Fprintf(b, " FROM %s", s.Table)
	writeFilterChain(b, s.Where)
	writeOrderBy(b, s.Order)
}

func writeCreate(b *strings.Builder, s *ast.CreateStmt) {
	fmt.Fprintf(b, "CREATE TABLE %s (", s.Table)
	for i, c := range s.Columns {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%s %s", c.Name, c.Type)
	}
	b.WriteString(")")
}

func writeInsert(b *strings.Builder, s *ast.InsertStmt) {
	fmt.Fprintf(b, "INSERT INTO %s VALUES (", s.Table)
	for i, v := range s.Values {
		if i > 0 {
			b.WriteString(", ")
		}
		writeLiteral(b, v)
	}
	b.WriteString(")")
}

func writeDelete(b *strings.Builder, s *ast.DeleteStmt) {
	fmt.Fprintf(b, "DELETE FROM %s", s.Table)
	writeFilterChain(b, s.Where)
}

func writeUpdate(b *strings.Builder, s *ast.UpdateStmt) {
	fmt.Fprintf(b, "UPDATE %s SET ", s.Table)
	for i, a := range s.Set {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%s = ", a.Column)
		writeLiteral(b, a.Value)
	}
	writeFilterChain(b, s.Where)
}
