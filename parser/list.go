package parser

import (
	"strings"

	"github.com/kbanas/baza/ast"
	"github.com/kbanas/baza/token"
)

// rawItem is one comma-separated field inside a bracketed list, before
// it has been interpreted as a ColDef or a Literal.
type rawItem struct {
	Text     string
	Pos      token.Pos
	IsString bool
}

// parseBracketList parses "( item, item, ... )", tolerating punctuation
// glued onto adjacent word tokens (e.g. "(5," and "7)" arriving as
// single raw tokens from the lexer) and a trailing comma before the
// closing paren. String literals are never glued to parens or commas —
// the lexer always isolates them as their own token.
func (p *Parser) parseBracketList() ([]rawItem, error) {
	if p.cur.Type != token.WORD || !strings.HasPrefix(p.cur.Lit, "(") {
		return nil, p.errorf("expected '(', found %q", p.cur.Lit)
	}

	var items []rawItem
	push := func(raw string, pos token.Pos) {
		for _, frag := range strings.Split(raw, ",") {
			if frag == "" {
				continue
			}
			items = append(items, rawItem{Text: frag, Pos: pos})
		}
	}

	first := p.cur.Lit[1:]
	firstPos := p.cur.Pos
	p.advance()

	done := false
	if first != "" {
		if strings.HasSuffix(first, ")") {
			push(strings.TrimSuffix(first, ")"), firstPos)
			done = true
		} else {
			push(first, firstPos)
		}
	}

	for !done {
		switch p.cur.Type {
		case token.EOF:
			return nil, p.errorf("unexpected end of input inside list")
		case token.STRING:
			items = append(items, rawItem{Text: p.cur.Lit, Pos: p.cur.Pos, IsString: true})
			p.advance()
		default:
			lit, pos := p.cur.Lit, p.cur.Pos
			p.advance()
			if lit == ")" {
				done = true
				break
			}
			if strings.HasSuffix(lit, ")") {
				push(strings.TrimSuffix(lit, ")"), pos)
				done = true
			} else {
				push(lit, pos)
			}
		}
	}

	return items, nil
}

// literalFromRaw interprets a raw list item as a Literal. Quoting only
// ever marks a value as an explicit string; an unquoted item is kept as
// raw text regardless of its shape ("30", "alice"), since whether it
// means an integer or a string is only decidable once it reaches a
// column of a known type, not here.
func literalFromRaw(r rawItem) *ast.Literal {
	return &ast.Literal{Raw: r.Text, Quoted: r.IsString, TokPos: r.Pos}
}
