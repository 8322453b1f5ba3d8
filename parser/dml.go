package parser

import (
	"strings"

	"github.com/kbanas/baza/ast"
	"github.com/kbanas/baza/token"
)

// parseInsert parses "INSERT INTO table VALUES (v1, v2, ...)".
func (p *Parser) parseInsert(pos token.Pos) (ast.Query, error) {
	if err := p.expectKeyword(token.INSERT); err != nil {
		return nil, err
	}
	if err := p.expectKeyword(token.INTO); err != nil {
		return nil, err
	}
	table, err := p.expectWord()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword(token.VALUES); err != nil {
		return nil, err
	}

	items, err := p.parseBracketList()
	if err != nil {
		return nil, err
	}

	values := make([]*ast.Literal, 0, len(items))
	for _, it := range items {
		values = append(values, literalFromRaw(it))
	}

	return &ast.InsertStmt{Table: table, Values: values, TokPos: pos}, nil
}

// parseDelete parses "DELETE FROM table [WHERE ...]".
func (p *Parser) parseDelete(pos token.Pos) (ast.Query, error) {
	if err := p.expectKeyword(token.DELETE); err != nil {
		return nil, err
	}
	if err := p.expectKeyword(token.FROM); err != nil {
		return nil, err
	}
	table, err := p.expectWord()
	if err != nil {
		return nil, err
	}

	stmt := &ast.DeleteStmt{Table: table, TokPos: pos}
	if p.keyword() == token.WHERE {
		where, err := p.parseWhere()
		if err != nil {
			return nil, err
		}
		stmt.Where = where
	}
	return stmt, nil
}

// parseUpdate parses "UPDATE table SET col = val, col = val [WHERE ...]".
//
// Unlike the CREATE column-definition and INSERT VALUES lists, SET
// assignments are not bracketed and require whitespace around '=' — a
// deliberately narrower grammar than the tolerant bracket-list helper,
// since the source this dialect is modeled on never ran UPDATE's SET
// clause through its generic bracketed-list extractor.
func (p *Parser) parseUpdate(pos token.Pos) (ast.Query, error) {
	if err := p.expectKeyword(token.UPDATE); err != nil {
		return nil, err
	}
	table, err := p.expectWord()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword(token.SET); err != nil {
		return nil, err
	}

	set, err := p.parseAssignments()
	if err != nil {
		return nil, err
	}

	stmt := &ast.UpdateStmt{Table: table, Set: set, TokPos: pos}
	if p.keyword() == token.WHERE {
		where, err := p.parseWhere()
		if err != nil {
			return nil, err
		}
		stmt.Where = where
	}
	return stmt, nil
}

func (p *Parser) expectLiteralWord(lit string) error {
	if p.cur.Type != token.WORD || p.cur.Lit != lit {
		return p.errorf("expected %q, found %q", lit, p.cur.Lit)
	}
	p.advance()
	return nil
}

func (p *Parser) parseAssignments() ([]*ast.Assignment, error) {
	var out []*ast.Assignment

	for {
		if p.atEOF() {
			return nil, p.errorf("unexpected end of input in SET clause")
		}
		if p.keyword() == token.WHERE {
			return out, nil
		}

		pos := p.cur.Pos
		col, err := p.expectWord()
		if err != nil {
			return nil, err
		}
		if err := p.expectLiteralWord("="); err != nil {
			return nil, err
		}
		val, consumedComma, err := p.parseSetValue()
		if err != nil {
			return nil, err
		}
		out = append(out, &ast.Assignment{Column: col, Value: val, TokPos: pos})

		if consumedComma {
			continue
		}
		if p.keyword() == token.WHERE || p.atEOF() {
			return out, nil
		}
		if p.cur.Type == token.WORD && p.cur.Lit == "," {
			p.advance()
			continue
		}
		return out, nil
	}
}

// parseSetValue parses one assignment's right-hand side, tolerating a
// comma glued directly onto a bare (non-string) value's token.
func (p *Parser) parseSetValue() (lit *ast.Literal, consumedComma bool, err error) {
	if p.cur.Type == token.STRING {
		lit = &ast.Literal{Raw: p.cur.Lit, Quoted: true, TokPos: p.cur.Pos}
		p.advance()
		return lit, false, nil
	}

	text, pos := p.cur.Lit, p.cur.Pos
	if strings.HasSuffix(text, ",") && text != "," {
		text = strings.TrimSuffix(text, ",")
		consumedComma = true
	}
	p.advance()

	return literalFromRaw(rawItem{Text: text, Pos: pos}), consumedComma, nil
}
