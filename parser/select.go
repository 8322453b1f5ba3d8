package parser

import (
	"strings"

	"github.com/kbanas/baza/ast"
	"github.com/kbanas/baza/token"
)

// parseCommaWordList collects words up to (not including) the token
// whose keyword is until, splitting glued commas the same way
// parseBracketList does for list items.
func (p *Parser) parseCommaWordList(until token.Keyword) ([]string, error) {
	var out []string
	for {
		if p.atEOF() {
			return nil, p.errorf("unexpected end of input, expected %s", until)
		}
		if p.keyword() == until {
			return out, nil
		}
		word, err := p.expectWord()
		if err != nil {
			return nil, err
		}
		for _, frag := range strings.Split(word, ",") {
			if frag != "" {
				out = append(out, frag)
			}
		}
	}
}

// parseSelect parses "SELECT cols FROM table [WHERE ...] [ORDER BY ...]".
func (p *Parser) parseSelect(pos token.Pos) (ast.Query, error) {
	if err := p.expectKeyword(token.SELECT); err != nil {
		return nil, err
	}

	cols, err := p.parseCommaWordList(token.FROM)
	if err != nil {
		return nil, err
	}
	var columns []string
	if !(len(cols) == 1 && cols[0] == "*") {
		columns = cols
	}

	if err := p.expectKeyword(token.FROM); err != nil {
		return nil, err
	}
	table, err := p.expectWord()
	if err != nil {
		return nil, err
	}

	stmt := &ast.SelectStmt{Table: table, Columns: columns, TokPos: pos}

	where, order, err := p.parseWhereAndOrder()
	if err != nil {
		return nil, err
	}
	stmt.Where, stmt.Order = where, order

	return stmt, nil
}

// parseWhereAndOrder parses an optional WHERE clause and an optional
// ORDER BY clause, in either order, each at most once.
func (p *Parser) parseWhereAndOrder() (*ast.FilterChain, *ast.OrderBy, error) {
	var where *ast.FilterChain
	var order *ast.OrderBy

	for i := 0; i < 2; i++ {
		switch p.keyword() {
		case token.WHERE:
			if where != nil {
				return nil, nil, p.errorf("duplicate WHERE clause")
			}
			w, err := p.parseWhere()
			if err != nil {
				return nil, nil, err
			}
			where = w
		case token.ORDER:
			if order != nil {
				return nil, nil, p.errorf("duplicate ORDER BY clause")
			}
			o, err := p.parseOrderBy()
			if err != nil {
				return nil, nil, err
			}
			order = o
		default:
			return where, order, nil
		}
	}
	return where, order, nil
}

// parseWhere parses "WHERE col op val [AND|OR col op val]...".
func (p *Parser) parseWhere() (*ast.FilterChain, error) {
	if err := p.expectKeyword(token.WHERE); err != nil {
		return nil, err
	}

	chain := &ast.FilterChain{}
	join := ast.NoJoin
	for {
		f, err := p.parseFilter(join)
		if err != nil {
			return nil, err
		}
		chain.Filters = append(chain.Filters, f)

		switch p.keyword() {
		case token.AND:
			join = ast.And
			p.advance()
		case token.OR:
			join = ast.Or
			p.advance()
		default:
			return chain, nil
		}
	}
}

var cmpOps = map[string]ast.CmpOp{
	"=":  ast.Eq,
	"!=": ast.Ne,
	"<>": ast.Ne,
	"<":  ast.Lt,
	">":  ast.Gt,
	"<=": ast.Le,
	">=": ast.Ge,
}

// parseFilter parses "column op value", where op is one of the
// comparison operators or the LIKE keyword.
func (p *Parser) parseFilter(join ast.BoolOp) (*ast.Filter, error) {
	pos := p.cur.Pos
	col, err := p.expectWord()
	if err != nil {
		return nil, err
	}

	var op ast.CmpOp
	if p.keyword() == token.LIKE {
		op = ast.LikeOp
		p.advance()
	} else {
		opLit, err := p.expectWord()
		if err != nil {
			return nil, err
		}
		var ok bool
		op, ok = cmpOps[opLit]
		if !ok {
			e := p.errorf("unknown comparison operator %q", opLit)
			return nil, e
		}
	}

	val, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}

	return &ast.Filter{Join: join, Column: col, Op: op, Value: val, TokPos: pos}, nil
}

// parseLiteral parses a single scalar literal: a quoted string or a
// bare word.
func (p *Parser) parseLiteral() (*ast.Literal, error) {
	if p.cur.Type == token.STRING {
		lit := &ast.Literal{Raw: p.cur.Lit, Quoted: true, TokPos: p.cur.Pos}
		p.advance()
		return lit, nil
	}
	r := rawItem{Text: p.cur.Lit, Pos: p.cur.Pos}
	p.advance()
	return literalFromRaw(r), nil
}

// parseOrderBy parses "ORDER BY column [ASC|DESC]".
func (p *Parser) parseOrderBy() (*ast.OrderBy, error) {
	pos := p.cur.Pos
	if err := p.expectKeyword(token.ORDER); err != nil {
		return nil, err
	}
	if err := p.expectKeyword(token.BY); err != nil {
		return nil, err
	}
	col, err := p.expectWord()
	if err != nil {
		return nil, err
	}

	dir := ast.Asc
	switch p.keyword() {
	case token.ASC:
		p.advance()
	case token.DESC:
		dir = ast.Desc
		p.advance()
	}

	return &ast.OrderBy{Column: col, Dir: dir, TokPos: pos}, nil
}

// parseCreate parses "CREATE TABLE name (col type, col type, ...)".
func (p *Parser) parseCreate(pos token.Pos) (ast.Query, error) {
	if err := p.expectKeyword(token.CREATE); err != nil {
		return nil, err
	}
	if err := p.expectKeyword(token.TABLE); err != nil {
		return nil, err
	}
	name, err := p.expectWord()
	if err != nil {
		return nil, err
	}

	items, err := p.parseBracketList()
	if err != nil {
		return nil, err
	}
	if len(items)%2 != 0 {
		return nil, p.errorf("column definition list must alternate name and type")
	}

	cols := make([]*ast.ColDef, 0, len(items)/2)
	for i := 0; i < len(items); i += 2 {
		cols = append(cols, &ast.ColDef{Name: items[i].Text, Type: items[i+1].Text, TokPos: items[i].Pos})
	}

	return &ast.CreateStmt{Table: name, Columns: cols, TokPos: pos}, nil
}
