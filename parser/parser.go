// Package parser provides a recursive-descent parser for baza's small
// SQL dialect: SELECT, CREATE TABLE, INSERT, DELETE and UPDATE.
package parser

import (
	"sync"

	"github.com/kbanas/baza/ast"
	"github.com/kbanas/baza/errs"
	"github.com/kbanas/baza/lexer"
	"github.com/kbanas/baza/token"
)

// Parser is a recursive-descent parser over a single statement.
type Parser struct {
	lexer *lexer.Lexer
	cur   token.Item
	err   error
}

var parserPool = sync.Pool{
	New: func() any { return &Parser{} },
}

// New creates a Parser for input.
func New(input string) *Parser {
	p := &Parser{lexer: lexer.New(input)}
	p.advance()
	return p
}

// Get returns a Parser from the pool, initialized with input. Call Put
// when done to return it (and its lexer) to the pool.
func Get(input string) *Parser {
	p := parserPool.Get().(*Parser)
	p.lexer = lexer.Get(input)
	p.err = nil
	p.cur = token.Item{}
	p.advance()
	return p
}

// Put returns p and its lexer to their pools.
func Put(p *Parser) {
	if p.lexer != nil {
		lexer.Put(p.lexer)
		p.lexer = nil
	}
	parserPool.Put(p)
}

func (p *Parser) advance() {
	p.cur = p.lexer.Next()
}

func (p *Parser) atEOF() bool {
	return p.cur.Type == token.EOF
}

func (p *Parser) keyword() token.Keyword {
	if p.cur.Type != token.WORD {
		return token.NotKeyword
	}
	return token.Lookup(p.cur.Lit)
}

func (p *Parser) errorf(format string, args ...any) *errs.Error {
	e := errs.Newf(errs.SqlParse, format, args...)
	e.Pos = p.cur.Pos
	return e
}

// expectKeyword consumes the current token if it is kw, case
// insensitively, else records a parse error.
func (p *Parser) expectKeyword(kw token.Keyword) error {
	if p.keyword() != kw {
		return p.errorf("expected %s, found %q", kw, p.cur.Lit)
	}
	p.advance()
	return nil
}

// expectWord consumes a plain identifier/literal word (anything that
// isn't EOF or a STRING), returning its text.
func (p *Parser) expectWord() (string, error) {
	if p.cur.Type != token.WORD {
		return "", p.errorf("expected a word, found %q", p.cur.Lit)
	}
	lit := p.cur.Lit
	p.advance()
	return lit, nil
}

// Parse parses exactly one statement from input and returns its AST.
func Parse(input string) (ast.Query, error) {
	p := New(input)
	q, err := p.ParseStatement()
	if err != nil {
		return nil, err
	}
	if !p.atEOF() {
		return nil, p.errorf("unexpected trailing input %q", p.cur.Lit)
	}
	return q, nil
}

// ParseStatement dispatches on the statement's leading keyword.
func (p *Parser) ParseStatement() (ast.Query, error) {
	pos := p.cur.Pos
	switch p.keyword() {
	case token.SELECT:
		return p.parseSelect(pos)
	case token.CREATE:
		return p.parseCreate(pos)
	case token.INSERT:
		return p.parseInsert(pos)
	case token.DELETE:
		return p.parseDelete(pos)
	case token.UPDATE:
		return p.parseUpdate(pos)
	default:
		return nil, p.errorf("expected a statement keyword, found %q", p.cur.Lit)
	}
}
