// Package lexer splits baza's SQL dialect into whitespace- and
// quote-delimited tokens. Unlike a conventional SQL lexer it does not
// recognize operators or punctuation glued to a word (e.g. "(5," scans
// as one WORD) — that tolerance is resolved later, by the parser's
// bracketed-list helper, keeping the lexer itself limited to splitting
// on whitespace and quotes.
package lexer

import (
	"sync"

	"github.com/kbanas/baza/token"
)

// Lexer tokenizes SQL input.
type Lexer struct {
	input   string
	pos     int        // current byte offset into input
	line    int        // current line number (1-indexed)
	linePos int        // byte offset of the current line's start
	item    token.Item // most recently scanned item
	peeked  bool        // whether item holds a peeked, unconsumed token
}

var lexerPool = sync.Pool{
	New: func() any { return &Lexer{} },
}

// New creates a new Lexer for input.
func New(input string) *Lexer {
	return &Lexer{input: input, line: 1}
}

// Get returns a Lexer from the pool, initialized with input.
func Get(input string) *Lexer {
	l := lexerPool.Get().(*Lexer)
	l.Reset(input)
	return l
}

// Put returns l to the pool.
func Put(l *Lexer) { lexerPool.Put(l) }

// Reset reinitializes l to scan a new input string.
func (l *Lexer) Reset(input string) {
	l.input = input
	l.pos = 0
	l.line = 1
	l.linePos = 0
	l.item = token.Item{}
	l.peeked = false
}

// Next returns the next token, consuming it.
func (l *Lexer) Next() token.Item {
	if l.peeked {
		l.peeked = false
		return l.item
	}
	l.item = l.scan()
	return l.item
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() token.Item {
	if !l.peeked {
		l.item = l.scan()
		l.peeked = true
	}
	return l.item
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func (l *Lexer) advance() byte {
	b := l.input[l.pos]
	l.pos++
	if b == '\n' {
		l.line++
		l.linePos = l.pos
	}
	return b
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) && isSpace(l.input[l.pos]) {
		l.advance()
	}
}

func (l *Lexer) posAt(offset int) token.Pos {
	return token.Pos{Line: l.line, Column: offset - l.linePos + 1}
}

func (l *Lexer) scan() token.Item {
	l.skipWhitespace()
	start := l.pos
	pos := l.posAt(start)

	if l.pos >= len(l.input) {
		return token.Item{Type: token.EOF, Pos: pos}
	}

	ch := l.input[l.pos]

	if ch == '"' {
		l.advance()
		for l.pos < len(l.input) && l.input[l.pos] != '"' {
			l.advance()
		}
		if l.pos >= len(l.input) {
			// unterminated string: the rest of the input after the opening
			// quote is the literal (strutil.SplitQuoted, by contrast, keeps
			// the stray quote in its fallback token).
			return token.Item{Type: token.STRING, Lit: l.input[start+1:], Pos: pos}
		}
		l.advance() // closing quote
		return token.Item{Type: token.STRING, Lit: l.input[start+1 : l.pos-1], Pos: pos}
	}

	for l.pos < len(l.input) && !isSpace(l.input[l.pos]) && l.input[l.pos] != '"' {
		l.advance()
	}
	return token.Item{Type: token.WORD, Lit: l.input[start:l.pos], Pos: pos}
}
