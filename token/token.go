// Package token defines the lexical token types of the baza query
// language and source-position tracking.
//
// The grammar has no real operator precedence to speak of, so the
// lexer itself stays deliberately thin: it only tells WORD tokens
// (bare or glued-to-punctuation runs) apart from double-quoted STRING
// tokens. Keyword and punctuation recognition is done by the parser
// via Lookup, operating on the raw token text, rather than by the
// lexer producing dedicated keyword/punctuation token types.
package token

import (
	"fmt"
	"strings"
)

// Token identifies the lexical class of a scanned item.
type Token int

const (
	ILLEGAL Token = iota
	EOF
	WORD   // a whitespace-delimited run, may carry glued punctuation
	STRING // a double-quoted run, with the quotes already stripped
)

func (t Token) String() string {
	switch t {
	case ILLEGAL:
		return "ILLEGAL"
	case EOF:
		return "EOF"
	case WORD:
		return "WORD"
	case STRING:
		return "STRING"
	default:
		return fmt.Sprintf("Token(%d)", int(t))
	}
}

// Keyword enumerates the grammar's reserved words. Keyword is distinct
// from Token: a WORD item's text is resolved to a Keyword (or NotKeyword)
// by Lookup, case-insensitively.
type Keyword int

const (
	NotKeyword Keyword = iota
	SELECT
	FROM
	WHERE
	CREATE
	TABLE
	INSERT
	INTO
	VALUES
	DELETE
	UPDATE
	SET
	AND
	OR
	LIKE
	ORDER
	BY
	ASC
	DESC
)

var keywords = map[string]Keyword{
	"SELECT": SELECT,
	"FROM":   FROM,
	"WHERE":  WHERE,
	"CREATE": CREATE,
	"TABLE":  TABLE,
	"INSERT": INSERT,
	"INTO":   INTO,
	"VALUES": VALUES,
	"DELETE": DELETE,
	"UPDATE": UPDATE,
	"SET":    SET,
	"AND":    AND,
	"OR":     OR,
	"LIKE":   LIKE,
	"ORDER":  ORDER,
	"BY":     BY,
	"ASC":    ASC,
	"DESC":   DESC,
}

var keywordNames = func() map[Keyword]string {
	m := make(map[Keyword]string, len(keywords))
	for name, kw := range keywords {
		m[kw] = name
	}
	return m
}()

func (k Keyword) String() string {
	if k == NotKeyword {
		return "<not a keyword>"
	}
	return keywordNames[k]
}

// Lookup classifies a WORD's literal text as a Keyword, case-insensitively.
// It returns NotKeyword for ordinary identifiers and values.
func Lookup(word string) Keyword {
	if kw, ok := keywords[strings.ToUpper(word)]; ok {
		return kw
	}
	return NotKeyword
}

// Pos is a 1-indexed line/column source position, used to locate parse
// errors within the original query text.
type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Item is a single scanned token: its class, the literal text it was
// scanned from (quotes already stripped for STRING), and where it
// started in the source.
type Item struct {
	Type Token
	Lit  string
	Pos  Pos
}
