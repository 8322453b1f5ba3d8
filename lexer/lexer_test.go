package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbanas/baza/lexer"
	"github.com/kbanas/baza/token"
)

func collect(input string) []token.Item {
	l := lexer.New(input)
	var out []token.Item
	for {
		it := l.Next()
		out = append(out, it)
		if it.Type == token.EOF {
			return out
		}
	}
}

func TestWordSplitting(t *testing.T) {
	items := collect("SELECT * FROM people")
	require.Len(t, items, 5)
	assert.Equal(t, "SELECT", items[0].Lit)
	assert.Equal(t, "*", items[1].Lit)
	assert.Equal(t, "FROM", items[2].Lit)
	assert.Equal(t, "people", items[3].Lit)
	assert.Equal(t, token.EOF, items[4].Type)
}

func TestGluedParensStayOneWord(t *testing.T) {
	items := collect("(5, \"ann\")")
	require.Len(t, items, 4)
	assert.Equal(t, token.WORD, items[0].Type)
	assert.Equal(t, "(5,", items[0].Lit)
	assert.Equal(t, token.STRING, items[1].Type)
	assert.Equal(t, "ann", items[1].Lit)
	assert.Equal(t, ")", items[2].Lit)
}

func TestQuotedStringWithSpace(t *testing.T) {
	items := collect(`name = "ann smith"`)
	require.Len(t, items, 4)
	assert.Equal(t, token.STRING, items[2].Type)
	assert.Equal(t, "ann smith", items[2].Lit)
}

func TestUnterminatedStringConsumesRest(t *testing.T) {
	items := collect(`WHERE name = "ann`)
	last := items[len(items)-2]
	assert.Equal(t, token.STRING, last.Type)
	assert.Equal(t, "ann", last.Lit)
}

func TestPeekDoesNotConsume(t *testing.T) {
	l := lexer.New("SELECT FROM")
	assert.Equal(t, "SELECT", l.Peek().Lit)
	assert.Equal(t, "SELECT", l.Peek().Lit)
	assert.Equal(t, "SELECT", l.Next().Lit)
	assert.Equal(t, "FROM", l.Next().Lit)
}

func TestLineTracking(t *testing.T) {
	items := collect("SELECT *\nFROM people")
	assert.Equal(t, 1, items[0].Pos.Line)
	assert.Equal(t, 2, items[2].Pos.Line)
}

func TestGetPutRoundTrip(t *testing.T) {
	l := lexer.Get("SELECT 1")
	assert.Equal(t, "SELECT", l.Next().Lit)
	lexer.Put(l)

	l2 := lexer.Get("FROM t")
	assert.Equal(t, "FROM", l2.Next().Lit)
}
