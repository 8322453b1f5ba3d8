package strutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kbanas/baza/strutil"
)

func TestIEqual(t *testing.T) {
	assert.True(t, strutil.IEqual("SELECT", "select"))
	assert.True(t, strutil.IEqual("Like", "LIKE"))
	assert.False(t, strutil.IEqual("foo", "bar"))
	assert.False(t, strutil.IEqual("foo", "foobar"))
}

func TestParseInt(t *testing.T) {
	v, ok := strutil.ParseInt("42")
	assert.True(t, ok)
	assert.EqualValues(t, 42, v)

	v, ok = strutil.ParseInt("-7")
	assert.True(t, ok)
	assert.EqualValues(t, -7, v)

	_, ok = strutil.ParseInt("not-a-number")
	assert.False(t, ok)

	_, ok = strutil.ParseInt("3.14")
	assert.False(t, ok)
}

func TestGlyphCount(t *testing.T) {
	assert.Equal(t, 5, strutil.GlyphCount("alice"))
	// 'ł' and 'ę' are two-byte UTF-8 glyphs; byte length would be 7.
	assert.Equal(t, 5, strutil.GlyphCount("łębok"))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "alice               ", strutil.PadRight("alice", 20))
	assert.Equal(t, "alice", strutil.PadRight("alice", 2))
}

func TestSplitQuoted(t *testing.T) {
	assert.Equal(t,
		[]string{"SELECT", "*", "FROM", "t"},
		strutil.SplitQuoted("SELECT  *  FROM\tt", " \t\n"))

	assert.Equal(t,
		[]string{"name", "=", "alicia ann"},
		strutil.SplitQuoted(`name = "alicia ann"`, " \t\n"))

	assert.Equal(t,
		[]string{`"unterminated`},
		strutil.SplitQuoted(`"unterminated`, " "))
}

func TestMerge(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c", "d"}, strutil.Merge([]string{"a", "b"}, []string{"c", "d"}))
}

func TestContains(t *testing.T) {
	assert.True(t, strutil.Contains([]string{"a", "b"}, "b"))
	assert.False(t, strutil.Contains([]string{"a", "b"}, "c"))
}
