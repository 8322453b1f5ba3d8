package storage_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbanas/baza/errs"
	"github.com/kbanas/baza/storage"
)

func TestCreateTableDuplicate(t *testing.T) {
	db := storage.New()
	_, err := db.CreateTable("people")
	require.NoError(t, err)

	_, err = db.CreateTable("people")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.DuplicateTable))
}

func TestGetTableNotFound(t *testing.T) {
	db := storage.New()
	_, err := db.GetTable("ghost")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.TableNotFound))
}

func TestAddColumnRejectsAfterRows(t *testing.T) {
	db := storage.New()
	tbl, err := db.CreateTable("people")
	require.NoError(t, err)

	_, err = tbl.AddColumn(storage.Int64, "id")
	require.NoError(t, err)

	row := tbl.AddRow()
	col, _ := tbl.Column("id")
	col.RowSet(row, int64(1))

	_, err = tbl.AddColumn(storage.String, "name")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.TableNotEmpty))
}

func TestAddColumnDuplicateName(t *testing.T) {
	db := storage.New()
	tbl, _ := db.CreateTable("people")
	_, err := tbl.AddColumn(storage.Int64, "id")
	require.NoError(t, err)

	_, err = tbl.AddColumn(storage.String, "id")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.DuplicateColumnName))
}

func TestRowCapacityDoublesAt64(t *testing.T) {
	db := storage.New()
	tbl, _ := db.CreateTable("wide")
	_, err := tbl.AddColumn(storage.Int32, "n")
	require.NoError(t, err)
	col, _ := tbl.Column("n")

	for i := 0; i < 64; i++ {
		row := tbl.AddRow()
		col.RowSet(row, int32(i))
	}
	// the 64th row (index 63) fills capacity 64 exactly, triggering growth
	assert.Equal(t, uint64(64), tbl.RowCount())
	for i := 0; i < 64; i++ {
		assert.Equal(t, int32(i), col.RowGet(uint64(i)))
	}
}

func TestDeleteRowShiftsSubsequentRows(t *testing.T) {
	db := storage.New()
	tbl, _ := db.CreateTable("nums")
	tbl.AddColumn(storage.Int32, "n")
	col, _ := tbl.Column("n")

	for i := 0; i < 5; i++ {
		row := tbl.AddRow()
		col.RowSet(row, int32(i))
	}

	require.NoError(t, tbl.DeleteRow(1))
	require.Equal(t, uint64(4), tbl.RowCount())
	assert.Equal(t, []int32{0, 2, 3, 4}, func() []int32 {
		out := make([]int32, 0, 4)
		for i := uint64(0); i < tbl.RowCount(); i++ {
			out = append(out, col.RowGet(i).(int32))
		}
		return out
	}())
}

func TestDeleteRowOutOfBounds(t *testing.T) {
	db := storage.New()
	tbl, _ := db.CreateTable("empty")
	tbl.AddColumn(storage.Int32, "n")

	err := tbl.DeleteRow(0)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.IndexOutOfBounds))
}

func TestColumnFindEquality(t *testing.T) {
	db := storage.New()
	tbl, _ := db.CreateTable("people")
	tbl.AddColumn(storage.String, "name")
	col, _ := tbl.Column("name")

	for _, n := range []string{"ann", "bob", "ann"} {
		row := tbl.AddRow()
		col.RowSet(row, n)
	}

	set, err := col.Find(tbl.RowCount(), func(typ storage.BaseType, stored, needle any) bool {
		return storage.CompareValue(typ, stored, needle) == 0
	}, "ann")
	require.NoError(t, err)
	assert.Equal(t, []uint64{0, 2}, set.Rows())
}

func TestPrintRowGlyphPadding(t *testing.T) {
	db := storage.New()
	tbl, _ := db.CreateTable("people")
	tbl.AddColumn(storage.String, "name")
	col, _ := tbl.Column("name")
	row := tbl.AddRow()
	col.RowSet(row, "łębok")

	var b strings.Builder
	tbl.PrintRow(&b, nil, row, 20)
	assert.Equal(t, 20, len([]rune(b.String())))
}

func TestLikePatterns(t *testing.T) {
	cases := []struct {
		s, pattern string
		want       bool
	}{
		{"hello", "%", true},
		{"hello", "hello", true},
		{"hello", "hello%", true},
		{"hello", "h_llo", true},
		{"hello", "h_l_o", true},
		{"hello", "he%o", true},
		{"hello", "he%x", false},
		{"hello", "hell", false},
		{"hello", "_____", true},
		{"hello", "____", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, storage.Like(c.s, c.pattern), "Like(%q,%q)", c.s, c.pattern)
	}
}
