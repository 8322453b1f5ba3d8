package csv_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbanas/baza/csv"
	"github.com/kbanas/baza/errs"
	"github.com/kbanas/baza/storage"
)

func TestLoadCreatesTableAndRows(t *testing.T) {
	db := storage.New()
	data := "id:int64,name:string\n1,ann\n2,bob\n"

	require.NoError(t, csv.Load(db, "people", strings.NewReader(data), 0))

	tbl, err := db.GetTable("people")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), tbl.RowCount())

	nameCol, err := tbl.Column("name")
	require.NoError(t, err)
	assert.Equal(t, "ann", nameCol.RowGet(0))
	assert.Equal(t, "bob", nameCol.RowGet(1))
}

func TestLoadCustomDelimiter(t *testing.T) {
	db := storage.New()
	data := "id:int64;name:string\n1;ann\n"

	require.NoError(t, csv.Load(db, "people", strings.NewReader(data), ';'))

	tbl, _ := db.GetTable("people")
	assert.Equal(t, uint64(1), tbl.RowCount())
}

func TestLoadRejectsBadHeader(t *testing.T) {
	db := storage.New()
	err := csv.Load(db, "people", strings.NewReader("id,name\n1,ann\n"), 0)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.InvalidCsv))
}

func TestLoadRejectsBadRowArity(t *testing.T) {
	db := storage.New()
	err := csv.Load(db, "people", strings.NewReader("id:int64,name:string\n1,ann,extra\n"), 0)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.InvalidCsv))
}
