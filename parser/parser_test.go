package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbanas/baza/ast"
	"github.com/kbanas/baza/parser"
)

func TestParseCreateTable(t *testing.T) {
	q, err := parser.Parse(`CREATE TABLE people ( id int64, name string )`)
	require.NoError(t, err)
	create, ok := q.(*ast.CreateStmt)
	require.True(t, ok)
	assert.Equal(t, "people", create.Table)
	require.Len(t, create.Columns, 2)
	assert.Equal(t, "id", create.Columns[0].Name)
	assert.Equal(t, "int64", create.Columns[0].Type)
	assert.Equal(t, "name", create.Columns[1].Name)
	assert.Equal(t, "string", create.Columns[1].Type)
}

func TestParseCreateTableGluedParens(t *testing.T) {
	q, err := parser.Parse(`CREATE TABLE t (id int64, name string)`)
	require.NoError(t, err)
	create := q.(*ast.CreateStmt)
	require.Len(t, create.Columns, 2)
	assert.Equal(t, "string", create.Columns[1].Type)
}

func TestParseInsertGluedValues(t *testing.T) {
	q, err := parser.Parse(`INSERT INTO people VALUES (5, "ann", 7)`)
	require.NoError(t, err)
	ins := q.(*ast.InsertStmt)
	require.Len(t, ins.Values, 3)
	assert.Equal(t, int64(5), ins.Values[0].Value())
	assert.Equal(t, "ann", ins.Values[1].Value())
	assert.Equal(t, int64(7), ins.Values[2].Value())
}

func TestParseInsertUnquotedString(t *testing.T) {
	q, err := parser.Parse(`INSERT INTO people VALUES (alice, 30)`)
	require.NoError(t, err)
	ins := q.(*ast.InsertStmt)
	require.Len(t, ins.Values, 2)
	assert.False(t, ins.Values[0].Quoted)
	assert.Equal(t, "alice", ins.Values[0].Raw)
	assert.Equal(t, int64(30), ins.Values[1].Value())
}

func TestParseWhereUnquotedString(t *testing.T) {
	q, err := parser.Parse(`SELECT * FROM people WHERE name = alice`)
	require.NoError(t, err)
	sel := q.(*ast.SelectStmt)
	require.Len(t, sel.Where.Filters, 1)
	assert.False(t, sel.Where.Filters[0].Value.Quoted)
	assert.Equal(t, "alice", sel.Where.Filters[0].Value.Raw)
}

func TestParseWhereLikeUnquoted(t *testing.T) {
	q, err := parser.Parse(`SELECT * FROM people WHERE name LIKE ali%`)
	require.NoError(t, err)
	sel := q.(*ast.SelectStmt)
	require.Len(t, sel.Where.Filters, 1)
	assert.Equal(t, ast.LikeOp, sel.Where.Filters[0].Op)
	assert.Equal(t, "ali%", sel.Where.Filters[0].Value.Raw)
}

func TestParseSelectStar(t *testing.T) {
	q, err := parser.Parse(`SELECT * FROM people`)
	require.NoError(t, err)
	sel := q.(*ast.SelectStmt)
	assert.Equal(t, "people", sel.Table)
	assert.Nil(t, sel.Columns)
	assert.Nil(t, sel.Where)
	assert.Nil(t, sel.Order)
}

func TestParseSelectColumnsWhereOrder(t *testing.T) {
	q, err := parser.Parse(`SELECT id, name FROM people WHERE age > 20 AND name LIKE "a%" ORDER BY id DESC`)
	require.NoError(t, err)
	sel := q.(*ast.SelectStmt)
	assert.Equal(t, []string{"id", "name"}, sel.Columns)
	require.NotNil(t, sel.Where)
	require.Len(t, sel.Where.Filters, 2)
	assert.Equal(t, ast.NoJoin, sel.Where.Filters[0].Join)
	assert.Equal(t, ast.Gt, sel.Where.Filters[0].Op)
	assert.Equal(t, ast.And, sel.Where.Filters[1].Join)
	assert.Equal(t, ast.LikeOp, sel.Where.Filters[1].Op)
	require.NotNil(t, sel.Order)
	assert.Equal(t, "id", sel.Order.Column)
	assert.Equal(t, ast.Desc, sel.Order.Dir)
}

func TestParseSelectOrderThenWhere(t *testing.T) {
	q, err := parser.Parse(`SELECT * FROM people ORDER BY id WHERE age > 1`)
	require.NoError(t, err)
	sel := q.(*ast.SelectStmt)
	require.NotNil(t, sel.Where)
	require.NotNil(t, sel.Order)
}

func TestParseDeleteWithFilter(t *testing.T) {
	q, err := parser.Parse(`DELETE FROM people WHERE id = 3`)
	require.NoError(t, err)
	del := q.(*ast.DeleteStmt)
	assert.Equal(t, "people", del.Table)
	require.NotNil(t, del.Where)
	require.Len(t, del.Where.Filters, 1)
}

func TestParseDeleteAll(t *testing.T) {
	q, err := parser.Parse(`DELETE FROM people`)
	require.NoError(t, err)
	del := q.(*ast.DeleteStmt)
	assert.Nil(t, del.Where)
}

func TestParseUpdate(t *testing.T) {
	q, err := parser.Parse(`UPDATE people SET name = "bob", age = 5 WHERE id = 1`)
	require.NoError(t, err)
	upd := q.(*ast.UpdateStmt)
	require.Len(t, upd.Set, 2)
	assert.Equal(t, "name", upd.Set[0].Column)
	assert.Equal(t, "bob", upd.Set[0].Value.Value())
	assert.Equal(t, "age", upd.Set[1].Column)
	assert.Equal(t, int64(5), upd.Set[1].Value.Value())
	require.NotNil(t, upd.Where)
}

func TestParseRejectsGarbageKeyword(t *testing.T) {
	_, err := parser.Parse(`FROBNICATE people`)
	require.Error(t, err)
}

func TestParseRejectsTrailingInput(t *testing.T) {
	_, err := parser.Parse(`SELECT * FROM people garbage`)
	require.Error(t, err)
}

func TestParseRejectsDuplicateWhere(t *testing.T) {
	_, err := parser.Parse(`SELECT * FROM people WHERE id = 1 WHERE id = 2`)
	require.Error(t, err)
}
