// Package errs defines the flat error taxonomy shared by every layer of
// baza: a closed set of Kinds, carried by a single Error type that
// supports errors.Is/errors.As via Unwrap.
package errs

import (
	"errors"
	"fmt"

	"github.com/kbanas/baza/token"
)

// Kind is one of baza's closed set of error categories.
type Kind int

const (
	// Ok is never itself constructed as an Error; it exists so Kind has
	// a documented zero-equivalent meaning "success" in call sites that
	// compare a Kind directly.
	Ok Kind = iota
	Alloc
	SqlParse
	InvalidQuery
	TableNotFound
	TableNotEmpty
	DuplicateTable
	ColumnNotFound
	DuplicateColumnName
	IndexOutOfBounds
	ValueType
	FilterValueType
	FileNotFound
	IoError
	InvalidCsv
	ServerError
)

var kindNames = map[Kind]string{
	Ok:                  "ok",
	Alloc:               "alloc",
	SqlParse:            "sql_parse",
	InvalidQuery:        "invalid_query",
	TableNotFound:       "table_not_found",
	TableNotEmpty:       "table_not_empty",
	DuplicateTable:      "duplicate_table",
	ColumnNotFound:      "column_not_found",
	DuplicateColumnName: "duplicate_column_name",
	IndexOutOfBounds:    "index_out_of_bounds",
	ValueType:           "value_type",
	FilterValueType:     "filter_value_type",
	FileNotFound:        "file_not_found",
	IoError:             "io_error",
	InvalidCsv:          "invalid_csv",
	ServerError:         "server_error",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Fatal reports whether an error of this Kind should abort the external
// driver entirely. Only Alloc and ServerError are fatal; every other
// Kind is reported and execution continues with the next statement.
func (k Kind) Fatal() bool {
	return k == Alloc || k == ServerError
}

// Error is the concrete error value carried through the system. Msg is
// a short human-readable description; Pos is set for SqlParse errors
// that can be located in the source text; Cause wraps an underlying
// error when one exists (e.g. an os.PathError behind FileNotFound).
type Error struct {
	Kind  Kind
	Msg   string
	Pos   token.Pos
	Cause error
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches cause as the underlying error for a new Error of kind.
func Wrap(kind Kind, cause error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Cause)
	}
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// KindOf extracts the Kind of err if it is (or wraps) an *Error,
// defaulting to ServerError for anything else — an un-tagged error
// reaching the driver boundary is itself treated as an invariant
// violation.
func KindOf(err error) Kind {
	if err == nil {
		return Ok
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ServerError
}
