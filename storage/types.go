package storage

import (
	"strconv"
	"strings"

	"github.com/kbanas/baza/strutil"
)

// BaseType is the closed set of scalar column types baza supports.
// Invalid only ever appears as a parse-failure sentinel; it is never
// stored in a column.
type BaseType int

const (
	Invalid BaseType = iota
	Int32
	Int64
	String
)

func (t BaseType) String() string {
	switch t {
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case String:
		return "string"
	default:
		return "invalid"
	}
}

// BaseTypeFromName resolves a case-insensitive type name ("int32",
// "INT64", "String", ...) to a BaseType, returning Invalid if name
// matches none of the closed set.
func BaseTypeFromName(name string) BaseType {
	switch {
	case strutil.IEqual(name, "int32"):
		return Int32
	case strutil.IEqual(name, "int64"):
		return Int64
	case strutil.IEqual(name, "string"):
		return String
	default:
		return Invalid
	}
}

// ParseValue converts the raw textual literal v into a typed Value for
// t, failing if v does not parse as an integer under an integer column.
// String columns never fail to parse: any literal is a valid string.
func ParseValue(t BaseType, v string) (any, bool) {
	switch t {
	case Int32:
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return nil, false
		}
		return int32(n), true
	case Int64:
		n, ok := strutil.ParseInt(v)
		if !ok {
			return nil, false
		}
		return n, true
	case String:
		return v, true
	default:
		return nil, false
	}
}

// FormatValue renders a stored cell as display text, the way
// basetype_value_to_str does for print_row.
func FormatValue(t BaseType, v any) string {
	switch t {
	case Int32:
		return strconv.FormatInt(int64(v.(int32)), 10)
	case Int64:
		return strconv.FormatInt(v.(int64), 10)
	case String:
		return v.(string)
	default:
		return "INVALID"
	}
}

// CompareValue implements the ordering used by comparison operators:
// native signed comparison for integers, byte-wise lexicographic
// comparison for strings. The return value follows the usual cmp
// convention (negative, zero, positive).
func CompareValue(t BaseType, a, b any) int {
	switch t {
	case Int32:
		av, bv := a.(int32), b.(int32)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	case Int64:
		av, bv := a.(int64), b.(int64)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	case String:
		return strings.Compare(a.(string), b.(string))
	default:
		return 0
	}
}

// Like implements the LIKE pattern matcher: '%' matches zero or more
// arbitrary bytes (every split point is tried, and a bare trailing '%'
// matches the rest of the string outright), '_' matches exactly one
// byte. It applies only to strings; on other types it falls back
// to equality, which callers handle before reaching here.
func Like(s, pattern string) bool {
	return likeBytes([]byte(s), []byte(pattern))
}

func likeBytes(s, pattern []byte) bool {
	si, pi := 0, 0
	for si < len(s) && pi < len(pattern) {
		switch pattern[pi] {
		case '%':
			pi++
			if pi == len(pattern) {
				// trailing % matches whatever remains
				return true
			}
			for ; si <= len(s); si++ {
				if likeBytes(s[si:], pattern[pi:]) {
					return true
				}
			}
			return false
		case '_':
			pi++
			si++
			continue
		default:
			if s[si] != pattern[pi] {
				return false
			}
			si++
			pi++
		}
	}

	// one side ended before the other: only OK if what's left of the
	// pattern is nothing, or a trailing '%' (which matches "").
	if si < len(s) || pi < len(pattern) {
		return pi < len(pattern) && pattern[pi] == '%' && pi == len(pattern)-1
	}
	return true
}
