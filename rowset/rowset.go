// Package rowset implements the row-id set: an ordered, duplicate-free
// collection of row indices produced by storage lookups and combined by
// set algebra (union, intersection) while evaluating a filter chain.
//
// A linked-list-backed set doing O(n·m) union/intersection by repeated
// linear containment checks is a known-slow representation for large
// tables; this implementation instead keeps the set in a
// github.com/google/btree ordered tree, giving O(log n) membership
// tests, O(n log m) intersection, O((n+m) log(n+m)) union, and ordered iteration for
// free — which DELETE's ascending-order row-shift accounting depends on.
package rowset

import "github.com/google/btree"

const treeDegree = 32

func less(a, b uint64) bool { return a < b }

// Set is a duplicate-free, ascending-ordered collection of row indices.
type Set struct {
	tree *btree.BTreeG[uint64]
}

// New returns an empty Set.
func New() *Set {
	return &Set{tree: btree.NewG(treeDegree, less)}
}

// Of returns a Set containing the given row indices, deduplicated.
func Of(rows ...uint64) *Set {
	s := New()
	for _, r := range rows {
		s.Add(r)
	}
	return s
}

// Add inserts row into the set. Adding an already-present row is a no-op.
func (s *Set) Add(row uint64) {
	s.tree.ReplaceOrInsert(row)
}

// Contains reports whether row is a member of the set.
func (s *Set) Contains(row uint64) bool {
	_, ok := s.tree.Get(row)
	return ok
}

// Len returns the number of elements in the set.
func (s *Set) Len() int {
	return s.tree.Len()
}

// Rows returns the set's elements in ascending order. DELETE relies on
// this order to correctly account for the downward shift each row
// deletion causes in the rows that follow it.
func (s *Set) Rows() []uint64 {
	out := make([]uint64, 0, s.tree.Len())
	s.tree.Ascend(func(v uint64) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Union returns the elements present in either a or b, duplicate-free.
// Calling Union(s, s) — the same set passed for both operands — is
// treated as a caller bug (an accidental self-combination that should
// never happen upstream) and reports ok=false instead of silently
// returning a copy of s.
func Union(a, b *Set) (result *Set, ok bool) {
	if a == b {
		return nil, false
	}

	out := New()
	a.tree.Ascend(func(v uint64) bool {
		out.Add(v)
		return true
	})
	b.tree.Ascend(func(v uint64) bool {
		out.Add(v)
		return true
	})
	return out, true
}

// Intersection returns the elements present in both a and b,
// duplicate-free. See Union for the identical-reference guard.
func Intersection(a, b *Set) (result *Set, ok bool) {
	if a == b {
		return nil, false
	}

	out := New()
	a.tree.Ascend(func(v uint64) bool {
		if b.Contains(v) {
			out.Add(v)
		}
		return true
	})
	return out, true
}
