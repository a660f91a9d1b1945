// Package filter projects an ordered list onto the subset matching a free
// text query and an optional category predicate. The input order is kept.
package filter

import "strings"

// Predicate reports whether an item passes a category filter.
type Predicate[T any] func(T) bool

// Matches reports whether query is a case-insensitive substring of any field.
// An empty query matches everything.
func Matches(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// Apply returns the items whose searchable fields contain query and that
// pass every predicate. Nil predicates are ignored.
func Apply[T any](items []T, query string, searchable func(T) []string, predicates ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !Matches(query, searchable(item)...) {
			continue
		}
		if !all(item, predicates) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Equal builds a predicate matching items whose category equals want.
// The zero value of want disables the filter.
func Equal[T any, C comparable](want C, category func(T) C) Predicate[T] {
	var zero C
	if want == zero {
		return nil
	}
	return func(item T) bool { return category(item) == want }
}

func all[T any](item T, predicates []Predicate[T]) bool {
	for _, p := range predicates {
		if p != nil && !p(item) {
			return false
		}
	}
	return true
}
