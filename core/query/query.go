package query

import (
	"sort"
	"strings"
)

// Filter returns the elements of items for which every predicate holds.
// Predicates compose with logical AND; input order is preserved and the
// input slice is never mutated. No predicates means the identity transform.
func Filter[T any](items []T, preds ...func(T) bool) []T {
	out := make([]T, 0, len(items))
outer:
	for _, item := range items {
		for _, pred := range preds {
			if pred != nil && !pred(item) {
				continue outer
			}
		}
		out = append(out, item)
	}
	return out
}

// SortBy returns a copy of items stably sorted by less. Ties keep their
// original order, which makes sorting idempotent.
func SortBy[T any](items []T, less func(a, b T) bool) []T {
	out := append([]T(nil), items...)
	if less != nil {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}
	return out
}

// ContainsFold reports whether needle occurs in haystack, ignoring case.
// An empty needle matches everything.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// AnyContainsFold reports whether needle occurs in any of the haystacks,
// ignoring case.
func AnyContainsFold(haystacks []string, needle string) bool {
	for _, h := range haystacks {
		if ContainsFold(h, needle) {
			return true
		}
	}
	return false
}
