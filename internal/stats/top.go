// Package stats contains statistics calculations and reporting.
package stats

import (
	"cmp"
	"sort"
)

// Count pairs a value with the number of times it occurs.
type Count[T cmp.Ordered] struct {
	Value T
	Count int
}

// ValueCounts counts each distinct value. The result is ordered by count,
// highest first; equal counts are ordered by value, lowest first.
func ValueCounts[T cmp.Ordered](values []T) []Count[T] {
	counts := make(map[T]int, len(values))
	for _, v := range values {
		counts[v]++
	}
	items := make([]Count[T], 0, len(counts))
	for v, n := range counts {
		items = append(items, Count[T]{Value: v, Count: n})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Value < items[j].Value
		}
		return items[i].Count > items[j].Count
	})
	return items
}

// Mode returns the most frequent value and its count. Ties resolve to the
// lowest value. ok is false when values is empty.
func Mode[T cmp.Ordered](values []T) (Count[T], bool) {
	counts := ValueCounts(values)
	if len(counts) == 0 {
		return Count[T]{}, false
	}
	return counts[0], true
}

// MinMax returns the smallest and largest value. ok is false when values is empty.
func MinMax[T cmp.Ordered](values []T) (lo, hi T, ok bool) {
	if len(values) == 0 {
		return lo, hi, false
	}
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi, true
}
