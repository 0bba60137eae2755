// Package pattern maintains the interval index that maps buffer cells
// to the pattern matches covering them. Trees are immutable once
// built: a scan produces a fresh tree off to the side and the owner
// swaps it in wholesale.
package pattern

import (
	"sort"

	"github.com/dshills/termview/internal/grid"
)

// Interval is one pattern match: a half-open span of cells in reading
// order tagged with the id of the pattern that matched.
type Interval struct {
	Start grid.Point // inclusive
	End   grid.Point // exclusive
	ID    uint64
}

// Tree is an immutable interval index ordered by start position. A
// nil tree behaves as empty.
type Tree struct {
	intervals []Interval
	// maxEnd[i] is the latest End among intervals[0..i], letting
	// queries skip prefixes that end before the probe.
	maxEnd []grid.Point
}

// NewTree builds a tree from the given intervals. The input is copied
// and may be in any order; empty input yields an empty tree.
func NewTree(intervals []Interval) *Tree {
	t := &Tree{
		intervals: make([]Interval, len(intervals)),
		maxEnd:    make([]grid.Point, len(intervals)),
	}
	copy(t.intervals, intervals)
	sort.SliceStable(t.intervals, func(i, j int) bool {
		return t.intervals[i].Start.Before(t.intervals[j].Start)
	})

	for i, iv := range t.intervals {
		t.maxEnd[i] = iv.End
		if i > 0 && t.maxEnd[i-1].After(iv.End) {
			t.maxEnd[i] = t.maxEnd[i-1]
		}
	}
	return t
}

// Len returns the number of intervals in the tree.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.intervals)
}

// Empty returns true if the tree holds no intervals.
func (t *Tree) Empty() bool { return t.Len() == 0 }

// IDsAt returns the ids of every interval covering the cell at p, in
// start order. The result is nil when nothing matches.
func (t *Tree) IDsAt(p grid.Point) []uint64 {
	if t.Empty() {
		return nil
	}

	var ids []uint64
	for _, iv := range t.overlapping(p, p.Add(0, 1)) {
		ids = append(ids, iv.ID)
	}
	return ids
}

// Overlapping returns every interval that overlaps the half-open span
// [start, end), in start order.
func (t *Tree) Overlapping(start, end grid.Point) []Interval {
	if t.Empty() {
		return nil
	}
	return t.overlapping(start, end)
}

func (t *Tree) overlapping(start, end grid.Point) []Interval {
	// Skip the prefix whose intervals all end at or before start;
	// maxEnd is non-decreasing, so this is a binary search.
	lo := sort.Search(len(t.intervals), func(i int) bool {
		return t.maxEnd[i].After(start)
	})

	var out []Interval
	for i := lo; i < len(t.intervals); i++ {
		iv := t.intervals[i]
		if !iv.Start.Before(end) {
			break
		}
		if iv.End.After(start) {
			out = append(out, iv)
		}
	}
	return out
}
