package rtree

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// division is one candidate way to split an overfull node's entries into two
// groups along some axis at some index. Group1 stays with the original node;
// Group2 becomes the new sibling node.
type division[T any] struct {
	Group1, Group2 []*Entry[T]
	Axis           int
	Index          int
}

// rstarSplit implements the R*-tree split: ChooseSplitAxis picks the axis
// (and its full set of candidate distributions) minimizing total perimeter
// across all valid distributions; ChooseSplitIndex then picks, among that
// axis's distributions, the one minimizing overlap between the two groups'
// bounding rectangles (ties broken by smaller combined area, then by earliest
// position in the candidate list). n is reused as the first group; the
// returned node holds the second.
func rstarSplit[T any](tree *Tree[T], n *Node[T]) *Node[T] {
	_, divisions := chooseSplitAxis(n.Entries, tree.minEntries, tree.maxEntries)
	best := chooseSplitIndex(divisions)

	n.Entries = best.Group1
	right := &Node[T]{IsLeaf: n.IsLeaf, tree: tree, Entries: best.Group2}
	for _, e := range right.Entries {
		if e.Child != nil {
			e.Child.Parent = right
		}
	}
	return right
}

// chooseSplitAxis returns the axis (0 for x, 1 for y) minimizing the summed
// perimeter (margin) of both groups' bounding rectangles over every valid
// distribution on that axis, and that axis's deduplicated distribution list
// to hand to chooseSplitIndex. The margin sum itself is taken over both sort
// passes (by lower bound, by upper bound) without deduplication — an axis
// whose two sort orders happen to coincide contributes each distribution
// twice, same as the R*-tree paper's S statistic. Ties prefer the x axis,
// since it is evaluated first and only a strictly smaller sum replaces it.
func chooseSplitAxis[T any](entries []*Entry[T], m, M int) (int, []division[T]) {
	bestAxis := 0
	bestMargin := math.Inf(1)

	for axis := 0; axis < 2; axis++ {
		if margin := axisMarginSum(entries, axis, m, M); margin < bestMargin {
			bestMargin = margin
			bestAxis = axis
		}
	}

	return bestAxis, getPossibleDivisions(entries, bestAxis, m, M)
}

// axisMarginSum sums the combined perimeter of both groups' bounding
// rectangles over every valid split index, for each of the two sort orders
// (by lower bound, by upper bound) on axis, without deduplicating
// distributions the two orders happen to produce in common.
func axisMarginSum[T any](entries []*Entry[T], axis, m, M int) float64 {
	lower, upper := divisionBounds(len(entries), m, M)
	sum := 0.0
	for _, useMax := range []bool{false, true} {
		sorted := axisSorted(entries, axis, useMax)
		for i := lower; i <= upper; i++ {
			sum += boundingRect(rectsOf(sorted[:i])).Perimeter() + boundingRect(rectsOf(sorted[i:])).Perimeter()
		}
	}
	return sum
}

// divisionBounds returns the inclusive range of valid split indices i (group
// sizes) for splitting total entries such that both groups end up with
// between m and M entries: i ranges over [max(m, total-M), min(M, total-m)].
func divisionBounds(total, m, M int) (int, int) {
	lower := total - M
	if m > lower {
		lower = m
	}
	upper := total - m
	if M < upper {
		upper = M
	}
	return lower, upper
}

// chooseSplitIndex picks, from one axis's candidate distributions, the one
// with least overlap between the two groups' bounding rectangles. Ties
// break on smaller combined area, then on first occurrence in divisions
// (getPossibleDivisions lists the lower-bound sort's divisions in ascending
// split index, followed by the upper-bound sort's new ones).
func chooseSplitIndex[T any](divisions []division[T]) division[T] {
	best := divisions[0]
	bestOverlap := math.Inf(1)
	bestArea := math.Inf(1)

	for _, d := range divisions {
		r1 := boundingRect(rectsOf(d.Group1))
		r2 := boundingRect(rectsOf(d.Group2))
		overlap := r1.Overlap(r2)
		area := r1.Area() + r2.Area()
		if overlap < bestOverlap || (overlap == bestOverlap && area < bestArea) {
			best = d
			bestOverlap = overlap
			bestArea = area
		}
	}

	return best
}

// getPossibleDivisions enumerates every valid way to split entries into two
// groups along axis, sorted first by each entry's lower bound then by its
// upper bound on that axis (and the reverse), at every split index i that
// keeps both groups within [m, M]. Distributions that coincide (same
// entries land in the same group regardless of which sort produced them)
// are reported once.
func getPossibleDivisions[T any](entries []*Entry[T], axis, m, M int) []division[T] {
	lower, upper := divisionBounds(len(entries), m, M)

	var divisions []division[T]
	seen := make(map[string]bool)

	for _, useMax := range []bool{false, true} {
		sorted := axisSorted(entries, axis, useMax)
		for i := lower; i <= upper; i++ {
			group1 := sorted[:i]
			group2 := sorted[i:]
			key := groupKey(group1)
			if seen[key] {
				continue
			}
			seen[key] = true
			divisions = append(divisions, division[T]{Group1: group1, Group2: group2, Axis: axis, Index: i})
		}
	}

	return divisions
}

// axisSorted returns a stable copy of entries sorted by the chosen axis's
// lower bound (useMax false) or upper bound (useMax true), with the
// opposite bound on the same axis as a deterministic tie-break.
func axisSorted[T any](entries []*Entry[T], axis int, useMax bool) []*Entry[T] {
	sorted := append([]*Entry[T](nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		pi := axisKey(sorted[i].Rect, axis, useMax, false)
		pj := axisKey(sorted[j].Rect, axis, useMax, false)
		if pi != pj {
			return pi < pj
		}
		return axisKey(sorted[i].Rect, axis, useMax, true) < axisKey(sorted[j].Rect, axis, useMax, true)
	})
	return sorted
}

// axisKey extracts one of a rectangle's four bounds. primary selects MinX/
// MaxX/MinY/MaxY per (axis, useMax); secondary (secondary=true) selects the
// opposite bound on the same axis, used as the tie-break key.
func axisKey(r Rect, axis int, useMax, secondary bool) float64 {
	useMax = useMax != secondary // secondary flips which bound is primary
	if axis == 0 {
		if useMax {
			return r.MaxX
		}
		return r.MinX
	}
	if useMax {
		return r.MaxY
	}
	return r.MinY
}

// rectsOf extracts each entry's rectangle.
func rectsOf[T any](entries []*Entry[T]) []Rect {
	rects := make([]Rect, len(entries))
	for i, e := range entries {
		rects[i] = e.Rect
	}
	return rects
}

// groupKey identifies a set of entries by their pointer identities,
// independent of order, so two distributions that place the same entries in
// the same group (even from different sort passes) are recognized as equal.
func groupKey[T any](entries []*Entry[T]) string {
	ptrs := make([]string, len(entries))
	for i, e := range entries {
		ptrs[i] = fmt.Sprintf("%p", e)
	}
	sort.Strings(ptrs)
	return strings.Join(ptrs, ",")
}
