package rtree

import "math"

// leastAreaEnlargement picks the entry whose rectangle requires the
// smallest area increase to cover rect. Ties break on smallest original
// area, then on first occurrence in entries.
func leastAreaEnlargement[T any](entries []*Entry[T], rect Rect) *Entry[T] {
	var best *Entry[T]
	bestEnlargement := math.Inf(1)
	bestArea := math.Inf(1)
	for _, e := range entries {
		enlargement := e.Rect.Enlargement(rect)
		area := e.Rect.Area()
		if enlargement < bestEnlargement || (enlargement == bestEnlargement && area < bestArea) {
			best = e
			bestEnlargement = enlargement
			bestArea = area
		}
	}
	return best
}

// leastOverlapEnlargement picks the entry whose group of siblings loses the
// least additional overlap by absorbing rect. Ties break on the smaller
// original area, then on first occurrence in entries.
func leastOverlapEnlargement[T any](entries []*Entry[T], rect Rect) *Entry[T] {
	best := -1
	bestDelta := math.Inf(1)
	bestArea := math.Inf(1)
	for i, e := range entries {
		enlarged := e.Rect.Union(rect)
		var delta float64
		for j, f := range entries {
			if i == j {
				continue
			}
			delta += enlarged.Overlap(f.Rect) - e.Rect.Overlap(f.Rect)
		}
		area := e.Rect.Area()
		if delta < bestDelta || (delta == bestDelta && area < bestArea) {
			best = i
			bestDelta = delta
			bestArea = area
		}
	}
	return entries[best]
}

// placeEntry appends e to target's entries, fixes up e.Child's parent
// back-reference if e is internal, and resolves overflow if target is now
// overfull — otherwise just propagates the bounding-rectangle change
// upward. Used by both top-level insertion and R*'s forced reinsertion.
func placeEntry[T any](tree *Tree[T], e *Entry[T], target *Node[T], scratch *InsertScratch) {
	target.Entries = append(target.Entries, e)
	if e.Child != nil {
		e.Child.Parent = target
	}

	if len(target.Entries) > tree.maxEntries {
		tree.strategy.Overflow(tree, target, scratch)
		return
	}
	adjustTree(tree, target, nil, scratch)
}

// adjustTree walks from n to the root, re-tightening ancestor bounding
// rectangles. If split is non-nil, split is attached to n's parent as a new
// sibling entry; if that overflows the parent, the tree's strategy decides
// how to resolve it (which itself calls back into adjustTree). If n is the
// root and split is non-nil, a new root is grown, adding one level to the
// tree's height.
func adjustTree[T any](tree *Tree[T], n *Node[T], split *Node[T], scratch *InsertScratch) {
	if n.IsRoot() {
		if split != nil {
			growRoot(tree, n, split)
		}
		return
	}

	parent := n.Parent
	n.ParentEntry.Rect = n.BoundingRect()

	if split != nil {
		e := newInternalEntry(split)
		parent.Entries = append(parent.Entries, e)
		split.Parent = parent
		split.ParentEntry = e

		if len(parent.Entries) > tree.maxEntries {
			tree.strategy.Overflow(tree, parent, scratch)
			return
		}
	}

	adjustTree(tree, parent, nil, scratch)
}

// growRoot replaces the tree's root with a fresh internal node holding
// exactly two entries pointing at oldRoot and split.
func growRoot[T any](tree *Tree[T], oldRoot *Node[T], split *Node[T]) {
	newRoot := &Node[T]{tree: tree}
	e1 := newInternalEntry(oldRoot)
	e2 := newInternalEntry(split)
	newRoot.Entries = []*Entry[T]{e1, e2}

	oldRoot.Parent = newRoot
	oldRoot.ParentEntry = e1
	split.Parent = newRoot
	split.ParentEntry = e2

	tree.root = newRoot
}

// quadraticSplit performs Guttman's quadratic-cost split of an overfull
// node: pick the pair of entries that would waste the most space if placed
// together as seeds, then repeatedly assign the remaining entry with the
// strongest preference for one group over the other, until every entry is
// placed (respecting MinEntries on both groups). n is reused as the left
// group; the returned node holds the right group.
func quadraticSplit[T any](tree *Tree[T], n *Node[T]) *Node[T] {
	entries := n.Entries
	li, ri := pickSeeds(entries)
	leftSeed, rightSeed := entries[li], entries[ri]

	remaining := make([]*Entry[T], 0, len(entries)-2)
	for i, e := range entries {
		if i != li && i != ri {
			remaining = append(remaining, e)
		}
	}

	n.Entries = []*Entry[T]{leftSeed}
	right := &Node[T]{IsLeaf: n.IsLeaf, tree: tree, Entries: []*Entry[T]{rightSeed}}
	if rightSeed.Child != nil {
		rightSeed.Child.Parent = right
	}

	assignQuadraticGroups(n, right, remaining, tree.minEntries)
	return right
}

// pickSeeds chooses the two entries whose pairing wastes the most space,
// per Guttman's quadratic PickSeeds.
func pickSeeds[T any](entries []*Entry[T]) (int, int) {
	li, ri := 0, 1
	maxWaste := math.Inf(-1)
	for i, e1 := range entries {
		for j := i + 1; j < len(entries); j++ {
			e2 := entries[j]
			waste := e1.Rect.Union(e2.Rect).Area() - e1.Rect.Area() - e2.Rect.Area()
			if waste > maxWaste {
				maxWaste = waste
				li, ri = i, j
			}
		}
	}
	return li, ri
}

// assignQuadraticGroups distributes remaining entries between left and
// right, picking at each step the entry with the strongest preference for
// one group over the other (Guttman's PickNext), and forcing all remaining
// entries into whichever group would otherwise underflow.
func assignQuadraticGroups[T any](left, right *Node[T], remaining []*Entry[T], minEntries int) {
	for len(remaining) > 0 {
		leftBB := left.BoundingRect()
		rightBB := right.BoundingRect()

		if len(left.Entries)+len(remaining) <= minEntries {
			assignAll(left, remaining)
			return
		}
		if len(right.Entries)+len(remaining) <= minEntries {
			assignAll(right, remaining)
			return
		}

		bestIdx := 0
		bestDiff := math.Inf(-1)
		var bestLeftDiff, bestRightDiff float64
		for i, e := range remaining {
			leftDiff := leftBB.Union(e.Rect).Area() - leftBB.Area()
			rightDiff := rightBB.Union(e.Rect).Area() - rightBB.Area()
			diff := math.Abs(leftDiff - rightDiff)
			if diff > bestDiff {
				bestDiff = diff
				bestIdx = i
				bestLeftDiff, bestRightDiff = leftDiff, rightDiff
			}
		}

		next := remaining[bestIdx]
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)

		switch {
		case bestLeftDiff < bestRightDiff:
			assignOne(left, next)
		case bestRightDiff < bestLeftDiff:
			assignOne(right, next)
		case leftBB.Area() < rightBB.Area():
			assignOne(left, next)
		case rightBB.Area() < leftBB.Area():
			assignOne(right, next)
		case len(left.Entries) < len(right.Entries):
			assignOne(left, next)
		default:
			assignOne(right, next)
		}
	}
}

func assignOne[T any](group *Node[T], e *Entry[T]) {
	if e.Child != nil {
		e.Child.Parent = group
	}
	group.Entries = append(group.Entries, e)
}

func assignAll[T any](group *Node[T], entries []*Entry[T]) {
	for _, e := range entries {
		assignOne(group, e)
	}
}
