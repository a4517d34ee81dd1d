package rtree

import (
	"context"
	"math"
	"sort"
)

// RStarStrategy is the R*-tree strategy: subtree selection by least-overlap
// enlargement one level above the leaves (least-area enlargement above
// that), split axis/index chosen by perimeter and overlap minimization over
// every valid entry distribution, and forced reinsertion of the farthest
// fraction of an overfull node's entries on the first overflow per level
// per insert.
type RStarStrategy[T any] struct{}

var _ Strategy[struct{}] = RStarStrategy[struct{}]{}

// ChooseLeaf descends from the root. One level above the leaves it picks
// the next subtree by least-overlap enlargement; at every other internal
// level it picks by least-area enlargement.
func (RStarStrategy[T]) ChooseLeaf(tree *Tree[T], e *Entry[T]) *Node[T] {
	return descend(tree, e, func(n *Node[T]) bool { return n.IsLeaf })
}

// Overflow resolves an overfull node n. The root always splits (forced
// reinsertion never happens at the root). Otherwise, the first overflow at
// n's level during this top-level insert triggers forced reinsertion; any
// later overflow at that same level during the same insert splits instead.
func (RStarStrategy[T]) Overflow(tree *Tree[T], n *Node[T], scratch *InsertScratch) {
	if n.IsRoot() {
		splitAndAdjust(tree, n, scratch)
		return
	}

	level := n.Level()
	if scratch.reinsertedAt(level) {
		splitAndAdjust(tree, n, scratch)
		return
	}

	scratch.markReinserted(level)
	forcedReinsert(tree, n, scratch)
}

func splitAndAdjust[T any](tree *Tree[T], n *Node[T], scratch *InsertScratch) {
	split := rstarSplit(tree, n)
	adjustTree(tree, n, split, scratch)
}

// descend walks from the root, at each internal node picking a child via
// least-overlap enlargement (when the node's children are leaves) or
// least-area enlargement (otherwise), until stop reports true.
func descend[T any](tree *Tree[T], e *Entry[T], stop func(n *Node[T]) bool) *Node[T] {
	n := tree.root
	for !stop(n) {
		var chosen *Entry[T]
		if n.childrenAreLeaves() {
			chosen = leastOverlapEnlargement(n.Entries, e.Rect)
		} else {
			chosen = leastAreaEnlargement(n.Entries, e.Rect)
		}
		n = chosen.Child
	}
	return n
}

// chooseNodeAtLevel finds the node at the given depth that e's forced
// reinsertion should descend into, using the same per-level selection rule
// as ChooseLeaf. Reinserted internal entries (whose Child is a subtree of
// fixed height) must land at the level that preserves that height; leaf
// entries simply target the leaf level.
func chooseNodeAtLevel[T any](tree *Tree[T], e *Entry[T], level int) *Node[T] {
	return descend(tree, e, func(n *Node[T]) bool { return n.IsLeaf || n.Level() == level })
}

// forcedReinsert implements the R*-tree forced-reinsertion overflow
// handler: the ceil(0.3*M) entries farthest from the node's pre-overflow
// center are pulled out and reinserted from the root; what's left is
// re-tightened in place. The reference center is n.ParentEntry.Rect — still
// holding the bounding box from before the entry that triggered this
// overflow was appended, since adjustTree hasn't retightened it yet.
func forcedReinsert[T any](tree *Tree[T], n *Node[T], scratch *InsertScratch) {
	center := n.ParentEntry.Rect.Center()

	sorted := append([]*Entry[T](nil), n.Entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		di := sorted[i].Rect.Center().SquaredDistanceTo(center)
		dj := sorted[j].Rect.Center().SquaredDistanceTo(center)
		return di > dj // descending: farthest first
	})

	p := int(math.Ceil(0.3 * float64(tree.maxEntries)))
	removed := sorted[:p]
	n.Entries = sorted[p:]

	// Re-tighten the immediate parent entry before reinsertion begins: the
	// entries being reinserted may themselves get compared against n's
	// (now shrunk) sibling entries while choosing where to land.
	n.ParentEntry.Rect = n.BoundingRect()

	debugf(context.Background(), "rstar forced reinsert",
		"level", n.Level(), "removed", len(removed), "kept", len(n.Entries))

	// n.Level() is recomputed for every reinsertion, not hoisted out of the
	// loop: reinserting one entry can cascade into an ancestor split that
	// grows a new root, which increments every existing node's depth —
	// including n's — partway through this loop.
	for _, e := range removed {
		reinsertEntry(tree, e, n.Level(), scratch)
	}

	adjustTree(tree, n, nil, scratch)
}

// reinsertEntry re-inserts e starting from the root, targeting the node at
// the given level, as part of a forced reinsertion.
func reinsertEntry[T any](tree *Tree[T], e *Entry[T], level int, scratch *InsertScratch) {
	target := chooseNodeAtLevel(tree, e, level)
	placeEntry(tree, e, target, scratch)
}
