package rtree

import (
	"context"
	"fmt"
	"iter"

	cerrors "github.com/chris-alexander-pop/rstartree/pkg/errors"
	"github.com/chris-alexander-pop/rstartree/pkg/logger"
)

// Tree is a balanced R-tree mapping 2-D rectangles to opaque data of type T.
// Mutating methods (Insert) are not safe to call concurrently with readers;
// callers must externally serialize access.
type Tree[T any] struct {
	root       *Node[T]
	minEntries int
	maxEntries int
	strategy   Strategy[T]
}

// New constructs an empty tree with the given entry-count bounds and
// strategy. It returns InvalidConfiguration if max < 2, min < 1, or
// min > ceil(max/2).
func New[T any](minEntries, maxEntries int, strategy Strategy[T]) (*Tree[T], error) {
	if maxEntries < 2 {
		return nil, cerrors.InvalidConfiguration(fmt.Sprintf("max_entries must be >= 2, got %d", maxEntries), nil)
	}
	if minEntries < 1 {
		return nil, cerrors.InvalidConfiguration(fmt.Sprintf("min_entries must be >= 1, got %d", minEntries), nil)
	}
	ceilHalf := (maxEntries + 1) / 2
	if minEntries > ceilHalf {
		return nil, cerrors.InvalidConfiguration(
			fmt.Sprintf("min_entries (%d) must be <= ceil(max_entries/2) (%d)", minEntries, ceilHalf), nil)
	}

	tree := &Tree[T]{minEntries: minEntries, maxEntries: maxEntries, strategy: strategy}
	tree.root = &Node[T]{IsLeaf: true, tree: tree}
	return tree, nil
}

// MinEntries returns the tree's configured minimum entries per node.
func (t *Tree[T]) MinEntries() int { return t.minEntries }

// MaxEntries returns the tree's configured maximum entries per node.
func (t *Tree[T]) MaxEntries() int { return t.maxEntries }

// Root returns the tree's root node.
func (t *Tree[T]) Root() *Node[T] { return t.root }

// Insert adds a leaf entry containing data and rect to the tree, and
// returns it. Fails only if rect is malformed (min > max on some axis); on
// failure the tree is left unchanged.
func (t *Tree[T]) Insert(data T, rect Rect) (*Entry[T], error) {
	if err := rect.Validate(); err != nil {
		return nil, err
	}

	e := newLeafEntry(rect, data)
	t.insertEntry(e, NewInsertScratch())
	return e, nil
}

// insertEntry places e via the tree's strategy and resolves any resulting
// overflow.
func (t *Tree[T]) insertEntry(e *Entry[T], scratch *InsertScratch) {
	leaf := t.strategy.ChooseLeaf(t, e)
	placeEntry(t, e, leaf, scratch)
}

// Query returns a single-pass, lazy sequence of leaf entries whose
// rectangle intersects rect, or an InvalidArgument error if rect is
// malformed (min > max on some axis). The tree must not be mutated while a
// Query iteration is in progress.
func (t *Tree[T]) Query(rect Rect) (iter.Seq[*Entry[T]], error) {
	if err := rect.Validate(); err != nil {
		return nil, err
	}

	return func(yield func(*Entry[T]) bool) {
		var walk func(n *Node[T]) bool
		walk = func(n *Node[T]) bool {
			for _, e := range n.Entries {
				if !e.Rect.Intersects(rect) {
					continue
				}
				if n.IsLeaf {
					if !yield(e) {
						return false
					}
				} else if !walk(e.Child) {
					return false
				}
			}
			return true
		}
		walk(t.root)
	}, nil
}

// Levels returns the tree's nodes grouped by depth; Levels()[0] is always
// []*Node[T]{t.Root()}.
func (t *Tree[T]) Levels() [][]*Node[T] {
	var levels [][]*Node[T]
	queue := []*Node[T]{t.root}
	for len(queue) > 0 {
		levels = append(levels, queue)
		var next []*Node[T]
		for _, n := range queue {
			if n.IsLeaf {
				continue
			}
			for _, e := range n.Entries {
				next = append(next, e.Child)
			}
		}
		queue = next
	}
	return levels
}

// Nodes returns every node in the tree.
func (t *Tree[T]) Nodes() []*Node[T] {
	var nodes []*Node[T]
	for _, level := range t.Levels() {
		nodes = append(nodes, level...)
	}
	return nodes
}

// Leaves returns every leaf node in the tree.
func (t *Tree[T]) Leaves() []*Node[T] {
	var leaves []*Node[T]
	for _, n := range t.Nodes() {
		if n.IsLeaf {
			leaves = append(leaves, n)
		}
	}
	return leaves
}

// LeafEntries returns the union of all leaf nodes' entries.
func (t *Tree[T]) LeafEntries() []*Entry[T] {
	var entries []*Entry[T]
	for _, n := range t.Leaves() {
		entries = append(entries, n.Entries...)
	}
	return entries
}

// debugf emits an optional, off-the-hot-path debug trace through the
// package-wide logger. ctx carries OpenTelemetry span correlation when the
// caller's call site is itself traced; a background context is fine since
// no span is expected in most library usage.
func debugf(ctx context.Context, msg string, args ...any) {
	logger.L().DebugContext(ctx, msg, args...)
}
