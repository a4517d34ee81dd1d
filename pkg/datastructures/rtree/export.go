package rtree

// NodeRow is a flattened projection of one tree node, suitable for handing
// to an external renderer or persistence layer without that caller needing
// to walk Node/Entry pointers itself.
type NodeRow struct {
	Level  int
	Rect   Rect
	IsLeaf bool
}

// LeafRow is a flattened projection of one leaf entry.
type LeafRow[T any] struct {
	Rect Rect
	Data T
}

// NodeRows flattens every node in the tree into rows ordered level by
// level, root first. Callers that want to render or persist tree structure
// (graph visualization, a debug table dump) consume this instead of
// depending on Node directly.
func (t *Tree[T]) NodeRows() []NodeRow {
	var rows []NodeRow
	for _, n := range t.Nodes() {
		var rect Rect
		if len(n.Entries) > 0 {
			rect = n.BoundingRect()
		}
		rows = append(rows, NodeRow{Level: n.Level(), Rect: rect, IsLeaf: n.IsLeaf})
	}
	return rows
}

// LeafRows flattens every leaf entry in the tree into rows.
func (t *Tree[T]) LeafRows() []LeafRow[T] {
	var rows []LeafRow[T]
	for _, e := range t.LeafEntries() {
		rows = append(rows, LeafRow[T]{Rect: e.Rect, Data: e.Data})
	}
	return rows
}
