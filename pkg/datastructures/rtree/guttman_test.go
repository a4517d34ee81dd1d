package rtree

import "testing"

func TestGuttmanInsertAndQuery(t *testing.T) {
	tree, err := New[int](2, 4, GuttmanStrategy[int]{})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	points := []Rect{
		{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1},
		{MinX: 2, MinY: 2, MaxX: 3, MaxY: 3},
		{MinX: 4, MinY: 4, MaxX: 5, MaxY: 5},
		{MinX: 6, MinY: 6, MaxX: 7, MaxY: 7},
		{MinX: 8, MinY: 8, MaxX: 9, MaxY: 9},
		{MinX: 10, MinY: 10, MaxX: 11, MaxY: 11},
	}
	for i, r := range points {
		if _, err := tree.Insert(i, r); err != nil {
			t.Fatalf("Insert(%d) error: %v", i, err)
		}
	}

	seq, err := tree.Query(Rect{MinX: 3, MinY: 3, MaxX: 7, MaxY: 7})
	if err != nil {
		t.Fatalf("Query() error: %v", err)
	}
	var found []int
	for e := range seq {
		found = append(found, e.Data)
	}
	if len(found) != 3 {
		t.Fatalf("Query returned %d entries, want 3 (indices 1,2,3)", len(found))
	}
}

func TestGuttmanSplitRespectsMinEntries(t *testing.T) {
	tree, err := New[int](2, 4, GuttmanStrategy[int]{})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	for i := 0; i < 20; i++ {
		x := float64(i)
		if _, err := tree.Insert(i, Rect{MinX: x, MinY: x, MaxX: x + 1, MaxY: x + 1}); err != nil {
			t.Fatalf("Insert(%d) error: %v", i, err)
		}
	}

	for _, n := range tree.Nodes() {
		if n.IsRoot() {
			continue
		}
		if len(n.Entries) < tree.MinEntries() {
			t.Errorf("node at level %d has %d entries, fewer than MinEntries %d", n.Level(), len(n.Entries), tree.MinEntries())
		}
		if len(n.Entries) > tree.MaxEntries() {
			t.Errorf("node at level %d has %d entries, more than MaxEntries %d", n.Level(), len(n.Entries), tree.MaxEntries())
		}
	}
}

func TestPickSeedsChoosesMostWasteful(t *testing.T) {
	entries := leafEntries(
		Rect{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1},
		Rect{MinX: 0.9, MinY: 0.9, MaxX: 1.9, MaxY: 1.9},
		Rect{MinX: 100, MinY: 100, MaxX: 101, MaxY: 101},
	)
	li, ri := pickSeeds(entries)
	got := map[int]bool{li: true, ri: true}
	if !got[0] || !got[2] {
		t.Fatalf("pickSeeds() = (%d, %d), want the far-apart pair (0, 2)", li, ri)
	}
}
