package avl

import "testing"

func collectForward(it *Iterator[*testNode, int, testAbs]) []int {
	var got []int
	for it.Valid() {
		got = append(got, it.Handle().key)
		it.Next()
	}
	return got
}

func collectBackward(it *Iterator[*testNode, int, testAbs]) []int {
	var got []int
	for it.Valid() {
		got = append(got, it.Handle().key)
		it.Prev()
	}
	return got
}

func sliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestIteratorBidirection(t *testing.T) {
	tree := newTestTree()
	for k := 1; k <= 5; k++ {
		tree.Insert(&testNode{key: k})
	}

	it := NewIterator[*testNode, int, testAbs](tree)
	it.SeekLeast()
	if got := collectForward(it); !sliceEqual(got, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("forward walk from least = %v, want 1..5", got)
	}

	it.SeekGreatest()
	if got := collectBackward(it); !sliceEqual(got, []int{5, 4, 3, 2, 1}) {
		t.Fatalf("backward walk from greatest = %v, want 5..1", got)
	}

	it.SeekLeast()
	it.Next()
	it.Next()
	if got := it.Handle().key; got != 3 {
		t.Fatalf("after SeekLeast then two Next, handle key = %d, want 3", got)
	}
	it.Prev()
	if got := it.Handle().key; got != 2 {
		t.Fatalf("after one Prev, handle key = %d, want 2", got)
	}
}

func TestIteratorSeekModes(t *testing.T) {
	tree := newTestTree()
	for k := 10; k <= 50; k += 10 {
		tree.Insert(&testNode{key: k})
	}

	it := NewIterator[*testNode, int, testAbs](tree)

	it.Seek(25, GreaterEqual)
	if !it.Valid() || it.Handle().key != 30 {
		t.Fatalf("Seek(25, GreaterEqual) landed on %v, want 30", it.Handle())
	}

	it.Seek(25, LessEqual)
	if !it.Valid() || it.Handle().key != 20 {
		t.Fatalf("Seek(25, LessEqual) landed on %v, want 20", it.Handle())
	}

	it.Seek(30, Equal)
	if !it.Valid() || it.Handle().key != 30 {
		t.Fatalf("Seek(30, Equal) landed on %v, want 30", it.Handle())
	}

	it.Seek(5, Less)
	if it.Valid() {
		t.Fatalf("Seek(5, Less) should be invalid, got %v", it.Handle())
	}
}

func TestIteratorMatchesInOrderWalk(t *testing.T) {
	tree := newTestTree()
	var keys []int
	present := make(map[int]bool)
	for i := 0; i < 500; i++ {
		k := rg.Intn(2000)
		if present[k] {
			continue
		}
		present[k] = true
		keys = append(keys, k)
		tree.Insert(&testNode{key: k})
	}

	var inorder []int
	var walk func(h *testNode)
	walk = func(h *testNode) {
		if h == nil {
			return
		}
		walk(h.less)
		inorder = append(inorder, h.key)
		walk(h.greater)
	}
	walk(tree.root)

	it := NewIterator[*testNode, int, testAbs](tree)
	it.SeekLeast()
	got := collectForward(it)

	if !sliceEqual(got, inorder) {
		t.Fatalf("iterator forward walk disagrees with recursive in-order walk")
	}
}

func TestIteratorEmptyTree(t *testing.T) {
	tree := newTestTree()
	it := NewIterator[*testNode, int, testAbs](tree)
	it.SeekLeast()
	if it.Valid() {
		t.Fatalf("SeekLeast on empty tree should be invalid")
	}
	it.SeekGreatest()
	if it.Valid() {
		t.Fatalf("SeekGreatest on empty tree should be invalid")
	}
}
