package arena

import (
	"math/rand"
	"testing"

	"github.com/twostay/avlcore/avl"
)

var rg = rand.New(rand.NewSource(0))

func intCmp(a, b int) int { return a - b }

const arenaTestN = 4000

func TestArenaInsertSearchRemove(t *testing.T) {
	a := New[int, uint32](intCmp)
	tree := avl.New[uint32, int, *Arena[int, uint32]](a)

	content := make(map[int]uint32)
	for i := 0; i < arenaTestN; i++ {
		k := rg.Intn(arenaTestN * 2)
		if _, in := content[k]; in {
			continue
		}
		h, err := a.Alloc(k)
		if err != nil {
			t.Fatalf("Alloc(%d): %v", k, err)
		}
		if got := tree.Insert(h); got != h {
			t.Fatalf("Insert(%d) = %v, want the fresh handle", k, got)
		}
		content[k] = h
	}

	for k, h := range content {
		got := tree.Search(k, avl.Equal)
		if got != h {
			t.Fatalf("Search(%d) = %v, want %v", k, got, h)
		}
	}

	for k, h := range content {
		removed := tree.Remove(k)
		if removed != h {
			t.Fatalf("Remove(%d) = %v, want %v", k, removed, h)
		}
		if err := a.Free(removed); err != nil {
			t.Fatalf("Free(%v): %v", removed, err)
		}
	}

	if !tree.IsEmpty() {
		t.Fatalf("tree not empty after removing every key")
	}
	if a.Len() != 0 {
		t.Fatalf("arena has %d live nodes after freeing everything", a.Len())
	}
}

func TestArenaFreeListRecycling(t *testing.T) {
	a := New[int, uint32](intCmp)

	h1, _ := a.Alloc(1)
	h2, _ := a.Alloc(2)
	_ = h2

	if err := a.Free(h1); err != nil {
		t.Fatalf("Free: %v", err)
	}

	h3, err := a.Alloc(3)
	if err != nil {
		t.Fatalf("Alloc after Free: %v", err)
	}
	if h3 != h1 {
		t.Fatalf("Alloc after Free returned %v, want recycled handle %v", h3, h1)
	}
	if a.Key(h3) != 3 {
		t.Fatalf("recycled handle has key %d, want 3", a.Key(h3))
	}
}

func TestArenaDoubleFree(t *testing.T) {
	a := New[int, uint32](intCmp)
	h, _ := a.Alloc(1)
	if err := a.Free(h); err != nil {
		t.Fatalf("Free: %v", err)
	}
	if err := a.Free(h); err != ErrDoubleFree {
		t.Fatalf("second Free returned %v, want ErrDoubleFree", err)
	}
}

func TestArenaUnknownHandle(t *testing.T) {
	a := New[int, uint32](intCmp)
	if err := a.Free(0); err != ErrUnknownHandle {
		t.Fatalf("Free(0) = %v, want ErrUnknownHandle", err)
	}
	if err := a.Free(99); err != ErrUnknownHandle {
		t.Fatalf("Free(99) = %v, want ErrUnknownHandle", err)
	}
}

func TestArenaBuild(t *testing.T) {
	a := New[int, uint32](intCmp)
	handles := make([]uint32, 50)
	for i := range handles {
		h, _ := a.Alloc(i)
		handles[i] = h
	}

	tree, ok := avl.Build[uint32, int, *Arena[int, uint32]](a, handles)
	if !ok {
		t.Fatalf("Build reported failure")
	}
	for i := range handles {
		if tree.Search(i, avl.Equal) != handles[i] {
			t.Fatalf("Search(%d) after Build did not find the expected handle", i)
		}
	}
}
