// Package arena is a reference node store for avl.Tree: a single growable
// slice addressed by index, with freed slots recycled through a linked
// free list instead of handed back to the allocator. It plays the role
// the teacher's Trees/base.go and Trees/cArrTree.go play for their own
// trees — the concrete storage a generic, storage-agnostic tree engine is
// built to be paired with.
package arena

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrArenaFull is returned by Alloc when S's range is exhausted.
var ErrArenaFull = errors.New("arena: capacity exhausted")

// ErrUnknownHandle is returned when a handle is zero or outside the
// arena's current range.
var ErrUnknownHandle = errors.New("arena: unknown handle")

// ErrDoubleFree is returned by Free when the handle is already on the
// free list.
var ErrDoubleFree = errors.New("arena: handle already free")

type node[K any, S constraints.Unsigned] struct {
	key           K
	less, greater S
	bf            int8
	live          bool
}

// Arena stores keyed nodes addressed by S, an unsigned integer handle
// type (uint32 is the usual choice; pick uint16 for small trees to keep
// handles compact, or uint64 for trees with more nodes than uint32 can
// address). Handle 0 is reserved as the null handle; real nodes start at
// index 1.
//
// Arena implements avl.Abstractor[S, K], so *Arena[K, S] can be passed
// directly to avl.New, avl.Build, and their Tree methods.
type Arena[K any, S constraints.Unsigned] struct {
	cmp   func(a, b K) int
	nodes []node[K, S]
	free  S // head of the free list; 0 means empty
}

// New returns an empty Arena that orders keys with cmp, in the convention
// of the teacher's cArrTree: negative if a < b, zero if equal, positive
// if a > b.
func New[K any, S constraints.Unsigned](cmp func(a, b K) int) *Arena[K, S] {
	return &Arena[K, S]{cmp: cmp, nodes: make([]node[K, S], 1)}
}

// Len returns the number of live (allocated, not freed) nodes.
func (a *Arena[K, S]) Len() int {
	n := 0
	for i := 1; i < len(a.nodes); i++ {
		if a.nodes[i].live {
			n++
		}
	}
	return n
}

// Alloc reserves a node for key and returns its handle. The node is not
// linked into any tree; the caller still has to pass the handle to
// Tree.Insert. Alloc recycles the most recently freed handle before
// growing the arena.
func (a *Arena[K, S]) Alloc(key K) (S, error) {
	var h S
	if a.free != 0 {
		h = a.free
		a.free = a.nodes[h].less
	} else {
		next := uint64(len(a.nodes))
		if next > uint64(^S(0)) {
			return 0, ErrArenaFull
		}
		a.nodes = append(a.nodes, node[K, S]{})
		h = S(next)
	}
	a.nodes[h] = node[K, S]{key: key, live: true}
	return h, nil
}

// Free returns h's slot to the free list. The caller must have already
// unlinked h from every tree that held it (typically via Tree.Remove or
// Tree.Subst) before calling Free; Free does not check that.
func (a *Arena[K, S]) Free(h S) error {
	if h == 0 || uint64(h) >= uint64(len(a.nodes)) {
		return ErrUnknownHandle
	}
	if !a.nodes[h].live {
		return ErrDoubleFree
	}
	a.nodes[h] = node[K, S]{less: a.free}
	a.free = h
	return nil
}

// Key returns the key stored at h.
func (a *Arena[K, S]) Key(h S) K {
	return a.nodes[h].key
}

// Valid reports whether h addresses a currently live node.
func (a *Arena[K, S]) Valid(h S) bool {
	return h != 0 && uint64(h) < uint64(len(a.nodes)) && a.nodes[h].live
}

// Null implements avl.Abstractor.
func (a *Arena[K, S]) Null() S { return 0 }

// GetLess implements avl.Abstractor. access is ignored; an in-memory
// slice has nothing to gain from knowing whether the read will be
// followed by a descent.
func (a *Arena[K, S]) GetLess(h S, access bool) S { return a.nodes[h].less }

// GetGreater implements avl.Abstractor.
func (a *Arena[K, S]) GetGreater(h S, access bool) S { return a.nodes[h].greater }

// SetLess implements avl.Abstractor.
func (a *Arena[K, S]) SetLess(h, child S) { a.nodes[h].less = child }

// SetGreater implements avl.Abstractor.
func (a *Arena[K, S]) SetGreater(h, child S) { a.nodes[h].greater = child }

// GetBalanceFactor implements avl.Abstractor.
func (a *Arena[K, S]) GetBalanceFactor(h S) int8 { return a.nodes[h].bf }

// SetBalanceFactor implements avl.Abstractor.
func (a *Arena[K, S]) SetBalanceFactor(h S, bf int8) { a.nodes[h].bf = bf }

// CompareKeyNode implements avl.Abstractor.
func (a *Arena[K, S]) CompareKeyNode(k K, h S) int { return a.cmp(k, a.nodes[h].key) }

// CompareNodeNode implements avl.Abstractor.
func (a *Arena[K, S]) CompareNodeNode(h1, h2 S) int { return a.cmp(a.nodes[h1].key, a.nodes[h2].key) }

// ReadError implements avl.Abstractor. A slice-backed arena has nothing
// that can fail a read; this always returns false.
//
// If a caller somehow does observe avl's ReadError() return true against
// an Arena-backed tree (it can't, short of a bug in avl itself), the
// recovery is still the one avl documents: call Tree.Purge and treat the
// affected handles as leaked rather than trusting their links.
func (a *Arena[K, S]) ReadError() bool { return false }
