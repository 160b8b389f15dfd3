// Package cache puts a point-lookup cache in front of an avl.Tree, the
// way the teacher's Maps package sits in front of its own trees and maps
// as a faster path for repeat lookups of the same key. A miss falls
// through to Tree.Search and backfills the cache; nothing here ever
// becomes the source of truth for what's in the tree.
package cache

import (
	"github.com/alphadose/haxmap"

	"github.com/twostay/avlcore/avl"
)

// Hashable is the set of key types haxmap.Map can hash directly.
type Hashable interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 | uintptr |
		float32 | float64 | string | complex64 | complex128
}

// Lookup caches Tree.Search(k, avl.Equal) results for a tree backed by
// abs. It does not cache misses, and it does not invalidate itself on
// Insert/Remove/Subst — callers that mutate the underlying tree must call
// Forget for any key whose handle changed or was removed.
type Lookup[H comparable, K Hashable, A avl.Abstractor[H, K]] struct {
	tree *avl.Tree[H, K, A]
	hot  *haxmap.Map[K, H]
}

// New wraps tree with a haxmap-backed lookup cache.
func New[H comparable, K Hashable, A avl.Abstractor[H, K]](tree *avl.Tree[H, K, A]) *Lookup[H, K, A] {
	return &Lookup[H, K, A]{tree: tree, hot: haxmap.New[K, H]()}
}

// Get returns the handle for k, serving from cache when possible. The
// null handle (and no cache entry) results from either a genuine miss or
// a read error on the underlying abstractor; callers that care about the
// difference should check Tree.ReadError after a null result.
func (l *Lookup[H, K, A]) Get(k K) H {
	if h, ok := l.hot.Get(k); ok {
		return h
	}
	h := l.tree.Search(k, avl.Equal)
	if h != l.tree.Abstractor().Null() {
		l.hot.Set(k, h)
	}
	return h
}

// Remember records that k maps to h, without consulting the tree. Use
// this right after an Insert to avoid a redundant Search on first lookup.
func (l *Lookup[H, K, A]) Remember(k K, h H) { l.hot.Set(k, h) }

// Forget evicts k from the cache. Call this after Remove or Subst(k)
// changes what the tree considers k's handle to be.
func (l *Lookup[H, K, A]) Forget(k K) { l.hot.Del(k) }

// Len returns the number of entries currently cached.
func (l *Lookup[H, K, A]) Len() uintptr { return l.hot.Len() }
