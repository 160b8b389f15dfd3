package avl

// Iterator walks a Tree in key order without using parent pointers. It
// keeps the path from the root to the current node on an explicit stack,
// plus a bit per level recording which child link was followed to get to
// the next level down; Next and Prev use that instead of a parent link to
// find their way back up.
//
// An Iterator is tied to the Tree it was made from and is invalidated by
// any mutation of that tree; there is no detection of this, callers must
// not use an Iterator across an Insert/Remove/Subst/Purge.
type Iterator[H comparable, K any, A Abstractor[H, K]] struct {
	t      *Tree[H, K, A]
	path   []H
	branch Bits
	depth  int // number of valid entries in path; -1 means past either end
}

// NewIterator returns an invalid Iterator over t. Call Seek, SeekLeast, or
// SeekGreatest before Handle, Next, or Prev.
func NewIterator[H comparable, K any, A Abstractor[H, K]](t *Tree[H, K, A]) *Iterator[H, K, A] {
	return &Iterator[H, K, A]{t: t, depth: -1}
}

func (it *Iterator[H, K, A]) ensurePath(depth int) {
	if depth < len(it.path) {
		return
	}
	grown := make([]H, depth+1)
	copy(grown, it.path)
	it.path = grown
}

// Valid reports whether the iterator is positioned on a node.
func (it *Iterator[H, K, A]) Valid() bool { return it.depth > 0 }

// Handle returns the handle the iterator is currently positioned on, or
// the null handle if the iterator is not Valid.
func (it *Iterator[H, K, A]) Handle() H {
	if it.depth <= 0 {
		return it.t.abs.Null()
	}
	return it.path[it.depth-1]
}

// ReadError forwards the tree's latched read-error flag.
func (it *Iterator[H, K, A]) ReadError() bool { return it.t.abs.ReadError() }

// Seek positions the iterator on the node Search(k, mode) would return,
// recording the full descent path so Next/Prev can navigate from there.
// The iterator becomes invalid if no node qualifies.
func (it *Iterator[H, K, A]) Seek(k K, mode Mode) {
	t := it.t
	null := t.abs.Null()

	var targetCmp int
	switch {
	case mode&Less != 0:
		targetCmp = 1
	case mode&Greater != 0:
		targetCmp = -1
	default:
		targetCmp = 0
	}

	matchDepth := -1
	depth := 0
	h := t.root
	for h != null {
		it.ensurePath(depth)
		it.path[depth] = h

		cmp := t.abs.CompareKeyNode(k, h)
		exact := false
		if cmp == 0 {
			if mode&Equal != 0 {
				matchDepth = depth
				exact = true
			}
			cmp = -targetCmp
		} else if targetCmp != 0 && (cmp < 0) == (targetCmp < 0) {
			matchDepth = depth
		}

		it.branch.Set(depth, cmp > 0)
		depth++
		if exact {
			break
		}
		if cmp < 0 {
			h = t.abs.GetLess(h, true)
		} else {
			h = t.abs.GetGreater(h, true)
		}
		if t.abs.ReadError() {
			it.depth = -1
			return
		}
	}

	if matchDepth < 0 {
		it.depth = -1
		return
	}
	it.depth = matchDepth + 1
}

// SeekLeast positions the iterator on the smallest key in the tree.
func (it *Iterator[H, K, A]) SeekLeast() {
	t := it.t
	null := t.abs.Null()
	it.branch.ResetAll()

	depth := 0
	h := t.root
	for h != null {
		it.ensurePath(depth)
		it.path[depth] = h
		depth++
		h = t.abs.GetLess(h, true)
		if t.abs.ReadError() {
			it.depth = -1
			return
		}
	}
	if depth == 0 {
		it.depth = -1
		return
	}
	it.depth = depth
}

// SeekGreatest positions the iterator on the largest key in the tree.
func (it *Iterator[H, K, A]) SeekGreatest() {
	t := it.t
	null := t.abs.Null()

	depth := 0
	h := t.root
	for h != null {
		it.ensurePath(depth)
		it.path[depth] = h
		depth++
		h = t.abs.GetGreater(h, true)
		if t.abs.ReadError() {
			it.depth = -1
			return
		}
	}
	if depth == 0 {
		it.depth = -1
		return
	}
	it.branch.ensureCap(depth)
	it.branch.SetAll()
	it.depth = depth
}

// Next advances the iterator to the in-order successor of its current
// node. If the current node holds the greatest key, the iterator becomes
// invalid; calling Next on an invalid iterator is a no-op.
func (it *Iterator[H, K, A]) Next() {
	if it.depth <= 0 {
		return
	}
	t := it.t
	null := t.abs.Null()

	h := it.path[it.depth-1]
	child := t.abs.GetGreater(h, true)
	if t.abs.ReadError() {
		it.depth = -1
		return
	}

	if child != null {
		it.branch.Set(it.depth-1, true)
		depth := it.depth
		it.ensurePath(depth)
		it.path[depth] = child
		depth++
		h = child
		for {
			next := t.abs.GetLess(h, true)
			if t.abs.ReadError() {
				it.depth = -1
				return
			}
			if next == null {
				break
			}
			it.branch.Set(depth-1, false)
			it.ensurePath(depth)
			it.path[depth] = next
			depth++
			h = next
		}
		it.depth = depth
		return
	}

	d := it.depth - 1
	for d > 0 && it.branch.Get(d-1) {
		d--
	}
	d--
	if d < 0 {
		it.depth = -1
	} else {
		it.depth = d + 1
	}
}

// Prev retreats the iterator to the in-order predecessor of its current
// node. If the current node holds the least key, the iterator becomes
// invalid; calling Prev on an invalid iterator is a no-op.
func (it *Iterator[H, K, A]) Prev() {
	if it.depth <= 0 {
		return
	}
	t := it.t
	null := t.abs.Null()

	h := it.path[it.depth-1]
	child := t.abs.GetLess(h, true)
	if t.abs.ReadError() {
		it.depth = -1
		return
	}

	if child != null {
		it.branch.Set(it.depth-1, false)
		depth := it.depth
		it.ensurePath(depth)
		it.path[depth] = child
		depth++
		h = child
		for {
			next := t.abs.GetGreater(h, true)
			if t.abs.ReadError() {
				it.depth = -1
				return
			}
			if next == null {
				break
			}
			it.branch.Set(depth-1, true)
			it.ensurePath(depth)
			it.path[depth] = next
			depth++
			h = next
		}
		it.depth = depth
		return
	}

	d := it.depth - 1
	for d > 0 && !it.branch.Get(d-1) {
		d--
	}
	d--
	if d < 0 {
		it.depth = -1
	} else {
		it.depth = d + 1
	}
}
