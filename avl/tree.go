package avl

// Tree is an AVL tree whose nodes live wherever abs says they live. The
// zero value, once its Abstractor is assigned via New, is an empty tree.
//
// A Tree is not safe for concurrent use; a Tree value must not be copied
// after it has been used (it holds only the root handle and abs, but copying
// it would let two Trees observe each other's structural mutations through
// the shared abstractor without either knowing).
type Tree[H comparable, K any, A Abstractor[H, K]] struct {
	root H
	abs  A
}

// New returns an empty Tree backed by abs.
func New[H comparable, K any, A Abstractor[H, K]](abs A) *Tree[H, K, A] {
	return &Tree[H, K, A]{root: abs.Null(), abs: abs}
}

// Abstractor returns the storage abstractor this Tree was built with.
func (t *Tree[H, K, A]) Abstractor() A { return t.abs }

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[H, K, A]) IsEmpty() bool { return t.root == t.abs.Null() }

// ReadError forwards the abstractor's latched read-error flag.
func (t *Tree[H, K, A]) ReadError() bool { return t.abs.ReadError() }

// Purge resets the tree to empty without traversing it. The consumer is
// responsible for reclaiming any nodes that were reachable from the old
// root.
func (t *Tree[H, K, A]) Purge() { t.root = t.abs.Null() }

// Root returns the current root handle, or the null handle if the tree is
// empty.
func (t *Tree[H, K, A]) Root() H { return t.root }

func (t *Tree[H, K, A]) getLess(h H, access bool) H    { return t.abs.GetLess(h, access) }
func (t *Tree[H, K, A]) getGreater(h H, access bool) H { return t.abs.GetGreater(h, access) }

// Search returns the handle matching k under mode, or the null handle if
// no node qualifies (including on a read error).
func (t *Tree[H, K, A]) Search(k K, mode Mode) H {
	var targetCmp int
	switch {
	case mode&Less != 0:
		targetCmp = 1
	case mode&Greater != 0:
		targetCmp = -1
	default:
		targetCmp = 0
	}

	null := t.abs.Null()
	match := null
	h := t.root
	for h != null {
		cmp := t.abs.CompareKeyNode(k, h)
		if cmp == 0 {
			if mode&Equal != 0 {
				match = h
				break
			}
			cmp = -targetCmp
		} else if targetCmp != 0 && (cmp < 0) == (targetCmp < 0) {
			// cmp and targetCmp have the same sign.
			match = h
		}
		if cmp < 0 {
			h = t.getLess(h, true)
		} else {
			h = t.getGreater(h, true)
		}
		if t.abs.ReadError() {
			return null
		}
	}
	return match
}

// SearchLeast returns the handle with the smallest key, or null if the
// tree is empty or a read error occurs.
func (t *Tree[H, K, A]) SearchLeast() H {
	null := t.abs.Null()
	h, parent := t.root, null
	for h != null {
		parent = h
		h = t.getLess(h, true)
		if t.abs.ReadError() {
			return null
		}
	}
	return parent
}

// SearchGreatest returns the handle with the largest key, or null if the
// tree is empty or a read error occurs.
func (t *Tree[H, K, A]) SearchGreatest() H {
	null := t.abs.Null()
	h, parent := t.root, null
	for h != null {
		parent = h
		h = t.getGreater(h, true)
		if t.abs.ReadError() {
			return null
		}
	}
	return parent
}

// Insert adds h to the tree. h must be a non-null handle not already
// present in the tree; Insert initializes its links to null and its
// balance factor to 0. If a node with the same key already exists, Insert
// returns that node unchanged and h is not linked in. Returns the null
// handle on a read error.
func (t *Tree[H, K, A]) Insert(h H) H {
	null := t.abs.Null()
	t.abs.SetLess(h, null)
	t.abs.SetGreater(h, null)
	t.abs.SetBalanceFactor(h, 0)

	if t.root == null {
		t.root = h
		return h
	}

	var branch Bits

	var unbal, parentUnbal H = null, null
	var unbalBF int
	depth, unbalDepth := 0, 0

	hh := t.root
	parent := null
	var cmp int

	for {
		if t.abs.GetBalanceFactor(hh) != 0 {
			unbal = hh
			parentUnbal = parent
			unbalDepth = depth
		}
		cmp = t.abs.CompareNodeNode(h, hh)
		if cmp == 0 {
			// Duplicate key: return the existing node, h stays detached.
			return hh
		}
		parent = hh
		if cmp < 0 {
			hh = t.getLess(hh, true)
		} else {
			hh = t.getGreater(hh, true)
		}
		if t.abs.ReadError() {
			return null
		}
		branch.Set(depth, cmp > 0)
		depth++
		if hh == null {
			break
		}
	}

	if cmp < 0 {
		t.abs.SetLess(parent, h)
	} else {
		t.abs.SetGreater(parent, h)
	}

	depth = unbalDepth
	if unbal == null {
		hh = t.root
	} else {
		if branch.Get(depth) {
			cmp = 1
		} else {
			cmp = -1
		}
		depth++
		unbalBF = int(t.abs.GetBalanceFactor(unbal))
		if cmp < 0 {
			unbalBF--
		} else {
			unbalBF++
		}
		if cmp < 0 {
			hh = t.getLess(unbal, true)
		} else {
			hh = t.getGreater(unbal, true)
		}
		if t.abs.ReadError() {
			return null
		}
		if unbalBF != -2 && unbalBF != 2 {
			t.abs.SetBalanceFactor(unbal, int8(unbalBF))
			unbal = null
		}
	}

	if hh != null {
		for h != hh {
			if branch.Get(depth) {
				cmp = 1
			} else {
				cmp = -1
			}
			depth++
			if cmp < 0 {
				t.abs.SetBalanceFactor(hh, -1)
				hh = t.getLess(hh, true)
			} else {
				t.abs.SetBalanceFactor(hh, 1)
				hh = t.getGreater(hh, true)
			}
			if t.abs.ReadError() {
				return null
			}
		}
	}

	if unbal != null {
		unbal = t.balance(unbal)
		if t.abs.ReadError() {
			return null
		}
		if parentUnbal == null {
			t.root = unbal
		} else {
			depth = unbalDepth - 1
			if branch.Get(depth) {
				t.abs.SetGreater(parentUnbal, unbal)
			} else {
				t.abs.SetLess(parentUnbal, unbal)
			}
		}
	}

	return h
}

// Remove deletes the node with key k and returns its handle, or the null
// handle if no such node exists (or on a read error).
func (t *Tree[H, K, A]) Remove(k K) H {
	null := t.abs.Null()

	var branch Bits
	depth := 0

	h := t.root
	parent := null
	var cmp, cmpShortenedSubWithPath int

	for {
		if h == null {
			return null
		}
		cmp = t.abs.CompareKeyNode(k, h)
		if cmp == 0 {
			break
		}
		parent = h
		if cmp < 0 {
			h = t.getLess(h, true)
		} else {
			h = t.getGreater(h, true)
		}
		if t.abs.ReadError() {
			return null
		}
		branch.Set(depth, cmp > 0)
		depth++
		cmpShortenedSubWithPath = cmp
	}

	rm := h
	parentRM := parent
	rmDepth := depth

	var child H
	if t.abs.GetBalanceFactor(h) < 0 {
		child = t.getLess(h, true)
		branch.Set(depth, false)
		cmp = -1
	} else {
		child = t.getGreater(h, true)
		branch.Set(depth, true)
		cmp = 1
	}
	if t.abs.ReadError() {
		return null
	}
	depth++

	if child != null {
		cmp = -cmp
		for {
			parent = h
			h = child
			if cmp < 0 {
				child = t.getLess(h, true)
				branch.Set(depth, false)
			} else {
				child = t.getGreater(h, true)
				branch.Set(depth, true)
			}
			if t.abs.ReadError() {
				return null
			}
			depth++
			if child == null {
				break
			}
		}

		if parent == rm {
			cmpShortenedSubWithPath = -cmp
		} else {
			cmpShortenedSubWithPath = cmp
		}

		if cmp > 0 {
			child = t.getLess(h, false)
		} else {
			child = t.getGreater(h, false)
		}
	}

	if parent == null {
		t.root = child
	} else if cmpShortenedSubWithPath < 0 {
		t.abs.SetLess(parent, child)
	} else {
		t.abs.SetGreater(parent, child)
	}

	var path H
	if parent == rm {
		path = h
	} else {
		path = parent
	}

	if h != rm {
		t.abs.SetLess(h, t.getLess(rm, false))
		t.abs.SetGreater(h, t.getGreater(rm, false))
		t.abs.SetBalanceFactor(h, t.abs.GetBalanceFactor(rm))
		if parentRM == null {
			t.root = h
		} else {
			if branch.Get(rmDepth - 1) {
				t.abs.SetGreater(parentRM, h)
			} else {
				t.abs.SetLess(parentRM, h)
			}
		}
	}

	if path != null {
		// Re-thread the path from the root down to path as a linked list
		// (parent -> child becomes child -> parent), so the climb back up
		// can rebalance without parent pointers.
		h = t.root
		parent = null
		depth = 0
		for h != path {
			var next H
			if branch.Get(depth) {
				next = t.getGreater(h, true)
				t.abs.SetGreater(h, parent)
			} else {
				next = t.getLess(h, true)
				t.abs.SetLess(h, parent)
			}
			if t.abs.ReadError() {
				return null
			}
			depth++
			parent = h
			h = next
		}

		reducedDepth := true
		var bf int
		cmp = cmpShortenedSubWithPath
		for {
			if reducedDepth {
				bf = int(t.abs.GetBalanceFactor(h))
				if cmp < 0 {
					bf++
				} else {
					bf--
				}
				if bf == -2 || bf == 2 {
					h = t.balance(h)
					if t.abs.ReadError() {
						return null
					}
					bf = int(t.abs.GetBalanceFactor(h))
				} else {
					t.abs.SetBalanceFactor(h, int8(bf))
				}
				reducedDepth = bf == 0
			}
			if parent == null {
				break
			}
			child = h
			h = parent
			depth--
			if branch.Get(depth) {
				cmp = 1
			} else {
				cmp = -1
			}
			var next H
			if cmp < 0 {
				next = t.getLess(h, true)
				t.abs.SetLess(h, child)
			} else {
				next = t.getGreater(h, true)
				t.abs.SetGreater(h, child)
			}
			if t.abs.ReadError() {
				return null
			}
			parent = next
		}
		t.root = h
	}

	return rm
}

// Subst replaces the node in the tree with the same key as newNode with
// newNode itself, copying over the tree-internal links and balance
// factor. Returns the displaced handle, or null if no node with that key
// exists (newNode is left untouched in that case).
func (t *Tree[H, K, A]) Subst(newNode H) H {
	null := t.abs.Null()

	h := t.root
	parent := null
	var lastCmp int

	for {
		if h == null {
			return null
		}
		cmp := t.abs.CompareNodeNode(newNode, h)
		if cmp == 0 {
			break
		}
		lastCmp = cmp
		parent = h
		if cmp < 0 {
			h = t.getLess(h, true)
		} else {
			h = t.getGreater(h, true)
		}
		if t.abs.ReadError() {
			return null
		}
	}

	t.abs.SetLess(newNode, t.getLess(h, false))
	t.abs.SetGreater(newNode, t.getGreater(h, false))
	t.abs.SetBalanceFactor(newNode, t.abs.GetBalanceFactor(h))

	if parent == null {
		t.root = newNode
	} else if lastCmp < 0 {
		t.abs.SetLess(parent, newNode)
	} else {
		t.abs.SetGreater(parent, newNode)
	}

	return h
}
