package avl

// Build constructs a Tree from nodes in Θ(n) time, given that nodes is
// already sorted by key and contains no duplicate keys. It never compares
// two keys; the caller is trusted to have sorted nodes correctly. Each
// subtree of n nodes puts (n-1)/2 nodes (rounded down) on its less side and
// the rest on its greater side, so every balance factor is 0 or +1. This
// is in general not the shape that inserting the same nodes one at a time
// would produce.
//
// Build does not allocate storage for the nodes themselves, same as
// Insert: it only writes the child links and balance factor through abs.
// Returns false if a read error occurred partway through; the returned
// Tree's root is only meaningful when Build also returns true.
func Build[H comparable, K any, A Abstractor[H, K]](abs A, nodes []H) (*Tree[H, K, A], bool) {
	null := abs.Null()
	t := &Tree[H, K, A]{abs: abs, root: null}

	numNodes := len(nodes)
	if numNodes == 0 {
		return t, true
	}

	// branch[d] records whether the subtree built at depth d is the less
	// or greater child of its parent; rem[d] records whether that
	// subtree's greater half got the extra node when splitting an odd
	// count.
	var branch, rem Bits
	depth := 0
	numSub := numNodes

	// less_parent threads a stack of nodes whose less subtree is done but
	// whose greater subtree isn't, through their own greater links.
	lessParent := null

	var h, child H
	p := 0

	for {
		for numSub > 2 {
			numSub--
			rem.Set(depth, numSub&1 != 0)
			branch.Set(depth, false)
			depth++
			numSub >>= 1
		}

		if numSub == 2 {
			h = nodes[p]
			p++
			child = nodes[p]
			p++
			abs.SetLess(child, null)
			abs.SetGreater(child, null)
			abs.SetBalanceFactor(child, 0)
			abs.SetGreater(h, child)
			abs.SetLess(h, null)
			abs.SetBalanceFactor(h, 1)
		} else { // numSub == 1
			h = nodes[p]
			p++
			abs.SetLess(h, null)
			abs.SetGreater(h, null)
			abs.SetBalanceFactor(h, 0)
		}

		for depth != 0 {
			depth--
			if !branch.Get(depth) {
				// Completed a less subtree; it attaches to whatever
				// comes next in the outer loop.
				break
			}

			// Completed a greater subtree: pop its parent off the
			// less-parent stack and attach it.
			child = h
			h = lessParent
			lessParent = abs.GetGreater(h, true)
			if abs.ReadError() {
				return t, false
			}
			abs.SetGreater(h, child)

			numSub <<= 1
			if !rem.Get(depth) {
				numSub++
			}
			if numSub&(numSub-1) != 0 {
				abs.SetBalanceFactor(h, 0)
			} else {
				abs.SetBalanceFactor(h, 1)
			}
		}

		if numSub == numNodes {
			break
		}

		// The subtree just completed is the less subtree of the next
		// node in the sequence.
		child = h
		h = nodes[p]
		p++
		abs.SetLess(h, child)

		abs.SetGreater(h, lessParent)
		lessParent = h

		branch.Set(depth, true)
		if rem.Get(depth) {
			numSub++
		}
		depth++
	}

	t.root = h
	return t, true
}
