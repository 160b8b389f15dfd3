package avl

// balance rebalances the subtree rooted at balH, whose balance factor is
// known to be -2 or +2, and returns the handle of the new subtree root.
//
// Exactly one of balH's two children is two levels deeper than the other
// (that's what makes balH unbalanced); balance picks that child as the
// pivot and performs either a single rotation (the pivot leans the same
// way as balH) or a double rotation (the pivot leans the other way).
func (t *Tree[H, K, A]) balance(balH H) H {
	null := t.abs.Null()

	if t.abs.GetBalanceFactor(balH) > 0 {
		deepH := t.getGreater(balH, true)
		if t.abs.ReadError() {
			return null
		}

		if t.abs.GetBalanceFactor(deepH) < 0 {
			// RL case: double rotation through deepH's less child.
			oldH := balH
			balH = t.getLess(deepH, true)
			if t.abs.ReadError() {
				return null
			}
			t.abs.SetGreater(oldH, t.getLess(balH, false))
			t.abs.SetLess(deepH, t.getGreater(balH, false))
			t.abs.SetLess(balH, oldH)
			t.abs.SetGreater(balH, deepH)

			bf := int(t.abs.GetBalanceFactor(balH))
			if bf != 0 {
				if bf > 0 {
					t.abs.SetBalanceFactor(oldH, -1)
					t.abs.SetBalanceFactor(deepH, 0)
				} else {
					t.abs.SetBalanceFactor(deepH, 1)
					t.abs.SetBalanceFactor(oldH, 0)
				}
				t.abs.SetBalanceFactor(balH, 0)
			} else {
				t.abs.SetBalanceFactor(oldH, 0)
				t.abs.SetBalanceFactor(deepH, 0)
			}
		} else {
			// RR case: single left rotation.
			t.abs.SetGreater(balH, t.getLess(deepH, false))
			t.abs.SetLess(deepH, balH)
			if t.abs.GetBalanceFactor(deepH) == 0 {
				t.abs.SetBalanceFactor(deepH, -1)
				t.abs.SetBalanceFactor(balH, 1)
			} else {
				t.abs.SetBalanceFactor(deepH, 0)
				t.abs.SetBalanceFactor(balH, 0)
			}
			balH = deepH
		}
	} else {
		deepH := t.getLess(balH, true)
		if t.abs.ReadError() {
			return null
		}

		if t.abs.GetBalanceFactor(deepH) > 0 {
			// LR case: double rotation through deepH's greater child.
			oldH := balH
			balH = t.getGreater(deepH, true)
			if t.abs.ReadError() {
				return null
			}
			t.abs.SetLess(oldH, t.getGreater(balH, false))
			t.abs.SetGreater(deepH, t.getLess(balH, false))
			t.abs.SetGreater(balH, oldH)
			t.abs.SetLess(balH, deepH)

			bf := int(t.abs.GetBalanceFactor(balH))
			if bf != 0 {
				if bf < 0 {
					t.abs.SetBalanceFactor(oldH, 1)
					t.abs.SetBalanceFactor(deepH, 0)
				} else {
					t.abs.SetBalanceFactor(deepH, -1)
					t.abs.SetBalanceFactor(oldH, 0)
				}
				t.abs.SetBalanceFactor(balH, 0)
			} else {
				t.abs.SetBalanceFactor(oldH, 0)
				t.abs.SetBalanceFactor(deepH, 0)
			}
		} else {
			// LL case: single right rotation.
			t.abs.SetLess(balH, t.getGreater(deepH, false))
			t.abs.SetGreater(deepH, balH)
			if t.abs.GetBalanceFactor(deepH) == 0 {
				t.abs.SetBalanceFactor(deepH, 1)
				t.abs.SetBalanceFactor(balH, -1)
			} else {
				t.abs.SetBalanceFactor(deepH, 0)
				t.abs.SetBalanceFactor(balH, 0)
			}
			balH = deepH
		}
	}

	return balH
}
