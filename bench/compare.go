// Package bench runs the same insert/search/delete workload against
// avl.Tree and a handful of real third-party ordered structures, the way
// the teacher's Maps/comparisons package benchmarks its own maps against
// haxmap and cornelk/hashmap. It exists to show avl.Tree's numbers next
// to structures people already trust, not to declare a winner.
package bench

import (
	"math/rand"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"

	"github.com/twostay/avlcore/avl"
)

// intItem adapts int to the Less(than Item) bool shape google/btree wants
// from its Item type.
type intItem int

func (a intItem) Less(than btree.Item) bool { return a < than.(intItem) }

// llrbItem exists separately from intItem because llrb.Item and
// btree.Item are structurally identical but distinct named interfaces;
// Go won't let one method double as both.
type llrbItem int

func (a llrbItem) Less(than llrb.Item) bool { return a < than.(llrbItem) }

type avlNode struct {
	key           int
	less, greater *avlNode
	bf            int8
}

type avlNodeAbs struct{}

func (avlNodeAbs) Null() *avlNode                              { return nil }
func (avlNodeAbs) GetLess(h *avlNode, access bool) *avlNode    { return h.less }
func (avlNodeAbs) GetGreater(h *avlNode, access bool) *avlNode { return h.greater }
func (avlNodeAbs) SetLess(h, child *avlNode)                   { h.less = child }
func (avlNodeAbs) SetGreater(h, child *avlNode)                { h.greater = child }
func (avlNodeAbs) GetBalanceFactor(h *avlNode) int8            { return h.bf }
func (avlNodeAbs) SetBalanceFactor(h *avlNode, bf int8)        { h.bf = bf }
func (avlNodeAbs) CompareKeyNode(k int, h *avlNode) int        { return k - h.key }
func (avlNodeAbs) CompareNodeNode(h1, h2 *avlNode) int         { return h1.key - h2.key }
func (avlNodeAbs) ReadError() bool                             { return false }

// Plan describes one comparison run: N distinct keys drawn from
// [0, KeyRange), inserted into every structure, then searched for and
// finally deleted, with Counters recording what avl.Tree itself did
// along the way.
type Plan struct {
	N           int
	KeyRange    int
	BTreeDegree int
	Seed        int64
}

// Result holds the wall-clock-free counts collected for one structure:
// every structure runs the identical key sequence, so comparing these
// counts is comparing algorithms, not machines.
type Result struct {
	Name     string
	Inserted int
	Found    int
	Deleted  int
}

// keys returns Plan.N distinct ints in [0, Plan.KeyRange), in insertion
// order, deterministic for a given Seed.
func (p Plan) keys() []int {
	rg := rand.New(rand.NewSource(p.Seed))
	seen := make(map[int]bool, p.N)
	out := make([]int, 0, p.N)
	for len(out) < p.N {
		k := rg.Intn(p.KeyRange)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// RunAVL drives avl.Tree through Plan's workload and returns both the
// Result and the Counters, whose Nodes gauge tracks the tree's node count
// as keys are inserted and removed.
func RunAVL(p Plan) (Result, *Counters) {
	keys := p.keys()
	c := NewCounters()
	tree := avl.New[*avlNode, int, avlNodeAbs](avlNodeAbs{})

	r := Result{Name: "avl.Tree"}
	for _, k := range keys {
		if tree.Insert(&avlNode{key: k}) != nil {
			r.Inserted++
			c.Nodes.Inc()
		}
	}
	for _, k := range keys {
		if tree.Search(k, avl.Equal) != nil {
			r.Found++
		}
	}
	for _, k := range keys {
		if tree.Remove(k) != nil {
			r.Deleted++
			c.Nodes.Dec()
		}
	}
	return r, c
}

// RunBTree drives google/btree through the identical workload.
func RunBTree(p Plan) Result {
	keys := p.keys()
	degree := p.BTreeDegree
	if degree < 2 {
		degree = 32
	}
	t := btree.New(degree)

	r := Result{Name: "google/btree"}
	for _, k := range keys {
		if t.ReplaceOrInsert(intItem(k)) == nil {
			r.Inserted++
		}
	}
	for _, k := range keys {
		if t.Get(intItem(k)) != nil {
			r.Found++
		}
	}
	for _, k := range keys {
		if t.Delete(intItem(k)) != nil {
			r.Deleted++
		}
	}
	return r
}

// RunLLRB drives petar/GoLLRB through the identical workload.
func RunLLRB(p Plan) Result {
	keys := p.keys()
	t := llrb.New()

	r := Result{Name: "petar/GoLLRB"}
	for _, k := range keys {
		if t.ReplaceOrInsert(llrbItem(k)) == nil {
			r.Inserted++
		}
	}
	for _, k := range keys {
		if t.Get(llrbItem(k)) != nil {
			r.Found++
		}
	}
	for _, k := range keys {
		if t.Delete(llrbItem(k)) != nil {
			r.Deleted++
		}
	}
	return r
}

// RunRedBlack drives emirpasic/gods' red-black tree through the
// identical workload.
func RunRedBlack(p Plan) Result {
	keys := p.keys()
	t := redblacktree.NewWith(utils.IntComparator)

	r := Result{Name: "gods/redblacktree"}
	for _, k := range keys {
		_, existed := t.Get(k)
		t.Put(k, k)
		if !existed {
			r.Inserted++
		}
	}
	for _, k := range keys {
		if _, found := t.Get(k); found {
			r.Found++
		}
	}
	for _, k := range keys {
		if _, found := t.Get(k); found {
			t.Remove(k)
			r.Deleted++
		}
	}
	return r
}

// RunAll runs every comparison structure over the same Plan and returns
// one Result per structure, avl.Tree first.
func RunAll(p Plan) ([]Result, *Counters) {
	avlResult, counters := RunAVL(p)
	return []Result{
		avlResult,
		RunBTree(p),
		RunLLRB(p),
		RunRedBlack(p),
	}, counters
}
