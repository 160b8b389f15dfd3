package bench

import "testing"

func testPlan() Plan {
	return Plan{N: 2000, KeyRange: 4000, BTreeDegree: 16, Seed: 1}
}

func TestRunAVLFindsEveryInsertedKey(t *testing.T) {
	p := testPlan()
	r, c := RunAVL(p)
	if r.Inserted != p.N {
		t.Fatalf("Inserted = %d, want %d", r.Inserted, p.N)
	}
	if r.Found != p.N {
		t.Fatalf("Found = %d, want %d", r.Found, p.N)
	}
	if r.Deleted != p.N {
		t.Fatalf("Deleted = %d, want %d", r.Deleted, p.N)
	}
	if got := c.Nodes; got == nil {
		t.Fatalf("RunAVL returned nil Counters.Nodes")
	}
}

func TestComparisonStructuresAgreeWithAVL(t *testing.T) {
	p := testPlan()
	results, _ := RunAll(p)
	want := results[0]
	for _, r := range results[1:] {
		if r.Inserted != want.Inserted || r.Found != want.Found || r.Deleted != want.Deleted {
			t.Errorf("%s = %+v, want counts matching %s = %+v", r.Name, r, want.Name, want)
		}
	}
}
