package node_test

import (
	"testing"

	"github.com/katalvlaran/burrsolve/node"
	"github.com/katalvlaran/burrsolve/voxel"
)

func makeNode(positions []voxel.Position) *node.SearchNode {
	n := node.New(len(positions), nil)
	for i, p := range positions {
		n.Set(i, p, 0)
	}
	return n
}

// TestSearchNode_TranslationInvariance verifies the universal invariant
// from spec.md §8: translating every piece by the same amount leaves
// Hash and Equal unchanged.
func TestSearchNode_TranslationInvariance(t *testing.T) {
	a := makeNode([]voxel.Position{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	shift := voxel.Position{X: 100, Y: -50, Z: 7}
	b := makeNode([]voxel.Position{
		voxel.Position{X: 0, Y: 0, Z: 0}.Add(shift),
		voxel.Position{X: 1, Y: 0, Z: 0}.Add(shift),
		voxel.Position{X: 0, Y: 1, Z: 0}.Add(shift),
	})

	if a.Hash() != b.Hash() {
		t.Fatalf("Hash mismatch after translation: %d vs %d", a.Hash(), b.Hash())
	}
	if !a.Equal(b) {
		t.Fatal("Equal() = false after pure translation")
	}
}

// TestSearchNode_OrientationAffectsEquality documents the deliberate
// divergence from the legacy source recorded in SPEC_FULL.md §13:
// orientation participates in equality here.
func TestSearchNode_OrientationAffectsEquality(t *testing.T) {
	a := node.New(2, nil)
	a.Set(0, voxel.Position{}, 0)
	a.Set(1, voxel.Position{X: 1}, 0)

	b := node.New(2, nil)
	b.Set(0, voxel.Position{}, 0)
	b.Set(1, voxel.Position{X: 1}, 1)

	if a.Equal(b) {
		t.Fatal("Equal() = true for nodes differing only in orientation")
	}
}

// TestSearchNode_DistinctConfigurationsDiffer sanity-checks that
// genuinely different relative configurations are unequal.
func TestSearchNode_DistinctConfigurationsDiffer(t *testing.T) {
	a := makeNode([]voxel.Position{{0, 0, 0}, {1, 0, 0}})
	b := makeNode([]voxel.Position{{0, 0, 0}, {2, 0, 0}})

	if a.Equal(b) {
		t.Fatal("Equal() = true for distinct configurations")
	}
}

// TestSearchNode_RefcountCascade checks that destroying a chain of
// nodes via Decref cascades through comefrom links.
func TestSearchNode_RefcountCascade(t *testing.T) {
	root := node.New(1, nil)
	mid := node.New(1, root)
	leaf := node.New(1, mid)

	if root.Refcount() != 2 { // 1 self + 1 from mid's comefrom link
		t.Fatalf("root.Refcount() = %d; want 2", root.Refcount())
	}

	leaf.Decref() // leaf -> 0, cascades to mid
	if mid.Refcount() != 1 {
		t.Fatalf("mid.Refcount() = %d; want 1 after leaf decref", mid.Refcount())
	}

	mid.Decref() // mid -> 0, cascades to root
	if root.Refcount() != 1 {
		t.Fatalf("root.Refcount() = %d; want 1 after mid decref", root.Refcount())
	}
}

// TestSearchNode_DecrefUnderflowPanics checks the invariant-violation
// contract from spec.md §7: decref below zero panics rather than
// silently corrupting state.
func TestSearchNode_DecrefUnderflowPanics(t *testing.T) {
	n := node.New(1, nil)
	n.Decref() // refcount 1 -> 0, fine

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on refcount underflow")
		}
	}()
	n.Decref()
}

// TestSearchNode_IsSeparating checks removed-piece detection.
func TestSearchNode_IsSeparating(t *testing.T) {
	n := makeNode([]voxel.Position{{0, 0, 0}, {voxel.RemovedMagnitude + 1, 0, 0}})
	if !n.IsSeparating() {
		t.Fatal("expected separating node")
	}

	m := makeNode([]voxel.Position{{0, 0, 0}, {1, 0, 0}})
	if m.IsSeparating() {
		t.Fatal("expected non-separating node")
	}
}
