package node_test

import (
	"testing"

	"github.com/katalvlaran/burrsolve/node"
	"github.com/katalvlaran/burrsolve/voxel"
)

// TestHash_InsertDeduplicates checks that inserting an equal node twice
// reports the second insertion as already-present and does not grow
// Len.
func TestHash_InsertDeduplicates(t *testing.T) {
	h := node.NewHash()
	a := makeNode([]voxel.Position{{0, 0, 0}, {1, 0, 0}})
	b := makeNode([]voxel.Position{{5, 5, 5}, {6, 5, 5}}) // same relative offsets

	if already := h.Insert(a); already {
		t.Fatal("first insert reported already-present")
	}
	if already := h.Insert(b); !already {
		t.Fatal("second insert of an equal node reported not-present")
	}
	if h.Len() != 1 {
		t.Fatalf("Len() = %d; want 1", h.Len())
	}
}

// TestHash_ContainsWithoutInserting checks Contains does not mutate
// the set.
func TestHash_ContainsWithoutInserting(t *testing.T) {
	h := node.NewHash()
	a := makeNode([]voxel.Position{{0, 0, 0}})

	if h.Contains(a) {
		t.Fatal("empty hash reports Contains() = true")
	}
	h.Insert(a)
	if !h.Contains(a) {
		t.Fatal("Contains() = false after Insert")
	}
}

// TestHash_RehashPreservesMembership inserts enough distinct nodes to
// force at least one rehash (initial capacity is 11) and checks every
// inserted node is still found afterward.
func TestHash_RehashPreservesMembership(t *testing.T) {
	h := node.NewHash()
	var nodes []*node.SearchNode
	for i := 0; i < 50; i++ {
		n := makeNode([]voxel.Position{{0, 0, 0}, {i, 0, 0}})
		nodes = append(nodes, n)
		if already := h.Insert(n); already {
			t.Fatalf("unexpected duplicate at i=%d", i)
		}
	}
	for i, n := range nodes {
		if !h.Contains(n) {
			t.Fatalf("node %d lost after rehash", i)
		}
	}
	if h.Len() != 50 {
		t.Fatalf("Len() = %d; want 50", h.Len())
	}
}

// TestHash_ClearDecrefsMembers checks that Clear drops the hash's own
// reference on every member: a root-only node's refcount goes from 2
// (self + membership) back to 1, without panicking.
func TestHash_ClearDecrefsMembers(t *testing.T) {
	h := node.NewHash()
	a := makeNode([]voxel.Position{{0, 0, 0}})
	h.Insert(a)

	if got := a.Refcount(); got != 2 {
		t.Fatalf("Refcount() = %d; want 2 (self + hash membership)", got)
	}

	h.Clear()
	if got := a.Refcount(); got != 1 {
		t.Fatalf("Refcount() = %d; want 1 after Clear", got)
	}
	if h.Len() != 0 {
		t.Fatalf("Len() = %d; want 0 after Clear", h.Len())
	}
}
