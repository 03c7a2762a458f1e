package matrix_test

import (
	"testing"

	"github.com/katalvlaran/burrsolve/cache"
	"github.com/katalvlaran/burrsolve/matrix"
	"github.com/katalvlaran/burrsolve/node"
	"github.com/katalvlaran/burrsolve/voxel"
)

func unitCube() *voxel.Shape {
	return voxel.NewShape([]voxel.Position{{0, 0, 0}})
}

// TestMatrix_DiagonalIsZero checks the universal invariant from spec.md
// §8: a fresh or closed matrix always has zero on its diagonal.
func TestMatrix_DiagonalIsZero(t *testing.T) {
	m := matrix.New(4)
	for axis := voxel.Axis(0); axis < 3; axis++ {
		for i := 0; i < 4; i++ {
			if got := m.Get(axis, i, i); got != 0 {
				t.Fatalf("axis %d: Get(%d,%d) = %d; want 0", axis, i, i, got)
			}
		}
	}
}

// TestMatrix_BuildFillsDirectPairs checks that Build fills both ordered
// entries of a pair from the cache with the direction-correct gap.
func TestMatrix_BuildFillsDirectPairs(t *testing.T) {
	shapes := []*voxel.Shape{unitCube(), unitCube(), unitCube()}
	n := node.New(3, nil)
	n.Set(0, voxel.Position{X: 0}, 0)
	n.Set(1, voxel.Position{X: 5}, 0)
	n.Set(2, voxel.Position{X: 10}, 0)

	c := cache.New()
	m, err := matrix.Build(n, shapes, c)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if got := m.Get(voxel.AxisX, 0, 1); got != 4 {
		t.Fatalf("Get(X,0,1) = %d; want 4 (piece 0 is left of piece 1: gap of 5 minus the unit cube width)", got)
	}
	if got := m.Get(voxel.AxisX, 1, 0); got != voxel.InfinityDistance {
		t.Fatalf("Get(X,1,0) = %d; want InfinityDistance (piece 1 is right of piece 0, sliding positive never approaches it)", got)
	}
}

// TestMatrix_BuildRejectsMismatchedShapeCount checks the error path.
func TestMatrix_BuildRejectsMismatchedShapeCount(t *testing.T) {
	n := node.New(2, nil)
	_, err := matrix.Build(n, []*voxel.Shape{unitCube()}, cache.New())
	if err == nil {
		t.Fatal("expected error for mismatched shape count")
	}
}

// TestMatrix_CloseSatisfiesTriangleInequality builds a three-piece
// chain where the direct pairwise query between the endpoints is looser
// than the path through the middle piece, and checks Close tightens it.
func TestMatrix_CloseSatisfiesTriangleInequality(t *testing.T) {
	m := matrix.New(3)
	// Manually seed values that violate the triangle inequality, as if
	// built from geometry that only sees pairs directly: 0->1 is 3,
	// 1->2 is 3, but 0->2 was computed as an uninformative 100 because
	// piece 1 was not accounted for. Close must bring it down to <= 6.
	for axis := voxel.Axis(0); axis < 3; axis++ {
		setForTest(m, axis, 0, 1, 3)
		setForTest(m, axis, 1, 2, 3)
		setForTest(m, axis, 0, 2, 100)
	}
	m.Close()

	for axis := voxel.Axis(0); axis < 3; axis++ {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				for k := 0; k < 3; k++ {
					if m.Get(axis, i, k) > m.Get(axis, i, j)+m.Get(axis, j, k) {
						t.Fatalf("axis %d: triangle inequality violated at i=%d j=%d k=%d", axis, i, j, k)
					}
				}
			}
		}
	}
	if got := m.Get(voxel.AxisX, 0, 2); got != 6 {
		t.Fatalf("Get(X,0,2) after Close = %d; want 6", got)
	}
}

// TestMatrix_InfinityClampHolds checks that closure never produces a
// value above voxel.InfinityDistance even when summing two
// near-infinite entries.
func TestMatrix_InfinityClampHolds(t *testing.T) {
	m := matrix.New(3)
	for axis := voxel.Axis(0); axis < 3; axis++ {
		setForTest(m, axis, 0, 1, voxel.InfinityDistance)
		setForTest(m, axis, 1, 2, voxel.InfinityDistance)
	}
	m.Close()

	if got := m.Get(voxel.AxisX, 0, 2); got != voxel.InfinityDistance {
		t.Fatalf("Get(X,0,2) = %d; want InfinityDistance clamp", got)
	}
}

// setForTest seeds an arbitrary entry via the export_test.go seam, since
// Build alone cannot produce the deliberately inconsistent values this
// test needs to exercise Close.
func setForTest(m *matrix.Matrix, axis voxel.Axis, i, j, v int) {
	matrix.SetForTest(m, axis, i, j, v)
}
