package cache_test

import (
	"testing"

	"github.com/katalvlaran/burrsolve/cache"
	"github.com/katalvlaran/burrsolve/voxel"
)

func unitCube() *voxel.Shape {
	return voxel.NewShape([]voxel.Position{{X: 0, Y: 0, Z: 0}})
}

// TestQuery_AdjacentCubes places two unit cubes touching along X with j
// directly to the left of i, so j cannot move positive at all: the gap
// along X is 0. (With j to the right of i instead, the column rule
// applies no constraint and the gap would be infinite.)
func TestQuery_AdjacentCubes(t *testing.T) {
	c := cache.New()
	i := unitCube()
	j := unitCube()

	// j sits one unit to the left of i (dx = -1 relative offset means
	// j's origin is at x=-1 when i's is at x=0). Moving j positive by 1
	// collides with i.
	g := c.Query(-1, 0, 0, 0, 0, i, j)
	if g.X != 0 {
		t.Fatalf("gap.X = %d; want 0 (touching cubes can move 0 before colliding)", g.X)
	}
}

// TestQuery_SeparatedCubesHaveGap checks that a one-unit empty gap
// between cubes along X reports a gap of exactly 1.
func TestQuery_SeparatedCubesHaveGap(t *testing.T) {
	c := cache.New()
	i := unitCube()
	j := unitCube()

	g := c.Query(-2, 0, 0, 0, 0, i, j)
	if g.X != 1 {
		t.Fatalf("gap.X = %d; want 1", g.X)
	}
}

// TestQuery_NoColumnOverlapIsInfinite checks that shapes sharing no
// column along an axis report voxel.InfinityDistance for that axis.
func TestQuery_NoColumnOverlapIsInfinite(t *testing.T) {
	c := cache.New()
	i := unitCube()
	j := unitCube()

	// j is offset far away in Y and Z, so no column along X is shared.
	g := c.Query(-1, 5, 5, 0, 0, i, j)
	if g.X != voxel.InfinityDistance {
		t.Fatalf("gap.X = %d; want InfinityDistance", g.X)
	}
}

// TestQuery_Memoizes checks that repeated identical queries only grow
// the cache by one entry.
func TestQuery_Memoizes(t *testing.T) {
	c := cache.New()
	i, j := unitCube(), unitCube()

	c.Query(-1, 0, 0, 0, 0, i, j)
	c.Query(-1, 0, 0, 0, 0, i, j)

	if c.Len() != 1 {
		t.Fatalf("Len() = %d; want 1", c.Len())
	}
}
