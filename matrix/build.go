package matrix

import (
	"fmt"

	"github.com/katalvlaran/burrsolve/cache"
	"github.com/katalvlaran/burrsolve/node"
	"github.com/katalvlaran/burrsolve/voxel"
)

// Build computes every off-diagonal entry of a fresh Matrix for n
// directly from the node's current piece positions and orientations,
// via c. shapes must be indexed by piece and give each piece's geometry
// (many pieces may share a *voxel.Shape).
//
// For the ordered pair (i, j), the entry answers "how far may piece i
// slide positively before colliding with piece j alone": piece j is
// treated as the fixed reference shape and piece i as the shape probed
// for positive movement, which is the mirror image of how
// cache.Cache.Query names its arguments (Query always answers for its
// second shape relative to its first).
func Build(n *node.SearchNode, shapes []*voxel.Shape, c *cache.Cache) (*Matrix, error) {
	count := n.PieceCount()
	if len(shapes) != count {
		return nil, fmt.Errorf("%w: node has %d pieces, shapes has %d", ErrPieceCountMismatch, count, len(shapes))
	}

	m := New(count)
	for i := 0; i < count; i++ {
		for j := 0; j < count; j++ {
			if i == j {
				continue
			}
			offset := n.Position(i).Sub(n.Position(j))
			gap := c.Query(offset.X, offset.Y, offset.Z, n.Orientation(j), n.Orientation(i), shapes[j], shapes[i])
			m.set(voxel.AxisX, i, j, gap.X)
			m.set(voxel.AxisY, i, j, gap.Y)
			m.set(voxel.AxisZ, i, j, gap.Z)
		}
	}
	return m, nil
}
