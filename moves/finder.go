package moves

import (
	"github.com/katalvlaran/burrsolve/node"
	"github.com/katalvlaran/burrsolve/voxel"
)

// gap returns how far piece i may slide in direction dir before
// colliding with piece j alone. The matrix only stores positive-axis
// distances (matrix.Build's convention: Get(axis,i,j) is how far i may
// move positively before hitting j), so a negative direction is
// answered by swapping the roles: how far i may move negative before
// hitting j equals how far j may move positive before hitting i.
func (f *Finder) gap(dir voxel.Direction, i, j int) int {
	axis := dir.Axis()
	if dir.Positive() {
		return f.m.Get(axis, i, j)
	}
	return f.m.Get(axis, j, i)
}

// checkMovement asks whether piece `piece` can slide `step` units in
// direction `dir`, propagating the requirement onto any piece that
// would otherwise be collided with, and failing once more than
// maxPieces pieces would need to move. It records the resulting
// per-piece movement in f.movement for a following newNode/mergeNodes
// call, ported from disassembler_0_c::checkmovement.
func (f *Finder) checkMovement(maxPieces int, dir voxel.Direction, piece, step int) bool {
	for i := range f.movement {
		f.movement[i] = 0
		f.check[i] = false
	}
	f.movement[piece] = step
	f.check[piece] = true
	movedPieces := 1

	for {
		finished := true
		for i := 0; i < f.n; i++ {
			if !f.check[i] {
				continue
			}
			for j := 0; j < f.n; j++ {
				if i == j || f.movement[j] != 0 {
					continue
				}
				if f.movement[i]-f.gap(dir, i, j) > 0 {
					movedPieces++
					if movedPieces > maxPieces {
						return false
					}
					f.movement[j] = step
					f.check[j] = true
					finished = false
				}
			}
			f.check[i] = false
		}
		if finished {
			break
		}
	}
	return true
}

// newNode builds the successor state from the last checkMovement's
// f.movement, choosing which side of the split to actually move: the
// side whose heaviest piece is lighter moves (ties broken toward moving
// the co-moving group rather than the rest), ported from
// disassembler_0_c::newNode.
func (f *Finder) newNode(dir voxel.Direction, searchnode *node.SearchNode) *node.SearchNode {
	amount := 0
	var moveWeight, stillWeight voxel.Weight
	for i := 0; i < f.n; i++ {
		if f.movement[i] != 0 {
			if amount == 0 {
				amount = f.movement[i]
			}
			if f.weights[i] > moveWeight {
				moveWeight = f.weights[i]
			}
		} else if f.weights[i] > stillWeight {
			stillWeight = f.weights[i]
		}
	}

	n := node.New(f.n, searchnode)
	axis := dir.Axis()
	sign := dir.Sign()

	if stillWeight >= moveWeight {
		for i := 0; i < f.n; i++ {
			n.Set(i, shiftAxis(searchnode.Position(i), axis, sign*f.movement[i]), searchnode.Orientation(i))
		}
	} else {
		for i := 0; i < f.n; i++ {
			delta := 0
			if f.movement[i] == 0 {
				delta = -amount
			}
			n.Set(i, shiftAxis(searchnode.Position(i), axis, sign*delta), searchnode.Orientation(i))
		}
	}
	return n
}

// mergeNodes attempts to combine two independently found slides (n0
// and n1, both successors of searchnode in direction dir) into a single
// state where both movements happen at once. It returns nil if the
// merge does not produce a new, coherent, single-amount movement
// distinct from both inputs — ported from
// disassembler_0_c::newNodeMerge, including the adder0/adder1
// sign-normalisation that accounts for a slide having been recorded
// via the "move the still group instead" branch of newNode.
func (f *Finder) mergeNodes(n0, n1, searchnode *node.SearchNode, dir voxel.Direction) *node.SearchNode {
	axis := dir.Axis()
	adder0 := findAdder(n0, searchnode, dir)
	adder1 := findAdder(n1, searchnode, dir)

	different0, different1 := false, false
	amount := 0
	for i := 0; i < f.n; i++ {
		d0 := dir.Sign()*(axisCoord(n0.Position(i), axis)-axisCoord(searchnode.Position(i), axis)) + adder0
		d1 := dir.Sign()*(axisCoord(n1.Position(i), axis)-axisCoord(searchnode.Position(i), axis)) + adder1
		v := d0
		if d1 > d0 {
			v = d1
		}
		f.movement[i] = v
		if v != d0 {
			different0 = true
		}
		if v != d1 {
			different1 = true
		}
		if v != 0 {
			if amount == 0 {
				amount = v
			} else if v != amount {
				return nil
			}
		}
	}
	if !different0 || !different1 {
		return nil
	}
	return f.newNode(dir, searchnode)
}

// findAdder finds the sign-normalisation offset for n relative to
// searchnode along dir: the distance the first piece displaced against
// dir moved, or 0 if no piece moved against dir. This
// compensates for newNode having recorded the movement of the "still"
// side rather than the "moving" side when weights favoured that choice.
func findAdder(n, searchnode *node.SearchNode, dir voxel.Direction) int {
	axis := dir.Axis()
	for i := 0; i < n.PieceCount(); i++ {
		var diff int
		if dir.Positive() {
			diff = axisCoord(searchnode.Position(i), axis) - axisCoord(n.Position(i), axis)
		} else {
			diff = axisCoord(n.Position(i), axis) - axisCoord(searchnode.Position(i), axis)
		}
		if diff > 0 {
			return diff
		}
	}
	return 0
}

func axisCoord(p voxel.Position, axis voxel.Axis) int {
	switch axis {
	case voxel.AxisX:
		return p.X
	case voxel.AxisY:
		return p.Y
	default:
		return p.Z
	}
}

func shiftAxis(p voxel.Position, axis voxel.Axis, delta int) voxel.Position {
	switch axis {
	case voxel.AxisX:
		p.X += delta
	case voxel.AxisY:
		p.Y += delta
	default:
		p.Z += delta
	}
	return p
}

func axisAbsDiff(a, b voxel.Position, axis voxel.Axis) int {
	d := axisCoord(a, axis) - axisCoord(b, axis)
	if d < 0 {
		return -d
	}
	return d
}
