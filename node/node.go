package node

import "github.com/katalvlaran/burrsolve/voxel"

// Set writes piece i's position and orientation. It panics with
// ErrPieceIndexOutOfRange if i is out of range — an invariant
// violation, not a recoverable condition, per spec.md §7.
func (n *SearchNode) Set(i int, pos voxel.Position, o voxel.Orientation) {
	n.checkIndex(i)
	n.x[i] = int32(pos.X)
	n.y[i] = int32(pos.Y)
	n.z[i] = int32(pos.Z)
	n.orient[i] = o
}

// Position returns piece i's current position.
func (n *SearchNode) Position(i int) voxel.Position {
	n.checkIndex(i)
	return voxel.Position{X: int(n.x[i]), Y: int(n.y[i]), Z: int(n.z[i])}
}

// Orientation returns piece i's current orientation.
func (n *SearchNode) Orientation(i int) voxel.Orientation {
	n.checkIndex(i)
	return n.orient[i]
}

func (n *SearchNode) checkIndex(i int) {
	if i < 0 || i >= len(n.x) {
		panic(ErrPieceIndexOutOfRange)
	}
}

// IsRemoved reports whether piece i has been slid beyond
// voxel.RemovedMagnitude on any axis.
func (n *SearchNode) IsRemoved(i int) bool {
	n.checkIndex(i)
	return n.Position(i).Removed()
}

// IsSeparating reports whether this node represents a state in which
// at least one piece has been removed.
func (n *SearchNode) IsSeparating() bool {
	for i := range n.x {
		if n.IsRemoved(i) {
			return true
		}
	}
	return false
}

// Hash computes a translation-invariant rolling hash over every piece's
// offset from piece 0, and its orientation. See SPEC_FULL.md §13 for
// why orientation is included here, unlike the legacy source.
func (n *SearchNode) Hash() uint32 {
	h := uint32(hashSeed)
	x0, y0, z0 := n.x[0], n.y[0], n.z[0]
	for i := 1; i < len(n.x); i++ {
		h += uint32(n.x[i] - x0)
		h *= mulX
		h += uint32(n.y[i] - y0)
		h *= mulY
		h += uint32(n.z[i] - z0)
		h *= mulZ
		h += uint32(n.orient[i])
	}
	return h
}

// Equal reports whether n and other describe the same relative
// configuration: same piece count, and for every piece i>0 the same
// offset from piece 0 and the same orientation.
func (n *SearchNode) Equal(other *SearchNode) bool {
	if other == nil || len(n.x) != len(other.x) {
		return false
	}
	x0, y0, z0 := n.x[0], n.y[0], n.z[0]
	ox0, oy0, oz0 := other.x[0], other.y[0], other.z[0]
	for i := 1; i < len(n.x); i++ {
		if n.x[i]-x0 != other.x[i]-ox0 {
			return false
		}
		if n.y[i]-y0 != other.y[i]-oy0 {
			return false
		}
		if n.z[i]-z0 != other.z[i]-oz0 {
			return false
		}
		if n.orient[i] != other.orient[i] {
			return false
		}
	}
	return true
}

// Incref bumps the reference count, e.g. when a caller stores an
// additional pointer to n (membership in a NodeHash, a new back-link).
func (n *SearchNode) Incref() {
	n.refcount++
}

// Decref drops the reference count by one. When it reaches zero, n is
// considered destroyed and its predecessor is decref'd in turn,
// cascading up the chain — this is the only place destruction happens,
// mirroring the legacy refcounted node's destructor. Decref panics with
// ErrRefcountUnderflow if called on an already-zero node.
func (n *SearchNode) Decref() {
	if n.refcount <= 0 {
		panic(ErrRefcountUnderflow)
	}
	n.refcount--
	if n.refcount == 0 && n.comefrom != nil {
		n.comefrom.Decref()
	}
}
