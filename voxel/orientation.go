package voxel

// Orientation selects a rigid rotation applied to a Shape. Values
// [0, NumRotations) are the 24 proper (determinant +1) rotations of a
// cube; values [NumRotations, NumRotationsMirrored) additionally allow
// the 24 improper (mirrored, determinant -1) rotations, for puzzles
// that permit mirrored pieces.
type Orientation int

// NumRotations is the size of the proper rotation group of the cube.
const NumRotations = 24

// NumRotationsMirrored is the size of the full signed-permutation group
// (proper and improper rotations), used by puzzles that allow mirroring.
const NumRotationsMirrored = 48

// mat3 is a row-major 3x3 integer rotation matrix.
type mat3 [3][3]int

func (m mat3) apply(p Position) Position {
	return Position{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z,
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z,
		Z: m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z,
	}
}

func (m mat3) det() int {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// rotations holds all 48 signed-permutation matrices: indices
// [0, NumRotations) have determinant +1, [NumRotations, NumRotationsMirrored)
// have determinant -1. The split is computed once at package init.
var rotations [NumRotationsMirrored]mat3

func init() {
	perms := [][3]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}
	signs := [][3]int{
		{1, 1, 1}, {1, 1, -1}, {1, -1, 1}, {1, -1, -1},
		{-1, 1, 1}, {-1, 1, -1}, {-1, -1, 1}, {-1, -1, -1},
	}

	var proper, improper []mat3
	for _, perm := range perms {
		for _, sign := range signs {
			var m mat3
			for row, col := range perm {
				m[row][col] = sign[row]
			}
			if m.det() == 1 {
				proper = append(proper, m)
			} else {
				improper = append(improper, m)
			}
		}
	}

	// Both slices must hold exactly 24 matrices: 6 permutations * 8 sign
	// combinations split evenly by determinant parity.
	if len(proper) != NumRotations || len(improper) != NumRotations {
		panic("voxel: rotation group construction invariant violated")
	}

	copy(rotations[:NumRotations], proper)
	copy(rotations[NumRotations:], improper)
}

// Apply rotates p by the rotation matrix associated with o.
func (o Orientation) Apply(p Position) Position {
	return rotations[int(o)%NumRotationsMirrored].apply(p)
}

// Valid reports whether o names one of the 48 tabulated rotations.
func (o Orientation) Valid() bool {
	return o >= 0 && int(o) < NumRotationsMirrored
}

// Mirrored reports whether o is one of the 24 improper (mirror) rotations.
func (o Orientation) Mirrored() bool {
	return int(o) >= NumRotations
}
