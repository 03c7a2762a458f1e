package matrix

import "github.com/katalvlaran/burrsolve/voxel"

// Matrix holds one N×N grid of movement distances per axis. Entry
// grid[axis][i][j] is the maximum distance piece i may slide in the
// positive direction of axis before colliding with piece j, with every
// other piece ignored. Diagonal entries are always 0; entries the
// geometry does not constrain hold voxel.InfinityDistance.
type Matrix struct {
	n    int
	grid [3][][]int32
}

// New allocates a Matrix for n pieces with every off-diagonal entry set
// to voxel.InfinityDistance and every diagonal entry set to 0.
func New(n int) *Matrix {
	m := &Matrix{n: n}
	for axis := 0; axis < 3; axis++ {
		m.grid[axis] = make([][]int32, n)
		for i := 0; i < n; i++ {
			row := make([]int32, n)
			for j := 0; j < n; j++ {
				if i != j {
					row[j] = voxel.InfinityDistance
				}
			}
			m.grid[axis][i] = row
		}
	}
	return m
}

// N returns the number of pieces the matrix was built for.
func (m *Matrix) N() int {
	return m.n
}

// Get returns the current distance for piece i sliding positively along
// axis before colliding with piece j.
func (m *Matrix) Get(axis voxel.Axis, i, j int) int {
	return int(m.grid[axis][i][j])
}

// Set stores v at [axis][i][j], clamped to voxel.InfinityDistance,
// bypassing Build. It lets callers outside this package (the moves
// tests) hand-construct a matrix with known entries.
func (m *Matrix) Set(axis voxel.Axis, i, j int, v int) {
	m.set(axis, i, j, v)
}

// set clamps v to voxel.InfinityDistance and stores it at [axis][i][j].
func (m *Matrix) set(axis voxel.Axis, i, j int, v int) {
	if v > voxel.InfinityDistance {
		v = voxel.InfinityDistance
	}
	m.grid[axis][i][j] = int32(v)
}
