package matrix

import "github.com/katalvlaran/burrsolve/voxel"

// Close runs the all-pairs shortest-path closure over every axis grid,
// so that for every i, j, k: grid[i][j] <= grid[i][k] + grid[k][j]. This
// is the Go rendering of the legacy prepare/prepare2 pass from
// disassembler_0.cpp: a direct pairwise query only sees the two pieces
// involved, but a third piece wedged between them can shorten the
// effective gap, and that information only surfaces by relaxing through
// every intermediate piece.
func (m *Matrix) Close() {
	for axis := voxel.Axis(0); axis < 3; axis++ {
		closeAxis(m.grid[axis], m.n)
	}
}

func closeAxis(grid [][]int32, n int) {
	for k := 0; k < n; k++ {
		rowK := grid[k]
		for i := 0; i < n; i++ {
			if i == k {
				continue
			}
			viaK := grid[i][k]
			if viaK >= voxel.InfinityDistance {
				continue
			}
			rowI := grid[i]
			for j := 0; j < n; j++ {
				if j == k || j == i {
					continue
				}
				candidate := viaK + rowK[j]
				if candidate < rowI[j] {
					rowI[j] = candidate
				}
			}
		}
	}
	clampInfinity(grid, n)
}

func clampInfinity(grid [][]int32, n int) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if grid[i][j] > voxel.InfinityDistance {
				grid[i][j] = voxel.InfinityDistance
			}
		}
	}
}
