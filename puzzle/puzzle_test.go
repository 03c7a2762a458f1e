package puzzle_test

import (
	"testing"

	"github.com/katalvlaran/burrsolve/grouping"
	"github.com/katalvlaran/burrsolve/puzzle"
	"github.com/katalvlaran/burrsolve/voxel"
)

func unitShape() *voxel.Shape {
	return voxel.NewShape([]voxel.Position{{0, 0, 0}})
}

func TestBuilder_BuildsDefinition(t *testing.T) {
	def, err := puzzle.NewBuilder().
		WithShape(0, unitShape(), 5).
		WithShape(1, unitShape(), 3).
		WithGroup(1, 100, 2).
		WithPiece(0).
		WithPiece(1).
		WithPiece(1).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if got := def.PieceCount(); got != 3 {
		t.Fatalf("PieceCount() = %d; want 3", got)
	}
	if got := def.PieceShape(1); got != 1 {
		t.Fatalf("PieceShape(1) = %d; want 1", got)
	}
	if got := def.Shapes().Weight(0); got != 5 {
		t.Fatalf("Weight(0) = %d; want 5", got)
	}
	if got := def.Shapes().GroupCount(1); got != 1 {
		t.Fatalf("GroupCount(1) = %d; want 1", got)
	}
	if got := def.Shapes().GroupCapacity(def.Shapes().Group(1, 0)); got != 2 {
		t.Fatalf("GroupCapacity = %d; want 2", got)
	}
}

func TestBuilder_RejectsUnknownShape(t *testing.T) {
	_, err := puzzle.NewBuilder().WithPiece(9).Build()
	if err == nil {
		t.Fatal("expected error for piece referencing unregistered shape")
	}
}

func TestBuilder_RejectsEmptyPuzzle(t *testing.T) {
	_, err := puzzle.NewBuilder().WithShape(0, unitShape(), 0).Build()
	if err == nil {
		t.Fatal("expected error for a puzzle with no pieces")
	}
}

func TestDefinition_ImplementsShapeGrouper(t *testing.T) {
	def, err := puzzle.NewBuilder().
		WithShape(0, unitShape(), 0).
		WithGroup(0, 42, 1).
		WithPiece(0).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	var _ grouping.ShapeGrouper = def.Shapes()
}

func TestNewAssembly_RejectsLengthMismatch(t *testing.T) {
	_, err := puzzle.NewAssembly([]voxel.Position{{}}, nil)
	if err == nil {
		t.Fatal("expected error for mismatched position/orientation lengths")
	}
}

func TestDefinition_PieceShapesAndWeights(t *testing.T) {
	s0, s1 := unitShape(), unitShape()
	def, err := puzzle.NewBuilder().
		WithShape(0, s0, 1).
		WithShape(1, s1, 2).
		WithPiece(0).
		WithPiece(1).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	shapes := def.PieceShapes()
	if shapes[0] != s0 || shapes[1] != s1 {
		t.Fatal("PieceShapes() did not return the registered shape pointers in piece order")
	}
	weights := def.PieceWeights()
	if weights[0] != 1 || weights[1] != 2 {
		t.Fatalf("PieceWeights() = %v; want [1 2]", weights)
	}
}
