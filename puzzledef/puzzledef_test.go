package puzzledef_test

import (
	"testing"

	"github.com/katalvlaran/burrsolve/puzzledef"
)

const twoCubes = `
shapes:
  - id: 0
    weight: 1
    cells:
      - [0, 0, 0]
pieces:
  - shape: 0
    position: [0, 0, 0]
    orientation: 0
  - shape: 0
    position: [1, 0, 0]
    orientation: 0
`

func TestLoad_TwoCubes(t *testing.T) {
	def, asm, err := puzzledef.Load([]byte(twoCubes))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if def.PieceCount() != 2 {
		t.Fatalf("PieceCount() = %d; want 2", def.PieceCount())
	}
	if asm.PlacementCount() != 2 {
		t.Fatalf("PlacementCount() = %d; want 2", asm.PlacementCount())
	}
	if got := asm.Position(1); got.X != 1 {
		t.Fatalf("Position(1).X = %d; want 1", got.X)
	}
}

func TestLoad_WithGroups(t *testing.T) {
	content := []byte(`
shapes:
  - id: 0
    weight: 1
    cells:
      - [0, 0, 0]
    groups:
      - id: 7
        capacity: 2
pieces:
  - shape: 0
    position: [0, 0, 0]
    orientation: 0
  - shape: 0
    position: [5, 5, 5]
    orientation: 0
`)
	def, _, err := puzzledef.Load(content)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if def.GroupCount(0) != 1 {
		t.Fatalf("GroupCount(0) = %d; want 1", def.GroupCount(0))
	}
	if def.GroupCapacity(def.Group(0, 0)) != 2 {
		t.Fatalf("GroupCapacity() = %d; want 2", def.GroupCapacity(def.Group(0, 0)))
	}
}

func TestLoad_RejectsNoShapes(t *testing.T) {
	_, _, err := puzzledef.Load([]byte(`pieces: []`))
	if err == nil {
		t.Fatal("expected an error for a document with no shapes")
	}
}

func TestLoad_RejectsNoPieces(t *testing.T) {
	content := []byte(`
shapes:
  - id: 0
    weight: 1
    cells:
      - [0, 0, 0]
pieces: []
`)
	_, _, err := puzzledef.Load(content)
	if err == nil {
		t.Fatal("expected an error for a document with no pieces")
	}
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	_, _, err := puzzledef.Load([]byte("not: [valid"))
	if err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}

func TestLoad_RejectsUnknownShapeReference(t *testing.T) {
	content := []byte(`
shapes:
  - id: 0
    weight: 1
    cells:
      - [0, 0, 0]
pieces:
  - shape: 99
    position: [0, 0, 0]
    orientation: 0
`)
	_, _, err := puzzledef.Load(content)
	if err == nil {
		t.Fatal("expected an error for a piece referencing an unregistered shape")
	}
}
