// Package puzzledef loads a burrsolve puzzle+assembly definition from a
// YAML document via gopkg.in/yaml.v3. This is the CLI's own input
// format, not the legacy assembly-solver's XML tree: burrsolve receives
// an already-placed assembly (see spec.md §1's "puzzle file parsing" and
// "assembly solver" non-goals) rather than candidate shapes it must
// itself arrange, so the format only ever needs to name shapes, their
// piece instances, equivalence groups, and one fixed placement per piece.
package puzzledef

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/burrsolve/grouping"
	"github.com/katalvlaran/burrsolve/puzzle"
	"github.com/katalvlaran/burrsolve/voxel"
)

// Document is the on-disk shape of a puzzle+assembly YAML file.
type Document struct {
	Shapes []ShapeDoc `yaml:"shapes"`
	Pieces []PieceDoc `yaml:"pieces"`
}

// ShapeDoc registers one reusable shape.
type ShapeDoc struct {
	ID     int        `yaml:"id"`
	Cells  [][3]int   `yaml:"cells"`
	Weight int        `yaml:"weight"`
	Groups []GroupDoc `yaml:"groups,omitempty"`
}

// GroupDoc declares shape membership in an equivalence class.
type GroupDoc struct {
	ID       int `yaml:"id"`
	Capacity int `yaml:"capacity"`
}

// PieceDoc places one instance of a registered shape.
type PieceDoc struct {
	Shape       int    `yaml:"shape"`
	Position    [3]int `yaml:"position"`
	Orientation int    `yaml:"orientation"`
}

// Load parses content into a puzzle.Definition and its matching
// puzzle.SimpleAssembly starting placement.
func Load(content []byte) (*puzzle.Definition, *puzzle.SimpleAssembly, error) {
	var doc Document
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, nil, fmt.Errorf("puzzledef: parsing yaml: %w", err)
	}
	return build(&doc)
}

func build(doc *Document) (*puzzle.Definition, *puzzle.SimpleAssembly, error) {
	if len(doc.Shapes) == 0 {
		return nil, nil, fmt.Errorf("puzzledef: no shapes declared")
	}
	if len(doc.Pieces) == 0 {
		return nil, nil, fmt.Errorf("puzzledef: no pieces declared")
	}

	b := puzzle.NewBuilder()
	for _, sd := range doc.Shapes {
		if len(sd.Cells) == 0 {
			return nil, nil, fmt.Errorf("puzzledef: shape %d has no cells", sd.ID)
		}
		cells := make([]voxel.Position, len(sd.Cells))
		for i, c := range sd.Cells {
			cells[i] = voxel.Position{X: c[0], Y: c[1], Z: c[2]}
		}
		b.WithShape(voxel.ShapeID(sd.ID), voxel.NewShape(cells), voxel.Weight(sd.Weight))
		for _, g := range sd.Groups {
			b.WithGroup(voxel.ShapeID(sd.ID), grouping.GroupID(g.ID), g.Capacity)
		}
	}

	positions := make([]voxel.Position, len(doc.Pieces))
	orientations := make([]voxel.Orientation, len(doc.Pieces))
	for i, pd := range doc.Pieces {
		b.WithPiece(voxel.ShapeID(pd.Shape))
		positions[i] = voxel.Position{X: pd.Position[0], Y: pd.Position[1], Z: pd.Position[2]}
		orientations[i] = voxel.Orientation(pd.Orientation)
	}

	def, err := b.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("puzzledef: %w", err)
	}

	asm, err := puzzle.NewAssembly(positions, orientations)
	if err != nil {
		return nil, nil, fmt.Errorf("puzzledef: %w", err)
	}
	if asm.PlacementCount() != def.PieceCount() {
		return nil, nil, fmt.Errorf("puzzledef: %d placements for %d pieces", asm.PlacementCount(), def.PieceCount())
	}
	return def, asm, nil
}
