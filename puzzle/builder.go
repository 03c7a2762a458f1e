package puzzle

import (
	"fmt"

	"github.com/katalvlaran/burrsolve/grouping"
	"github.com/katalvlaran/burrsolve/voxel"
)

// Builder assembles a Definition step by step: register shapes first
// (geometry, weight, and any group memberships), then register one
// piece per placed instance by shape id. The zero value is not usable
// (its shape map is nil); create one with NewBuilder.
type Builder struct {
	shapes map[voxel.ShapeID]*shapeInfo
	pieces []voxel.ShapeID
	err    error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{shapes: make(map[voxel.ShapeID]*shapeInfo)}
}

// WithShape registers a shape's geometry and weight. Calling it twice
// for the same id overwrites the earlier registration.
func (b *Builder) WithShape(id voxel.ShapeID, shape *voxel.Shape, weight voxel.Weight) *Builder {
	if b.err != nil {
		return b
	}
	b.shapes[id] = &shapeInfo{shape: shape, weight: weight}
	return b
}

// WithGroup records that shape id belongs to equivalence group group,
// which in total spans capacity pieces across the whole puzzle. A shape
// may belong to more than one group by calling WithGroup repeatedly.
func (b *Builder) WithGroup(id voxel.ShapeID, group grouping.GroupID, capacity int) *Builder {
	if b.err != nil {
		return b
	}
	info, ok := b.shapes[id]
	if !ok {
		b.err = fmt.Errorf("%w: %d", ErrUnknownShape, id)
		return b
	}
	info.groups = append(info.groups, groupMembership{id: int(group), capacity: capacity})
	return b
}

// WithPiece appends one piece instance of the given shape. Piece
// indices are assigned in call order, starting at 0.
func (b *Builder) WithPiece(shape voxel.ShapeID) *Builder {
	if b.err != nil {
		return b
	}
	if _, ok := b.shapes[shape]; !ok {
		b.err = fmt.Errorf("%w: %d", ErrUnknownShape, shape)
		return b
	}
	b.pieces = append(b.pieces, shape)
	return b
}

// Build finalizes the Definition, or returns the first error recorded
// by an earlier call, or ErrNoPieces if no pieces were ever registered.
func (b *Builder) Build() (*Definition, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.pieces) == 0 {
		return nil, ErrNoPieces
	}
	return &Definition{
		pieces: append([]voxel.ShapeID(nil), b.pieces...),
		shapes: b.shapes,
	}, nil
}
