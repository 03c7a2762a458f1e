package grouping_test

import (
	"testing"

	"github.com/katalvlaran/burrsolve/grouping"
	"github.com/katalvlaran/burrsolve/voxel"
)

// fakeGrouper is a minimal ShapeGrouper for tests: shape i belongs to
// the groups listed in memberships[i], and group capacities come from
// capacities.
type fakeGrouper struct {
	memberships map[voxel.ShapeID][]grouping.GroupID
	capacities  map[grouping.GroupID]int
}

func (f *fakeGrouper) GroupCount(shape voxel.ShapeID) int {
	return len(f.memberships[shape])
}

func (f *fakeGrouper) Group(shape voxel.ShapeID, index int) grouping.GroupID {
	return f.memberships[shape][index]
}

func (f *fakeGrouper) GroupCapacity(g grouping.GroupID) int {
	return f.capacities[g]
}

func TestGrouping_SingleGroupCovers(t *testing.T) {
	f := &fakeGrouper{
		memberships: map[voxel.ShapeID][]grouping.GroupID{
			1: {100},
			2: {100},
		},
		capacities: map[grouping.GroupID]int{100: 2},
	}
	g := grouping.New(f)

	if !g.SingleGroupCovers([]voxel.ShapeID{1, 2}) {
		t.Fatal("expected two pieces of a capacity-2 shared group to cover it")
	}
}

// TestGrouping_SingleGroupCoversRejectsPartialCoverage checks that a
// subset smaller than the group's registered capacity does not count
// as trivially solved.
func TestGrouping_SingleGroupCoversRejectsPartialCoverage(t *testing.T) {
	f := &fakeGrouper{
		memberships: map[voxel.ShapeID][]grouping.GroupID{
			1: {100},
		},
		capacities: map[grouping.GroupID]int{100: 2},
	}
	g := grouping.New(f)

	if g.SingleGroupCovers([]voxel.ShapeID{1}) {
		t.Fatal("expected partial group coverage to be rejected")
	}
}

// TestGrouping_SingleGroupCoversRejectsAmbiguousMembership checks the
// subProbGroup fast-exit: a shape belonging to more than one group
// disqualifies the fast path entirely.
func TestGrouping_SingleGroupCoversRejectsAmbiguousMembership(t *testing.T) {
	f := &fakeGrouper{
		memberships: map[voxel.ShapeID][]grouping.GroupID{
			1: {100, 200},
		},
		capacities: map[grouping.GroupID]int{100: 1, 200: 1},
	}
	g := grouping.New(f)

	if g.SingleGroupCovers([]voxel.ShapeID{1}) {
		t.Fatal("expected ambiguous (multi-group) shape membership to reject the fast path")
	}
}

// TestGrouping_AddPieceToSetRespectsCapacity checks that capacity
// accounting runs out exactly when expected and NewSet resets it.
func TestGrouping_AddPieceToSetRespectsCapacity(t *testing.T) {
	f := &fakeGrouper{
		memberships: map[voxel.ShapeID][]grouping.GroupID{
			1: {100},
		},
		capacities: map[grouping.GroupID]int{100: 2},
	}
	g := grouping.New(f)
	g.NewSet()

	if !g.AddPieceToSet(1) {
		t.Fatal("expected first credit against capacity 2 to succeed")
	}
	if !g.AddPieceToSet(1) {
		t.Fatal("expected second credit against capacity 2 to succeed")
	}
	if g.AddPieceToSet(1) {
		t.Fatal("expected third credit against capacity 2 to fail")
	}

	g.NewSet()
	if !g.AddPieceToSet(1) {
		t.Fatal("expected NewSet to reset capacity accounting")
	}
}

// TestGrouping_AddPieceToSetFallsBackToSecondGroup checks that a shape
// with membership in multiple groups is credited against whichever one
// still has room.
func TestGrouping_AddPieceToSetFallsBackToSecondGroup(t *testing.T) {
	f := &fakeGrouper{
		memberships: map[voxel.ShapeID][]grouping.GroupID{
			1: {100, 200},
		},
		capacities: map[grouping.GroupID]int{100: 0, 200: 1},
	}
	g := grouping.New(f)
	g.NewSet()

	if !g.AddPieceToSet(1) {
		t.Fatal("expected credit to fall back to the second group with remaining capacity")
	}
}
