// Package voxel defines the geometric substrate the disassembly core
// builds on: integer voxel positions, piece shapes as sets of occupied
// unit cells, and the rigid-rotation group applied to a shape when a
// piece is placed at a given Orientation.
//
// Shapes here are assumed already minimised and hotspot-zeroed by the
// caller (the outer assembly solver), per spec.md's "assembly inputs
// assume minimised pieces" design note; voxel does not perform shape
// minimisation or rotation enumeration itself.
package voxel
