package voxel

import "errors"

// ErrInvalidOrientation is returned when an Orientation value falls
// outside [0, NumRotationsMirrored).
var ErrInvalidOrientation = errors.New("voxel: orientation out of range")
