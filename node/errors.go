package node

import "errors"

// ErrPieceIndexOutOfRange is the panic value when a piece index passed
// to Set, Position, Orientation or IsRemoved falls outside
// [0, PieceCount()).
var ErrPieceIndexOutOfRange = errors.New("node: piece index out of range")

// ErrRefcountUnderflow signals a Decref call on a node whose refcount
// was already zero — an invariant violation (spec.md §7), never
// expected to occur through correct use of the package.
var ErrRefcountUnderflow = errors.New("node: refcount underflow")
