package separation

import "errors"

// ErrMalformedNumbers is wrapped by Load when a dx/dy/dz/pieces text
// node violates the strict integer-list grammar: disallowed characters,
// more than one minus sign per number, or a count mismatch against the
// expected piece count.
var ErrMalformedNumbers = errors.New("separation: malformed number list")

// ErrMalformedTree is wrapped by Load when the XML structure itself is
// invalid: wrong element name, missing required child, duplicate or
// unknown branch type, or a split that would leave one side empty.
var ErrMalformedTree = errors.New("separation: malformed tree")
