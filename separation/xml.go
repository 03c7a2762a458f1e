package separation

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/burrsolve/voxel"
)

type xmlPieces struct {
	Count   int    `xml:"count,attr"`
	Content string `xml:",chardata"`
}

type xmlState struct {
	Dx string `xml:"dx"`
	Dy string `xml:"dy"`
	Dz string `xml:"dz"`
}

type xmlSeparation struct {
	XMLName xml.Name        `xml:"separation"`
	Type    string          `xml:"type,attr,omitempty"`
	Pieces  xmlPieces       `xml:"pieces"`
	States  []xmlState      `xml:"state"`
	Sub     []xmlSeparation `xml:"separation"`
}

// Save renders s as the XML document described in spec.md §6: a
// <separation> element with a <pieces count="N"> child, one <state>
// child per recorded state (each holding space-separated <dx>/<dy>/<dz>
// lists), and zero to two further <separation type="removed"|"left">
// children, one for each non-nil sub-problem.
func Save(s *Separation) ([]byte, error) {
	x := toXML(s, "")
	out, err := xml.MarshalIndent(x, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

func toXML(s *Separation, branchType string) xmlSeparation {
	x := xmlSeparation{
		Type: branchType,
		Pieces: xmlPieces{
			Count:   len(s.Pieces),
			Content: joinShapeIDs(s.Pieces),
		},
	}
	for _, st := range s.States {
		x.States = append(x.States, xmlState{
			Dx: joinInts(st.Dx),
			Dy: joinInts(st.Dy),
			Dz: joinInts(st.Dz),
		})
	}
	if s.Removed != nil {
		x.Sub = append(x.Sub, toXML(s.Removed, "removed"))
	}
	if s.Left != nil {
		x.Sub = append(x.Sub, toXML(s.Left, "left"))
	}
	return x
}

func joinShapeIDs(ids []voxel.ShapeID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(int(id))
	}
	return strings.Join(parts, " ")
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

// Load parses a Separation from its XML document, requiring exactly
// pieceCount pieces at the root. Integer lists are parsed with the
// strict grammar from spec.md §6: any character other than a digit, a
// single leading minus (where negative values are permitted), or a
// separating space is rejected, as is a number count that does not
// exactly match what the surrounding structure expects.
func Load(data []byte, pieceCount int) (*Separation, error) {
	var root xmlSeparation
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTree, err)
	}
	return fromXML(root, pieceCount)
}

func fromXML(x xmlSeparation, expected int) (*Separation, error) {
	if x.XMLName.Local != "separation" {
		return nil, fmt.Errorf("%w: wrong node for separation", ErrMalformedTree)
	}
	if x.Pieces.Count != expected {
		return nil, fmt.Errorf("%w: pieces count %d does not match expected %d", ErrMalformedTree, x.Pieces.Count, expected)
	}

	rawPieces, err := parseNumbers(x.Pieces.Content, expected, false)
	if err != nil {
		return nil, err
	}
	pieces := make([]voxel.ShapeID, expected)
	for i, v := range rawPieces {
		pieces[i] = voxel.ShapeID(v)
	}

	if len(x.States) == 0 {
		return nil, fmt.Errorf("%w: separation needs at least one state", ErrMalformedTree)
	}

	states := make([]State, len(x.States))
	for i, xs := range x.States {
		dx, err := parseNumbers(xs.Dx, expected, true)
		if err != nil {
			return nil, err
		}
		dy, err := parseNumbers(xs.Dy, expected, true)
		if err != nil {
			return nil, err
		}
		dz, err := parseNumbers(xs.Dz, expected, true)
		if err != nil {
			return nil, err
		}
		states[i] = State{Dx: dx, Dy: dy, Dz: dz}
	}

	result := &Separation{Pieces: pieces, States: states}

	last := states[len(states)-1]
	removedCount, leftCount := 0, 0
	for i := 0; i < expected; i++ {
		if last.Removed(i) {
			removedCount++
		} else {
			leftCount++
		}
	}

	var removedNode, leftNode *xmlSeparation
	for i := range x.Sub {
		sub := &x.Sub[i]
		switch sub.Type {
		case "left":
			if leftNode != nil {
				return nil, fmt.Errorf("%w: more than one left branch", ErrMalformedTree)
			}
			leftNode = sub
		case "removed":
			if removedNode != nil {
				return nil, fmt.Errorf("%w: more than one removed branch", ErrMalformedTree)
			}
			removedNode = sub
		default:
			return nil, fmt.Errorf("%w: subnodes must be either left or removed", ErrMalformedTree)
		}
	}

	// A node with no subnodes at all is a leaf: trivially solved (one
	// piece, or fully accounted for by the Grouping fallback) with no
	// further split recorded, and its own last state legitimately puts
	// every piece on one side. The both-sides-nonempty requirement only
	// applies to a node that actually claims a split via a subnode.
	if (removedNode != nil || leftNode != nil) && (removedCount == 0 || leftCount == 0) {
		return nil, fmt.Errorf("%w: there need to be pieces in both parts of the tree", ErrMalformedTree)
	}

	if removedNode != nil {
		removed, err := fromXML(*removedNode, removedCount)
		if err != nil {
			return nil, err
		}
		result.Removed = removed
	}
	if leftNode != nil {
		left, err := fromXML(*leftNode, leftCount)
		if err != nil {
			return nil, err
		}
		result.Left = left
	}

	return result, nil
}

// parseNumbers implements the legacy getNumbers grammar: a sequence of
// space-separated integers, optionally signed when negAllowed, with the
// count required to match exactly.
func parseNumbers(s string, count int, negAllowed bool) ([]int, error) {
	result := make([]int, 0, count)
	val := 0
	gotNum := false
	negative := false

	flush := func() error {
		if len(result) == count {
			return fmt.Errorf("%w: too many numbers", ErrMalformedNumbers)
		}
		if negative {
			val = -val
		}
		result = append(result, val)
		val = 0
		gotNum, negative = false, false
		return nil
	}

	for _, ch := range s {
		switch {
		case ch == '-' && negAllowed:
			if negative || gotNum {
				return nil, fmt.Errorf("%w: too many '-' signs", ErrMalformedNumbers)
			}
			negative = true
		case ch >= '0' && ch <= '9':
			val = val*10 + int(ch-'0')
			gotNum = true
		case ch == ' ':
			if gotNum {
				if err := flush(); err != nil {
					return nil, err
				}
			} else if negative {
				return nil, fmt.Errorf("%w: only '-' encountered", ErrMalformedNumbers)
			}
		default:
			return nil, fmt.Errorf("%w: disallowed character %q", ErrMalformedNumbers, ch)
		}
	}
	if gotNum {
		if err := flush(); err != nil {
			return nil, err
		}
	}

	if len(result) != count {
		return nil, fmt.Errorf("%w: expected %d numbers, got %d", ErrMalformedNumbers, count, len(result))
	}
	return result, nil
}
