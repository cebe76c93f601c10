package match

import (
	"fmt"

	"github.com/tsawler/wordgrid/geom"
)

// Kind identifies how a match was found.
type Kind int

const (
	// KindLinear is a pattern read along one direction from a start cell.
	KindLinear Kind = iota
	// KindCross is a pattern read along both diagonals through a center cell.
	KindCross
)

// String returns "linear" or "cross".
func (k Kind) String() string {
	switch k {
	case KindLinear:
		return "linear"
	case KindCross:
		return "cross"
	default:
		return "unknown"
	}
}

// Match is one occurrence of a pattern. For linear matches At is the start
// cell and Direction the walking direction. For cross matches At is the
// center cell and Direction is unused.
type Match struct {
	Kind      Kind
	At        geom.Point
	Direction geom.Direction
	Length    int
}

// Cells returns the grid cells covered by the match.
func (m Match) Cells() []geom.Point {
	switch m.Kind {
	case KindLinear:
		cells := make([]geom.Point, m.Length)
		for i := range cells {
			cells[i] = m.At.Step(m.Direction, i)
		}
		return cells

	case KindCross:
		arm := m.Length / 2
		cells := make([]geom.Point, 0, 2*m.Length-1)
		cells = append(cells, m.At)
		for i := 1; i <= arm; i++ {
			for _, d := range geom.Diagonals() {
				cells = append(cells, m.At.Step(d, i))
			}
		}
		return cells
	}
	return nil
}

// String describes the match, e.g. "linear (0,4) E" or "cross (1,2)".
func (m Match) String() string {
	if m.Kind == KindCross {
		return fmt.Sprintf("%s %v", m.Kind, m.At)
	}
	return fmt.Sprintf("%s %v %v", m.Kind, m.At, m.Direction)
}
