package game

import (
	"fmt"
	"strings"
)

// Move is a candidate action for the piece on From. A move returned by
// LegalMoves is Final; non-final moves only exist while capture chains are
// being built.
type Move struct {
	Side     Side
	From     Square
	To       Square
	Captured []Square // In capture order
	Final    bool

	// provisional marks the seed of a chain that has not been extended yet
	provisional bool
}

func (m Move) IsCapture() bool {
	return len(m.Captured) > 0
}

func (m Move) String() string {
	s := fmt.Sprintf("From %s to %s", m.From, m.To)
	if len(m.Captured) == 0 {
		return s
	}
	captured := make([]string, len(m.Captured))
	for i, sq := range m.Captured {
		captured[i] = sq.String()
	}
	return s + " capturing " + strings.Join(captured, " ")
}

// FindMove looks up the move of moves going from one square to another.
func FindMove(moves []Move, from, to Square) (Move, bool) {
	for _, m := range moves {
		if m.From == from && m.To == to {
			return m, true
		}
	}
	return Move{}, false
}
