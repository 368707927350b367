package game

import "golang.org/x/exp/slices"

type direction struct {
	dr, dc int
}

var (
	captureDirections = []direction{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
	stepDirections    = []direction{{-1, 1}, {-1, -1}, {1, 1}, {1, -1}}
)

// LegalMoves returns every complete move available to side. Capturing is
// mandatory: if any capture exists, only capturing moves are returned, and
// each of them follows its chain until no further capture is possible.
func (p *Position) LegalMoves(side Side) []Move {
	if side == None {
		return nil
	}

	var moves, pending []Move
	for _, sq := range p.rosters[side] {
		seed := Move{Side: side, From: sq, To: sq, provisional: true}
		moves, pending = p.extendInto(seed, moves, pending)

		// Resolve chains depth first so moves stay grouped by piece
		for len(pending) > 0 {
			last := pending[len(pending)-1]
			pending = pending[:len(pending)-1]
			moves, pending = p.extendInto(last, moves, pending)
		}
	}

	return forceCaptures(moves)
}

func (p *Position) extendInto(m Move, moves, pending []Move) ([]Move, []Move) {
	for _, next := range p.successors(m) {
		if next.Final {
			moves = append(moves, next)
		} else {
			pending = append(pending, next)
		}
	}
	return moves, pending
}

// successors extends m by one step. Captures come back non-final so they can be
// extended again; a chain that cannot capture any further comes back final.
func (p *Position) successors(m Move) []Move {
	piece := p.At(m.From)
	opponent := m.Side.Opponent()
	forward := m.Side.Forward()

	var next []Move
	for _, d := range captureDirections {
		// Men capture forward only, unless they are already mid-chain
		if !piece.King && len(m.Captured) == 0 && d.dr != forward {
			continue
		}
		over := m.To.step(d.dr, d.dc, 1)
		landing := m.To.step(d.dr, d.dc, 2)
		if !landing.onBoard() ||
			p.At(over).Side != opponent ||
			!p.At(landing).Empty() ||
			slices.Contains(m.Captured, over) {
			continue
		}
		captured := make([]Square, len(m.Captured), len(m.Captured)+1)
		copy(captured, m.Captured)
		next = append(next, Move{
			Side:     m.Side,
			From:     m.From,
			To:       landing,
			Captured: append(captured, over),
		})
	}
	if len(next) > 0 {
		return next
	}

	if len(m.Captured) == 0 {
		for _, d := range stepDirections {
			if !piece.King && d.dr != forward {
				continue
			}
			to := m.To.step(d.dr, d.dc, 1)
			if to.onBoard() && p.At(to).Empty() {
				next = append(next, Move{Side: m.Side, From: m.From, To: to, Final: true})
			}
		}
	}

	if len(next) == 0 && !m.provisional {
		m.Final = true
		next = append(next, m)
	}
	return next
}

func forceCaptures(moves []Move) []Move {
	if !slices.ContainsFunc(moves, Move.IsCapture) {
		return moves
	}
	return slices.DeleteFunc(moves, func(m Move) bool {
		return !m.IsCapture()
	})
}
