package game

import "fmt"

// Apply commits m to the position: the piece moves to m.To, every captured
// piece is removed, and a man ending on its promotion row is crowned.
//
// m must come from p.LegalMoves; nothing else is validated.
func (p *Position) Apply(m Move) {
	moving := p.At(m.From)
	if moving.Side != m.Side {
		panic(fmt.Sprintf("no %s piece on %s", m.Side, m.From))
	}

	for _, sq := range m.Captured {
		p.remove(sq)
	}
	p.remove(m.From)

	king := moving.King || m.To.Row == m.Side.PromotionRow()
	p.place(m.Side, m.To, king)
}
