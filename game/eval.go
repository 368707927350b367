package game

// Evaluate scores a move in the context of the position it is played from.
// Positive values favor the computer.
type Evaluate func(p *Position, m Move) int

// Score is the material balance from the computer's point of view: one point
// per piece, plus half a point per king (truncated).
func (p *Position) Score() int {
	pieces := p.Count(Computer) - p.Count(Human)
	kings := p.Kings(Computer) - p.Kings(Human)
	return pieces + kings/2
}

// ProjectedScore estimates the value of playing m without applying it: the
// current score plus the pieces m captures, plus half of the opponent's kings
// that survive the move.
func (p *Position) ProjectedScore(m Move) int {
	opponentKings := p.Kings(m.Side.Opponent())
	capturedKings := 0
	for _, sq := range m.Captured {
		if p.At(sq).King {
			capturedKings++
		}
	}
	return p.Score() + len(m.Captured) + (opponentKings-capturedKings)/2
}

// EvaluateProjected is the evaluator the search uses unless told otherwise.
var EvaluateProjected Evaluate = (*Position).ProjectedScore
