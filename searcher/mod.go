package searcher

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"math"
)

// DefaultDepth is the number of plies searched below each root candidate.
const DefaultDepth = 12

// Bounds of the initial alpha-beta window.
const (
	NegInf = math.MinInt
	PosInf = math.MaxInt
)

type Searcher interface {
	// FindMove returns the best move for side, false if side has no legal move,
	// and the metrics collected while searching.
	FindMove(p *game.Position, side game.Side) (game.Move, bool, metrics.SearchMetric)
}
