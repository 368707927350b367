package engine

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"errors"
)

const MaxTurns = 300

var (
	// ErrNoMove is returned by an agent whose side has no legal move. The
	// engine turns it into a loss for that side.
	ErrNoMove = errors.New("no legal move")
	// ErrInputClosed is returned by the human agent when its input ends.
	ErrInputClosed = errors.New("input closed")
)

type Engine interface {
	// Run plays a game till a side cannot move or a max number of turns is reached
	Run() (winner game.Side, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

type Agent interface {
	// FindMove returns the move side plays in p, or ErrNoMove if it has none
	FindMove(p *game.Position, side game.Side) (game.Move, metrics.SearchMetric, error)
}
