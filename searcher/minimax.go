package searcher

import (
	"checkers/experiments/metrics"
	"checkers/game"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax is a depth-bounded minimax search with alpha-beta pruning. Every node
// works on its own copy of the position, so a search never touches the
// position it is given. A Minimax is not safe for concurrent use.
type Minimax struct {
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:    DefaultDepth,
		evaluate: game.EvaluateProjected,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

// ChooseComputerMove picks the computer's move. It returns false when the
// computer has no legal move, which means it has lost.
func (m *Minimax) ChooseComputerMove(p *game.Position) (game.Move, bool) {
	move, ok, _ := m.FindMove(p, game.Computer)
	return move, ok
}

func (m *Minimax) FindMove(p *game.Position, side game.Side) (game.Move, bool, metrics.SearchMetric) {
	m.metrics.Start(m.depth)

	strategy := StrategyOf(side)
	moves := strategy.order(p, p.LegalMoves(side), m.evaluate)
	if len(moves) == 0 {
		return game.Move{}, false, m.metrics.Complete(0, 0)
	}
	if len(moves) == 1 { // Forced, nothing to compare
		return moves[0], true, m.metrics.Complete(1, m.evaluate(p, moves[0]))
	}

	best := 0
	bestValue := strategy.worst()
	for i, move := range moves {
		value := m.Value(p, move, NegInf, PosInf, m.depth, side)
		log.Debug().Stringer("move", move).Int("value", value).Msg("scored candidate")
		if strategy.better(value, bestValue) {
			best, bestValue = i, value
		}
	}

	metric := m.metrics.Complete(len(moves), bestValue)
	log.Debug().
		Stringer("side", side).
		Int("depth", m.depth).
		Int("candidates", metric.Candidates).
		Int("nodes", metric.Nodes).
		Int("leaves", metric.Leaves).
		Int("cutoffs", metric.Cutoffs).
		Dur("duration", metric.Duration).
		Msg("search complete")

	return moves[best], true, metric
}

// Value is the minimax value of playing move from prev, looking depth plies
// ahead. mover is the side playing move.
//
// Leaves are scored with the evaluator in the context of the position the
// move is played from: at depth 0, when mover has no pieces left, and when
// the reply side has no legal move.
func (m *Minimax) Value(prev *game.Position, move game.Move, alpha, beta, depth int, mover game.Side) int {
	if depth == 0 || prev.Count(mover) == 0 {
		m.metrics.AddLeaf()
		return m.evaluate(prev, move)
	}

	p := prev.Copy()
	p.Apply(move)
	m.metrics.AddNode()

	responder := move.Side.Opponent()
	strategy := StrategyOf(responder)
	replies := strategy.order(p, p.LegalMoves(responder), m.evaluate)
	if len(replies) == 0 { // Unanswered
		m.metrics.AddLeaf()
		return m.evaluate(prev, move)
	}

	best := strategy.worst()
	for _, reply := range replies {
		value := m.Value(p, reply, alpha, beta, depth-1, responder)
		if strategy.better(value, best) {
			best = value
		}
		alpha, beta = strategy.narrow(alpha, beta, value)
		if beta <= alpha {
			m.metrics.AddCutoff()
			break
		}
	}
	return best
}
