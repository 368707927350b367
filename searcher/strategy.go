package searcher

import (
	"checkers/game"

	"golang.org/x/exp/slices"
)

// Strategy is the optimization sense of a side over the shared score, which is
// always from the computer's point of view.
type Strategy int

const (
	Maximize Strategy = iota
	Minimize
)

// StrategyOf maps the computer to Maximize and the human to Minimize.
func StrategyOf(side game.Side) Strategy {
	if side == game.Human {
		return Minimize
	}
	return Maximize
}

func (s Strategy) String() string {
	if s == Minimize {
		return "minimize"
	}
	return "maximize"
}

// worst is the identity of better: every value improves on it.
func (s Strategy) worst() int {
	if s == Minimize {
		return PosInf
	}
	return NegInf
}

// better reports whether a is strictly preferable to b.
func (s Strategy) better(a, b int) bool {
	if s == Minimize {
		return a < b
	}
	return a > b
}

// narrow tightens the bound this side controls with a new value: alpha for the
// maximizer, beta for the minimizer.
func (s Strategy) narrow(alpha, beta, value int) (int, int) {
	if s == Minimize {
		return alpha, min(beta, value)
	}
	return max(alpha, value), beta
}

type scoredMove struct {
	move  game.Move
	score int
}

// order sorts moves so that the ones this side likes best by static evaluation
// come first. Ties keep generation order.
func (s Strategy) order(p *game.Position, moves []game.Move, evaluate game.Evaluate) []game.Move {
	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		scored[i] = scoredMove{move: m, score: evaluate(p, m)}
	}
	slices.SortStableFunc(scored, func(a, b scoredMove) int {
		switch {
		case s.better(a.score, b.score):
			return -1
		case s.better(b.score, a.score):
			return 1
		default:
			return 0
		}
	})

	ordered := make([]game.Move, len(scored))
	for i, sm := range scored {
		ordered[i] = sm.move
	}
	return ordered
}
