package searcher

import (
	"checkers/game"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// naiveValue is plain minimax without pruning or move ordering.
func naiveValue(prev *game.Position, move game.Move, depth int, mover game.Side) int {
	if depth == 0 || prev.Count(mover) == 0 {
		return prev.ProjectedScore(move)
	}
	p := prev.Copy()
	p.Apply(move)

	responder := move.Side.Opponent()
	strategy := StrategyOf(responder)
	replies := p.LegalMoves(responder)
	if len(replies) == 0 {
		return prev.ProjectedScore(move)
	}
	best := strategy.worst()
	for _, reply := range replies {
		if v := naiveValue(p, reply, depth-1, responder); strategy.better(v, best) {
			best = v
		}
	}
	return best
}

// randomPosition plays a few random plies from the start.
func randomPosition(rng *rand.Rand, plies int) (*game.Position, game.Side) {
	p := game.NewPosition()
	side := game.Human
	for i := 0; i < plies; i++ {
		moves := p.LegalMoves(side)
		if len(moves) == 0 {
			break
		}
		p.Apply(moves[rng.Intn(len(moves))])
		side = side.Opponent()
	}
	return p, side
}

func TestFindMove(t *testing.T) {
	t.Run("no legal move", func(t *testing.T) {
		p := game.MustParsePosition(
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			".c.....h",
		)
		m := NewMinimax(WithDepth(4))

		_, ok := m.ChooseComputerMove(p)

		require.False(t, ok, "Computer has lost when it cannot move")
	})

	t.Run("single legal move is played without searching", func(t *testing.T) {
		p := game.MustParsePosition(
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			".......c",
			"h.......",
		)
		m := NewMinimax(WithDepth(4), WithMetrics())

		move, ok, metric := m.FindMove(p, game.Computer)

		require.True(t, ok)
		require.Equal(t, game.Square{Row: 7, Col: 6}, move.To)
		require.Zero(t, metric.Nodes, "Nothing should be searched")
		require.Equal(t, 1, metric.Candidates)
	})

	t.Run("avoids a capture that gets recaptured", func(t *testing.T) {
		p := game.MustParsePosition(
			"c.......",
			"........",
			"..c.....",
			".h.h....",
			"........",
			".....h..",
			"......h.",
			"........",
		)
		before := p.String()
		moves := p.LegalMoves(game.Computer)
		require.Len(t, moves, 2)
		require.Equal(t, p.ProjectedScore(moves[0]), p.ProjectedScore(moves[1]), "Statically both captures look the same")

		for _, depth := range []int{2, 4} {
			m := NewMinimax(WithDepth(depth), WithMetrics())

			move, ok, metric := m.FindMove(p, game.Computer)

			require.True(t, ok)
			require.Equal(t, game.Square{Row: 4, Col: 0}, move.To, "Depth %d should see the recapture", depth)
			require.Equal(t, []game.Square{{Row: 3, Col: 1}}, move.Captured)
			require.Equal(t, depth, metric.Depth)
			require.Equal(t, 2, metric.Candidates)
			require.Positive(t, metric.Nodes)
			require.Positive(t, metric.Leaves)
		}
		require.Equal(t, before, p.String(), "Search should not mutate the position")
	})

	t.Run("human side minimizes", func(t *testing.T) {
		p := game.MustParsePosition(
			"........",
			"........",
			"..c.....",
			".h.h....",
			"h...c...",
			"........",
			"........",
			"...h....",
		)
		m := NewMinimax(WithDepth(2))

		move, ok, _ := m.FindMove(p, game.Human)

		require.True(t, ok)
		require.True(t, move.IsCapture(), "Captures are mandatory for the human too")
	})
}

func TestValue(t *testing.T) {
	t.Run("depth zero scores the move statically", func(t *testing.T) {
		p := game.NewPosition()
		move := p.LegalMoves(game.Computer)[0]
		m := NewMinimax(WithMetrics())

		value := m.Value(p, move, NegInf, PosInf, 0, game.Computer)

		require.Equal(t, p.ProjectedScore(move), value)
	})

	t.Run("unanswered move is scored statically", func(t *testing.T) {
		p := game.MustParsePosition(
			"........",
			"........",
			"........",
			"........",
			"........",
			"..c.....",
			".h......",
			"........",
		)
		moves := p.LegalMoves(game.Human)
		require.Len(t, moves, 1)
		m := NewMinimax(WithDepth(6))

		value := m.Value(p, moves[0], NegInf, PosInf, 6, game.Human)

		require.Equal(t, p.ProjectedScore(moves[0]), value, "Computer has no piece left to answer with")
	})

	t.Run("matches plain minimax", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		for i := 0; i < 15; i++ {
			p, side := randomPosition(rng, 6+rng.Intn(20))
			for _, move := range p.LegalMoves(side) {
				for _, depth := range []int{1, 2, 3} {
					m := NewMinimax(WithDepth(depth))

					got := m.Value(p, move, NegInf, PosInf, depth, side)

					require.Equal(t, naiveValue(p, move, depth, side), got,
						"Pruning and ordering should not change the value of %s at depth %d in\n%s", move, depth, p)
				}
			}
		}
	})

	t.Run("prunes on wider trees", func(t *testing.T) {
		p := game.NewPosition()
		m := NewMinimax(WithDepth(4), WithMetrics())

		_, ok, metric := m.FindMove(p, game.Computer)

		require.True(t, ok)
		require.Positive(t, metric.Cutoffs)
	})
}

func TestCustomEvaluation(t *testing.T) {
	p := game.NewPosition()
	calls := 0
	m := NewMinimax(WithDepth(1), WithEvaluationFn(func(_ *game.Position, move game.Move) int {
		calls++
		return move.To.Col
	}))

	move, ok := m.ChooseComputerMove(p)

	require.True(t, ok)
	require.Positive(t, calls)
	require.Equal(t, 7, move.To.Col, "Maximizer should follow the custom evaluator")
}

func TestNewMinimaxDefaults(t *testing.T) {
	m := NewMinimax(WithDepth(0), WithEvaluationFn(nil))

	require.Equal(t, DefaultDepth, m.Depth(), "Invalid depth should keep the default")
	require.NotNil(t, m.evaluate)
}
