package engine

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Option func(e *LocalEngine)

// LocalEngine alternates two in-process agents over a single live position,
// the human side moving first.
type LocalEngine struct {
	Position *game.Position
	agents   map[game.Side]Agent
	maxTurns int
	out      io.Writer
}

func WithMaxTurns(turns int) Option {
	return func(e *LocalEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// WithOutput renders the board and move feedback to w after every move.
func WithOutput(w io.Writer) Option {
	return func(e *LocalEngine) {
		if w != nil {
			e.out = w
		}
	}
}

// WithPosition starts the game from p instead of the standard setup.
func WithPosition(p *game.Position) Option {
	return func(e *LocalEngine) {
		if p != nil {
			e.Position = p
		}
	}
}

func NewLocalEngine(human, computer Agent, options ...Option) *LocalEngine {
	if human == nil || computer == nil {
		panic("both sides need an agent")
	}

	e := &LocalEngine{
		Position: game.NewPosition(),
		agents: map[game.Side]Agent{
			game.Human:    human,
			game.Computer: computer,
		},
		maxTurns: MaxTurns,
		out:      io.Discard,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until a side has no legal move, which loses, or
// until the turn limit, which is a draw with winner None.
func (e *LocalEngine) Run() (game.Side, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		GameID:       uuid.New(),
		StartingSide: game.Human,
		StartTime:    time.Now(),
	}
	logger := log.With().Stringer("game", gameMetric.GameID).Logger()
	logger.Info().Msgf("%s is starting", gameMetric.StartingSide)

	Render(e.out, e.Position)

	winner := game.None
	side := gameMetric.StartingSide
	var moveMetrics []metrics.MoveMetric
	for turn := 1; turn <= e.maxTurns; turn++ {
		move, searchMetric, err := e.agents[side].FindMove(e.Position, side)
		if errors.Is(err, ErrNoMove) {
			winner = side.Opponent()
			break
		}
		if err != nil {
			return game.None, gameMetric, moveMetrics, fmt.Errorf("turn %d (%s): %w", turn, side, err)
		}

		e.Position.Apply(move)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Side:         side,
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		logger.Info().Int("turn", turn).Stringer("side", side).Stringer("move", move).Msg("played move")

		announce(e.out, move)
		Render(e.out, e.Position)
		side = side.Opponent()
	}

	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	if winner != game.None {
		fmt.Fprintf(e.out, "%s wins!\n", title(winner))
		logger.Info().Stringer("winner", winner).Int("moves", gameMetric.TotalMoves).Msg("game over")
	} else {
		fmt.Fprintf(e.out, "Draw after %d turns\n", gameMetric.TotalMoves)
		logger.Info().Int("moves", gameMetric.TotalMoves).Msg("stopped at turn limit")
	}

	return winner, gameMetric, moveMetrics, nil
}
