package engine

import (
	"bufio"
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/searcher"
	"fmt"
	"io"

	"golang.org/x/exp/rand"
)

type SearchAgent struct {
	searcher searcher.Searcher
}

// NewSearchAgent returns an agent that plays the searcher's best move.
func NewSearchAgent(s searcher.Searcher) *SearchAgent {
	return &SearchAgent{searcher: s}
}

func (a *SearchAgent) FindMove(p *game.Position, side game.Side) (game.Move, metrics.SearchMetric, error) {
	move, ok, metric := a.searcher.FindMove(p, side)
	if !ok {
		return game.Move{}, metric, ErrNoMove
	}
	return move, metric, nil
}

type RandomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays uniformly random legal moves.
// Agents with the same seed play the same moves.
func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) FindMove(p *game.Position, side game.Side) (game.Move, metrics.SearchMetric, error) {
	moves := p.LegalMoves(side)
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, ErrNoMove
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{Candidates: len(moves)}, nil
}

// HumanAgent reads moves as two coordinate tokens, row then column digits, for
// the origin and the destination: "52 43" moves the piece on (5, 2) to (4, 3).
type HumanAgent struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewHumanAgent(in io.Reader, out io.Writer) *HumanAgent {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &HumanAgent{in: scanner, out: out}
}

func (a *HumanAgent) FindMove(p *game.Position, side game.Side) (game.Move, metrics.SearchMetric, error) {
	moves := p.LegalMoves(side)
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, ErrNoMove
	}
	listMoves(a.out, moves)

	for {
		from, err := a.readSquare()
		if err != nil {
			return game.Move{}, metrics.SearchMetric{}, err
		}
		to, err := a.readSquare()
		if err != nil {
			return game.Move{}, metrics.SearchMetric{}, err
		}
		if move, ok := game.FindMove(moves, from, to); ok {
			return move, metrics.SearchMetric{Candidates: len(moves)}, nil
		}
		fmt.Fprintln(a.out, "Try again!")
	}
}

// readSquare returns the next token as a square. Malformed tokens read as an
// off-board square, which no move matches.
func (a *HumanAgent) readSquare() (game.Square, error) {
	if !a.in.Scan() {
		if err := a.in.Err(); err != nil {
			return game.Square{}, fmt.Errorf("failed to read move: %w", err)
		}
		return game.Square{}, ErrInputClosed
	}
	sq, err := parseSquare(a.in.Text())
	if err != nil {
		return game.Square{Row: -1, Col: -1}, nil
	}
	return sq, nil
}

func parseSquare(token string) (game.Square, error) {
	if len(token) != 2 {
		return game.Square{}, fmt.Errorf("square %q: expected two digits", token)
	}
	row, col := int(token[0]-'0'), int(token[1]-'0')
	if row < 0 || row >= game.BoardSize || col < 0 || col >= game.BoardSize {
		return game.Square{}, fmt.Errorf("square %q: out of board", token)
	}
	return game.Square{Row: row, Col: col}, nil
}
