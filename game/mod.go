package game

import "fmt"

const BoardSize = 8

// Side identifies the owner of a piece, or None for an empty cell.
type Side int

const (
	None Side = iota
	Computer
	Human
)

func (s Side) String() string {
	switch s {
	case Computer:
		return "computer"
	case Human:
		return "human"
	default:
		return "none"
	}
}

// Opponent returns the other player. None has no opponent.
func (s Side) Opponent() Side {
	switch s {
	case Computer:
		return Human
	case Human:
		return Computer
	default:
		return None
	}
}

// Forward is the row delta a man of this side advances by.
// The computer starts on rows 0-2 and moves down the board, the human moves up.
func (s Side) Forward() int {
	if s == Human {
		return -1
	}
	return 1
}

// PromotionRow is the opponent's back rank.
func (s Side) PromotionRow() int {
	if s == Human {
		return 0
	}
	return BoardSize - 1
}

// Square is a cell on the 8x8 grid.
type Square struct {
	Row int
	Col int
}

func (sq Square) String() string {
	return fmt.Sprintf("(%d, %d)", sq.Row, sq.Col)
}

func (sq Square) onBoard() bool {
	return sq.Row >= 0 && sq.Row < BoardSize && sq.Col >= 0 && sq.Col < BoardSize
}

func (sq Square) step(dr, dc, n int) Square {
	return Square{Row: sq.Row + dr*n, Col: sq.Col + dc*n}
}

// Piece is the content of a grid cell. A piece with Side None is empty.
type Piece struct {
	Side   Side
	Square Square
	King   bool
}

func (p Piece) Empty() bool {
	return p.Side == None
}
