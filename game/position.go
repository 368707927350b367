package game

import (
	"checkers/utils"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Position is the board: an 8x8 grid of pieces plus, for each side, a roster of
// the squares its pieces occupy and a count of its kings.
//
// Rosters hold squares rather than pointers, so a copy only has to duplicate the
// grid and the roster slices. A square is in a side's roster iff its cell belongs
// to that side.
type Position struct {
	grid    [BoardSize][BoardSize]Piece
	rosters [3][]Square // Indexed by Side, None unused
	kings   [3]int      // Indexed by Side, None unused
}

// NewPosition returns the starting position: twelve men per side on the cells
// with an even row+col sum of that side's three nearest ranks.
func NewPosition() *Position {
	p := emptyPosition()
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if (row+col)%2 != 0 {
				continue
			}
			sq := Square{Row: row, Col: col}
			if row < 3 {
				p.place(Computer, sq, false)
			} else if row >= BoardSize-3 {
				p.place(Human, sq, false)
			}
		}
	}
	return p
}

func emptyPosition() *Position {
	p := &Position{}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p.grid[row][col].Square = Square{Row: row, Col: col}
		}
	}
	return p
}

// Copy returns an independent deep copy. Mutating the copy never affects p.
func (p *Position) Copy() *Position {
	c := &Position{grid: p.grid}
	for _, side := range []Side{Computer, Human} {
		c.rosters[side] = slices.Clone(p.rosters[side])
		for _, sq := range c.rosters[side] {
			if c.at(sq).King {
				c.kings[side]++
			}
		}
	}
	return c
}

// At returns the piece on sq. Off-board squares read as empty.
func (p *Position) At(sq Square) Piece {
	if !sq.onBoard() {
		return Piece{Square: sq}
	}
	return p.grid[sq.Row][sq.Col]
}

func (p *Position) at(sq Square) *Piece {
	return &p.grid[sq.Row][sq.Col]
}

// Pieces returns the squares occupied by side, in roster order.
func (p *Position) Pieces(side Side) []Square {
	if side == None {
		return nil
	}
	return slices.Clone(p.rosters[side])
}

func (p *Position) Count(side Side) int {
	if side == None {
		return 0
	}
	return len(p.rosters[side])
}

func (p *Position) Kings(side Side) int {
	if side == None {
		return 0
	}
	return p.kings[side]
}

func (p *Position) place(side Side, sq Square, king bool) {
	cell := p.at(sq)
	cell.Side = side
	cell.King = king
	p.rosters[side] = append(p.rosters[side], sq)
	if king {
		p.kings[side]++
	}
}

func (p *Position) remove(sq Square) {
	cell := p.at(sq)
	side := cell.Side
	if side == None {
		return
	}
	p.rosters[side] = utils.Remove(p.rosters[side], sq)
	if cell.King {
		p.kings[side]--
	}
	cell.Side = None
	cell.King = false
}

// ParsePosition builds a position from eight rows of eight glyphs:
// '.' empty, 'c'/'C' computer man/king, 'h'/'H' human man/king.
func ParsePosition(rows ...string) (*Position, error) {
	if len(rows) != BoardSize {
		return nil, fmt.Errorf("expected %d rows, got %d", BoardSize, len(rows))
	}
	p := emptyPosition()
	for row, line := range rows {
		if len(line) != BoardSize {
			return nil, fmt.Errorf("row %d: expected %d cells, got %d", row, BoardSize, len(line))
		}
		for col, glyph := range line {
			sq := Square{Row: row, Col: col}
			switch glyph {
			case '.':
			case 'c':
				p.place(Computer, sq, false)
			case 'C':
				p.place(Computer, sq, true)
			case 'h':
				p.place(Human, sq, false)
			case 'H':
				p.place(Human, sq, true)
			default:
				return nil, fmt.Errorf("row %d col %d: unknown glyph %q", row, col, glyph)
			}
		}
	}
	return p, nil
}

// MustParsePosition is ParsePosition for fixtures known to be valid.
func MustParsePosition(rows ...string) *Position {
	p, err := ParsePosition(rows...)
	if err != nil {
		panic(err)
	}
	return p
}

// String is the inverse of ParsePosition, rows separated by newlines.
func (p *Position) String() string {
	var b strings.Builder
	for row := 0; row < BoardSize; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < BoardSize; col++ {
			b.WriteByte(glyph(p.grid[row][col]))
		}
	}
	return b.String()
}

func glyph(piece Piece) byte {
	var g byte
	switch piece.Side {
	case Computer:
		g = 'c'
	case Human:
		g = 'h'
	default:
		return '.'
	}
	if piece.King {
		g -= 'a' - 'A'
	}
	return g
}
