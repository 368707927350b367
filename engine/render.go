package engine

import (
	"checkers/game"
	"fmt"
	"io"
	"strings"
)

var glyphs = map[game.Side][2]string{
	game.None:     {"~", "~"},
	game.Computer: {"○", "◓"},
	game.Human:    {"●", "◒"},
}

// Render prints the board with row and column indices.
func Render(w io.Writer, p *game.Position) {
	var b strings.Builder
	b.WriteString("  ")
	for col := 0; col < game.BoardSize; col++ {
		fmt.Fprintf(&b, "%d ", col)
	}
	b.WriteByte('\n')
	for row := 0; row < game.BoardSize; row++ {
		fmt.Fprintf(&b, "%d ", row)
		for col := 0; col < game.BoardSize; col++ {
			piece := p.At(game.Square{Row: row, Col: col})
			king := 0
			if piece.King {
				king = 1
			}
			b.WriteString(glyphs[piece.Side][king])
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	io.WriteString(w, b.String())
}

func announce(w io.Writer, m game.Move) {
	fmt.Fprintf(w, "Made %s to %s\n", m.From, m.To)
	if len(m.Captured) == 0 {
		return
	}
	captured := make([]string, len(m.Captured))
	for i, sq := range m.Captured {
		captured[i] = sq.String()
	}
	fmt.Fprintf(w, "Pieces eaten: %s\n", strings.Join(captured, " "))
}

func listMoves(w io.Writer, moves []game.Move) {
	fmt.Fprintln(w, "Possible moves:")
	for _, m := range moves {
		fmt.Fprintf(w, "From %s to %s\n", m.From, m.To)
	}
}

func title(side game.Side) string {
	s := side.String()
	return strings.ToUpper(s[:1]) + s[1:]
}
