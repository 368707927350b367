package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// requireConsistent checks that rosters and king counters agree with the grid.
func requireConsistent(t *testing.T, p *Position) {
	t.Helper()
	for _, side := range []Side{Computer, Human} {
		kings := 0
		seen := map[Square]bool{}
		for _, sq := range p.rosters[side] {
			require.False(t, seen[sq], "Roster of %s should not list %s twice", side, sq)
			seen[sq] = true
			require.Equal(t, side, p.At(sq).Side, "Roster of %s lists %s which it does not own", side, sq)
			if p.At(sq).King {
				kings++
			}
		}
		require.Equal(t, kings, p.kings[side], "King counter of %s should match its roster", side)

		for row := 0; row < BoardSize; row++ {
			for col := 0; col < BoardSize; col++ {
				sq := Square{Row: row, Col: col}
				require.Equal(t, sq, p.At(sq).Square, "Cell should know its own square")
				if p.At(sq).Side == side {
					require.True(t, seen[sq], "%s piece on %s should be in its roster", side, sq)
				}
			}
		}
	}
}

func TestNewPosition(t *testing.T) {
	p := NewPosition()

	require.Equal(t, ""+
		"c.c.c.c.\n"+
		".c.c.c.c\n"+
		"c.c.c.c.\n"+
		"........\n"+
		"........\n"+
		".h.h.h.h\n"+
		"h.h.h.h.\n"+
		".h.h.h.h", p.String())
	require.Equal(t, 12, p.Count(Computer))
	require.Equal(t, 12, p.Count(Human))
	require.Zero(t, p.Kings(Computer))
	require.Zero(t, p.Kings(Human))
	require.Zero(t, p.Score())
	requireConsistent(t, p)
}

func TestParsePosition(t *testing.T) {
	t.Run("round trips through String", func(t *testing.T) {
		rows := []string{
			"C.......",
			"........",
			"...c....",
			"........",
			"....h...",
			"........",
			"......H.",
			"........",
		}
		p, err := ParsePosition(rows...)

		require.NoError(t, err)
		require.Equal(t, MustParsePosition(rows...).String(), p.String())
		require.Equal(t, 2, p.Count(Computer))
		require.Equal(t, 1, p.Kings(Computer))
		require.Equal(t, 2, p.Count(Human))
		require.Equal(t, 1, p.Kings(Human))
		requireConsistent(t, p)
	})

	t.Run("rejects malformed boards", func(t *testing.T) {
		_, err := ParsePosition("........")
		require.Error(t, err, "Should require eight rows")

		rows := []string{"........", "........", "........", "...x....", "........", "........", "........", "........"}
		_, err = ParsePosition(rows...)
		require.Error(t, err, "Should reject unknown glyphs")

		rows[3] = "..."
		_, err = ParsePosition(rows...)
		require.Error(t, err, "Should require eight cells per row")
	})
}

func TestPositionCopy(t *testing.T) {
	original := NewPosition()
	before := original.String()

	c := original.Copy()
	move, ok := FindMove(c.LegalMoves(Human), Square{5, 1}, Square{4, 0})
	require.True(t, ok)
	c.Apply(move)

	require.Equal(t, before, original.String(), "Mutating the copy should not touch the original")
	require.NotEqual(t, before, c.String())
	require.Contains(t, original.Pieces(Human), Square{5, 1})
	require.NotContains(t, original.Pieces(Human), Square{4, 0})
	require.Contains(t, c.Pieces(Human), Square{4, 0})
	requireConsistent(t, original)
	requireConsistent(t, c)
}

func TestPositionPiecesIsACopy(t *testing.T) {
	p := NewPosition()
	pieces := p.Pieces(Computer)
	pieces[0] = Square{7, 7}

	require.NotContains(t, p.Pieces(Computer), Square{7, 7})
}
