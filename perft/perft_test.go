package perft_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/attacks"
	"github.com/corvidchess/corvid/board"
	"github.com/corvidchess/corvid/perft"
	"github.com/corvidchess/corvid/zobrist"
)

func init() {
	attacks.Init()
	zobrist.Init()
}

func TestCountKnownPositions(t *testing.T) {
	cases := []struct {
		fen   string
		depth int
		nodes uint64
	}{
		{board.StartFEN, 4, 197281},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 3, 97862},
		{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 4, 43238},
	}
	for _, c := range cases {
		b, err := board.ParseFEN(c.fen)
		require.NoError(t, err, c.fen)
		require.Equal(t, c.nodes, perft.Count(b, c.depth), "fen %q depth %d", c.fen, c.depth)
	}
}

func TestDivideSumsToCount(t *testing.T) {
	b, err := board.ParseFEN(board.StartFEN)
	require.NoError(t, err)

	var lines []string
	total := perft.Divide(b, 3, func(line string) {
		lines = append(lines, line)
	})

	require.Equal(t, perft.Count(b, 3), total)
	require.Len(t, lines, 20) // 20 legal root moves from the start position

	var sum uint64
	for _, line := range lines {
		parts := strings.SplitN(line, ": ", 2)
		require.Len(t, parts, 2)
		n, err := strconv.ParseUint(parts[1], 10, 64)
		require.NoError(t, err)
		sum += n
	}
	require.Equal(t, total, sum)
}

func TestCountDepthZeroIsOne(t *testing.T) {
	b, err := board.ParseFEN(board.StartFEN)
	require.NoError(t, err)
	require.EqualValues(t, 1, perft.Count(b, 0))
}
