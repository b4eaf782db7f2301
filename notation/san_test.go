package notation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/attacks"
	"github.com/corvidchess/corvid/board"
	"github.com/corvidchess/corvid/move"
	"github.com/corvidchess/corvid/movegen"
	"github.com/corvidchess/corvid/notation"
	"github.com/corvidchess/corvid/zobrist"
)

func init() {
	attacks.Init()
	zobrist.Init()
}

func findMove(t *testing.T, b *board.Board, uci string) move.Encoded {
	t.Helper()
	var list move.List
	movegen.Generate(b, false, &list)
	for i := 0; i < list.Len; i++ {
		if list.Moves[i].UCI() == uci {
			return list.Moves[i]
		}
	}
	t.Fatalf("move %q not found among legal moves", uci)
	return move.None16
}

func TestSANPawnPush(t *testing.T) {
	b, err := board.ParseFEN(board.StartFEN)
	require.NoError(t, err)
	var list move.List
	movegen.Generate(b, false, &list)
	m := findMove(t, b, "e2e4")
	require.Equal(t, "e4", notation.SAN(b, m, &list))
}

func TestSANKnightMove(t *testing.T) {
	b, err := board.ParseFEN(board.StartFEN)
	require.NoError(t, err)
	var list move.List
	movegen.Generate(b, false, &list)
	m := findMove(t, b, "g1f3")
	require.Equal(t, "Nf3", notation.SAN(b, m, &list))
}

func TestSANPawnCapture(t *testing.T) {
	b, err := board.ParseFEN("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
	require.NoError(t, err)
	var list move.List
	movegen.Generate(b, false, &list)
	m := findMove(t, b, "e4d5")
	require.Equal(t, "exd5", notation.SAN(b, m, &list))
}

func TestSANCastleKingside(t *testing.T) {
	b, err := board.ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	var list move.List
	movegen.Generate(b, false, &list)
	m := findMove(t, b, "e1g1")
	require.Equal(t, "O-O", notation.SAN(b, m, &list))
}

func TestSANCastleQueenside(t *testing.T) {
	b, err := board.ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	var list move.List
	movegen.Generate(b, false, &list)
	m := findMove(t, b, "e1c1")
	require.Equal(t, "O-O-O", notation.SAN(b, m, &list))
}

func TestSANPromotion(t *testing.T) {
	b, err := board.ParseFEN("8/4P3/8/8/8/8/k7/4K3 w - - 0 1")
	require.NoError(t, err)
	var list move.List
	movegen.Generate(b, false, &list)
	m := findMove(t, b, "e7e8q")
	require.Equal(t, "e8=Q", notation.SAN(b, m, &list))
}

func TestSANDisambiguatesByFile(t *testing.T) {
	// Two white rooks on the same rank can both reach b1.
	b, err := board.ParseFEN("4k3/8/8/8/8/8/8/R2R2K1 w - - 0 1")
	require.NoError(t, err)
	var list move.List
	movegen.Generate(b, false, &list)
	m := findMove(t, b, "a1b1")
	require.Equal(t, "Rab1", notation.SAN(b, m, &list))
}

func TestSANDisambiguatesByRank(t *testing.T) {
	// Two white rooks on the same file can both reach a2.
	b, err := board.ParseFEN("4k3/8/8/8/R7/8/8/R5K1 w - - 0 1")
	require.NoError(t, err)
	var list move.List
	movegen.Generate(b, false, &list)
	m := findMove(t, b, "a1a2")
	require.Equal(t, "R1a2", notation.SAN(b, m, &list))
}

func TestLinePVRendersFullLine(t *testing.T) {
	b, err := board.ParseFEN(board.StartFEN)
	require.NoError(t, err)
	pv := []move.Encoded{
		findMove(t, b, "e2e4"),
	}
	line := notation.LinePV(*b, pv)
	require.Equal(t, "e4", line)
}
