package debug_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/attacks"
	"github.com/corvidchess/corvid/board"
	"github.com/corvidchess/corvid/debug"
	"github.com/corvidchess/corvid/zobrist"
)

func init() {
	attacks.Init()
	zobrist.Init()
}

func TestBoardRendersStartPos(t *testing.T) {
	b, err := board.ParseFEN(board.StartFEN)
	require.NoError(t, err)

	out := debug.Board(b)
	require.True(t, strings.Contains(out, "Side to move: white"))
	require.True(t, strings.Contains(out, "Castling: KQkq"))
	require.True(t, strings.Contains(out, "En passant: -"))
	require.True(t, strings.Contains(out, "FEN: "+board.StartFEN))
	// rank 8 printed first, back rank pieces visible
	require.True(t, strings.HasPrefix(out, "8  r"))
}

func TestBoardRendersEnPassantTarget(t *testing.T) {
	b, err := board.ParseFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)
	out := debug.Board(b)
	require.True(t, strings.Contains(out, "En passant: d6"))
}

func TestBoardRendersNoCastlingRights(t *testing.T) {
	b, err := board.ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	out := debug.Board(b)
	require.True(t, strings.Contains(out, "Castling: -"))
	require.True(t, strings.Contains(out, "Side to move: white"))
}

func TestBoardRendersBlackToMove(t *testing.T) {
	b, err := board.ParseFEN("4k3/8/8/8/8/8/8/4K3 b - - 0 1")
	require.NoError(t, err)
	out := debug.Board(b)
	require.True(t, strings.Contains(out, "Side to move: black"))
}
