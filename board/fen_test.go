package board_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/attacks"
	"github.com/corvidchess/corvid/board"
	"github.com/corvidchess/corvid/piece"
	"github.com/corvidchess/corvid/zobrist"
)

func init() {
	attacks.Init()
	zobrist.Init()
}

func TestParseFENStartPos(t *testing.T) {
	b, err := board.ParseFEN(board.StartFEN)
	require.NoError(t, err)
	require.Equal(t, piece.White, b.SideToMove)
	require.Equal(t, board.WhiteShort|board.WhiteLong|board.BlackShort|board.BlackLong, b.Castling)
	require.Equal(t, 0, b.HalfmoveClock)
	require.Equal(t, 1, b.FullmoveCount)
}

func TestFENRoundTrip(t *testing.T) {
	cases := []string{
		board.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"4k3/8/8/8/8/8/8/4K2R w K - 0 1",
		"4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1",
	}
	for _, fen := range cases {
		b, err := board.ParseFEN(fen)
		require.NoError(t, err, fen)
		require.Equal(t, fen, b.ToFEN(), "round trip of %q", fen)
	}
}

func TestParseFENMissingFields(t *testing.T) {
	_, err := board.ParseFEN("")
	require.ErrorIs(t, err, board.ErrMissingPosition)

	_, err = board.ParseFEN(board.StartFEN[:len(board.StartFEN)-len(" w KQkq - 0 1")])
	require.ErrorIs(t, err, board.ErrMissingSideToMove)
}

func TestParseFENInvalidSideToMove(t *testing.T) {
	_, err := board.ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1")
	require.ErrorIs(t, err, board.ErrInvalidSideToMove)
	require.True(t, board.IsParseError(err))
}

func TestParseFENMissingKing(t *testing.T) {
	_, err := board.ParseFEN("rnbq1bnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.ErrorIs(t, err, board.ErrMissingKing)
}

func TestParseFENMultipleKings(t *testing.T) {
	_, err := board.ParseFEN("rnbqkbnr/ppppppKp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.ErrorIs(t, err, board.ErrMultipleKings)
}

func TestParseFENTouchingKings(t *testing.T) {
	_, err := board.ParseFEN("8/8/8/8/8/8/8/3kK3 w - - 0 1")
	require.ErrorIs(t, err, board.ErrTouchingKings)
}

func TestParseFENPawnOnPromotionRank(t *testing.T) {
	_, err := board.ParseFEN("Pnbqkbnr/1ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.ErrorIs(t, err, board.ErrPawnOnPromotionRank)
}

func TestParseFENInvalidEnPassant(t *testing.T) {
	_, err := board.ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1")
	require.ErrorIs(t, err, board.ErrInvalidEnPassant)
}

func TestParseFENInvalidHalfMoveClock(t *testing.T) {
	_, err := board.ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1")
	require.ErrorIs(t, err, board.ErrInvalidHalfMoveClock)
}

func TestParseFENTripleCheckRejected(t *testing.T) {
	// White king on e1 is simultaneously attacked by a bishop (a5), a
	// knight (c2), and a queen (e8) — three checkers on the side to
	// move's own king, which no legal sequence of moves can produce.
	_, err := board.ParseFEN("k3q3/8/8/b7/8/8/2n5/4K3 w - - 0 1")
	require.ErrorIs(t, err, board.ErrTooManyChecks)
}

func TestParseFENDoubleCheckIsLegal(t *testing.T) {
	// Same shape but with only two checkers: a legal (if unusual) position.
	_, err := board.ParseFEN("k7/8/8/b7/8/8/2n5/4K3 w - - 0 1")
	require.NoError(t, err)
}

func TestParseFENPieceAt(t *testing.T) {
	b, err := board.ParseFEN(board.StartFEN)
	require.NoError(t, err)
	require.Equal(t, piece.WhiteRook, b.PieceAt(0))
	require.Equal(t, piece.BlackKing, b.PieceAt(60))
	require.Equal(t, piece.None, b.PieceAt(28))
}
