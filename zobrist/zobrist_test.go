package zobrist_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/bitboard"
	"github.com/corvidchess/corvid/piece"
	"github.com/corvidchess/corvid/zobrist"
)

func TestPieceKeysAreDistinct(t *testing.T) {
	zobrist.Init()
	seen := make(map[uint64]bool)
	for p := piece.Piece(0); p < piece.NumPieces; p++ {
		for sq := bitboard.A1; sq <= bitboard.H8; sq++ {
			k := zobrist.Piece(p, sq)
			require.False(t, seen[k], "duplicate zobrist key for piece %d square %d", p, sq)
			seen[k] = true
		}
	}
}

func TestSideKeyIsSelfInverse(t *testing.T) {
	zobrist.Init()
	key := uint64(0xdeadbeef)
	key ^= zobrist.Side()
	key ^= zobrist.Side()
	require.EqualValues(t, 0xdeadbeef, key)
}

func TestFromScratchMatchesIncrementalXOR(t *testing.T) {
	zobrist.Init()

	board := map[bitboard.Square]piece.Piece{
		bitboard.E1: piece.WhiteKing,
		bitboard.E8: piece.BlackKing,
		bitboard.D2: piece.WhitePawn,
		bitboard.D7: piece.BlackPawn,
		bitboard.B1: piece.WhiteKnight,
	}
	pieceAt := func(sq bitboard.Square) piece.Piece {
		if p, ok := board[sq]; ok {
			return p
		}
		return piece.None
	}

	want := zobrist.FromScratch(pieceAt, 0, bitboard.NoSquare, piece.White)

	var got uint64
	for sq, p := range board {
		got ^= zobrist.Piece(p, sq)
	}
	got ^= zobrist.Castling(0)

	require.Equal(t, want, got)
}

func TestFromScratchSubOnlyIncludesMatchingPieces(t *testing.T) {
	zobrist.Init()

	board := map[bitboard.Square]piece.Piece{
		bitboard.E1: piece.WhiteKing,
		bitboard.D2: piece.WhitePawn,
		bitboard.B1: piece.WhiteKnight,
	}
	pieceAt := func(sq bitboard.Square) piece.Piece {
		if p, ok := board[sq]; ok {
			return p
		}
		return piece.None
	}

	pawnKey := zobrist.FromScratchSub(pieceAt, zobrist.IsPawn)
	require.Equal(t, zobrist.Piece(piece.WhitePawn, bitboard.D2), pawnKey)

	minorKey := zobrist.FromScratchSub(pieceAt, zobrist.IsMinor)
	require.Equal(t, zobrist.Piece(piece.WhiteKnight, bitboard.B1), minorKey)
}

func TestIsPawnIsMinorDisjoint(t *testing.T) {
	for t2 := piece.Piece(0); t2 < piece.NumPieces; t2++ {
		require.False(t, zobrist.IsPawn(t2) && zobrist.IsMinor(t2))
	}
}
