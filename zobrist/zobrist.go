// Package zobrist implements the incremental position-hashing scheme used
// for transposition-table indexing and repetition detection. Keys are
// generated randomly and are large enough that the probability of a hash
// collision is negligible.
//
// Call Init once, as close to program start as possible; repetition
// detection and TT lookups are meaningless before that.
package zobrist

import (
	"math/rand/v2"

	"github.com/corvidchess/corvid/bitboard"
	"github.com/corvidchess/corvid/piece"
)

var (
	pieceKeys    [piece.NumPieces][64]uint64
	epFileKeys   [8]uint64
	castlingKeys [16]uint64
	sideKey      uint64
)

// Init fills every key table from a fixed-seed pseudo-random generator,
// so the keys are the same on every run.
func Init() {
	r := rand.New(rand.NewPCG(0x636f72766964, 0x7a6f62726973))
	for p := 0; p < piece.NumPieces; p++ {
		for sq := 0; sq < 64; sq++ {
			pieceKeys[p][sq] = r.Uint64()
		}
	}
	for f := range epFileKeys {
		epFileKeys[f] = r.Uint64()
	}
	for c := range castlingKeys {
		castlingKeys[c] = r.Uint64()
	}
	sideKey = r.Uint64()
}

// Piece returns the XOR term for placing/removing p on sq.
func Piece(p piece.Piece, sq bitboard.Square) uint64 {
	return pieceKeys[p][sq]
}

// EnPassant returns the XOR term for an en-passant target on the given
// file. Callers only XOR this in when a target square is actually set.
func EnPassant(file int) uint64 {
	return epFileKeys[file]
}

// Castling returns the XOR term for a given castling-rights nibble.
// Because rights only ever shrink, callers XOR out Castling(old) and XOR
// in Castling(new) whenever rights change.
func Castling(rights int) uint64 {
	return castlingKeys[rights&0xF]
}

// Side returns the XOR term toggled every time the side to move changes.
func Side() uint64 {
	return sideKey
}

// IsPawn reports whether p contributes to the pawn-only key.
func IsPawn(p piece.Piece) bool {
	return p.Type() == piece.Pawn
}

// IsMinor reports whether p contributes to the minor-piece-only key
// (knights and bishops, per spec.md's minor-piece correction history).
func IsMinor(p piece.Piece) bool {
	t := p.Type()
	return t == piece.Knight || t == piece.Bishop
}

// FromScratch recomputes the full position key from a piece-at lookup
// function; used only when a Board is freshly installed (FEN parse), not
// during ordinary make/unmake which updates the key incrementally.
func FromScratch(pieceAt func(bitboard.Square) piece.Piece, castlingRights int, epTarget bitboard.Square, sideToMove piece.Color) uint64 {
	var key uint64
	for sq := bitboard.A1; sq <= bitboard.H8; sq++ {
		p := pieceAt(sq)
		if p != piece.None {
			key ^= Piece(p, sq)
		}
	}
	key ^= Castling(castlingRights)
	if epTarget != bitboard.NoSquare {
		key ^= EnPassant(epTarget.File())
	}
	if sideToMove == piece.Black {
		key ^= Side()
	}
	return key
}

// FromScratchSub recomputes a restricted key (pawn-only or minor-only)
// using the given membership predicate, for the same reason as
// FromScratch: only used when installing a fresh Board.
func FromScratchSub(pieceAt func(bitboard.Square) piece.Piece, include func(piece.Piece) bool) uint64 {
	var key uint64
	for sq := bitboard.A1; sq <= bitboard.H8; sq++ {
		p := pieceAt(sq)
		if p != piece.None && include(p) {
			key ^= Piece(p, sq)
		}
	}
	return key
}
