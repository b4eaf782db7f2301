// Package attacks holds the precomputed attack tables for every piece
// type: leaper tables (pawn, knight, king) generated directly, and slider
// tables (bishop, rook) generated through magic-bitboard perfect hashing.
//
// Call Init once, as close to program start as possible. No table in this
// package is safe to read before Init has run.
package attacks

import "github.com/corvidchess/corvid/bitboard"

// Pawn, Knight, and King hold the precomputed leaper attack sets.
var (
	Pawn   [2][64]bitboard.Board
	Knight [64]bitboard.Board
	King   [64]bitboard.Board
)

// Init populates every attack table in this package: leapers, then the
// magic slider tables. It must run before any move generation.
func Init() {
	initSliderOccupancyMasks()
	initBetween()

	for sq := 0; sq < 64; sq++ {
		b := bitboard.Square(sq).Bit()

		Pawn[piece_White][sq] = genPawnAttacks(b, piece_White)
		Pawn[piece_Black][sq] = genPawnAttacks(b, piece_Black)
		Knight[sq] = genKnightAttacks(b)
		King[sq] = genKingAttacks(b)

		initMagicEntry(bitboard.Square(sq))
	}
}

// piece_White/piece_Black avoid importing the piece package just for two
// color indices used only internally to index the Pawn table.
const (
	piece_White = 0
	piece_Black = 1
)

func genPawnAttacks(pawn bitboard.Board, color int) bitboard.Board {
	if color == piece_White {
		return pawn.NorthWest() | pawn.NorthEast()
	}
	return pawn.SouthWest() | pawn.SouthEast()
}

func genKnightAttacks(knight bitboard.Board) bitboard.Board {
	notAB := bitboard.Board(0xFCFCFCFCFCFCFCFC)
	notGH := bitboard.Board(0x3F3F3F3F3F3F3F3F)
	return (knight&bitboard.NotFileA)>>17 |
		(knight&bitboard.NotFileH)>>15 |
		(knight&notAB)>>10 |
		(knight&notGH)>>6 |
		(knight&notAB)<<6 |
		(knight&notGH)<<10 |
		(knight&bitboard.NotFileA)<<15 |
		(knight&bitboard.NotFileH)<<17
}

func genKingAttacks(king bitboard.Board) bitboard.Board {
	return king.North() | king.South() | king.East() | king.West() |
		king.NorthEast() | king.NorthWest() | king.SouthEast() | king.SouthWest()
}
