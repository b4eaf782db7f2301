// Package bitboard implements the 64-bit square-set primitive and square
// arithmetic used throughout the engine.
package bitboard

import "math/bits"

// Square addresses a board square in little-endian rank-file order:
// a1 = 0, h1 = 7, a8 = 56, h8 = 63.
type Square int

// NoSquare marks the absence of a square (e.g. no en-passant target).
const NoSquare Square = -1

// Square name constants, used to avoid magic numbers at call sites.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// squareNames maps each square to its algebraic notation.
var squareNames = [64]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// String returns the algebraic notation of the square, e.g. "e4".
func (s Square) String() string {
	if s < A1 || s > H8 {
		return "-"
	}
	return squareNames[s]
}

// File returns the file (0 = a, 7 = h) of the square.
func (s Square) File() int { return int(s) & 7 }

// Rank returns the rank (0 = rank 1, 7 = rank 8) of the square.
func (s Square) Rank() int { return int(s) >> 3 }

// SquareFromCoords builds a Square from a zero-based file/rank pair.
func SquareFromCoords(file, rank int) Square { return Square(rank*8 + file) }

// SquareFromName parses algebraic notation ("e4") into a Square. Returns
// NoSquare for "-" or malformed input.
func SquareFromName(name string) Square {
	if len(name) != 2 || name == "-" {
		return NoSquare
	}
	file := int(name[0] - 'a')
	rank := int(name[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare
	}
	return SquareFromCoords(file, rank)
}

// Bit returns the single-bit Board addressing the square.
func (s Square) Bit() Board { return Board(1) << uint(s) }

// Board is a 64-bit set of squares, indexed by Square.
type Board uint64

// Full is the board with every square set.
const Full Board = 0xFFFFFFFFFFFFFFFF

// File bitboards, a through h.
const (
	FileA Board = 0x0101010101010101
	FileH Board = FileA << 7
)

// Rank bitboards, 1 through 8.
const (
	Rank1 Board = 0xFF
	Rank8 Board = Rank1 << 56
)

// NotFileA and NotFileH exclude wraparound on horizontal shifts.
const (
	NotFileA Board = ^FileA
	NotFileH Board = ^FileH
)

// Union returns the bitwise-or of two boards.
func (b Board) Union(o Board) Board { return b | o }

// Intersect returns the bitwise-and of two boards.
func (b Board) Intersect(o Board) Board { return b & o }

// Complement returns the bitwise-not of the board.
func (b Board) Complement() Board { return ^b }

// Without removes the squares of o from b.
func (b Board) Without(o Board) Board { return b &^ o }

// Overlaps reports whether b and o share at least one square.
func (b Board) Overlaps(o Board) bool { return b&o != 0 }

// Test reports whether square s is a member of b.
func (b Board) Test(s Square) bool { return b&s.Bit() != 0 }

// Empty reports whether the board has no squares set.
func (b Board) Empty() bool { return b == 0 }

// MoreThanOne reports whether the board has two or more squares set.
// Used by the FEN parser's king-count check.
func (b Board) MoreThanOne() bool { return b&(b-1) != 0 }

// Count returns the number of squares set (population count).
func (b Board) Count() int { return bits.OnesCount64(uint64(b)) }

// LSB returns the lowest-indexed square set in b, or NoSquare if empty.
func (b Board) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB removes and returns the lowest-indexed square from *b. Returns
// NoSquare if the board was already empty.
func PopLSB(b *Board) Square {
	s := b.LSB()
	if s == NoSquare {
		return NoSquare
	}
	*b &= *b - 1
	return s
}

// Shift directions, expressed as bit shifts with edge masking so pieces
// don't wrap around the board.
func (b Board) North() Board { return b << 8 }
func (b Board) South() Board { return b >> 8 }
func (b Board) East() Board  { return (b & NotFileH) << 1 }
func (b Board) West() Board  { return (b & NotFileA) >> 1 }

func (b Board) NorthEast() Board { return (b & NotFileH) << 9 }
func (b Board) NorthWest() Board { return (b & NotFileA) << 7 }
func (b Board) SouthEast() Board { return (b & NotFileH) >> 7 }
func (b Board) SouthWest() Board { return (b & NotFileA) >> 9 }
