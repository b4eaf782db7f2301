// Package piece contains the piece and color type declarations shared by
// every other package in the engine.
package piece

// Piece identifies one of the twelve piece kinds. Numbering is chosen so
// that Type() and Color() can be extracted with a mod/div by NumTypes
// instead of a lookup table.
type Piece int

const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	// None marks the absence of a piece on a square.
	None Piece = -1
)

// NumTypes is the number of distinct piece types per color (pawn..king).
const NumTypes = 6

// NumPieces is the number of piece kinds across both colors.
const NumPieces = 12

// Type is an allias type to avoid bothersome conversion between int and Type.
type Type = int

const (
	Pawn Type = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// Color is an allias type to avoid bothersome conversion between int and Color.
type Color = int

const (
	White Color = iota
	Black
)

// Type returns the piece type regardless of color.
func (p Piece) Type() Type {
	return int(p) % NumTypes
}

// Color returns the color of the piece.
func (p Piece) Color() Color {
	return int(p) / NumTypes
}

// Make builds the Piece for the given color/type pair.
func Make(c Color, t Type) Piece {
	return Piece(c*NumTypes + t)
}

// Symbols maps each piece to its FEN character.
var Symbols = [NumPieces]byte{
	'P', 'N', 'B', 'R', 'Q', 'K',
	'p', 'n', 'b', 'r', 'q', 'k',
}

// FromSymbol returns the Piece for a FEN character, or None if unrecognized.
func FromSymbol(c byte) Piece {
	switch c {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	}
	return None
}

// Opposite returns the other color.
func Opposite(c Color) Color {
	return c ^ 1
}
