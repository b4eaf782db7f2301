// Package move implements the Move and EncodedMove representations and the
// fixed-capacity move list the generator fills.
package move

import (
	"strings"

	"github.com/corvidchess/corvid/bitboard"
	"github.com/corvidchess/corvid/piece"
)

// Flag distinguishes the special-cased move kinds. Promotion is split into
// four flags so the encoded move carries the promotion piece without a
// separate field.
type Flag uint8

const (
	None Flag = iota
	PawnTwoUp
	Castle
	EnPassant
	QueenPromotion
	RookPromotion
	BishopPromotion
	KnightPromotion
)

// IsPromotion reports whether the flag is one of the four promotion kinds.
func (f Flag) IsPromotion() bool {
	return f >= QueenPromotion && f <= KnightPromotion
}

// PromotionType returns the promoted-to piece type. Only valid when
// IsPromotion is true.
func (f Flag) PromotionType() piece.Type {
	switch f {
	case RookPromotion:
		return piece.Rook
	case BishopPromotion:
		return piece.Bishop
	case KnightPromotion:
		return piece.Knight
	default:
		return piece.Queen
	}
}

// Move is a (from, to, flag) triple describing one ply.
type Move struct {
	From bitboard.Square
	To   bitboard.Square
	Flag Flag
}

// Encoded packs a Move into 16 bits: 6 bits from, 6 bits to, 4 bits flag.
// The zero value, None16, is a sentinel meaning "no move".
type Encoded uint16

// None16 is the sentinel encoded move, used where a zero-valued move slot
// must be distinguishable from a legal one (TT entries, killer slots).
const None16 Encoded = 0

// Encode packs m into its 16-bit representation. a1-a1 with flag None
// also encodes to 0, but no generated move has from == to, so None16
// never collides with a legal move.
func Encode(m Move) Encoded {
	return Encoded(int(m.From) | int(m.To)<<6 | int(m.Flag)<<12)
}

// Decode unpacks an Encoded move back into its fields.
func (e Encoded) Decode() Move {
	return Move{
		From: bitboard.Square(e & 0x3F),
		To:   bitboard.Square((e >> 6) & 0x3F),
		Flag: Flag((e >> 12) & 0xF),
	}
}

func (e Encoded) From() bitboard.Square { return bitboard.Square(e & 0x3F) }
func (e Encoded) To() bitboard.Square   { return bitboard.Square((e >> 6) & 0x3F) }
func (e Encoded) Flag() Flag            { return Flag((e >> 12) & 0xF) }

// UCI renders the move in long algebraic notation: source square,
// destination square, optional promotion letter (q|r|b|n).
func (e Encoded) UCI() string {
	if e == None16 {
		return "0000"
	}
	var b strings.Builder
	b.Grow(5)
	b.WriteString(e.From().String())
	b.WriteString(e.To().String())
	switch e.Flag() {
	case QueenPromotion:
		b.WriteByte('q')
	case RookPromotion:
		b.WriteByte('r')
	case BishopPromotion:
		b.WriteByte('b')
	case KnightPromotion:
		b.WriteByte('n')
	}
	return b.String()
}

// MaxMoves bounds the number of legal moves any chess position can have.
// See https://www.chessprogramming.org/Chess_Position#Maximum_number_of_moves
const MaxMoves = 218

// List is a fixed-capacity, heap-allocation-free buffer of encoded moves.
// The generator appends to it via Push instead of returning a slice, so a
// single List can be reused across plies without allocating.
type List struct {
	Moves [MaxMoves]Encoded
	Len   int
}

// Push appends m to the list.
func (l *List) Push(m Encoded) {
	l.Moves[l.Len] = m
	l.Len++
}

// Reset empties the list for reuse.
func (l *List) Reset() { l.Len = 0 }

// Sink is the callback signature an alternative, allocation-free generator
// could invoke once per legal move instead of filling a List. This
// engine's generator writes directly into a *List (see package movegen),
// which spec.md notes as observationally equivalent to the sink style.
type Sink func(Encoded)
