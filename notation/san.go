// Package notation renders moves in Standard Algebraic Notation for
// human-facing output: debug board dumps and PV logging. UCI's own move
// format is long algebraic (move.Encoded.UCI), which is all the wire
// protocol ever needs; SAN exists purely for readability.
package notation

import (
	"strings"

	"github.com/corvidchess/corvid/bitboard"
	"github.com/corvidchess/corvid/board"
	"github.com/corvidchess/corvid/move"
	"github.com/corvidchess/corvid/movegen"
	"github.com/corvidchess/corvid/piece"
)

var pieceLetters = [piece.NumTypes]byte{0, 'N', 'B', 'R', 'Q', 'K'}

// SAN renders m, played from position b, in Standard Algebraic Notation.
// legalMoves must be the full legal move list generated from b (the
// caller already has one in hand during search/perft output, so this
// doesn't regenerate it) and is used purely to disambiguate two pieces
// of the same type that could reach the same destination square.
func SAN(b *board.Board, m move.Encoded, legalMoves *move.List) string {
	if m.Flag() == move.Castle {
		if m.To().File() == 2 { // c1/c8
			return "O-O-O"
		}
		return "O-O"
	}

	from, to := m.From(), m.To()
	moved := b.PieceAt(from)
	t := moved.Type()

	var sb strings.Builder
	sb.Grow(6)

	if letter := pieceLetters[t]; letter != 0 {
		sb.WriteByte(letter)
	}

	if t != piece.Pawn && t != piece.King {
		sb.WriteString(disambiguate(b, m, legalMoves, moved))
	}

	isCapture := b.PieceAt(to) != piece.None || m.Flag() == move.EnPassant
	if isCapture {
		if t == piece.Pawn {
			sb.WriteByte(fileLetter(from))
		}
		sb.WriteByte('x')
	}

	sb.WriteString(to.String())

	if m.Flag().IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte(pieceLetters[m.Flag().PromotionType()])
	}

	return sb.String()
}

func fileLetter(sq bitboard.Square) byte {
	return 'a' + byte(sq.File())
}

// disambiguate adds the minimum of source file, source rank, or both
// needed to distinguish m from any other legal move by a piece of the
// same type landing on the same square.
func disambiguate(b *board.Board, m move.Encoded, legalMoves *move.List, moved piece.Piece) string {
	sameFile, sameRank, ambiguous := false, false, false
	for i := 0; i < legalMoves.Len; i++ {
		other := legalMoves.Moves[i]
		if other == m || other.To() != m.To() {
			continue
		}
		if b.PieceAt(other.From()) != moved {
			continue
		}
		ambiguous = true
		if other.From().File() == m.From().File() {
			sameFile = true
		}
		if other.From().Rank() == m.From().Rank() {
			sameRank = true
		}
	}
	if !ambiguous {
		return ""
	}
	switch {
	case !sameFile:
		return string(rune(fileLetter(m.From())))
	case !sameRank:
		return string(rune('1' + m.From().Rank()))
	default:
		return m.From().String()
	}
}

// LinePV renders a full principal variation as space-separated SAN,
// replaying moves on a scratch copy of b so each move's disambiguation
// sees the position it was actually played from.
func LinePV(b board.Board, pv []move.Encoded) string {
	var parts []string
	for _, m := range pv {
		var list move.List
		movegen.Generate(&b, false, &list)
		parts = append(parts, SAN(&b, m, &list))
		b.MakeMove(m)
	}
	return strings.Join(parts, " ")
}
