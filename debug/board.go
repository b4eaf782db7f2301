// Package debug renders a board.Board as a human-readable ASCII diagram,
// adapted from the teacher's board/position formatters for use behind
// the UCI "d" command instead of test-only visualization.
package debug

import (
	"strings"

	"github.com/corvidchess/corvid/bitboard"
	"github.com/corvidchess/corvid/board"
	"github.com/corvidchess/corvid/piece"
)

// Board renders b as an 8x8 diagram (rank 8 on top, as printed by every
// engine's "d" command) followed by side to move, castling rights, and
// the en-passant target.
func Board(b *board.Board) string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte(rank) + '1')
		sb.WriteString("  ")
		for file := 0; file < 8; file++ {
			sq := bitboard.Square(rank*8 + file)
			if p := b.PieceAt(sq); p != piece.None {
				sb.WriteByte(piece.Symbols[p])
			} else {
				sb.WriteByte('.')
			}
			sb.WriteString("  ")
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a  b  c  d  e  f  g  h\n")

	sb.WriteString("Side to move: ")
	if b.SideToMove == piece.White {
		sb.WriteString("white\n")
	} else {
		sb.WriteString("black\n")
	}

	sb.WriteString("Castling: ")
	if b.Castling == 0 {
		sb.WriteString("-")
	} else {
		if b.Castling&board.WhiteShort != 0 {
			sb.WriteByte('K')
		}
		if b.Castling&board.WhiteLong != 0 {
			sb.WriteByte('Q')
		}
		if b.Castling&board.BlackShort != 0 {
			sb.WriteByte('k')
		}
		if b.Castling&board.BlackLong != 0 {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte('\n')

	sb.WriteString("En passant: ")
	if b.EPTarget == 0 {
		sb.WriteString("-\n")
	} else {
		sb.WriteString(b.EPTarget.String())
		sb.WriteByte('\n')
	}

	sb.WriteString("FEN: ")
	sb.WriteString(b.ToFEN())
	sb.WriteByte('\n')

	return sb.String()
}
