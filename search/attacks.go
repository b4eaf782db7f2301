package search

import (
	"github.com/corvidchess/corvid/attacks"
	"github.com/corvidchess/corvid/bitboard"
	"github.com/corvidchess/corvid/board"
	"github.com/corvidchess/corvid/piece"
)

// squareAttackedBy reports whether any piece of color attacker attacks
// sq on board b. Used for the in-check test at the top of negamax and
// quiescence and by seeAtLeast; the move generator computes its own check mask more
// cheaply inline since it needs the attacking piece, not just a bool.
func squareAttackedBy(b *board.Board, sq bitboard.Square, attacker piece.Color) bool {
	defender := piece.Opposite(attacker)
	if attacks.Pawn[defender][sq].Overlaps(b.Pieces[piece.Make(attacker, piece.Pawn)]) {
		return true
	}
	if attacks.Knight[sq].Overlaps(b.Pieces[piece.Make(attacker, piece.Knight)]) {
		return true
	}
	if attacks.King[sq].Overlaps(b.Pieces[piece.Make(attacker, piece.King)]) {
		return true
	}
	diag := b.Pieces[piece.Make(attacker, piece.Bishop)] | b.Pieces[piece.Make(attacker, piece.Queen)]
	if attacks.Bishop(sq, b.Occ).Overlaps(diag) {
		return true
	}
	ortho := b.Pieces[piece.Make(attacker, piece.Rook)] | b.Pieces[piece.Make(attacker, piece.Queen)]
	if attacks.Rook(sq, b.Occ).Overlaps(ortho) {
		return true
	}
	return false
}
