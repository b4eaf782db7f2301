// Package movegen implements fully legal move generation directly, without
// a pseudo-legal-then-filter pass: a check mask built from the checking
// piece's ray to the king, a king-danger bitboard computed with the king
// removed from occupancy, and per-square pin rays computed by x-raying
// through exactly one friendly blocker (spec.md §4.2).
package movegen

import (
	"github.com/corvidchess/corvid/attacks"
	"github.com/corvidchess/corvid/bitboard"
	"github.com/corvidchess/corvid/board"
	"github.com/corvidchess/corvid/move"
	"github.com/corvidchess/corvid/piece"
)

// Generate appends every legal move in b to list. When capturesOnly is
// true only captures and promotions to a queen are produced (the subset
// quiescence search wants); quiet check evasions are skipped even though
// they may be the position's only legal moves, which is why quiescence
// asks for capturesOnly only when the side to move is not in check.
func Generate(b *board.Board, capturesOnly bool, list *move.List) {
	side := b.SideToMove
	opp := piece.Opposite(side)

	friendly := b.ColorBB[side]
	enemy := b.ColorBB[opp]
	occ := b.Occ
	emptySquares := occ.Complement()

	kingSq := b.Pieces[piece.Make(side, piece.King)].LSB()
	enemyKingSq := b.Pieces[piece.Make(opp, piece.King)].LSB()

	enemyPawns := b.Pieces[piece.Make(opp, piece.Pawn)]
	enemyKnights := b.Pieces[piece.Make(opp, piece.Knight)]
	enemyBishops := b.Pieces[piece.Make(opp, piece.Bishop)]
	enemyRooks := b.Pieces[piece.Make(opp, piece.Rook)]
	enemyQueens := b.Pieces[piece.Make(opp, piece.Queen)]
	enemyDiag := enemyBishops | enemyQueens
	enemyOrtho := enemyRooks | enemyQueens

	// King danger: attacks the enemy would deliver if our king weren't
	// standing in the way of its own slider attacks (otherwise a king
	// "fleeing" straight back along a rook's ray would be seen as legal).
	occWithoutKing := occ.Without(kingSq.Bit())
	var danger bitboard.Board
	danger |= attacks.King[enemyKingSq]
	bb := enemyPawns
	for bb != 0 {
		s := bitboard.PopLSB(&bb)
		danger |= attacks.Pawn[opp][s]
	}
	bb = enemyKnights
	for bb != 0 {
		s := bitboard.PopLSB(&bb)
		danger |= attacks.Knight[s]
	}
	bb = enemyDiag
	for bb != 0 {
		s := bitboard.PopLSB(&bb)
		danger |= attacks.Bishop(s, occWithoutKing)
	}
	bb = enemyOrtho
	for bb != 0 {
		s := bitboard.PopLSB(&bb)
		danger |= attacks.Rook(s, occWithoutKing)
	}

	// Checkers and the resulting check mask (squares that block the check
	// or capture the checker; Full when not in check).
	var checkers bitboard.Board
	checkers |= attacks.Pawn[side][kingSq] & enemyPawns
	checkers |= attacks.Knight[kingSq] & enemyKnights
	checkers |= attacks.Bishop(kingSq, occ) & enemyDiag
	checkers |= attacks.Rook(kingSq, occ) & enemyOrtho
	numCheckers := checkers.Count()

	checkMask := bitboard.Full
	if numCheckers == 1 {
		checkerSq := checkers.LSB()
		checkMask = attacks.Between[kingSq][checkerSq] | checkerSq.Bit()
	}

	kingTargets := attacks.King[kingSq].Without(friendly).Without(danger)
	if capturesOnly {
		kingTargets &= enemy
	}
	emit(kingSq, kingTargets, list)

	if numCheckers >= 2 {
		// Double check: only the king can move.
		return
	}

	pinnedDiag, pinRayDiag := pinsAndRays(kingSq, enemyDiag, friendly, occ, attacks.Bishop)
	pinnedOrtho, pinRayOrtho := pinsAndRays(kingSq, enemyOrtho, friendly, occ, attacks.Rook)
	pinned := pinnedDiag | pinnedOrtho

	if numCheckers == 0 && !capturesOnly {
		generateCastling(b, side, danger, occ, list)
	}

	generatePawnMoves(b, side, opp, friendly, enemy, emptySquares, occ, checkMask,
		pinnedDiag, pinnedOrtho, pinRayDiag, pinRayOrtho, kingSq, capturesOnly, list)

	knights := b.Pieces[piece.Make(side, piece.Knight)].Without(pinned)
	bb = knights
	for bb != 0 {
		s := bitboard.PopLSB(&bb)
		targets := attacks.Knight[s].Without(friendly).Intersect(checkMask)
		if capturesOnly {
			targets &= enemy
		}
		emit(s, targets, list)
	}

	diagMovers := b.Pieces[piece.Make(side, piece.Bishop)] | b.Pieces[piece.Make(side, piece.Queen)]
	bb = diagMovers
	for bb != 0 {
		s := bitboard.PopLSB(&bb)
		targets := attacks.Bishop(s, occ).Without(friendly).Intersect(checkMask)
		switch {
		case pinnedOrtho.Test(s):
			targets = 0
		case pinnedDiag.Test(s):
			targets &= pinRayDiag[s]
		}
		if capturesOnly {
			targets &= enemy
		}
		emit(s, targets, list)
	}

	orthoMovers := b.Pieces[piece.Make(side, piece.Rook)] | b.Pieces[piece.Make(side, piece.Queen)]
	bb = orthoMovers
	for bb != 0 {
		s := bitboard.PopLSB(&bb)
		targets := attacks.Rook(s, occ).Without(friendly).Intersect(checkMask)
		switch {
		case pinnedDiag.Test(s):
			targets = 0
		case pinnedOrtho.Test(s):
			targets &= pinRayOrtho[s]
		}
		if capturesOnly {
			targets &= enemy
		}
		emit(s, targets, list)
	}
}

// emit appends one move per target square with Flag.None. Whether a move
// is a capture is never encoded in the move itself; callers that need to
// know ask the board what stood on the destination square.
func emit(from bitboard.Square, targets bitboard.Board, list *move.List) {
	for targets != 0 {
		to := bitboard.PopLSB(&targets)
		list.Push(move.Encode(move.Move{From: from, To: to, Flag: move.None}))
	}
}

// pinsAndRays finds, for one slider color-group (bishops+queens, or
// rooks+queens), every friendly piece absolutely pinned to kingSq and the
// ray each may still move along. A piece is pinned when exactly one
// friendly piece sits strictly between the king and a pinner that would
// otherwise attack the king along that ray (found by "x-raying" through
// friendly pieces: compute the king's slider attack with friendly pieces
// removed from occupancy, which reaches pinners whether or not a single
// friendly piece stands between).
func pinsAndRays(kingSq bitboard.Square, pinners, friendly, occ bitboard.Board, sliderAttack func(bitboard.Square, bitboard.Board) bitboard.Board) (bitboard.Board, [64]bitboard.Board) {
	var pinned bitboard.Board
	var rays [64]bitboard.Board

	potential := sliderAttack(kingSq, occ.Without(friendly)) & pinners
	bb := potential
	for bb != 0 {
		s := bitboard.PopLSB(&bb)
		between := attacks.Between[kingSq][s] & occ
		if between.Count() == 1 && between.Overlaps(friendly) {
			sq := between.LSB()
			ray := attacks.Between[kingSq][s] | s.Bit()
			if pinned.Test(sq) {
				rays[sq] &= ray
			} else {
				rays[sq] = ray
			}
			pinned |= sq.Bit()
		}
	}
	return pinned, rays
}
