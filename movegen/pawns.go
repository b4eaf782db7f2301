package movegen

import (
	"github.com/corvidchess/corvid/attacks"
	"github.com/corvidchess/corvid/bitboard"
	"github.com/corvidchess/corvid/board"
	"github.com/corvidchess/corvid/move"
	"github.com/corvidchess/corvid/piece"
)

// generatePawnMoves covers single/double pushes, diagonal captures, en
// passant (including the discovered-check test for the rare case where
// removing both the capturing and captured pawn exposes the king to a
// rank attack), and all four promotion choices.
func generatePawnMoves(b *board.Board, side, opp piece.Color, friendly, enemy, emptySquares, occ bitboard.Board,
	checkMask, pinnedDiag, pinnedOrtho bitboard.Board, pinRayDiag, pinRayOrtho [64]bitboard.Board,
	kingSq bitboard.Square, capturesOnly bool, list *move.List) {

	pawns := b.Pieces[piece.Make(side, piece.Pawn)]
	promotionRank := bitboard.Rank8
	if side == piece.Black {
		promotionRank = bitboard.Rank1
	}

	bb := pawns
	for bb != 0 {
		from := bitboard.PopLSB(&bb)
		fromBit := from.Bit()

		var onePush, twoPush, captures bitboard.Board
		var startRank int
		if side == piece.White {
			onePush = fromBit.North() & emptySquares
			if onePush != 0 {
				twoPush = onePush.North() & emptySquares
			}
			captures = (fromBit.NorthWest() | fromBit.NorthEast()) & enemy
			startRank = 1
		} else {
			onePush = fromBit.South() & emptySquares
			if onePush != 0 {
				twoPush = onePush.South() & emptySquares
			}
			captures = (fromBit.SouthWest() | fromBit.SouthEast()) & enemy
			startRank = 6
		}
		if from.Rank() != startRank {
			twoPush = 0
		}

		restrict := func(t bitboard.Board) bitboard.Board {
			t &= checkMask
			if pinnedOrtho.Test(from) {
				t &= pinRayOrtho[from]
			} else if pinnedDiag.Test(from) {
				t &= pinRayDiag[from]
			}
			return t
		}

		onePush = restrict(onePush)
		twoPush = restrict(twoPush)
		captures = restrict(captures)

		if capturesOnly {
			onePush &= promotionRank // quiet pushes only kept if they promote
			twoPush = 0
		}

		if onePush != 0 {
			to := onePush.LSB()
			pushPromotion(from, to, onePush.Overlaps(promotionRank), capturesOnly, list)
		}
		if twoPush != 0 {
			to := twoPush.LSB()
			list.Push(move.Encode(move.Move{From: from, To: to, Flag: move.PawnTwoUp}))
		}
		for captures != 0 {
			to := bitboard.PopLSB(&captures)
			pushPromotion(from, to, to.Bit().Overlaps(promotionRank), false, list)
		}

		// En passant: only legal when the landing square is the board's EP
		// target and it survives the discovered-check test.
		if b.EPTarget != bitboard.NoSquare {
			epBit := b.EPTarget.Bit()
			isDiagAdjacent := epBit == fromBit.NorthWest() || epBit == fromBit.NorthEast() ||
				epBit == fromBit.SouthWest() || epBit == fromBit.SouthEast()
			if isDiagAdjacent {
				capturedSq := b.EPTarget - 8
				if side == piece.Black {
					capturedSq = b.EPTarget + 8
				}
				allowed := true
				if pinnedOrtho.Test(from) {
					allowed = pinRayOrtho[from].Test(b.EPTarget)
				} else if pinnedDiag.Test(from) {
					allowed = pinRayDiag[from].Test(b.EPTarget)
				}
				if allowed && (checkMask.Test(b.EPTarget) || checkMask.Test(capturedSq)) &&
					!epExposesCheck(b, opp, from, capturedSq, kingSq) {
					list.Push(move.Encode(move.Move{From: from, To: b.EPTarget, Flag: move.EnPassant}))
				}
			}
		}
	}
}

// pushPromotion appends a push/capture move to to, expanding into the four
// promotion flags when landing on the back rank. queenOnly restricts a
// quiet promotion to just the queen choice, for quiescence search: a
// quiet underpromotion is never worth searching there.
func pushPromotion(from, to bitboard.Square, isPromotion, queenOnly bool, list *move.List) {
	if !isPromotion {
		list.Push(move.Encode(move.Move{From: from, To: to, Flag: move.None}))
		return
	}
	list.Push(move.Encode(move.Move{From: from, To: to, Flag: move.QueenPromotion}))
	if queenOnly {
		return
	}
	list.Push(move.Encode(move.Move{From: from, To: to, Flag: move.RookPromotion}))
	list.Push(move.Encode(move.Move{From: from, To: to, Flag: move.BishopPromotion}))
	list.Push(move.Encode(move.Move{From: from, To: to, Flag: move.KnightPromotion}))
}

// epExposesCheck answers the classic en-passant edge case: removing both
// the capturing pawn (from) and the captured pawn (capturedSq) can expose
// the king to a rank attack neither pawn's own pin status accounts for,
// since the pin detector only ever considers one missing piece at a time.
func epExposesCheck(b *board.Board, opp piece.Color, from, capturedSq, kingSq bitboard.Square) bool {
	occAfter := b.Occ.Without(from.Bit()).Without(capturedSq.Bit())
	enemyRooks := b.Pieces[piece.Make(opp, piece.Rook)] | b.Pieces[piece.Make(opp, piece.Queen)]
	return attacks.Rook(kingSq, occAfter).Overlaps(enemyRooks)
}

// generateCastling emits the up-to-two castling moves available to side,
// each gated on rights, an empty path, and no square along the king's
// path (including its start) being attacked.
func generateCastling(b *board.Board, side piece.Color, danger, occ bitboard.Board, list *move.List) {
	if side == piece.White {
		if b.Castling&board.WhiteShort != 0 &&
			!occ.Overlaps(bitboard.F1.Bit()|bitboard.G1.Bit()) &&
			!danger.Overlaps(bitboard.E1.Bit()|bitboard.F1.Bit()|bitboard.G1.Bit()) {
			list.Push(move.Encode(move.Move{From: bitboard.E1, To: bitboard.G1, Flag: move.Castle}))
		}
		if b.Castling&board.WhiteLong != 0 &&
			!occ.Overlaps(bitboard.D1.Bit()|bitboard.C1.Bit()|bitboard.B1.Bit()) &&
			!danger.Overlaps(bitboard.E1.Bit()|bitboard.D1.Bit()|bitboard.C1.Bit()) {
			list.Push(move.Encode(move.Move{From: bitboard.E1, To: bitboard.C1, Flag: move.Castle}))
		}
		return
	}
	if b.Castling&board.BlackShort != 0 &&
		!occ.Overlaps(bitboard.F8.Bit()|bitboard.G8.Bit()) &&
		!danger.Overlaps(bitboard.E8.Bit()|bitboard.F8.Bit()|bitboard.G8.Bit()) {
		list.Push(move.Encode(move.Move{From: bitboard.E8, To: bitboard.G8, Flag: move.Castle}))
	}
	if b.Castling&board.BlackLong != 0 &&
		!occ.Overlaps(bitboard.D8.Bit()|bitboard.C8.Bit()|bitboard.B8.Bit()) &&
		!danger.Overlaps(bitboard.E8.Bit()|bitboard.D8.Bit()|bitboard.C8.Bit()) {
		list.Push(move.Encode(move.Move{From: bitboard.E8, To: bitboard.C8, Flag: move.Castle}))
	}
}
