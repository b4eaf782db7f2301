// Package board implements piece placement, FEN I/O, and make/unmake, plus
// the incrementally maintained Zobrist keys and tapered-eval running sums
// that ride along with every move (spec.md's "SearchState").
package board

import (
	"github.com/corvidchess/corvid/bitboard"
	"github.com/corvidchess/corvid/eval"
	"github.com/corvidchess/corvid/move"
	"github.com/corvidchess/corvid/piece"
	"github.com/corvidchess/corvid/zobrist"
)

// Castling right bits.
const (
	WhiteShort = 1
	WhiteLong  = 2
	BlackShort = 4
	BlackLong  = 8
)

// Board is a complete chess position: twelve piece bitboards, derived
// occupancy, game state (castling/en-passant/halfmove clock), and the
// incrementally maintained Zobrist keys and PSQT running sums that the
// search reads on every node without recomputing from scratch.
type Board struct {
	Pieces  [piece.NumPieces]bitboard.Board
	ColorBB [2]bitboard.Board
	Occ     bitboard.Board
	mailbox [64]piece.Piece

	SideToMove    piece.Color
	Castling      int
	EPTarget      bitboard.Square
	HalfmoveClock int
	FullmoveCount int

	// Incremental accumulators (spec.md §3 "SearchState").
	Key      uint64
	PawnKey  uint64
	MinorKey uint64
	MG       eval.CP
	EG       eval.CP
	Phase    int32
}

// Undo carries everything MakeMove needs to hand back to UnmakeMove
// (spec.md's "ExtendedState"): the prior GameState plus a snapshot of the
// incremental accumulators and whatever piece MakeMove captured.
type Undo struct {
	Castling      int
	EPTarget      bitboard.Square
	HalfmoveClock int
	Captured      piece.Piece
	Key           uint64
	PawnKey       uint64
	MinorKey      uint64
	MG            eval.CP
	EG            eval.CP
	Phase         int32
}

// PieceAt returns the piece standing on sq, or piece.None.
func (b *Board) PieceAt(sq bitboard.Square) piece.Piece {
	return b.mailbox[sq]
}

// addPiece places p on sq and folds it into every incremental accumulator.
// The caller must ensure sq is currently empty.
func (b *Board) addPiece(p piece.Piece, sq bitboard.Square) {
	b.Pieces[p] |= sq.Bit()
	b.ColorBB[p.Color()] |= sq.Bit()
	b.Occ |= sq.Bit()
	b.mailbox[sq] = p

	b.Key ^= zobrist.Piece(p, sq)
	if zobrist.IsPawn(p) {
		b.PawnKey ^= zobrist.Piece(p, sq)
	} else if zobrist.IsMinor(p) {
		b.MinorKey ^= zobrist.Piece(p, sq)
	}

	mg, eg := eval.PieceValue(p, int(sq))
	b.MG += mg
	b.EG += eg
	b.Phase += eval.PhaseWeight(p.Type())
}

// removePiece removes p from sq (which must currently hold it) and backs
// it out of every incremental accumulator.
func (b *Board) removePiece(p piece.Piece, sq bitboard.Square) {
	b.Pieces[p] &^= sq.Bit()
	b.ColorBB[p.Color()] &^= sq.Bit()
	b.Occ &^= sq.Bit()
	b.mailbox[sq] = piece.None

	b.Key ^= zobrist.Piece(p, sq)
	if zobrist.IsPawn(p) {
		b.PawnKey ^= zobrist.Piece(p, sq)
	} else if zobrist.IsMinor(p) {
		b.MinorKey ^= zobrist.Piece(p, sq)
	}

	mg, eg := eval.PieceValue(p, int(sq))
	b.MG -= mg
	b.EG -= eg
	b.Phase -= eval.PhaseWeight(p.Type())
}

// movePiece relocates p from `from` to `to` as a removePiece followed by
// an addPiece, so every incremental table gets two updates (one per
// square) rather than a combined "move" update.
func (b *Board) movePiece(p piece.Piece, from, to bitboard.Square) {
	b.removePiece(p, from)
	b.addPiece(p, to)
}

// rookSquareRight maps the four rook home squares to the castling right
// that depends on a rook standing there.
func rookSquareRight(sq bitboard.Square) int {
	switch sq {
	case bitboard.A1:
		return WhiteLong
	case bitboard.H1:
		return WhiteShort
	case bitboard.A8:
		return BlackLong
	case bitboard.H8:
		return BlackShort
	}
	return 0
}

// setCastling updates Castling and keeps Key in sync with the change.
func (b *Board) setCastling(rights int) {
	b.Key ^= zobrist.Castling(b.Castling)
	b.Castling = rights
	b.Key ^= zobrist.Castling(b.Castling)
}

// setEPTarget updates EPTarget and keeps Key in sync.
func (b *Board) setEPTarget(sq bitboard.Square) {
	if b.EPTarget != bitboard.NoSquare {
		b.Key ^= zobrist.EnPassant(b.EPTarget.File())
	}
	b.EPTarget = sq
	if b.EPTarget != bitboard.NoSquare {
		b.Key ^= zobrist.EnPassant(b.EPTarget.File())
	}
}

// MakeMove applies m to the board and returns the Undo needed to reverse
// it. It is the caller's responsibility to ensure m is legal; calling
// MakeMove with a `from` square devoid of a friendly piece is a programmer
// error and panics when debug assertions are enabled (see assertions.go).
func (b *Board) MakeMove(m move.Encoded) Undo {
	from, to, flag := m.From(), m.To(), m.Flag()
	movedPiece := b.mailbox[from]
	assertf(movedPiece != piece.None, "MakeMove: no piece on %s", from)

	undo := Undo{
		Castling:      b.Castling,
		EPTarget:      b.EPTarget,
		HalfmoveClock: b.HalfmoveClock,
		Captured:      piece.None,
		Key:           b.Key,
		PawnKey:       b.PawnKey,
		MinorKey:      b.MinorKey,
		MG:            b.MG,
		EG:            b.EG,
		Phase:         b.Phase,
	}

	isPawnMove := movedPiece.Type() == piece.Pawn

	switch flag {
	case move.EnPassant:
		capSq := to - 8
		if movedPiece.Color() == piece.Black {
			capSq = to + 8
		}
		captured := b.mailbox[capSq]
		b.removePiece(captured, capSq)
		undo.Captured = captured
		b.movePiece(movedPiece, from, to)

	case move.Castle:
		if captured := b.mailbox[to]; captured != piece.None {
			b.removePiece(captured, to)
		}
		b.movePiece(movedPiece, from, to)
		rookFrom, rookTo := castleRookSquares(to)
		rook := b.mailbox[rookFrom]
		b.movePiece(rook, rookFrom, rookTo)

	case move.QueenPromotion, move.RookPromotion, move.BishopPromotion, move.KnightPromotion:
		if captured := b.mailbox[to]; captured != piece.None {
			b.removePiece(captured, to)
			undo.Captured = captured
		}
		b.removePiece(movedPiece, from)
		b.addPiece(piece.Make(movedPiece.Color(), flag.PromotionType()), to)

	default: // move.None, move.PawnTwoUp
		if captured := b.mailbox[to]; captured != piece.None {
			b.removePiece(captured, to)
			undo.Captured = captured
		}
		b.movePiece(movedPiece, from, to)
	}

	if undo.Captured != piece.None || isPawnMove {
		b.HalfmoveClock = 0
	} else {
		b.HalfmoveClock++
	}

	b.setEPTarget(bitboard.NoSquare)
	if flag == move.PawnTwoUp {
		if movedPiece.Color() == piece.White {
			b.setEPTarget(to - 8)
		} else {
			b.setEPTarget(to + 8)
		}
	}

	newRights := b.Castling
	switch movedPiece {
	case piece.WhiteKing:
		newRights &^= WhiteShort | WhiteLong
	case piece.BlackKing:
		newRights &^= BlackShort | BlackLong
	}
	newRights &^= rookSquareRight(from)
	newRights &^= rookSquareRight(to)
	if newRights != b.Castling {
		b.setCastling(newRights)
	}

	if b.SideToMove == piece.Black {
		b.FullmoveCount++
	}
	b.SideToMove = piece.Opposite(b.SideToMove)
	b.Key ^= zobrist.Side()

	return undo
}

// castleRookSquares returns the rook's (from, to) pair for a king move
// landing on to (one of the four castling destination squares).
func castleRookSquares(kingTo bitboard.Square) (from, to bitboard.Square) {
	switch kingTo {
	case bitboard.G1:
		return bitboard.H1, bitboard.F1
	case bitboard.C1:
		return bitboard.A1, bitboard.D1
	case bitboard.G8:
		return bitboard.H8, bitboard.F8
	default: // C8
		return bitboard.A8, bitboard.D8
	}
}

// UnmakeMove reverses the effect of MakeMove(m), given the Undo it
// returned. The board must not have been modified in between.
func (b *Board) UnmakeMove(m move.Encoded, u Undo) {
	b.SideToMove = piece.Opposite(b.SideToMove)
	if b.SideToMove == piece.Black {
		b.FullmoveCount--
	}

	from, to, flag := m.From(), m.To(), m.Flag()

	switch flag {
	case move.EnPassant:
		movedPiece := b.mailbox[to]
		b.movePiece(movedPiece, to, from)
		capSq := to - 8
		if movedPiece.Color() == piece.Black {
			capSq = to + 8
		}
		b.addPiece(u.Captured, capSq)

	case move.Castle:
		rookFrom, rookTo := castleRookSquares(to)
		rook := b.mailbox[rookTo]
		b.movePiece(rook, rookTo, rookFrom)
		king := b.mailbox[to]
		b.movePiece(king, to, from)

	case move.QueenPromotion, move.RookPromotion, move.BishopPromotion, move.KnightPromotion:
		promoted := b.mailbox[to]
		b.removePiece(promoted, to)
		b.addPiece(piece.Make(promoted.Color(), piece.Pawn), from)
		if u.Captured != piece.None {
			b.addPiece(u.Captured, to)
		}

	default:
		movedPiece := b.mailbox[to]
		b.movePiece(movedPiece, to, from)
		if u.Captured != piece.None {
			b.addPiece(u.Captured, to)
		}
	}

	b.Castling = u.Castling
	b.EPTarget = u.EPTarget
	b.HalfmoveClock = u.HalfmoveClock
	b.Key = u.Key
	b.PawnKey = u.PawnKey
	b.MinorKey = u.MinorKey
	b.MG = u.MG
	b.EG = u.EG
	b.Phase = u.Phase
}

// MakeNullMove toggles the side to move without moving a piece, used by
// null-move pruning. Returns the (EPTarget, Key) pair needed to undo it.
func (b *Board) MakeNullMove() (epTarget bitboard.Square, key uint64) {
	epTarget, key = b.EPTarget, b.Key
	b.setEPTarget(bitboard.NoSquare)
	b.SideToMove = piece.Opposite(b.SideToMove)
	b.Key ^= zobrist.Side()
	return
}

// UnmakeNullMove reverses MakeNullMove.
func (b *Board) UnmakeNullMove(epTarget bitboard.Square, key uint64) {
	b.SideToMove = piece.Opposite(b.SideToMove)
	b.EPTarget = epTarget
	b.Key = key
}
