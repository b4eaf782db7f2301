package search

import (
	"github.com/corvidchess/corvid/board"
	"github.com/corvidchess/corvid/eval"
	"github.com/corvidchess/corvid/move"
	"github.com/corvidchess/corvid/movegen"
	"github.com/corvidchess/corvid/piece"
)

// quiescence resolves captures and queen promotions until the position
// is "quiet", so the static evaluation at the search's leaves never
// judges a position in the middle of a tactical exchange. A stand-pat
// score establishes the floor: if just sitting still already beats beta,
// there's no need to look at any capture.
func (s *Searcher) quiescence(b *board.Board, ply int, alpha, beta eval.CP) eval.CP {
	if ply > s.seldepth {
		s.seldepth = ply
	}

	s.nodes++
	if s.nodes&1023 == 0 && s.Time.HardStopInner(s.nodes, s.nodeLimit) {
		return 0
	}

	inCheck := isInCheck(b)
	standPat := staticEval(b, s.hist)

	var hashMove move.Encoded
	if ttBest, ttScore, _, _, ttBound, ok := s.TT.Probe(b.Key); ok {
		hashMove = ttBest
		switch ttBound {
		case BoundExact:
			return ttScore
		case BoundLower:
			if ttScore >= beta {
				return ttScore
			}
		case BoundUpper:
			if ttScore <= alpha {
				return ttScore
			}
		}
	}

	if !inCheck {
		if standPat >= beta {
			return standPat
		}
		if standPat > alpha {
			alpha = standPat
		}
	}

	var list move.List
	movegen.Generate(b, !inCheck, &list)
	if list.Len == 0 {
		if inCheck {
			return mateScore(ply)
		}
		return standPat
	}

	order := newOrderer(b, s.hist, &list, hashMove, ply)
	best := move.None16
	bestScore := standPat
	if inCheck {
		bestScore = -Infinity
	}

	for {
		m, ok := order.pickNext()
		if !ok {
			break
		}

		if !inCheck {
			captured := capturedPiece(b, m)
			if captured != piece.None && !seeAtLeast(b, m, 0) {
				continue // losing capture: not worth exploring in qsearch
			}
		}

		undo := b.MakeMove(m)
		s.pushKey(b.Key)
		score := -s.quiescence(b, ply+1, -beta, -alpha)
		s.popKey()
		b.UnmakeMove(m, undo)

		if s.Time.Stopped() {
			return 0
		}

		if score > bestScore {
			bestScore = score
			best = m
			if score > alpha {
				alpha = score
				if score >= beta {
					break
				}
			}
		}
	}

	bound := BoundUpper
	if bestScore >= beta {
		bound = BoundLower
	} else if best != move.None16 {
		bound = BoundExact
	}
	s.TT.Store(b.Key, best, bestScore, standPat, 0, bound)

	return bestScore
}

// seeAtLeast runs a simplified static-exchange evaluation: just compares
// the captured piece's value against the moving piece's value, treating
// any capture with a attacker cheaper than its victim as always worth
// trying and filtering out the clearly losing ones (queen takes
// pawn-defended-by-pawn, etc.) without walking the full exchange.
func seeAtLeast(b *board.Board, m move.Encoded, threshold int32) bool {
	captured := capturedPiece(b, m)
	if captured == piece.None {
		return true
	}
	moved := b.PieceAt(m.From())
	gain := mvvLVAValue[captured.Type()]
	if m.Flag().IsPromotion() {
		gain += mvvLVAValue[m.Flag().PromotionType()] - mvvLVAValue[piece.Pawn]
	}
	if gain-mvvLVAValue[moved.Type()] >= threshold {
		return true
	}
	return !squareAttackedBy(b, m.To(), piece.Opposite(b.SideToMove))
}
