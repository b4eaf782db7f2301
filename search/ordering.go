package search

import (
	"github.com/corvidchess/corvid/board"
	"github.com/corvidchess/corvid/move"
	"github.com/corvidchess/corvid/piece"
)

// Score bands keep the coarse ordering (hash move first, then captures,
// then killers, then quiet history) intact regardless of how large a
// history score grows; within a band the tiebreak is whatever the band's
// own heuristic returns.
const (
	scoreHashMove   = 1 << 30
	scoreGoodCapture = 1 << 29
	scoreKiller1     = 1 << 28
	scoreKiller2     = 1 << 27
	scoreQuiet       = 0
)

// mvvLVA ranks a capture by (victim value, attacker value) so that
// "pawn takes queen" always sorts ahead of "queen takes pawn".
var mvvLVAValue = [piece.NumTypes]int32{100, 320, 330, 500, 900, 10000}

func scoreMove(b *board.Board, h *history, m move.Encoded, hashMove move.Encoded, ply int) int32 {
	if m == hashMove {
		return scoreHashMove
	}

	to := m.To()
	captured := b.PieceAt(to)
	if m.Flag() == move.EnPassant {
		captured = piece.Make(piece.Opposite(b.SideToMove), piece.Pawn)
	}

	if captured != piece.None {
		moved := b.PieceAt(m.From())
		victim := mvvLVAValue[captured.Type()]
		attacker := mvvLVAValue[moved.Type()]
		base := victim*16 - attacker
		return scoreGoodCapture + base + h.captureScore(moved, captured.Type())
	}

	if m.Flag().IsPromotion() {
		return scoreGoodCapture + mvvLVAValue[m.Flag().PromotionType()]
	}

	if h.isKiller(ply, m) {
		if m == h.killers[ply][0] {
			return scoreKiller1
		}
		return scoreKiller2
	}

	return scoreQuiet + h.quietScore(b.SideToMove, m)
}

// orderer scores every move in a list once up front, then pickBest does a
// linear scan + swap-to-front each call: for typical branching factors
// this beats sorting the whole list since search usually cuts off long
// before exhausting it.
type orderer struct {
	list   *move.List
	scores [218]int32
	next   int
}

func newOrderer(b *board.Board, h *history, list *move.List, hashMove move.Encoded, ply int) *orderer {
	o := &orderer{list: list}
	for i := 0; i < list.Len; i++ {
		o.scores[i] = scoreMove(b, h, list.Moves[i], hashMove, ply)
	}
	return o
}

// pickNext returns the next move in descending score order, or (0, false)
// once the list is exhausted.
func (o *orderer) pickNext() (move.Encoded, bool) {
	if o.next >= o.list.Len {
		return move.None16, false
	}
	best := o.next
	for i := o.next + 1; i < o.list.Len; i++ {
		if o.scores[i] > o.scores[best] {
			best = i
		}
	}
	o.list.Moves[o.next], o.list.Moves[best] = o.list.Moves[best], o.list.Moves[o.next]
	o.scores[o.next], o.scores[best] = o.scores[best], o.scores[o.next]
	m := o.list.Moves[o.next]
	o.next++
	return m, true
}
