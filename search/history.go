package search

import (
	"github.com/corvidchess/corvid/eval"
	"github.com/corvidchess/corvid/move"
	"github.com/corvidchess/corvid/piece"
)

// history holds every move-ordering memory table that survives across a
// single iterative-deepening search: quiet and capture history, killer
// moves per ply, and the pawn/minor correction-history tables used to
// nudge the static evaluation toward what quiescence actually found.
type history struct {
	quiet   [2][64][64]int32
	capture [piece.NumPieces][piece.NumTypes]int32
	killers [MaxPly][2]move.Encoded

	pawnCorrection  [2][16384]int32
	minorCorrection [2][16384]int32
}

const correctionGrain = 256
const correctionMax = correctionGrain * 32

func newHistory() *history {
	return &history{}
}

func (h *history) clear() {
	*h = history{}
}

// bonus/malus follow the standard gravity formula: move the stat toward
// the target by an amount proportional to (target - current), so it
// self-limits instead of needing a hard clamp check on every update.
func historyBonus(table *int32, delta, max int32) {
	*table += delta - (*table)*abs32(delta)/max
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func (h *history) updateQuiet(side piece.Color, m move.Encoded, bonus int32, max int32) {
	historyBonus(&h.quiet[side][m.From()][m.To()], bonus, max)
}

func (h *history) quietScore(side piece.Color, m move.Encoded) int32 {
	return h.quiet[side][m.From()][m.To()]
}

func (h *history) updateCapture(moved piece.Piece, captured piece.Type, bonus int32, max int32) {
	historyBonus(&h.capture[moved][captured], bonus, max)
}

func (h *history) captureScore(moved piece.Piece, captured piece.Type) int32 {
	return h.capture[moved][captured]
}

func (h *history) addKiller(ply int, m move.Encoded) {
	if h.killers[ply][0] == m {
		return
	}
	h.killers[ply][1] = h.killers[ply][0]
	h.killers[ply][0] = m
}

func (h *history) isKiller(ply int, m move.Encoded) bool {
	return m == h.killers[ply][0] || m == h.killers[ply][1]
}

func correctionIndex(key uint64) uint64 {
	return key % 16384
}

func (h *history) correctionDelta(side piece.Color, pawnKey, minorKey uint64) eval.CP {
	p := h.pawnCorrection[side][correctionIndex(pawnKey)]
	mi := h.minorCorrection[side][correctionIndex(minorKey)]
	return eval.CP((p + mi) / (2 * correctionGrain))
}

func (h *history) updateCorrection(side piece.Color, pawnKey, minorKey uint64, depth int, diff eval.CP) {
	weight := int32(depth)
	if weight > 16 {
		weight = 16
	}
	scaled := int32(diff) * correctionGrain

	updateOne := func(table *int32, scaled, weight int32) {
		v := (*table)*(64-weight) + scaled*weight
		v /= 64
		if v > correctionMax {
			v = correctionMax
		} else if v < -correctionMax {
			v = -correctionMax
		}
		*table = v
	}
	updateOne(&h.pawnCorrection[side][correctionIndex(pawnKey)], scaled, weight)
	updateOne(&h.minorCorrection[side][correctionIndex(minorKey)], scaled, weight)
}
