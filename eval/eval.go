// Package eval implements the tapered piece-square-table evaluator. Scores
// are maintained incrementally by the board package via addPiece/removePiece
// deltas; this package only supplies the static tables, the phase weights,
// and the blend.
package eval

import "github.com/corvidchess/corvid/piece"

// CP is a centipawn score, always expressed from the side to move's
// perspective once Blend has negated it for black.
type CP = int32

// Phase weight per non-king piece type, used to interpolate between the
// middlegame and endgame tables. Order matches piece.Pawn..piece.Queen.
var phaseWeight = [5]int32{0, 1, 1, 2, 4}

// TotalPhase is the phase value of the starting position: 16 pawns (weight
// 0) + 4 knights + 4 bishops + 4 rooks + 2 queens, weighted as above.
const TotalPhase = 16*0 + 4*1 + 4*1 + 4*2 + 2*4

// PhaseWeight returns the phase contribution of one piece type.
func PhaseWeight(t piece.Type) int32 {
	if t == piece.King {
		return 0
	}
	return phaseWeight[t]
}

// PieceValue returns the (middlegame, endgame) piece-square value of p
// standing on sq, with material already folded in.
func PieceValue(p piece.Piece, sq int) (mg, eg CP) {
	t := p.Type()
	s := sq
	if p.Color() == piece.Black {
		s = flipSquare(sq)
	}
	return mgTable[t][s], egTable[t][s]
}

// Blend interpolates between the middlegame and endgame running sums using
// the clamped material phase, then negates the result if black is to move
// so the returned score is always from the side to move's perspective.
func Blend(mg, eg CP, phase int32, sideToMove piece.Color) CP {
	if phase > TotalPhase {
		phase = TotalPhase
	} else if phase < 0 {
		phase = 0
	}
	score := (phase*mg + (TotalPhase-phase)*eg) / TotalPhase
	if sideToMove == piece.Black {
		score = -score
	}
	return score
}
