package eval_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/eval"
	"github.com/corvidchess/corvid/piece"
)

func TestPhaseWeightKingIsZero(t *testing.T) {
	require.EqualValues(t, 0, eval.PhaseWeight(piece.King))
}

func TestPhaseWeightQueenHeaviest(t *testing.T) {
	require.Greater(t, eval.PhaseWeight(piece.Queen), eval.PhaseWeight(piece.Rook))
	require.Greater(t, eval.PhaseWeight(piece.Rook), eval.PhaseWeight(piece.Knight))
}

func TestBlendMidgameUsesMGTable(t *testing.T) {
	// At full phase the blend should equal mg exactly.
	got := eval.Blend(100, -100, eval.TotalPhase, piece.White)
	require.EqualValues(t, 100, got)
}

func TestBlendEndgameUsesEGTable(t *testing.T) {
	got := eval.Blend(100, -100, 0, piece.White)
	require.EqualValues(t, -100, got)
}

func TestBlendClampsOutOfRangePhase(t *testing.T) {
	over := eval.Blend(100, 0, eval.TotalPhase+50, piece.White)
	require.EqualValues(t, 100, over)

	under := eval.Blend(0, 100, -50, piece.White)
	require.EqualValues(t, 100, under)
}

func TestBlendNegatesForBlack(t *testing.T) {
	white := eval.Blend(100, 100, eval.TotalPhase, piece.White)
	black := eval.Blend(100, 100, eval.TotalPhase, piece.Black)
	require.EqualValues(t, -white, black)
}

func TestPieceValueMirrorsAcrossColor(t *testing.T) {
	// e4 for white (sq 28) mirrors to e5 for black (sq 36): flipping a
	// white piece's square value should equal the black piece's value on
	// the mirrored square.
	wMG, wEG := eval.PieceValue(piece.WhitePawn, 28)
	bMG, bEG := eval.PieceValue(piece.BlackPawn, 36)
	require.Equal(t, wMG, bMG)
	require.Equal(t, wEG, bEG)
}
