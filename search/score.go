package search

import "github.com/corvidchess/corvid/eval"

// Score constants, grounded on the zurichess-derived scoring scheme in
// the reference engine: an explicit "known win/loss" band keeps mate
// scores distinguishable from any possible material evaluation.
const (
	Infinity  eval.CP = 32001
	MateScore eval.CP = 32000
	MatedScore eval.CP = -MateScore
	DrawScore eval.CP = 0

	// MaxPly bounds recursion depth and the size of ply-indexed tables
	// (killers, PV triangle).
	MaxPly = 128
)

// IsMateScore reports whether s represents a forced mate at some ply
// count, as opposed to an ordinary material/positional evaluation.
func IsMateScore(s eval.CP) bool {
	return s > MateScore-MaxPly || s < MatedScore+MaxPly
}

// MateIn returns the number of full moves to mate implied by s, for UCI's
// "score mate N" output. Only meaningful when IsMateScore(s) is true.
func MateIn(s eval.CP) int {
	if s > 0 {
		return int(MateScore-s+1) / 2
	}
	return -int(MateScore+s) / 2
}

// mateScore builds a "mated in ply plies from the root" score.
func mateScore(ply int) eval.CP {
	return MatedScore + eval.CP(ply)
}
