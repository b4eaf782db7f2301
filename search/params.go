// Package search implements iterative-deepening alpha-beta search over a
// board.Board: transposition table, move ordering, null-move and late-move
// pruning, late-move reductions, quiescence search, and correction history.
package search

// Params collects every search tunable in one place so the UCI layer and
// bench command can override them without threading individual fields
// through every function signature.
type Params struct {
	NullMoveMinDepth     int
	NullMoveBaseReduction int
	NullMoveDepthDivisor int

	RazorMargin int32

	ReverseFutilityMargin int32
	ReverseFutilityMaxDepth int

	FutilityMargin    int32
	FutilityMaxDepth  int

	LMRMinDepth  int
	LMRMinMoveNo int

	LMPMaxDepth int
	LMPBase     int

	AspirationWindow int32

	IIRMinDepth int

	HistoryMax int32
}

// DefaultParams mirrors the tuned defaults shipped by most NNUE-less
// alpha-beta engines in this weight class: conservative margins that win
// more nodes than they cost.
func DefaultParams() Params {
	return Params{
		NullMoveMinDepth:       3,
		NullMoveBaseReduction:  3,
		NullMoveDepthDivisor:   4,
		RazorMargin:            300,
		ReverseFutilityMargin:  80,
		ReverseFutilityMaxDepth: 8,
		FutilityMargin:         100,
		FutilityMaxDepth:       6,
		LMRMinDepth:            3,
		LMRMinMoveNo:           3,
		LMPMaxDepth:            8,
		LMPBase:                4,
		AspirationWindow:       25,
		IIRMinDepth:            4,
		HistoryMax:             16384,
	}
}
