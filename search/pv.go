package search

import "github.com/corvidchess/corvid/move"

// pvTable is a triangular principal-variation table: row ply holds the
// best line found from that ply onward, up to MaxPly-ply long. negamax
// copies a child's row into its own tail every time it raises alpha,
// which is cheaper than chasing parent pointers through the TT at the
// end of the search and works even when TT entries get overwritten.
type pvTable struct {
	length [MaxPly]int
	line   [MaxPly][MaxPly]move.Encoded
}

func (t *pvTable) clear(ply int) {
	t.length[ply] = 0
}

// update records m as the best move at ply and appends the child's PV
// (already sitting in row ply+1) behind it.
func (t *pvTable) update(ply int, m move.Encoded) {
	t.line[ply][0] = m
	childLen := t.length[ply+1]
	copy(t.line[ply][1:1+childLen], t.line[ply+1][:childLen])
	t.length[ply] = childLen + 1
}

// moves returns the best line found from the root.
func (t *pvTable) moves() []move.Encoded {
	return t.line[0][:t.length[0]]
}
