// Package perft counts leaf nodes of the legal move tree to a fixed
// depth, the standard cross-engine correctness check for a move
// generator: known-good node counts exist for a handful of reference
// positions (see movegen's tests), and any divergence pinpoints a bug.
package perft

import (
	"fmt"

	"github.com/corvidchess/corvid/board"
	"github.com/corvidchess/corvid/move"
	"github.com/corvidchess/corvid/movegen"
)

// Count returns the number of leaf positions depth plies deep from b.
func Count(b *board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var list move.List
	movegen.Generate(b, false, &list)
	if depth == 1 {
		return uint64(list.Len)
	}
	var nodes uint64
	for i := 0; i < list.Len; i++ {
		m := list.Moves[i]
		undo := b.MakeMove(m)
		nodes += Count(b, depth-1)
		b.UnmakeMove(m, undo)
	}
	return nodes
}

// Divide breaks the depth-deep count down by root move, in UCI's
// conventional "perft divide" format: one move-and-count line per legal
// root move is passed to out, and the total is returned rather than
// written. Used to bisect a perft mismatch
// against a reference engine down to the exact diverging subtree.
func Divide(b *board.Board, depth int, out func(line string)) uint64 {
	var list move.List
	movegen.Generate(b, false, &list)
	var total uint64
	for i := 0; i < list.Len; i++ {
		m := list.Moves[i]
		undo := b.MakeMove(m)
		var n uint64
		if depth > 1 {
			n = Count(b, depth-1)
		} else {
			n = 1
		}
		b.UnmakeMove(m, undo)
		out(fmt.Sprintf("%s: %d", m.UCI(), n))
		total += n
	}
	return total
}
