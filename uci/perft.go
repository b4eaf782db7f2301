package uci

import (
	"fmt"

	"github.com/corvidchess/corvid/board"
	"github.com/corvidchess/corvid/perft"
)

// runPerft prints a perft-divide breakdown for pos at depth, followed by
// the total node count — a non-standard but widely supported UCI
// extension ("perft N") used to cross-check move generation against a
// reference engine's numbers.
func runPerft(pos *board.Board, depth int, w *writer) {
	total := perft.Divide(pos, depth, func(line string) {
		w.WriteLine(line)
	})
	w.WriteLine("")
	w.WriteLine(fmt.Sprintf("nodes searched: %d", total))
}
