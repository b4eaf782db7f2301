package attacks

import "github.com/corvidchess/corvid/bitboard"

// Between[a][b] holds the squares strictly between a and b (exclusive of
// both) when they share a rank, file, or diagonal; zero otherwise. It is
// the shared primitive behind check-mask construction ("which squares
// block or capture this checker") and pin-ray construction ("which
// squares may a pinned piece still move to"), per spec.md §4.2.
var Between [64][64]bitboard.Board

var rayDeltas = [8][2]int{
	{0, 1}, {0, -1}, {1, 0}, {-1, 0},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

func initBetween() {
	for sq := 0; sq < 64; sq++ {
		from := bitboard.Square(sq)
		ffile, frank := from.File(), from.Rank()
		for _, d := range rayDeltas {
			var acc bitboard.Board
			file, rank := ffile+d[0], frank+d[1]
			for file >= 0 && file < 8 && rank >= 0 && rank < 8 {
				to := bitboard.SquareFromCoords(file, rank)
				Between[sq][to] = acc
				acc |= to.Bit()
				file += d[0]
				rank += d[1]
			}
		}
	}
}
