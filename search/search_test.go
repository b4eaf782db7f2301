package search_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/attacks"
	"github.com/corvidchess/corvid/board"
	"github.com/corvidchess/corvid/move"
	"github.com/corvidchess/corvid/movegen"
	"github.com/corvidchess/corvid/search"
	"github.com/corvidchess/corvid/timeman"
	"github.com/corvidchess/corvid/zobrist"
)

func init() {
	attacks.Init()
	zobrist.Init()
}

func newSearcher() (*search.Searcher, *timeman.Manager) {
	tm := timeman.NewManager(0)
	tt := search.NewTT(1)
	return search.NewSearcher(tt, tm), tm
}

func TestFindsMateInOne(t *testing.T) {
	// Black king boxed in by its own pawns: Ra1-a8 is back-rank mate.
	b, err := board.ParseFEN("6k1/5ppp/8/8/8/8/8/R3K2Q w - - 0 1")
	require.NoError(t, err)

	s, tm := newSearcher()
	tm.Start(timeman.Limits{HasExplicitLimit: true}, b.SideToMove, false)
	info := s.Run(b, []uint64{b.Key}, search.Limits{Depth: 4}, nil)

	require.NotEmpty(t, info.PV)
	require.True(t, search.IsMateScore(info.Score))
	require.Equal(t, 1, search.MateIn(info.Score))
}

func TestReturnsLegalMoveInQuietPosition(t *testing.T) {
	b, err := board.ParseFEN(board.StartFEN)
	require.NoError(t, err)

	s, tm := newSearcher()
	tm.Start(timeman.Limits{HasExplicitLimit: true}, b.SideToMove, false)
	info := s.Run(b, []uint64{b.Key}, search.Limits{Depth: 3}, nil)

	require.NotEmpty(t, info.PV)
	require.False(t, search.IsMateScore(info.Score))
}

func TestSearchRespectsSearchMoves(t *testing.T) {
	b, err := board.ParseFEN(board.StartFEN)
	require.NoError(t, err)

	only := move16(t, b, "g1f3")

	s, tm := newSearcher()
	tm.Start(timeman.Limits{HasExplicitLimit: true}, b.SideToMove, false)
	info := s.Run(b, []uint64{b.Key}, search.Limits{Depth: 2, SearchMoves: only}, nil)

	require.NotEmpty(t, info.PV)
	require.Equal(t, only[0], info.PV[0])
}

func TestMateDistanceStopsIterationEarly(t *testing.T) {
	// Black king boxed in by its own pawns: Ra1-a8 is back-rank mate.
	b, err := board.ParseFEN("6k1/5ppp/8/8/8/8/8/R3K2Q w - - 0 1")
	require.NoError(t, err)

	s, tm := newSearcher()
	tm.Start(timeman.Limits{WTime: 3000 * time.Millisecond, MovesToGo: 30}, b.SideToMove, false)

	var depths []int
	info := s.Run(b, []uint64{b.Key}, search.Limits{MateDistance: 1}, func(i search.Info) {
		depths = append(depths, i.Depth)
	})

	require.True(t, search.IsMateScore(info.Score))
	require.Equal(t, 1, search.MateIn(info.Score))
	require.Equal(t, []int{1}, depths, "soft stop must end the search the moment mate in 1 is proved")
}

func TestOnInfoCalledPerIteration(t *testing.T) {
	b, err := board.ParseFEN(board.StartFEN)
	require.NoError(t, err)

	s, tm := newSearcher()
	tm.Start(timeman.Limits{HasExplicitLimit: true}, b.SideToMove, false)

	var depths []int
	s.Run(b, []uint64{b.Key}, search.Limits{Depth: 3}, func(i search.Info) {
		depths = append(depths, i.Depth)
	})

	require.Equal(t, []int{1, 2, 3}, depths)
}

func move16(t *testing.T, b *board.Board, uci string) []move.Encoded {
	t.Helper()
	var list move.List
	movegen.Generate(b, false, &list)
	for i := 0; i < list.Len; i++ {
		if list.Moves[i].UCI() == uci {
			return []move.Encoded{list.Moves[i]}
		}
	}
	t.Fatalf("move %q not found", uci)
	return nil
}
