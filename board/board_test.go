package board_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/attacks"
	"github.com/corvidchess/corvid/board"
	"github.com/corvidchess/corvid/move"
	"github.com/corvidchess/corvid/movegen"
	"github.com/corvidchess/corvid/zobrist"
)

// walkAndVerify recurses depth plies deep, re-deriving every incremental
// accumulator from piece placement at each node and comparing it against
// what MakeMove kept in sync. Any mismatch means a make/unmake bug.
func walkAndVerify(t *testing.T, b *board.Board, depth int) {
	t.Helper()
	if depth == 0 {
		return
	}

	var list move.List
	movegen.Generate(b, false, &list)
	for i := 0; i < list.Len; i++ {
		m := list.Moves[i]
		before := *b
		undo := b.MakeMove(m)

		check, err := board.ParseFEN(b.ToFEN())
		require.NoError(t, err)
		require.Equal(t, check.Key, b.Key, "key mismatch after %s", m.UCI())
		require.Equal(t, check.PawnKey, b.PawnKey, "pawn key mismatch after %s", m.UCI())
		require.Equal(t, check.MinorKey, b.MinorKey, "minor key mismatch after %s", m.UCI())
		require.Equal(t, check.MG, b.MG, "mg mismatch after %s", m.UCI())
		require.Equal(t, check.EG, b.EG, "eg mismatch after %s", m.UCI())
		require.Equal(t, check.Phase, b.Phase, "phase mismatch after %s", m.UCI())

		walkAndVerify(t, b, depth-1)

		b.UnmakeMove(m, undo)
		require.Equal(t, before, *b, "unmake did not restore board after %s", m.UCI())
	}
}

func TestMakeUnmakeAccumulatorsStartPos(t *testing.T) {
	attacks.Init()
	zobrist.Init()
	b, err := board.ParseFEN(board.StartFEN)
	require.NoError(t, err)
	walkAndVerify(t, b, 3)
}

func TestMakeUnmakeAccumulatorsTacticalPosition(t *testing.T) {
	attacks.Init()
	zobrist.Init()
	b, err := board.ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	walkAndVerify(t, b, 2)
}

func TestMakeNullMoveRoundTrip(t *testing.T) {
	attacks.Init()
	zobrist.Init()
	b, err := board.ParseFEN(board.StartFEN)
	require.NoError(t, err)

	before := *b
	ep, key := b.MakeNullMove()
	require.NotEqual(t, before.SideToMove, b.SideToMove)
	b.UnmakeNullMove(ep, key)
	require.Equal(t, before, *b)
}
