package uci_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/corvidchess/corvid/attacks"
	"github.com/corvidchess/corvid/board"
	"github.com/corvidchess/corvid/config"
	"github.com/corvidchess/corvid/uci"
	"github.com/corvidchess/corvid/zobrist"
)

func init() {
	attacks.Init()
	zobrist.Init()
}

func newTestServer() *uci.Server {
	return uci.NewServer(config.Default(), zap.NewNop().Sugar())
}

func TestUCIHandshake(t *testing.T) {
	s := newTestServer()
	in := strings.NewReader("uci\nquit\n")
	var out bytes.Buffer
	s.Run(in, &out)

	lines := out.String()
	require.Contains(t, lines, "id name Corvid")
	require.Contains(t, lines, "id author")
	require.Contains(t, lines, "option name Hash type spin")
	require.Contains(t, lines, "uciok")
}

func TestIsReady(t *testing.T) {
	s := newTestServer()
	in := strings.NewReader("isready\nquit\n")
	var out bytes.Buffer
	s.Run(in, &out)
	require.Contains(t, out.String(), "readyok")
}

func TestPositionMovesThenDisplay(t *testing.T) {
	s := newTestServer()
	in := strings.NewReader("position startpos moves e2e4 e7e5\nd\nquit\n")
	var out bytes.Buffer
	s.Run(in, &out)

	lines := out.String()
	require.Contains(t, lines, "Side to move: white")
	require.Contains(t, lines, "En passant: e6")
}

func TestPositionFEN(t *testing.T) {
	s := newTestServer()
	fen := "4k3/8/8/8/8/8/8/4K3 w - - 0 1"
	in := strings.NewReader("position fen " + fen + "\nd\nquit\n")
	var out bytes.Buffer
	s.Run(in, &out)
	require.Contains(t, out.String(), "FEN: "+fen)
}

func TestGoDepthReportsBestMove(t *testing.T) {
	s := newTestServer()
	in := strings.NewReader("position startpos\ngo depth 2\nquit\n")
	var out bytes.Buffer
	s.Run(in, &out)

	lines := out.String()
	require.Contains(t, lines, "bestmove")
	require.Contains(t, lines, "info depth")
}

func TestPerftCommand(t *testing.T) {
	s := newTestServer()
	in := strings.NewReader("perft 2\nquit\n")
	var out bytes.Buffer
	s.Run(in, &out)

	lines := out.String()
	require.Contains(t, lines, "nodes searched: 400")
}

func TestSetOptionHash(t *testing.T) {
	s := newTestServer()
	in := strings.NewReader("setoption name Hash value 16\nisready\nquit\n")
	var out bytes.Buffer
	s.Run(in, &out)
	require.Contains(t, out.String(), "readyok")
}

func TestUnknownCommandIsIgnored(t *testing.T) {
	s := newTestServer()
	in := strings.NewReader("notacommand\nisready\nquit\n")
	var out bytes.Buffer
	s.Run(in, &out)
	require.Contains(t, out.String(), "readyok")
}

func TestUciNewGameResetsPosition(t *testing.T) {
	s := newTestServer()
	in := strings.NewReader("position startpos moves e2e4\nucinewgame\nd\nquit\n")
	var out bytes.Buffer
	s.Run(in, &out)
	require.Contains(t, out.String(), "FEN: "+board.StartFEN)
}
