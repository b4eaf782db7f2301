// Command corvid is the engine's UCI entry point: it wires a Server to
// stdin/stdout, and also exposes a "bench" subcommand for a
// deterministic, hash-pinned node-count/NPS check used to catch search
// regressions between builds.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/corvidchess/corvid/attacks"
	"github.com/corvidchess/corvid/board"
	"github.com/corvidchess/corvid/config"
	"github.com/corvidchess/corvid/search"
	"github.com/corvidchess/corvid/timeman"
	"github.com/corvidchess/corvid/uci"
	"github.com/corvidchess/corvid/zobrist"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML engine config file")
	debug := flag.Bool("debug", false, "enable debug-level logging to stderr")
	hashMB := flag.Int("hash", 0, "override the hash size in MB (also used by bench)")
	flag.Parse()

	log := newLogger(*debug)
	defer log.Sync()

	attacks.Init()
	zobrist.Init()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalw("failed to load config", "path", *configPath, "error", err)
		}
		cfg = loaded
	}
	if *hashMB > 0 {
		cfg.HashMB = *hashMB
	}

	if flag.Arg(0) == "bench" {
		runBench(cfg, log)
		return
	}

	server := uci.NewServer(cfg, log)
	server.Run(os.Stdin, os.Stdout)
}

func newLogger(debug bool) *zap.SugaredLogger {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "console"
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		// stderr is always writable in practice; a broken zap config here
		// means the process is too broken to run anyway.
		panic(err)
	}
	return logger.Sugar()
}

// benchPositions is a fixed FEN/depth list, cross-engine-style, so a
// "bench" run produces the same total node count on any machine given
// the same hash size.
var benchPositions = []struct {
	fen   string
	depth int
}{
	{board.StartFEN, 8},
	{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 7},
	{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 8},
	{"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 6},
	{"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 7},
	{"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", 6},
}

func runBench(cfg config.Engine, log *zap.SugaredLogger) {
	tt := search.NewTT(cfg.HashMB)
	tm := timeman.NewManager(0)
	searcher := search.NewSearcher(tt, tm)

	start := time.Now()
	var totalNodes uint64

	for _, bp := range benchPositions {
		pos, err := board.ParseFEN(bp.fen)
		if err != nil {
			log.Fatalw("bench position failed to parse", "fen", bp.fen, "error", err)
		}
		tt.Clear()
		tm.Start(timeman.Limits{HasExplicitLimit: true}, pos.SideToMove, false)
		info := searcher.Run(pos, []uint64{pos.Key}, search.Limits{Depth: bp.depth}, nil)
		totalNodes += info.Nodes
	}

	elapsed := time.Since(start)
	nps := uint64(0)
	if ms := elapsed.Milliseconds(); ms > 0 {
		nps = totalNodes * 1000 / uint64(ms)
	}
	fmt.Printf("%d nodes %d nps\n", totalNodes, nps)
	log.Infow("bench complete", "nodes", totalNodes, "nps", nps, "elapsed", elapsed, "hash_mb", cfg.HashMB)
}
