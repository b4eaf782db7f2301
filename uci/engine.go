// Package uci implements a Universal Chess Interface command loop: it
// reads commands from a line-oriented input, drives position setup and
// search, and writes "info"/"bestmove" responses to a line-oriented
// output. Kept deliberately thin — every real decision (time management,
// move ordering, evaluation) lives in the packages it wires together.
package uci

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/corvidchess/corvid/board"
	"github.com/corvidchess/corvid/config"
	"github.com/corvidchess/corvid/debug"
	"github.com/corvidchess/corvid/move"
	"github.com/corvidchess/corvid/movegen"
	"github.com/corvidchess/corvid/search"
	"github.com/corvidchess/corvid/timeman"
	"go.uber.org/zap"
)

const engineName = "Corvid"
const engineAuthor = "corvidchess"

// Server holds everything that persists across a UCI session: the
// current position, its key history (for repetition detection), and the
// long-lived searcher/time-manager pair a "go" command drives.
type Server struct {
	log *zap.SugaredLogger

	mu       sync.Mutex
	pos      *board.Board
	keys     []uint64
	cfg      config.Engine
	searcher *search.Searcher
	tm       *timeman.Manager

	searching sync.WaitGroup
}

// NewServer builds a Server around cfg, ready to receive UCI commands.
func NewServer(cfg config.Engine, log *zap.SugaredLogger) *Server {
	tm := timeman.NewManager(cfg.MoveOverhead)
	tt := search.NewTT(cfg.HashMB)
	e := &Server{
		log:      log,
		cfg:      cfg,
		tm:       tm,
		searcher: search.NewSearcher(tt, tm),
	}
	e.resetPosition()
	return e
}

func (e *Server) resetPosition() {
	pos, err := board.ParseFEN(board.StartFEN)
	if err != nil {
		// StartFEN is a compile-time constant; a parse failure here means
		// the FEN parser itself is broken, not that the input was bad.
		panic(err)
	}
	e.pos = pos
	e.keys = []uint64{pos.Key}
}

// Run reads UCI commands from in, one per line, until "quit" or EOF,
// writing responses to out. Logging (search diagnostics, malformed
// commands) goes to log, never to out — out is reserved for the wire
// protocol a GUI is parsing.
func (e *Server) Run(in io.Reader, out io.Writer) {
	scanner := newLineScanner(in)
	w := &writer{out: out}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if e.dispatch(line, w) {
			return
		}
	}
}

// dispatch handles one command line, returning true if the engine
// should stop reading further commands.
func (e *Server) dispatch(line string, w *writer) bool {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "uci":
		e.handleUCI(w)
	case "isready":
		e.searching.Wait()
		w.WriteLine("readyok")
	case "ucinewgame":
		e.handleNewGame()
	case "position":
		e.handlePosition(args)
	case "setoption":
		e.handleSetOption(args)
	case "go":
		e.handleGo(args, w)
	case "stop":
		e.tm.Stop()
	case "ponderhit":
		e.tm.PonderHit()
	case "quit":
		e.tm.Stop()
		e.searching.Wait()
		return true
	case "debug":
		// accepted and ignored: diagnostics always go to the log, not stdout
	case "perft":
		e.handlePerft(args, w)
	case "d":
		e.handleDisplay(w)
	default:
		e.log.Debugw("unrecognized uci command", "line", line)
	}
	return false
}

func (e *Server) handleUCI(w *writer) {
	w.WriteLine(fmt.Sprintf("id name %s", engineName))
	w.WriteLine(fmt.Sprintf("id author %s", engineAuthor))
	w.WriteLine(fmt.Sprintf("option name Hash type spin default %d min 1 max 4096", e.cfg.HashMB))
	w.WriteLine("option name Threads type spin default 1 min 1 max 1")
	w.WriteLine(fmt.Sprintf("option name Move Overhead type spin default %d min 0 max 5000", e.cfg.MoveOverhead.Milliseconds()))
	w.WriteLine("option name Ponder type check default false")
	w.WriteLine("option name Clear Hash type button")
	w.WriteLine("uciok")
}

func (e *Server) handleNewGame() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.searcher.TT.Clear()
	e.resetPosition()
}

// handlePosition implements "position [startpos|fen <fen>] [moves ...]".
func (e *Server) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	i := 0
	switch args[0] {
	case "startpos":
		e.resetPosition()
		i = 1
	case "fen":
		end := i + 1
		for end < len(args) && args[end] != "moves" {
			end++
		}
		pos, err := board.ParseFEN(strings.Join(args[1:end], " "))
		if err != nil {
			e.log.Warnw("invalid fen in position command", "error", err)
			return
		}
		e.pos = pos
		e.keys = []uint64{pos.Key}
		i = end
	default:
		return
	}

	if i < len(args) && args[i] == "moves" {
		for _, uciMove := range args[i+1:] {
			m, ok := parseUCIMove(e.pos, uciMove)
			if !ok {
				e.log.Warnw("illegal move in position command", "move", uciMove)
				break
			}
			e.pos.MakeMove(m)
			e.keys = append(e.keys, e.pos.Key)
		}
	}
}

// parseUCIMove resolves a long-algebraic move string against the legal
// moves of b, so callers never have to hand-decode promotion letters or
// guess at castling/en-passant flags.
func parseUCIMove(b *board.Board, s string) (move.Encoded, bool) {
	var list move.List
	movegen.Generate(b, false, &list)
	for i := 0; i < list.Len; i++ {
		if list.Moves[i].UCI() == s {
			return list.Moves[i], true
		}
	}
	return move.None16, false
}

func (e *Server) handleSetOption(args []string) {
	// "setoption name <name> [value <value>]"
	joined := strings.Join(args, " ")
	nameStart := strings.Index(joined, "name ")
	if nameStart < 0 {
		return
	}
	rest := joined[nameStart+len("name "):]
	name, value := rest, ""
	if vi := strings.Index(rest, " value "); vi >= 0 {
		name = rest[:vi]
		value = rest[vi+len(" value "):]
	}
	name = strings.TrimSpace(name)

	e.mu.Lock()
	defer e.mu.Unlock()
	switch name {
	case "Hash":
		if mb, err := strconv.Atoi(value); err == nil {
			e.cfg.HashMB = mb
			e.searcher.TT.Resize(mb)
		}
	case "Move Overhead":
		if ms, err := strconv.Atoi(value); err == nil {
			e.tm = timeman.NewManager(msToDuration(ms))
			e.searcher.Time = e.tm
		}
	case "Clear Hash":
		e.searcher.TT.Clear()
	case "Ponder", "Threads":
		// accepted, no effect: single-threaded search, ponder handled by
		// the "go ponder"/"ponderhit" commands directly
	}
}

// handleDisplay implements the common non-standard "d" command: print an
// ASCII diagram of the current position, for use from an interactive
// terminal rather than a GUI.
func (e *Server) handleDisplay(w *writer) {
	e.mu.Lock()
	pos := *e.pos
	e.mu.Unlock()
	w.WriteLine(debug.Board(&pos))
}

func (e *Server) handlePerft(args []string, w *writer) {
	if len(args) == 0 {
		return
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil {
		return
	}
	e.mu.Lock()
	pos := *e.pos
	e.mu.Unlock()
	runPerft(&pos, depth, w)
}
