package uci

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/corvidchess/corvid/eval"
	"github.com/corvidchess/corvid/move"
	"github.com/corvidchess/corvid/search"
	"github.com/corvidchess/corvid/timeman"
)

// handleGo parses a "go" command's parameters, starts the search on a
// copy of the current position, and streams "info"/"bestmove" lines as
// the iterative-deepening loop reports progress. The search runs on its
// own goroutine, so the command loop keeps reading input (such as "stop")
// while it is in flight.
func (e *Server) handleGo(args []string, w *writer) {
	limits := search.Limits{Time: timeman.Limits{MovesToGo: 0}}
	ponder := false

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "wtime":
			i++
			limits.Time.WTime = msArg(args, i)
		case "btime":
			i++
			limits.Time.BTime = msArg(args, i)
		case "winc":
			i++
			limits.Time.WInc = msArg(args, i)
		case "binc":
			i++
			limits.Time.BInc = msArg(args, i)
		case "movestogo":
			i++
			limits.Time.MovesToGo = intArg(args, i)
		case "movetime":
			i++
			limits.Time.MoveTime = msArg(args, i)
			limits.Time.HasExplicitLimit = true
		case "depth":
			i++
			limits.Depth = intArg(args, i)
			limits.Time.HasExplicitLimit = true
		case "nodes":
			i++
			limits.Nodes = uint64(intArg(args, i))
			limits.Time.HasExplicitLimit = true
		case "mate":
			i++
			// mate search: bound depth generously and let the soft-stop
			// check end the search as soon as this distance is proved
			limits.Depth = search.MaxPly - 1
			limits.MateDistance = intArg(args, i)
			limits.Time.HasExplicitLimit = true
		case "infinite":
			limits.Time.Infinite = true
			limits.Time.HasExplicitLimit = true
		case "ponder":
			ponder = true
		case "searchmoves":
			for _, u := range args[i+1:] {
				e.mu.Lock()
				m, ok := parseUCIMove(e.pos, u)
				e.mu.Unlock()
				if !ok {
					break
				}
				limits.SearchMoves = append(limits.SearchMoves, m)
			}
			i = len(args)
		}
	}

	e.mu.Lock()
	root := *e.pos
	keyHistory := append([]uint64{}, e.keys[:len(e.keys)-1]...)
	sideToMove := root.SideToMove
	e.mu.Unlock()

	e.tm.Start(limits.Time, sideToMove, ponder)

	e.searching.Add(1)
	go func() {
		defer e.searching.Done()
		start := time.Now()
		info := e.searcher.Run(&root, keyHistory, limits, func(i search.Info) {
			w.WriteLine(formatInfo(i, time.Since(start), e.searcher.TT.HashFull()))
		})
		best := move.None16
		if len(info.PV) > 0 {
			best = info.PV[0]
		}
		w.WriteLine(formatBestMove(best, info.PV))
	}()
}

func msArg(args []string, i int) time.Duration {
	return msToDuration(intArg(args, i))
}

func msToDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

func intArg(args []string, i int) int {
	if i < 0 || i >= len(args) {
		return 0
	}
	n, _ := strconv.Atoi(args[i])
	return n
}

// formatInfo renders one iterative-deepening iteration as a UCI "info"
// line: depth, score (cp or mate), node count, nps, hashfull, and PV in
// long algebraic notation (UCI's wire format never uses SAN).
func formatInfo(info search.Info, elapsed time.Duration, hashFull int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "info depth %d seldepth %d score %s nodes %d time %d",
		info.Depth, info.SelDepth, formatScore(info.Score), info.Nodes, elapsed.Milliseconds())

	if ms := elapsed.Milliseconds(); ms > 0 {
		nps := info.Nodes * 1000 / uint64(ms)
		fmt.Fprintf(&sb, " nps %d", nps)
	}
	fmt.Fprintf(&sb, " hashfull %d", hashFull)

	if len(info.PV) > 0 {
		sb.WriteString(" pv")
		for _, m := range info.PV {
			sb.WriteByte(' ')
			sb.WriteString(m.UCI())
		}
	}
	return sb.String()
}

func formatScore(s eval.CP) string {
	if search.IsMateScore(s) {
		return fmt.Sprintf("mate %d", search.MateIn(s))
	}
	return fmt.Sprintf("cp %d", s)
}

func formatBestMove(best move.Encoded, pv []move.Encoded) string {
	if len(pv) > 1 {
		return fmt.Sprintf("bestmove %s ponder %s", best.UCI(), pv[1].UCI())
	}
	return fmt.Sprintf("bestmove %s", best.UCI())
}
