// Package timeman turns a UCI "go" command's time controls into concrete
// stop decisions: a hard ceiling the search checks every so many nodes,
// and a softer "don't bother starting another iteration" heuristic driven
// by best-move stability.
package timeman

import (
	"sync/atomic"
	"time"
)

// Limits mirrors the subset of UCI "go" parameters that affect time
// management; depth/nodes/mate limits are read directly by the search
// loop instead and aren't modeled here.
type Limits struct {
	WTime, BTime     time.Duration
	WInc, BInc       time.Duration
	MovesToGo        int
	MoveTime         time.Duration
	Infinite         bool
	HasExplicitLimit bool // depth, nodes, or mate was given: no soft stop
}

// Manager owns the shared stop/ponder flags the search loop polls. A
// single Manager is reused across moves; Start resets it for a new search.
type Manager struct {
	stopped   atomic.Bool
	pondering atomic.Bool

	start    time.Time
	hardStop time.Duration
	softStop time.Duration
	infinite bool

	moveOverhead time.Duration

	stability      int
	lastBest       uint16
	lastBestScore  int32
}

// NewManager builds a Manager with the given move-overhead safety margin
// (time reserved to account for GUI/OS scheduling latency around the
// actual engine move).
func NewManager(moveOverhead time.Duration) *Manager {
	return &Manager{moveOverhead: moveOverhead}
}

// Start begins a new search under the given limits for the side to move.
func (m *Manager) Start(l Limits, sideToMove int, ponder bool) {
	m.stopped.Store(false)
	m.pondering.Store(ponder)
	m.start = time.Now()
	m.stability = 0
	m.lastBest = 0
	m.lastBestScore = 0

	m.infinite = l.Infinite

	switch {
	case l.MoveTime > 0:
		m.hardStop = l.MoveTime - m.moveOverhead
		m.softStop = 0
	case l.WTime > 0 || l.BTime > 0:
		myTime, myInc := l.WTime, l.WInc
		if sideToMove == 1 {
			myTime, myInc = l.BTime, l.BInc
		}
		movesToGo := l.MovesToGo
		if movesToGo <= 0 {
			movesToGo = 30
		}
		base := myTime/time.Duration(movesToGo) + myInc/2
		m.hardStop = minDuration(myTime-m.moveOverhead, base*4)
		m.softStop = base
	default:
		m.hardStop = 0
		m.softStop = 0
	}
	if l.HasExplicitLimit {
		m.softStop = 0
	}
	if m.hardStop < 0 {
		m.hardStop = 0
	}
}

func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}

// Stop forces the search to stop at the next poll (UCI "stop").
func (m *Manager) Stop() { m.stopped.Store(true) }

// Stopped reports whether the search has been asked to stop.
func (m *Manager) Stopped() bool { return m.stopped.Load() }

// Pondering reports whether the search is running in ponder mode, where
// the hard/soft time limits don't apply until PonderHit clears it.
func (m *Manager) Pondering() bool { return m.pondering.Load() }

// PonderHit converts an in-flight ponder search into a normal timed one.
func (m *Manager) PonderHit() { m.pondering.Store(false) }

// HardStopInner is polled from inside the negamax recursion every 1024
// nodes: a wall-clock or node-count ceiling that must never be
// exceeded regardless of search depth.
func (m *Manager) HardStopInner(nodes, nodeLimit uint64) bool {
	if m.stopped.Load() {
		return true
	}
	if nodeLimit > 0 && nodes >= nodeLimit {
		m.stopped.Store(true)
		return true
	}
	if m.pondering.Load() || m.infinite || m.hardStop <= 0 {
		return false
	}
	if time.Since(m.start) >= m.hardStop {
		m.stopped.Store(true)
		return true
	}
	return false
}

// HardStopIterativeDeepening is polled between root iterations: once the
// depth or node limit is reached or the hard time budget is already spent,
// the next iteration is not started.
func (m *Manager) HardStopIterativeDeepening(depth int, nodes, nodeLimit uint64, depthLimit int) bool {
	if depthLimit > 0 && depth > depthLimit {
		return true
	}
	if nodeLimit > 0 && nodes >= nodeLimit {
		return true
	}
	if m.pondering.Load() || m.infinite || m.hardStop <= 0 {
		return false
	}
	return time.Since(m.start) >= m.hardStop
}

// NotifyIteration feeds the result of a completed root iteration into the
// stability tracker SoftStop uses.
func (m *Manager) NotifyIteration(best uint16, score int32) {
	if best == m.lastBest {
		m.stability++
	} else {
		m.stability = 0
	}
	m.lastBest = best
	m.lastBestScore = score
}

// SoftStop reports whether the search should stop deepening further: the
// node budget has already been used up, a mate at the distance the GUI
// asked for ("go mate N") has been proved, or the stability-scaled wall
// clock budget below is exceeded. nodeLimit is the same "go nodes" value
// HardStopInner enforces mid-iteration; checking it again here means a
// search that crossed it during the last iteration won't start another.
func (m *Manager) SoftStop(nodes, nodeLimit uint64, mateProved bool) bool {
	if m.pondering.Load() || m.infinite {
		return false
	}
	if nodeLimit > 0 && nodes >= nodeLimit {
		return true
	}
	if mateProved {
		return true
	}
	if m.softStop <= 0 {
		return false
	}
	stabilityMultiplier := 130 - 10*m.stability
	if stabilityMultiplier < 50 {
		stabilityMultiplier = 50
	}
	if stabilityMultiplier > 130 {
		stabilityMultiplier = 130
	}
	budget := m.softStop * time.Duration(stabilityMultiplier) / 100
	return time.Since(m.start) >= budget
}

// Elapsed returns how long the current search has been running.
func (m *Manager) Elapsed() time.Duration { return time.Since(m.start) }
