package timeman_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/timeman"
)

func TestStartInfiniteNeverHardStops(t *testing.T) {
	m := timeman.NewManager(0)
	m.Start(timeman.Limits{Infinite: true}, 0, false)
	require.False(t, m.HardStopInner(1_000_000, 0))
	require.False(t, m.SoftStop(1_000_000, 0, false))
}

func TestStartMoveTimeHardStopsAfterBudget(t *testing.T) {
	m := timeman.NewManager(0)
	m.Start(timeman.Limits{MoveTime: 10 * time.Millisecond}, 0, false)
	require.False(t, m.HardStopInner(0, 0))
	time.Sleep(20 * time.Millisecond)
	require.True(t, m.HardStopInner(0, 0))
}

func TestExplicitStopAlwaysWins(t *testing.T) {
	m := timeman.NewManager(0)
	m.Start(timeman.Limits{Infinite: true}, 0, false)
	m.Stop()
	require.True(t, m.Stopped())
	require.True(t, m.HardStopInner(0, 0))
}

func TestNodeLimitStopsSearch(t *testing.T) {
	m := timeman.NewManager(0)
	m.Start(timeman.Limits{Infinite: true}, 0, false)
	require.False(t, m.HardStopInner(999, 1000))
	require.True(t, m.HardStopInner(1000, 1000))
	require.True(t, m.Stopped())
}

func TestHardStopIterativeDeepeningRespectsDepthLimit(t *testing.T) {
	m := timeman.NewManager(0)
	m.Start(timeman.Limits{Infinite: true}, 0, false)
	require.False(t, m.HardStopIterativeDeepening(5, 0, 0, 10))
	require.True(t, m.HardStopIterativeDeepening(11, 0, 0, 10))
}

func TestPonderingSuppressesStopsUntilHit(t *testing.T) {
	m := timeman.NewManager(0)
	m.Start(timeman.Limits{MoveTime: 1 * time.Millisecond}, 0, true)
	require.True(t, m.Pondering())
	time.Sleep(5 * time.Millisecond)
	require.False(t, m.HardStopInner(0, 0), "pondering search must not hard-stop on its own clock")

	m.PonderHit()
	require.False(t, m.Pondering())
}

func TestSoftStopNotTrippedBeforeBudget(t *testing.T) {
	m := timeman.NewManager(0)
	m.Start(timeman.Limits{WTime: 3000 * time.Millisecond, MovesToGo: 30}, 0, false)

	// Right after Start, before the soft budget (100ms scaled by best-move
	// stability) has been used, one reported iteration does not trip the
	// soft stop.
	m.NotifyIteration(1, 10)
	require.False(t, m.SoftStop(0, 0, false))
}

func TestSoftStopTripsOnNodeLimit(t *testing.T) {
	m := timeman.NewManager(0)
	m.Start(timeman.Limits{WTime: 3000 * time.Millisecond, MovesToGo: 30}, 0, false)
	require.False(t, m.SoftStop(999, 1000, false))
	require.True(t, m.SoftStop(1000, 1000, false))
}

func TestSoftStopTripsOnMateProved(t *testing.T) {
	m := timeman.NewManager(0)
	m.Start(timeman.Limits{WTime: 3000 * time.Millisecond, MovesToGo: 30}, 0, false)
	require.True(t, m.SoftStop(0, 0, true))
}

func TestElapsedIncreasesMonotonically(t *testing.T) {
	m := timeman.NewManager(0)
	m.Start(timeman.Limits{Infinite: true}, 0, false)
	first := m.Elapsed()
	time.Sleep(2 * time.Millisecond)
	require.Greater(t, m.Elapsed(), first)
}
