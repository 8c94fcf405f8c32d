package eventloop

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cqlkit/cqlkit/errs"
)

func TestRoundRobinGroup_Size(t *testing.T) {
	g, err := NewRoundRobinGroup(4)
	require.NoError(t, err)
	require.Equal(t, 4, g.Size())

	_, err = NewRoundRobinGroup(0)
	require.ErrorIs(t, err, errs.ErrGroupSize)

	_, err = NewRoundRobinGroup(-1)
	require.ErrorIs(t, err, errs.ErrGroupSize)
}

func TestRoundRobinGroup_Rotation(t *testing.T) {
	const loops = 3

	g, err := NewRoundRobinGroup(loops)
	require.NoError(t, err)
	require.NoError(t, g.Init("rr"))

	// Submission position i goes to loop i%N; queues stay balanced.
	for i := 0; i < 3*loops; i++ {
		assigned := g.Add(TaskFunc(func(*EventLoop) {}))
		require.Same(t, g.Loop(i%loops), assigned)
	}
	for i := 0; i < loops; i++ {
		require.Equal(t, 3, g.Loop(i).QueueLen())
	}
}

func TestRoundRobinGroup_LoopNames(t *testing.T) {
	g, err := NewRoundRobinGroup(2)
	require.NoError(t, err)
	require.NoError(t, g.Init("request"))

	require.Equal(t, "request-0", g.Loop(0).Name())
	require.Equal(t, "request-1", g.Loop(1).Name())
}

func TestRoundRobinGroup_ExecutesAcrossLoops(t *testing.T) {
	const (
		loops = 4
		tasks = 100
	)

	g, err := NewRoundRobinGroup(loops)
	require.NoError(t, err)
	require.NoError(t, g.Init("exec"))
	require.NoError(t, g.Run())

	counts := make([]atomic.Int64, loops)
	var wg sync.WaitGroup
	wg.Add(tasks)
	for i := 0; i < tasks; i++ {
		go func() {
			g.Add(TaskFunc(func(l *EventLoop) {
				for j := 0; j < loops; j++ {
					if g.Loop(j) == l {
						counts[j].Add(1)
					}
				}
				wg.Done()
			}))
		}()
	}
	wg.Wait()

	g.CloseHandles()
	g.Join()

	// Pure rotation: the split is exact no matter how producers interleave.
	for i := 0; i < loops; i++ {
		require.Equal(t, int64(tasks/loops), counts[i].Load())
	}
}

func TestRoundRobinGroup_ShutdownVisitsAllLoops(t *testing.T) {
	g, err := NewRoundRobinGroup(3)
	require.NoError(t, err)
	require.NoError(t, g.Init("idle"))

	// No loop was ever run; CloseHandles and Join must still complete.
	g.CloseHandles()
	g.Join()

	for i := 0; i < g.Size(); i++ {
		require.Equal(t, StateDraining, g.Loop(i).State())
	}
}

func TestRoundRobinGroup_InitErrorNamesLoop(t *testing.T) {
	var created atomic.Int64
	g, err := NewRoundRobinGroup(3, WithPollerFactory(func(onWake func()) Poller {
		if created.Add(1) == 3 {
			return failingPoller{}
		}
		return newChannelPoller(onWake)
	}))
	require.NoError(t, err)

	err = g.Init("partial")
	require.Error(t, err)
	require.Contains(t, err.Error(), "init loop 2")

	// Best-effort shutdown of the loops that did initialize.
	g.CloseHandles()
	g.Join()
}

func TestRoundRobinGroup_RunWithoutInit(t *testing.T) {
	g, err := NewRoundRobinGroup(2)
	require.NoError(t, err)

	err = g.Run()
	require.ErrorIs(t, err, errs.ErrLoopNotInitialized)
	require.Contains(t, err.Error(), "run loop 0")
}
