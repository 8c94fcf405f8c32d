package eventloop

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordedTask struct {
	producer int
	seq      int
}

func (*recordedTask) Run(*EventLoop) {}

func TestTaskQueue_FIFO(t *testing.T) {
	var q TaskQueue
	require.True(t, q.IsEmpty())

	for i := 0; i < 10; i++ {
		require.True(t, q.Enqueue(&recordedTask{seq: i}))
	}
	require.False(t, q.IsEmpty())
	require.Equal(t, 10, q.Len())

	for i := 0; i < 10; i++ {
		task, ok := q.Dequeue()
		require.True(t, ok)
		require.Equal(t, i, task.(*recordedTask).seq)
	}

	require.True(t, q.IsEmpty())
	_, ok := q.Dequeue()
	require.False(t, ok)
}

func TestTaskQueue_InterleavedReuse(t *testing.T) {
	var q TaskQueue

	next := 0
	expect := 0
	for round := 0; round < 50; round++ {
		for i := 0; i < 7; i++ {
			q.Enqueue(&recordedTask{seq: next})
			next++
		}
		for i := 0; i < 5; i++ {
			task, ok := q.Dequeue()
			require.True(t, ok)
			require.Equal(t, expect, task.(*recordedTask).seq)
			expect++
		}
	}

	for {
		task, ok := q.Dequeue()
		if !ok {
			break
		}
		require.Equal(t, expect, task.(*recordedTask).seq)
		expect++
	}
	require.Equal(t, next, expect)
}

func TestTaskQueue_Compaction(t *testing.T) {
	var q TaskQueue

	// Keep the queue non-empty while consuming past the compaction
	// threshold so the in-place copy path runs.
	for i := 0; i < 2*compactThreshold; i++ {
		q.Enqueue(&recordedTask{seq: i})
	}
	for i := 0; i < compactThreshold+10; i++ {
		task, ok := q.Dequeue()
		require.True(t, ok)
		require.Equal(t, i, task.(*recordedTask).seq)
	}
	for i := 0; i < 100; i++ {
		q.Enqueue(&recordedTask{seq: 2*compactThreshold + i})
	}

	expect := compactThreshold + 10
	for {
		task, ok := q.Dequeue()
		if !ok {
			break
		}
		require.Equal(t, expect, task.(*recordedTask).seq)
		expect++
	}
	require.Equal(t, 2*compactThreshold+100, expect)
}

func TestTaskQueue_ConcurrentProducers(t *testing.T) {
	const (
		producers        = 8
		tasksPerProducer = 500
	)

	var q TaskQueue
	var wg sync.WaitGroup

	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < tasksPerProducer; i++ {
				q.Enqueue(&recordedTask{producer: p, seq: i})
			}
		}(p)
	}
	wg.Wait()

	// Total dequeued equals total enqueued, and for each producer the
	// dequeue order preserves that producer's enqueue order.
	lastSeen := make([]int, producers)
	for i := range lastSeen {
		lastSeen[i] = -1
	}

	total := 0
	for {
		task, ok := q.Dequeue()
		if !ok {
			break
		}
		rt := task.(*recordedTask)
		require.Greater(t, rt.seq, lastSeen[rt.producer])
		lastSeen[rt.producer] = rt.seq
		total++
	}

	require.Equal(t, producers*tasksPerProducer, total)
	for p := 0; p < producers; p++ {
		require.Equal(t, tasksPerProducer-1, lastSeen[p])
	}
}
