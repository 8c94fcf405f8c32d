package eventloop

import (
	"fmt"
	"sync/atomic"

	"github.com/cqlkit/cqlkit/errs"
)

// RoundRobinGroup is a fixed-size collection of event loops that assigns
// each submitted task to the next loop in rotation. Assignment is pure
// round-robin over an atomic counter: it never inspects queue depth or
// loop load, trading optimal balance for constant-time, lock-free
// assignment under concurrent producers.
//
// The loop set is fixed at construction; loops are never resized or
// replaced afterwards.
type RoundRobinGroup struct {
	loops   []*EventLoop
	current atomic.Uint64
}

// NewRoundRobinGroup creates a group of count event loops, each built with
// the same options.
func NewRoundRobinGroup(count int, opts ...Option) (*RoundRobinGroup, error) {
	if count <= 0 {
		return nil, errs.ErrGroupSize
	}

	g := &RoundRobinGroup{loops: make([]*EventLoop, count)}
	for i := range g.loops {
		loop, err := NewEventLoop(opts...)
		if err != nil {
			return nil, err
		}
		g.loops[i] = loop
	}

	return g, nil
}

// Size returns the number of loops in the group.
func (g *RoundRobinGroup) Size() int { return len(g.loops) }

// Loop returns the loop at index i.
func (g *RoundRobinGroup) Loop(i int) *EventLoop { return g.loops[i] }

// Init initializes every loop in index order, naming each "<name>-<i>",
// and stops at the first failure.
func (g *RoundRobinGroup) Init(name string) error {
	for i, loop := range g.loops {
		if err := loop.Init(fmt.Sprintf("%s-%d", name, i)); err != nil {
			return fmt.Errorf("init loop %d: %w", i, err)
		}
	}

	return nil
}

// Run starts every loop in index order and stops at the first failure.
func (g *RoundRobinGroup) Run() error {
	for i, loop := range g.loops {
		if err := loop.Run(); err != nil {
			return fmt.Errorf("run loop %d: %w", i, err)
		}
	}

	return nil
}

// CloseHandles requests shutdown on every loop. Unlike Init and Run it
// visits all loops regardless of individual state, for best-effort
// shutdown.
func (g *RoundRobinGroup) CloseHandles() {
	for _, loop := range g.loops {
		loop.CloseHandles()
	}
}

// Join waits for every loop, visiting all of them regardless of
// individual state.
func (g *RoundRobinGroup) Join() {
	for _, loop := range g.loops {
		loop.Join()
	}
}

// Add assigns task to the next loop in rotation and returns the loop that
// received it. The rotation counter only increases, so loop i receives
// the tasks at submission positions i, i+N, i+2N, … for a group of N.
func (g *RoundRobinGroup) Add(task Task) *EventLoop {
	loop := g.loops[(g.current.Add(1)-1)%uint64(len(g.loops))]
	loop.Add(task)

	return loop
}
