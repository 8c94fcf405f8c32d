// Package eventloop runs a fixed pool of single-consumer event loops that
// execute tasks submitted from any producer goroutine.
//
// Each EventLoop owns one goroutine (pinned to an OS thread), one Poller,
// and one TaskQueue. Producers hand work over with Add, which enqueues the
// task and signals the loop's wakeup handle; the loop drains its queue in
// FIFO order whenever woken. A RoundRobinGroup spreads tasks across a
// fixed set of loops with a lock-free rotation counter.
//
// Shutdown is cooperative and drain-based: CloseHandles arms the draining
// state, and the loop tears down its handles only after observing an empty
// queue, so every task enqueued before CloseHandles runs before the loop
// exits.
package eventloop

import (
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"go.uber.org/zap"

	"github.com/cqlkit/cqlkit/errs"
)

// State is the lifecycle state of an EventLoop.
type State int32

const (
	// StateIdle is the state before Run.
	StateIdle State = iota
	// StateRunning means the loop goroutine is processing wakeups.
	StateRunning
	// StateDraining means CloseHandles was called; the loop finishes
	// pending tasks before tearing down its handles.
	StateDraining
	// StateClosed means the wakeup handle is closed and the loop goroutine
	// has exited or is about to.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateDraining:
		return "draining"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// EventLoop owns one goroutine executing a single-threaded poller and
// drains its task queue whenever woken. Add is safe from any goroutine,
// including before Run; tasks queue up and run once the loop starts.
//
// The lifecycle is Init → Run → CloseHandles → Join. Run must not be
// called twice, nor after a failed Init.
type EventLoop struct {
	name      string
	newPoller PollerFactory
	poller    Poller
	tasks     TaskQueue
	state     atomic.Int32
	joinable  atomic.Bool
	exited    chan struct{}

	logger       *zap.Logger
	metricsSet   *metrics.Set
	wakeups      *metrics.Counter
	executed     *metrics.Counter
	onThreadExit func()
	ackInterval  time.Duration
}

// NewEventLoop creates an event loop. It must be initialized with Init
// before use.
func NewEventLoop(opts ...Option) (*EventLoop, error) {
	l := &EventLoop{
		newPoller: newChannelPoller,
		logger:    zap.NewNop(),
	}
	if err := applyOptions(l, opts...); err != nil {
		return nil, err
	}

	return l, nil
}

// Name returns the loop name set by Init.
func (l *EventLoop) Name() string { return l.name }

// State returns the loop's current lifecycle state.
func (l *EventLoop) State() State { return State(l.state.Load()) }

// QueueLen returns a point-in-time snapshot of the pending task count.
func (l *EventLoop) QueueLen() int { return l.tasks.Len() }

// Init allocates the loop's poller and wakeup handle and, when the
// spurious-interrupt policy is enabled, installs the periodic
// acknowledgment hook. Any allocation failure is fatal to this loop and
// is returned to the caller; the loop is then safe to discard but must
// not be Run.
func (l *EventLoop) Init(name string) error {
	if name != "" {
		l.name = name
	}

	l.poller = l.newPoller(l.handleWakeup)
	if err := l.poller.Init(); err != nil {
		return fmt.Errorf("init poller: %w", err)
	}
	if l.ackInterval > 0 {
		if err := l.poller.StartPeriodic(l.ackInterrupt, l.ackInterval); err != nil {
			return fmt.Errorf("start interrupt ack hook: %w", err)
		}
	}
	if l.metricsSet != nil {
		l.wakeups = l.metricsSet.NewCounter(fmt.Sprintf(`eventloop_wakeups_total{loop=%q}`, l.name))
		l.executed = l.metricsSet.NewCounter(fmt.Sprintf(`eventloop_tasks_executed_total{loop=%q}`, l.name))
	}
	l.exited = make(chan struct{})

	return nil
}

// Run starts the loop goroutine. It returns ErrLoopNotInitialized if Init
// has not completed successfully; on success the loop becomes joinable.
func (l *EventLoop) Run() error {
	if l.poller == nil || l.exited == nil {
		return errs.ErrLoopNotInitialized
	}

	l.joinable.Store(true)
	go l.run()

	return nil
}

// Add enqueues task and signals the wakeup handle. Safe from any
// goroutine once the loop is initialized.
func (l *EventLoop) Add(task Task) {
	l.tasks.Enqueue(task)
	l.poller.Wakeup()
}

// CloseHandles requests shutdown: it moves the loop into the draining
// state and signals the wakeup handle. The actual handle teardown happens
// on the loop goroutine once the queue is observed empty. Idempotent and
// safe from any goroutine.
func (l *EventLoop) CloseHandles() {
	for {
		s := l.state.Load()
		if s >= int32(StateDraining) {
			break
		}
		if l.state.CompareAndSwap(s, int32(StateDraining)) {
			break
		}
	}
	if l.poller != nil {
		l.poller.Wakeup()
	}
}

// Join blocks until the loop goroutine exits. No-op if the loop is not
// currently joinable; joinable is cleared on completion.
func (l *EventLoop) Join() {
	if !l.joinable.CompareAndSwap(true, false) {
		return
	}
	<-l.exited
}

// run is the loop goroutine body: pin the OS thread, run the poller until
// its handles close, then run teardown and the thread-exit hook.
func (l *EventLoop) run() {
	runtime.LockOSThread()
	defer close(l.exited)

	l.state.CompareAndSwap(int32(StateIdle), int32(StateRunning))
	l.logger.Debug("event loop started", zap.String("loop", l.name))

	l.poller.Run()

	l.logger.Debug("event loop stopped", zap.String("loop", l.name))
	if l.onThreadExit != nil {
		// Release per-thread state owned by auxiliary subsystems
		// (e.g. a secure-transport library) before the thread is reused.
		l.onThreadExit()
	}
}

// handleWakeup runs on the loop goroutine. It drains the queue completely,
// executing each task exactly once, then tears down the wakeup handle if
// draining was requested and the queue stayed empty. This ordering
// guarantees every previously enqueued task runs before shutdown.
func (l *EventLoop) handleWakeup() {
	if l.wakeups != nil {
		l.wakeups.Inc()
	}

	for {
		task, ok := l.tasks.Dequeue()
		if !ok {
			break
		}
		task.Run(l)
		if l.executed != nil {
			l.executed.Inc()
		}
	}

	if State(l.state.Load()) == StateDraining && l.tasks.IsEmpty() {
		l.poller.StopPeriodic()
		l.poller.CloseWakeup()
		l.state.Store(int32(StateClosed))
		l.logger.Debug("event loop handles closed", zap.String("loop", l.name))
	}
}

// ackInterrupt is the periodic no-op acknowledgment hook. It exists so
// runtimes that deliver spurious delivery-noise interrupts to the loop
// thread have them absorbed without interrupting the poller.
func (l *EventLoop) ackInterrupt() {
	l.logger.Debug("acknowledged spurious interrupt", zap.String("loop", l.name))
}
