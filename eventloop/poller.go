package eventloop

import (
	"sync/atomic"
	"time"
)

// Poller abstracts the native loop the EventLoop drives. The loop owns
// exactly one poller; the poller's Run executes on the loop goroutine and
// returns once the wakeup handle has been closed.
//
// Implementations must make Wakeup safe to call from any goroutine, and
// may coalesce consecutive wakeups into one onWake callback. CloseWakeup,
// StartPeriodic, and StopPeriodic are only called from the loop goroutine
// (or before Run starts).
type Poller interface {
	// Init allocates the poller's resources. A failed Init leaves the
	// poller safe to discard but unusable.
	Init() error

	// Run blocks, invoking the wake callback after each wakeup, until the
	// wakeup handle is closed.
	Run()

	// Wakeup signals the wakeup handle, interrupting an idle Run so it
	// re-invokes the wake callback. Safe from any goroutine.
	Wakeup()

	// CloseWakeup closes the wakeup handle, letting Run return.
	CloseWakeup()

	// StartPeriodic arranges for fn to run on the loop goroutine every
	// interval until StopPeriodic or CloseWakeup.
	StartPeriodic(fn func(), interval time.Duration) error

	// StopPeriodic stops the periodic hook, if any.
	StopPeriodic()
}

// PollerFactory creates a Poller whose Run invokes onWake after each
// wakeup signal. The EventLoop calls it during Init.
type PollerFactory func(onWake func()) Poller

// channelPoller is the default Poller, built on a one-slot wakeup channel.
// Wakeups coalesce: any number of signals while the loop is busy collapse
// into a single pending token, mirroring an async-handle send.
type channelPoller struct {
	wake    chan struct{}
	done    chan struct{}
	onWake  func()
	tick    *time.Ticker
	tickFn  func()
	stopped atomic.Bool
}

func newChannelPoller(onWake func()) Poller {
	return &channelPoller{onWake: onWake}
}

func (p *channelPoller) Init() error {
	p.wake = make(chan struct{}, 1)
	p.done = make(chan struct{})

	return nil
}

func (p *channelPoller) Run() {
	var tickC <-chan time.Time
	if p.tick != nil {
		tickC = p.tick.C
		defer p.tick.Stop()
	}

	for {
		select {
		case <-p.wake:
			p.onWake()
		case <-tickC:
			if !p.stopped.Load() {
				p.tickFn()
			}
		case <-p.done:
			// A send racing the close may have left a pending token; a
			// send-after-close must still wake the loop one more time so
			// the drain handler re-observes the queue before Run returns.
			select {
			case <-p.wake:
				p.onWake()
			default:
			}

			return
		}
	}
}

func (p *channelPoller) Wakeup() {
	select {
	case p.wake <- struct{}{}:
	default: // a wakeup is already pending
	}
}

func (p *channelPoller) CloseWakeup() {
	close(p.done)
}

func (p *channelPoller) StartPeriodic(fn func(), interval time.Duration) error {
	p.tick = time.NewTicker(interval)
	p.tickFn = fn

	return nil
}

func (p *channelPoller) StopPeriodic() {
	p.stopped.Store(true)
}
