package eventloop

import (
	"errors"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"go.uber.org/zap"

	"github.com/cqlkit/cqlkit/internal/options"
)

// Option configures an EventLoop. Options passed to NewRoundRobinGroup
// apply to every loop in the group.
type Option = options.Option[*EventLoop]

func applyOptions(l *EventLoop, opts ...Option) error {
	return options.Apply(l, opts...)
}

// WithLogger sets the loop's logger. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return options.New(func(l *EventLoop) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		l.logger = logger

		return nil
	})
}

// WithPollerFactory injects the poller implementation the loop drives.
// The default is a channel-based poller.
func WithPollerFactory(factory PollerFactory) Option {
	return options.New(func(l *EventLoop) error {
		if factory == nil {
			return errors.New("poller factory must not be nil")
		}
		l.newPoller = factory

		return nil
	})
}

// WithMetrics registers per-loop wakeup and task counters on set.
// Metrics are disabled by default.
func WithMetrics(set *metrics.Set) Option {
	return options.NoError(func(l *EventLoop) {
		l.metricsSet = set
	})
}

// WithThreadExitHook sets a hook invoked on the loop goroutine right
// before it exits, for releasing per-thread state owned by auxiliary
// subsystems.
func WithThreadExitHook(fn func()) Option {
	return options.NoError(func(l *EventLoop) {
		l.onThreadExit = fn
	})
}

// WithSpuriousInterruptAck enables the periodic no-op interrupt
// acknowledgment hook, firing every interval. Enable it only where the
// runtime environment delivers spurious interrupts to loop threads.
func WithSpuriousInterruptAck(interval time.Duration) Option {
	return options.New(func(l *EventLoop) error {
		if interval <= 0 {
			return errors.New("interrupt ack interval must be positive")
		}
		l.ackInterval = interval

		return nil
	})
}
