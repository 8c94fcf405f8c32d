package eventloop

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChannelPoller_CoalescesWakeups(t *testing.T) {
	var wakes atomic.Int32
	p := newChannelPoller(func() { wakes.Add(1) }).(*channelPoller)
	require.NoError(t, p.Init())

	// Signals before Run collapse into one pending token.
	p.Wakeup()
	p.Wakeup()
	p.Wakeup()
	p.CloseWakeup()
	p.Run()

	require.Equal(t, int32(1), wakes.Load())
}

func TestChannelPoller_WakeupPendingAtClose(t *testing.T) {
	var wakes atomic.Int32
	p := newChannelPoller(func() { wakes.Add(1) }).(*channelPoller)
	require.NoError(t, p.Init())

	// A token left in the wakeup handle when the close lands must still
	// produce one final wake before Run returns, never be discarded.
	p.Wakeup()
	p.CloseWakeup()
	p.Run()

	require.Equal(t, int32(1), wakes.Load())
}

func TestChannelPoller_WakeupAfterClose(t *testing.T) {
	var wakes atomic.Int32
	p := newChannelPoller(func() { wakes.Add(1) }).(*channelPoller)
	require.NoError(t, p.Init())

	p.CloseWakeup()
	p.Wakeup()
	p.Run()

	require.Equal(t, int32(1), wakes.Load())
}
