// Package cqlkit provides the asynchronous dispatch engine and
// wire-protocol encoder at the core of a native-protocol database client
// driver.
//
// It has two tightly coupled responsibilities:
//
//   - Run a fixed pool of single-consumer event loops executing tasks
//     submitted from any goroutine, with safe low-latency cross-thread
//     handoff and drain-based shutdown (package eventloop).
//   - Serialize outbound query requests into the exact byte layout of the
//     versioned binary protocol, including named parameters, paging, and
//     consistency fields (packages request, wire, format).
//
// Connection pooling, host discovery, retries, TLS, authentication, and
// response decoding are external collaborators; this module only exposes
// the interfaces they consume.
//
// # Encoding a query
//
//	req := cqlkit.NewQuery("SELECT * FROM t WHERE k = ?", 1)
//	req.SetConsistency(format.ConsistencyQuorum)
//	_ = req.Bind(0, key)
//
//	var bufs []wire.Buffer
//	n, err := req.Encode(format.ProtocolV4, &bufs, nil)
//
// # Dispatching work
//
//	group, _ := cqlkit.NewLoopGroup(4)
//	_ = group.Init("io")
//	_ = group.Run()
//	group.Add(eventloop.TaskFunc(func(loop *eventloop.EventLoop) {
//	    // runs on one loop goroutine, exactly once
//	}))
//	group.CloseHandles()
//	group.Join()
package cqlkit

import (
	"github.com/cqlkit/cqlkit/eventloop"
	"github.com/cqlkit/cqlkit/request"
)

// NewQuery creates a query request with valueCount declared value slots.
func NewQuery(query string, valueCount int) *request.QueryRequest {
	return request.NewQueryRequest(query, valueCount)
}

// NewLoopGroup creates a round-robin event loop group of count loops.
func NewLoopGroup(count int, opts ...eventloop.Option) (*eventloop.RoundRobinGroup, error) {
	return eventloop.NewRoundRobinGroup(count, opts...)
}
