// Package request builds and serializes outbound query requests into the
// exact byte layout of the native protocol.
//
// A QueryRequest holds the query text, a fixed number of declared value
// slots, a consistency level, and optional paging and serial-consistency
// settings. Encode produces a sequence of wire.Buffer ready for the
// transport; the layout depends on the target protocol version's
// capability row (see format.ProtocolVersion.Capabilities).
package request

import (
	"github.com/cqlkit/cqlkit/errs"
	"github.com/cqlkit/cqlkit/format"
)

// valueSlot is one declared bound-value slot. A slot may be unbound (sent
// as null), bound to nil (explicit null), or bound to a payload.
type valueSlot struct {
	data  []byte
	bound bool
}

// valueName records a parameter name and the slot index it was assigned,
// in first-seen order. names[i].index == i by construction.
type valueName struct {
	name  string
	index uint16
}

// QueryRequest is a single outbound query with bound values.
//
// A request starts in positional mode. The first named bind (or GetIndices
// call) switches it permanently to named mode, which disables the
// positional encoding path for the rest of the request's lifetime.
//
// A QueryRequest is not safe for concurrent use; encode independent
// requests from different goroutines instead.
type QueryRequest struct {
	query             string
	kind              byte
	consistency       format.Consistency
	serialConsistency format.Consistency
	pageSize          int32
	pagingState       []byte
	values            []valueSlot
	names             []valueName
	nameIndex         *nameIndex
}

// NewQueryRequest creates a request for the given query text with
// valueCount declared value slots.
func NewQueryRequest(query string, valueCount int) *QueryRequest {
	return &QueryRequest{
		query:       query,
		kind:        format.BatchKindQuery,
		consistency: format.ConsistencyOne,
		values:      make([]valueSlot, valueCount),
	}
}

// Query returns the query text.
func (r *QueryRequest) Query() string { return r.query }

// Kind returns the batch statement kind discriminator.
func (r *QueryRequest) Kind() byte { return r.kind }

// Consistency returns the request consistency level.
func (r *QueryRequest) Consistency() format.Consistency { return r.consistency }

// SetConsistency sets the request consistency level.
func (r *QueryRequest) SetConsistency(c format.Consistency) {
	r.consistency = c
}

// SerialConsistency returns the serial consistency level, or zero if unset.
func (r *QueryRequest) SerialConsistency() format.Consistency { return r.serialConsistency }

// SetSerialConsistency sets the serial consistency level for conditional
// updates. Zero means unset.
func (r *QueryRequest) SetSerialConsistency(c format.Consistency) {
	r.serialConsistency = c
}

// PageSize returns the result page size, or zero if paging is disabled.
func (r *QueryRequest) PageSize() int32 { return r.pageSize }

// SetPageSize sets the result page size. Values <= 0 disable paging;
// presence on the wire is uniformly "page size greater than zero".
func (r *QueryRequest) SetPageSize(n int32) {
	r.pageSize = n
}

// PagingState returns the paging-state continuation token, if any.
func (r *QueryRequest) PagingState() []byte { return r.pagingState }

// SetPagingState sets the opaque continuation token from a prior response.
func (r *QueryRequest) SetPagingState(token []byte) {
	r.pagingState = token
}

// ValueCount returns the number of declared value slots.
func (r *QueryRequest) ValueCount() int { return len(r.values) }

// HasNamesForValues reports whether the request is in named mode.
func (r *QueryRequest) HasNamesForValues() bool { return r.nameIndex != nil }

// Bind binds data to the value slot at index i. A nil payload binds an
// explicit null. Returns ErrValueIndexOutOfRange for an invalid index.
func (r *QueryRequest) Bind(i int, data []byte) error {
	if i < 0 || i >= len(r.values) {
		return errs.ErrValueIndexOutOfRange
	}
	r.values[i] = valueSlot{data: data, bound: true}

	return nil
}

// BindByName binds data to every slot assigned to name, switching the
// request to named mode on first use. Returns ErrNamedValueCapacity when
// the name is new and all declared slots already have names.
func (r *QueryRequest) BindByName(name string, data []byte) error {
	indices := r.GetIndices(name)
	if len(indices) == 0 {
		return errs.ErrNamedValueCapacity
	}
	for _, idx := range indices {
		r.values[idx] = valueSlot{data: data, bound: true}
	}

	return nil
}

// GetIndices returns the value-slot indices assigned to name.
//
// The first call on a request lazily builds the name index with capacity
// equal to the declared slot count and marks the request named. A known
// name returns its existing indices; a new name is assigned the next
// sequential slot, unless the number of distinct names has reached the
// slot capacity, in which case the result is empty.
func (r *QueryRequest) GetIndices(name string) []uint16 {
	if r.nameIndex == nil {
		r.nameIndex = newNameIndex(len(r.values))
	}

	if indices := r.nameIndex.get(name); indices != nil {
		return indices
	}

	next := len(r.names)
	if next >= len(r.values) {
		// Every declared slot already carries a name.
		return nil
	}

	vn := valueName{name: name, index: uint16(next)} //nolint:gosec
	r.names = append(r.names, vn)
	r.nameIndex.insert(name, vn.index)

	return []uint16{vn.index}
}
