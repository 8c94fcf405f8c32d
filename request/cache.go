package request

import (
	"bytes"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/cqlkit/cqlkit/internal/hash"
	"github.com/cqlkit/cqlkit/wire"
)

// EncodingCache is an optional read-through cache of encoded value cells,
// keyed by the xxHash64 of the raw payload. Requests that bind the same
// payload repeatedly (retries, speculative executions, batches reusing
// parameters) share one encoded buffer instead of re-encoding it.
//
// Each entry keeps the raw payload alongside the encoded cell; a hit must
// also match the payload bytes, so a hash collision degrades to a fresh
// encode instead of putting another payload's bytes on the wire.
//
// An EncodingCache is safe for concurrent use and may be shared across
// requests and goroutines.
type EncodingCache struct {
	cells *xsync.MapOf[uint64, cachedCell]
}

// cachedCell pairs an encoded [bytes] cell with the payload it encodes.
type cachedCell struct {
	data []byte
	buf  wire.Buffer
}

// NewEncodingCache creates an empty encoding cache.
func NewEncodingCache() *EncodingCache {
	return &EncodingCache{
		cells: xsync.NewMapOf[uint64, cachedCell](),
	}
}

// Len returns the number of cached value cells.
func (c *EncodingCache) Len() int {
	return c.cells.Size()
}

// encodeCell returns the [bytes] cell for one value slot, consulting and
// populating cache when non-nil. Unbound and nil-bound slots encode as
// null and bypass the cache.
func encodeCell(slot valueSlot, cache *EncodingCache) wire.Buffer {
	if !slot.bound || slot.data == nil {
		buf := wire.NewBuffer(4)
		buf.EncodeInt32(0, -1)

		return buf
	}

	if cache == nil {
		return newCell(slot.data)
	}

	key := hash.Sum(slot.data)
	if cell, ok := cache.cells.Load(key); ok {
		if bytes.Equal(cell.data, slot.data) {
			return cell.buf
		}
		// Colliding payload: the first entry keeps the slot, this value
		// is encoded fresh every time.
		return newCell(slot.data)
	}
	buf := newCell(slot.data)
	cache.cells.Store(key, cachedCell{data: slot.data, buf: buf})

	return buf
}

func newCell(data []byte) wire.Buffer {
	buf := wire.NewBuffer(wire.BytesSize(data))
	buf.EncodeBytes(0, data)

	return buf
}
