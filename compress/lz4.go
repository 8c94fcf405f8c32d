package compress

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/cqlkit/cqlkit/errs"
)

// lz4CompressorPool pools lz4.Compressor instances; they keep internal
// state that benefits from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Codec implements the protocol's LZ4 body framing: a 4-byte
// big-endian uncompressed length followed by one LZ4 block.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

// NewLZ4Codec creates an LZ4 frame-body codec.
func NewLZ4Codec() LZ4Codec {
	return LZ4Codec{}
}

// Compress prepends the uncompressed length and appends the LZ4 block.
func (c LZ4Codec) Compress(body []byte) ([]byte, error) {
	dst := make([]byte, 4+lz4.CompressBlockBound(len(body)))
	binary.BigEndian.PutUint32(dst, uint32(len(body))) //nolint:gosec

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(body, dst[4:])
	if err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}

	return dst[:4+n], nil
}

// Decompress reads the uncompressed-length prefix and inflates the block
// into an exactly sized buffer. A body shorter than the prefix is
// rejected with ErrShortCompressedBody.
func (c LZ4Codec) Decompress(body []byte) ([]byte, error) {
	if len(body) < 4 {
		return nil, errs.ErrShortCompressedBody
	}

	size := binary.BigEndian.Uint32(body)
	if size == 0 {
		return nil, nil
	}

	dst := make([]byte, size)
	n, err := lz4.UncompressBlock(body[4:], dst)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompress: %w", err)
	}

	return dst[:n], nil
}
