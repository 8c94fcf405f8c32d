// Package compress provides the frame-body codecs negotiated by the
// native protocol: LZ4 (with an uncompressed-length prefix), Snappy, and
// Zstd, plus a pass-through codec for uncompressed connections.
//
// The transport applies a codec to the concatenated buffers the request
// encoder produces; this package has no knowledge of frame headers or
// sockets.
package compress

import (
	"fmt"

	"github.com/cqlkit/cqlkit/format"
)

// Compressor compresses one frame body.
//
// The input is never modified. Unless a codec documents otherwise, the
// returned slice is newly allocated and owned by the caller; NoOpCodec
// returns the input itself.
type Compressor interface {
	Compress(body []byte) ([]byte, error)
}

// Decompressor restores one frame body compressed by the matching
// Compressor. It validates the input and returns an error for corrupted
// or truncated data.
type Decompressor interface {
	Decompress(body []byte) ([]byte, error)
}

// Codec combines both directions. Codecs are stateless values safe for
// concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.BodyCompression]Codec{
	format.CompressionNone:   NewNoOpCodec(),
	format.CompressionLZ4:    NewLZ4Codec(),
	format.CompressionSnappy: NewSnappyCodec(),
	format.CompressionZstd:   NewZstdCodec(),
}

// GetCodec returns the built-in codec for the negotiated compression
// algorithm.
func GetCodec(c format.BodyCompression) (Codec, error) {
	if codec, ok := builtinCodecs[c]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported body compression: %s", c)
}
