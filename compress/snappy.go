package compress

import "github.com/klauspost/compress/snappy"

// SnappyCodec implements the protocol's snappy body compression: one raw
// snappy-encoded block, no framing.
type SnappyCodec struct{}

var _ Codec = SnappyCodec{}

// NewSnappyCodec creates a snappy frame-body codec.
func NewSnappyCodec() SnappyCodec {
	return SnappyCodec{}
}

// Compress encodes the body as a raw snappy block.
func (c SnappyCodec) Compress(body []byte) ([]byte, error) {
	if len(body) == 0 {
		return nil, nil
	}

	return snappy.Encode(nil, body), nil
}

// Decompress decodes a raw snappy block.
func (c SnappyCodec) Decompress(body []byte) ([]byte, error) {
	if len(body) == 0 {
		return nil, nil
	}

	return snappy.Decode(nil, body)
}
