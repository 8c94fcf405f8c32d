package compress

// NoOpCodec passes frame bodies through untouched, for connections that
// negotiated no compression and for measuring transport overhead in
// isolation. Both directions return the input slice itself, so the caller
// keeps ownership of the body it passed in.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// NewNoOpCodec creates a pass-through codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns the input slice as-is, without copying.
func (c NoOpCodec) Compress(body []byte) ([]byte, error) {
	return body, nil
}

// Decompress returns the input slice as-is, without copying.
func (c NoOpCodec) Decompress(body []byte) ([]byte, error) {
	return body, nil
}
