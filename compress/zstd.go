package compress

// ZstdCodec implements zstd body compression: one raw zstd frame, no
// extra framing (the frame itself records the uncompressed size).
//
// Two implementations are selected at build time: a cgo binding when cgo
// is available, and a pure-Go fallback otherwise. See zstd_cgo.go and
// zstd_pure.go.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstdCodec creates a zstd frame-body codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
