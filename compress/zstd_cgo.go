//go:build cgo

package compress

import "github.com/valyala/gozstd"

const zstdLevel = 3

// Compress encodes the body as a single zstd frame.
func (c ZstdCodec) Compress(body []byte) ([]byte, error) {
	if len(body) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, body, zstdLevel), nil
}

// Decompress decodes a single zstd frame.
func (c ZstdCodec) Decompress(body []byte) ([]byte, error) {
	if len(body) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, body)
}
