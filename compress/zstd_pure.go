//go:build !gozstd

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdDecoderPool pools zstd decoders for reuse to eliminate allocation
// overhead. The klauspost/compress/zstd library is explicitly designed for
// decoder reuse and operates without allocations after a warmup.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1), // Single-threaded for predictable performance
			zstd.WithDecoderLowmem(false),  // Use more memory for better performance
		)
		if err != nil {
			// This should never happen with valid options
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}
		return decoder
	},
}

// zstdEncoderPool pools zstd encoders for reuse to eliminate allocation overhead.
var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false), // Checksum lives in the session header
		)
		if err != nil {
			// This should never happen with valid options
			panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
		}
		return encoder
	},
}

// Compress compresses the input data using Zstandard compression.
// Uses a pooled encoder for better performance.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	encoder := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	// EncodeAll is stateless - safe to use with pooled encoder
	return encoder.EncodeAll(data, nil), nil
}

// Decompress decompresses Zstd-compressed data.
// Uses a pooled decoder for better performance.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	return decoder.DecodeAll(data, nil)
}
