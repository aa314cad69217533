package compress

// NoOpCompressor passes session payloads through without compression.
//
// Useful for small sessions where the payload fits in a few cache lines,
// for debugging blob contents with a hex dump, and as a baseline when
// benchmarking the real codecs.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor that bypasses data.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input slice as-is without copying.
//
// Note: The returned slice shares the same underlying memory as the input.
// Callers should not modify the input data after calling this method if they
// plan to use the returned slice.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is without copying.
//
// Note: The returned slice shares the same underlying memory as the input.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
