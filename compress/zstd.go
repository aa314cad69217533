package compress

// ZstdCompressor provides Zstandard compression for descent session payloads.
//
// Zstd offers the best compression ratio of the supported codecs, making it
// the right choice when sessions are archived or shipped over the network
// for remote visualization. Two implementations are available:
//
//   - Default: pure-Go klauspost/compress/zstd (no cgo required)
//   - Build tag "gozstd": cgo-backed valyala/gozstd, faster on large payloads
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
