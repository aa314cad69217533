// Package compress provides the compression codecs used by descent session
// blobs.
//
// Four codecs are available, selected through format.CompressionType:
//
//   - None: pass-through, best for tiny sessions and debugging
//   - Zstd: best ratio, for archived or network-shipped sessions
//   - S2: fastest, for hot-path encoding
//   - LZ4: balanced speed and ratio
//
// The Zstd codec defaults to the pure-Go klauspost implementation. Building
// with the "gozstd" tag swaps in the cgo-backed valyala/gozstd implementation,
// which is faster on payloads above a few hundred kilobytes.
//
// Codecs are stateless values and safe for concurrent use; internal encoder
// and decoder instances are pooled where the underlying library benefits
// from reuse.
package compress
