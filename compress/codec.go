package compress

import (
	"fmt"

	"github.com/arloliu/descent/format"
)

// Compressor compresses descent session payloads.
//
// A session payload is a columnar block of float64 columns (dataset X/Y
// followed by trajectory M/B). Consecutive float64 values from a descent
// trajectory change slowly, which makes the payload compress well with
// general-purpose codecs.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores descent session payloads compressed by the matching
// Compressor.
//
// Implementations validate the data format and return an error if the data
// is corrupted or was produced by an incompatible algorithm. Implementations
// must be safe for concurrent use.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that creates a Codec based on the
// specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: Invalid compression type error
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
