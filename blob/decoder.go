package blob

import (
	"fmt"
	"math"

	"github.com/arloliu/descent/compress"
	"github.com/arloliu/descent/errs"
	"github.com/arloliu/descent/internal/hash"
	"github.com/arloliu/descent/regression"
	"github.com/arloliu/descent/section"
)

// Decode parses a session blob produced by Encoder.Finish.
//
// Decode validates the header magic and compression type, verifies the
// payload checksum before decompressing, and checks that the decompressed
// payload matches the counts recorded in the header.
//
// Parameters:
//   - data: Complete session blob bytes
//
// Returns:
//   - *Session: The decoded session
//   - error: ErrInvalidHeaderSize, ErrInvalidMagicNumber,
//     ErrInvalidCompressionType, ErrChecksumMismatch, ErrPayloadTruncated,
//     or codec errors
func Decode(data []byte) (*Session, error) {
	header, err := section.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	payload := data[section.PayloadOffset:]
	if len(payload) != int(header.PayloadSize) {
		return nil, fmt.Errorf("%w: header claims %d payload bytes, got %d",
			errs.ErrPayloadTruncated, header.PayloadSize, len(payload))
	}

	if checksum := hash.Checksum(payload); checksum != header.Checksum {
		return nil, fmt.Errorf("%w: stored 0x%016x, computed 0x%016x",
			errs.ErrChecksumMismatch, header.Checksum, checksum)
	}

	codec, err := compress.GetCodec(header.Flag.Compression())
	if err != nil {
		return nil, err
	}

	raw, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress payload: %w", err)
	}

	pointCount := int(header.PointCount)
	modelCount := int(header.ModelCount)

	expected := (2*pointCount + 2*modelCount) * 8
	if len(raw) != expected {
		return nil, fmt.Errorf("%w: expected %d payload bytes after decompression, got %d",
			errs.ErrPayloadTruncated, expected, len(raw))
	}

	engine := header.Flag.GetEndianEngine()

	column := func(idx int) float64 {
		return math.Float64frombits(engine.Uint64(raw[idx*8 : idx*8+8]))
	}

	points := make([]regression.Point, pointCount)
	for i := 0; i < pointCount; i++ {
		points[i] = regression.Point{
			X: column(i),
			Y: column(pointCount + i),
		}
	}

	models := make(regression.Trajectory, modelCount)
	base := 2 * pointCount
	for i := 0; i < modelCount; i++ {
		models[i] = regression.Model{
			M: column(base + i),
			B: column(base + modelCount + i),
		}
	}

	return &Session{
		points:       points,
		models:       models,
		learningRate: header.LearningRate,
		compression:  header.Flag.Compression(),
	}, nil
}
