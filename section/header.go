package section

import (
	"math"

	"github.com/arloliu/descent/errs"
)

// Header represents the fixed-size header section at the start of a session
// blob.
//
// Layout (32 bytes):
//
//	byte 0-1   Flag options (always little-endian)
//	byte 2     reserved, must be zero
//	byte 3     payload compression type
//	byte 4-7   point count
//	byte 8-11  model count
//	byte 12-15 payload size (compressed bytes following the header)
//	byte 16-23 learning rate (IEEE 754 bits)
//	byte 24-31 xxHash64 checksum of the (compressed) payload
type Header struct {
	// PointCount is the number of dataset points stored in the payload.
	PointCount uint32
	// ModelCount is the number of trajectory models stored in the payload.
	ModelCount uint32
	// PayloadSize is the byte length of the (compressed) payload section.
	PayloadSize uint32
	// LearningRate is the learning rate the trajectory was trained with.
	LearningRate float64
	// Checksum is the xxHash64 of the payload bytes as stored.
	Checksum uint64

	// Flag is the packed field for format options and magic number.
	Flag Flag
}

// NewHeader creates a new Header with default flags. The counts, payload
// size, and checksum are filled in when the encoder finishes.
func NewHeader() *Header {
	return &Header{
		Flag: NewFlag(),
	}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly 32 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 32 bytes, or flag validation errors
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// Parse options first to determine endianness (the Options field itself
	// is always little-endian).
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.Reserved = data[2]
	h.Flag.CompressionType = data[3]

	engine := h.Flag.GetEndianEngine()

	h.PointCount = engine.Uint32(data[4:8])
	h.ModelCount = engine.Uint32(data[8:12])
	h.PayloadSize = engine.Uint32(data[12:16])
	h.LearningRate = math.Float64frombits(engine.Uint64(data[16:24]))
	h.Checksum = engine.Uint64(data[24:32])

	return h.Flag.Validate()
}

// Bytes serializes the Header into a byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine := h.Flag.GetEndianEngine()

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.Reserved
	b[3] = h.Flag.CompressionType

	engine.PutUint32(b[4:8], h.PointCount)
	engine.PutUint32(b[8:12], h.ModelCount)
	engine.PutUint32(b[12:16], h.PayloadSize)
	engine.PutUint64(b[16:24], math.Float64bits(h.LearningRate))
	engine.PutUint64(b[24:32], h.Checksum)

	return b
}

// ParseHeader parses a Header from a byte slice that may extend past the
// header section.
//
// Parameters:
//   - data: Byte slice containing the header (must be at least 32 bytes)
//
// Returns:
//   - Header: Parsed header struct
//   - error: ErrInvalidHeaderSize or flag validation errors
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
