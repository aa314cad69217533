package section

import (
	"fmt"

	"github.com/arloliu/descent/endian"
	"github.com/arloliu/descent/errs"
	"github.com/arloliu/descent/format"
)

// Flag represents the packed field for format options in the session header.
type Flag struct {
	// Options is a packed field for various options.
	// Bit 0 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 1-3 are reserved for future use, must be set to 0.
	// Bits 4-15 are the magic number identifying the blob format:
	//   - 0xD510: descent session blob format v1
	Options uint16

	// Reserved is an unused byte kept for header alignment, must be zero.
	Reserved uint8

	// CompressionType is an enum indicating the payload compression.
	CompressionType uint8
}

// NewFlag creates a new Flag with default settings: session v1 magic,
// little-endian byte order, no compression.
func NewFlag() Flag {
	flag := Flag{
		Options:         MagicSessionV1Opt,
		CompressionType: uint8(format.CompressionNone),
	}
	flag.WithLittleEndian()

	return flag
}

// IsLittleEndian returns whether the payload is little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the payload is big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// GetEndianEngine returns the endian engine matching the endianness flag.
func (f Flag) GetEndianEngine() endian.Engine {
	if f.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// Compression returns the payload compression type.
func (f Flag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the payload compression type.
func (f *Flag) SetCompression(c format.CompressionType) {
	f.CompressionType = uint8(c)
}

// Validate checks the magic number and compression type.
//
// Returns:
//   - error: ErrInvalidMagicNumber or ErrInvalidCompressionType on failure
func (f Flag) Validate() error {
	if f.GetMagicNumber() != MagicSessionV1Opt {
		return fmt.Errorf("%w: 0x%04X", errs.ErrInvalidMagicNumber, f.GetMagicNumber())
	}

	if !f.Compression().Valid() {
		return fmt.Errorf("%w: 0x%02X", errs.ErrInvalidCompressionType, f.CompressionType)
	}

	return nil
}
