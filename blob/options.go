package blob

import (
	"fmt"

	"github.com/arloliu/descent/format"
	"github.com/arloliu/descent/internal/options"
)

// EncoderOption is a functional option for the session Encoder.
type EncoderOption = options.Option[*Encoder]

// WithCompression sets the payload compression type.
func WithCompression(c format.CompressionType) EncoderOption {
	return options.New(func(e *Encoder) error {
		if !c.Valid() {
			return fmt.Errorf("unsupported compression type: %s", c)
		}
		e.header.Flag.SetCompression(c)

		return nil
	})
}

// WithLittleEndian sets little-endian byte order for the payload.
// This is the default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.header.Flag.WithLittleEndian()
	})
}

// WithBigEndian sets big-endian byte order for the payload.
func WithBigEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.header.Flag.WithBigEndian()
	})
}
