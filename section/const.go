package section

const (
	// Option bit masks (bits 0-3 of the Flag options field).
	EndiannessMask = 0x0001 // Mask for endianness flag (bit 0), 0 = little-endian
	ReservedMask   = 0x000E // Reserved option bits (bits 1-3), must be zero

	MagicNumberMask = 0xFFF0 // Mask for magic number (bits 4-15)

	// Magic numbers (bits 4-15)
	MagicSessionV1Opt = 0xD510 // MagicSessionV1Opt is the version 1 magic number for session blobs.

	HeaderSize    = 32         // fixed header size in bytes
	PayloadOffset = HeaderSize // byte offset where the (compressed) payload starts
)
