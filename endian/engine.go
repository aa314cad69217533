// Package endian provides byte order utilities for binary encoding and decoding.
//
// This package extends Go's standard encoding/binary package by combining the
// ByteOrder and AppendByteOrder interfaces into a unified Engine interface,
// which keeps the session blob encoder free of temporary scratch buffers when
// appending fixed-width fields.
//
// Most callers should use GetLittleEndianEngine, the default for descent
// session blobs. GetBigEndianEngine exists for interoperability with
// big-endian producers.
//
// All functions in this package are safe for concurrent use. The returned
// Engine instances are immutable and stateless.
package endian

import "encoding/binary"

// Engine combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single interface for convenient byte order
// operations.
//
// The interface is satisfied by binary.LittleEndian and binary.BigEndian
// from the standard library.
type Engine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() Engine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() Engine {
	return binary.BigEndian
}
