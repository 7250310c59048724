// Package endian provides byte order utilities for decoding BEVE's
// little-endian wire format on hosts of either byte order.
//
// BEVE numeric fields are always little-endian on the wire. The decoder
// never reinterprets memory directly (that would break on big-endian hosts);
// instead every multi-byte read goes through an EndianEngine, which is a
// binary.ByteOrder on little-endian hosts and performs an explicit per-element
// swap on big-endian ones.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into one interface. binary.LittleEndian and binary.BigEndian both satisfy
// it, so callers never need a custom implementation.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness reports the host's native byte order.
func CheckEndianness() binary.ByteOrder {
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// Wire is the byte order BEVE uses on the wire: always little-endian.
func Wire() EndianEngine {
	return binary.LittleEndian
}
