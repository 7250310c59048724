package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	result := CheckEndianness()

	var testValue uint16 = 0x0102
	testBytes := (*[2]byte)(unsafe.Pointer(&testValue))

	switch testBytes[0] {
	case 0x01:
		require.Equal(t, binary.BigEndian, result, "CheckEndianness() should return BigEndian")
	case 0x02:
		require.Equal(t, binary.LittleEndian, result, "CheckEndianness() should return LittleEndian")
	default:
		require.Failf(t, "unexpected byte value", "got: %v", testBytes[0])
	}
}

func TestCheckEndiannessConsistency(t *testing.T) {
	first := CheckEndianness()
	for i := 0; i < 100; i++ {
		result := CheckEndianness()
		if result != first {
			t.Errorf("CheckEndianness() returned inconsistent results: first=%v, iteration %d=%v", first, i, result)
		}
	}
}

func TestIsNativeLittleEndian(t *testing.T) {
	result := IsNativeLittleEndian()
	expected := CheckEndianness() == binary.LittleEndian
	require.Equal(t, expected, result)
}

func TestWire(t *testing.T) {
	engine := Wire()

	require.Implements(t, (*EndianEngine)(nil), engine)
	require.Equal(t, binary.LittleEndian, engine)

	var testValue uint16 = 0x0102
	b := make([]byte, 2)
	engine.PutUint16(b, testValue)
	require.Equal(t, byte(0x02), b[0], "little endian should put LSB first")
	require.Equal(t, byte(0x01), b[1], "little endian should put MSB second")
	require.Equal(t, testValue, engine.Uint16(b))
}
