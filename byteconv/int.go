package byteconv

// Width-specific byte extraction primitives.
// Each width is an explicit function so there is never a code path that
// reinterprets arbitrary object memory.

// PutUint16 writes n to buff[0:2], least-significant byte first.
func PutUint16(buff []byte, n uint16) {
	buff[0] = uint8(n)
	buff[1] = uint8(n >> 8)
}

// Uint16 reads a uint16 from buff[0:2], least-significant byte first.
func Uint16(buff []byte) uint16 {
	n := uint16(buff[0])
	n |= uint16(buff[1]) << 8
	return n
}

// PutUint32 writes n to buff[0:4], least-significant byte first.
func PutUint32(buff []byte, n uint32) {
	buff[0] = uint8(n)
	buff[1] = uint8(n >> 8)
	buff[2] = uint8(n >> 16)
	buff[3] = uint8(n >> 24)
}

// Uint32 reads a uint32 from buff[0:4], least-significant byte first.
func Uint32(buff []byte) uint32 {
	n := uint32(buff[0])
	n |= uint32(buff[1]) << 8
	n |= uint32(buff[2]) << 16
	n |= uint32(buff[3]) << 24
	return n
}

// PutUint64 writes n to buff[0:8], least-significant byte first.
func PutUint64(buff []byte, n uint64) {
	buff[0] = uint8(n)
	buff[1] = uint8(n >> 8)
	buff[2] = uint8(n >> 16)
	buff[3] = uint8(n >> 24)
	buff[4] = uint8(n >> 32)
	buff[5] = uint8(n >> 40)
	buff[6] = uint8(n >> 48)
	buff[7] = uint8(n >> 56)
}

// Uint64 reads a uint64 from buff[0:8], least-significant byte first.
func Uint64(buff []byte) uint64 {
	n := uint64(buff[0])
	n |= uint64(buff[1]) << 8
	n |= uint64(buff[2]) << 16
	n |= uint64(buff[3]) << 24
	n |= uint64(buff[4]) << 32
	n |= uint64(buff[5]) << 40
	n |= uint64(buff[6]) << 48
	n |= uint64(buff[7]) << 56
	return n
}
