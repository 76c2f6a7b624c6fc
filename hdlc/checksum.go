package hdlc

import "github.com/MiddleMan5/Serialization/byteconv"

// Checksum16 computes a 16-bit frame check sequence over a payload's bytes.
type Checksum16 func(payload []byte) uint16

// referenceBias is the constant the reference checksum adds to the first two
// payload bytes.
const referenceBias = 0x4E

// ReferenceChecksum is the format's historical check sequence: the first two
// payload bytes read least-significant first, plus a fixed bias.
//
// It is a placeholder, not an error-detecting code; it ignores six of the
// eight payload bytes entirely. New deployments should build frames with
// CRC16CCITT via NewWith, keeping ReferenceChecksum only for compatibility
// with the documented frame layout.
func ReferenceChecksum(payload []byte) uint16 {
	return byteconv.Uint16(payload) + referenceBias
}

// CRC16CCITT computes CRC-16/CCITT-FALSE over data; polynomial 0x1021,
// initial value 0xFFFF, no reflection, no final xor. Check value for
// "123456789" is 0x29b1.
func CRC16CCITT(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
