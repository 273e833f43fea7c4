package pix

import "fmt"

const (
	crcInitial    uint16 = 0xFFFF
	crcPolynomial uint16 = 0x1021
)

// CRC16 computes CRC16/CCITT-FALSE (init 0xFFFF, poly 0x1021, no reflection).
func CRC16(data []byte) uint16 {
	crc := crcInitial
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ crcPolynomial
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

// Checksum renders the CRC16 of s as the 4 uppercase hex digits used by tag 63.
func Checksum(s string) string {
	return fmt.Sprintf("%04X", CRC16([]byte(s)))
}
