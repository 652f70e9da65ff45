package protocol

import (
	"encoding/binary"
	"fmt"
)

// Serialize flattens a payload into its wire form: magic, length and payload
// bytes back to back, both integers little-endian.
func Serialize(payload []byte) []byte {
	buf := make([]byte, HeaderSize+len(payload))
	binary.LittleEndian.PutUint32(buf[0:4], Magic)
	binary.LittleEndian.PutUint32(buf[4:8], uint32(len(payload)))
	copy(buf[HeaderSize:], payload)
	return buf
}

// DecodeHeader parses the magic and length fields out of the first HeaderSize
// bytes. It performs no validation — callers check ValidMagic (or Frame.Valid)
// and decide whether the payload is worth reading.
func DecodeHeader(data []byte) (magic, length uint32, err error) {
	if len(data) < HeaderSize {
		return 0, 0, fmt.Errorf("header too short: %d bytes (need %d)", len(data), HeaderSize)
	}
	return binary.LittleEndian.Uint32(data[0:4]), binary.LittleEndian.Uint32(data[4:8]), nil
}

// ValidMagic reports whether magic equals the agreed constant.
func ValidMagic(magic uint32) bool {
	return magic == Magic
}
