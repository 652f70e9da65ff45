package protocol

import (
	"bytes"
	"testing"
)

// TestFrameRoundTrip verifies that serializing a payload and parsing the
// result recovers the magic, the declared length and the payload itself.
func TestFrameRoundTrip(t *testing.T) {
	testCases := []struct {
		name    string
		payload []byte
	}{
		{"empty payload", []byte{}},
		{"nil payload", nil},
		{"short text", []byte("hi")},
		{"text", []byte("hello world")},
		{"binary", []byte{0x00, 0xFF, 0xCA, 0xFE}},
		{"large payload (16KB)", make([]byte, 16*1024)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wire := Serialize(tc.payload)

			if got, want := len(wire), HeaderSize+len(tc.payload); got != want {
				t.Fatalf("wire length mismatch: got %d, want %d", got, want)
			}

			magic, length, err := DecodeHeader(wire[:HeaderSize])
			if err != nil {
				t.Fatalf("DecodeHeader failed: %v", err)
			}
			if !ValidMagic(magic) {
				t.Errorf("magic mismatch: got 0x%08X, want 0x%08X", magic, Magic)
			}
			if int(length) != len(tc.payload) {
				t.Errorf("length mismatch: got %d, want %d", length, len(tc.payload))
			}
			if !bytes.Equal(wire[HeaderSize:], tc.payload) {
				t.Errorf("payload mismatch: got %v, want %v", wire[HeaderSize:], tc.payload)
			}
		})
	}
}

// TestDecodeHeaderTooShort verifies that DecodeHeader rejects inputs shorter
// than the fixed header size.
func TestDecodeHeaderTooShort(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"1 byte", []byte{0xBE}},
		{"7 bytes (one less than HeaderSize)", make([]byte, 7)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := DecodeHeader(tc.data); err == nil {
				t.Fatal("expected error for short header, got nil")
			}
		})
	}
}

// TestValidMagic checks the equality gate against garbage values a receiver
// sees on an unwritten grid.
func TestValidMagic(t *testing.T) {
	testCases := []struct {
		name  string
		magic uint32
		want  bool
	}{
		{"agreed constant", Magic, true},
		{"zero (unwritten cells)", 0, false},
		{"byte-swapped", 0xBEBAFECA, false},
		{"off by one", Magic + 1, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidMagic(tc.magic); got != tc.want {
				t.Errorf("ValidMagic(0x%08X) = %v, want %v", tc.magic, got, tc.want)
			}
		})
	}
}

// TestFrameValid covers the default invalid state and NewFrame.
func TestFrameValid(t *testing.T) {
	var empty Frame
	if empty.Valid() {
		t.Error("zero-value frame must be invalid")
	}

	f := NewFrame([]byte("hi"))
	if !f.Valid() {
		t.Error("NewFrame must produce a valid frame")
	}
	if f.Length != 2 {
		t.Errorf("NewFrame length: got %d, want 2", f.Length)
	}
}
