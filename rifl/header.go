package rifl

import (
	"encoding/binary"
	"math"
)

// RIFL header constants.
const (
	// Magic is the 4-byte ASCII tag "RIFL" read as a little-endian uint32.
	Magic = 0x4C464952

	// Version is the only supported RIFL format version.
	Version = 1

	// HeaderSize is the fixed size of the encoded header in bytes.
	HeaderSize = 20
)

// Header is the fixed 20-byte RIFL file header. It is created once per
// file and immutable thereafter. The magic tag is a format constant and
// not stored here.
type Header struct {
	// Version is the format version (must be 1).
	Version uint32

	// Frequency is the carrier frequency in Hz, typically 125 kHz for
	// low-frequency tags.
	Frequency float32

	// DutyCycle is the carrier duty cycle, typically 0.5.
	DutyCycle float32

	// MaxBufferSize is the maximum length in bytes of any buffer that
	// follows the header.
	MaxBufferSize uint32
}

// ParseHeader decodes a header from the first HeaderSize bytes of data.
// It fails with ErrBadMagic if the magic tag does not match, with
// ErrUnsupportedVersion for any version other than 1, and with
// ErrTruncated if fewer than HeaderSize bytes are available.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, &FormatError{Offset: int64(len(data)), Err: ErrTruncated}
	}
	if binary.LittleEndian.Uint32(data[0:4]) != Magic {
		return Header{}, &FormatError{Offset: 0, Err: ErrBadMagic}
	}
	h := Header{
		Version:       binary.LittleEndian.Uint32(data[4:8]),
		Frequency:     math.Float32frombits(binary.LittleEndian.Uint32(data[8:12])),
		DutyCycle:     math.Float32frombits(binary.LittleEndian.Uint32(data[12:16])),
		MaxBufferSize: binary.LittleEndian.Uint32(data[16:20]),
	}
	if h.Version != Version {
		return Header{}, &FormatError{Offset: 4, Err: ErrUnsupportedVersion}
	}
	return h, nil
}

// Encode serializes the header to its 20-byte wire form.
func (h Header) Encode() []byte {
	data := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint32(data[0:4], Magic)
	binary.LittleEndian.PutUint32(data[4:8], h.Version)
	binary.LittleEndian.PutUint32(data[8:12], math.Float32bits(h.Frequency))
	binary.LittleEndian.PutUint32(data[12:16], math.Float32bits(h.DutyCycle))
	binary.LittleEndian.PutUint32(data[16:20], h.MaxBufferSize)
	return data
}
