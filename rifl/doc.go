// Package rifl implements the Flipper Zero raw low-frequency RFID capture
// format (RIFL), as written by the device into xyz.ask.raw / xyz.psk.raw
// files.
//
// A RIFL file is little-endian throughout and consists of a fixed header
// followed by zero or more length-prefixed buffers:
//
//	Bytes 0-3:   "RIFL" magic (0x4C464952 as a little-endian uint32)
//	Bytes 4-7:   Version (must be 1)
//	Bytes 8-11:  Carrier frequency in Hz (float32)
//	Bytes 12-15: Duty cycle (float32)
//	Bytes 16-19: Maximum buffer size in bytes (uint32)
//
// Each buffer is a uint32 byte length followed by that many bytes of
// varint-encoded uint64 values, consumed two at a time as (pulse, duration)
// pairs. A clean end of stream at a length-prefix boundary is the normal
// termination; any other truncation is a format error, as is a buffer whose
// declared length exceeds the header's maximum.
//
// # Varint Encoding
//
// Values use the firmware's little-endian base-128 encoding: seven value
// bits per byte, least significant group first, with bit 7 set on every
// byte except the last. The encoding carries no message boundaries of its
// own; the surrounding buffer framing delimits it.
//
// # Pulse and Duration
//
// A pair describes one carrier cycle in samples: the signal reads high for
// Pulse samples, then low until Duration samples have elapsed and the next
// pulse begins.
//
//	_____________      _____
//	             ______     _______ .......
//
//	^ - pulse - ^
//	^ -    duration  -^
//
// Reader exposes the pair stream both lazily (ReadPair) and eagerly
// (ReadAll); Writer packs pairs back into maximal buffers. Writing a pair
// sequence and reading it back yields the identical sequence and header,
// though buffer boundaries are the writer's choice and need not match the
// original file byte for byte.
package rifl
