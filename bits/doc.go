// Package bits turns a clock-aligned pulse/duration stream into a
// bitstream and decodes line codes on top of it.
//
// DecodeLengths quantizes each pulse and low period against the detected
// symbol-length peaks, emitting runs of ones and zeros as multiples of the
// unit clock; a length that matches no peak restarts the decode at a
// recorded resynchronization point instead of aborting. DecodeManchester
// demodulates the resulting cell stream, and DecodeEM4100 shows the
// fixed-layout (header + nibbles + parity) decode of the common 64-bit
// tag as an example consumer.
package bits
