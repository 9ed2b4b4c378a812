// Package signal converts between the pulse/duration representation of a
// raw RFID capture and a dense binary (0/1) sample signal, and provides
// the small amount of DSP needed to clean a reconstructed signal up:
// gaussian smoothing, thresholding, autocorrelation and edge search.
//
// The conversion is lossless in one direction by convention: position 0 is
// treated as the start of a pulse, so a signal that begins or ends with
// padding beyond what a pulse/duration pair can express does not survive
// the round trip bit-exactly. For any pair sequence with
// Duration > Pulse > 0, ToPairs(FromPairs(p)) == p; a pair with no low
// tail merges into its successor's pulse.
package signal
