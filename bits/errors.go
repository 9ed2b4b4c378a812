package bits

import (
	"errors"
	"fmt"
)

// Package-level errors for bitstream decoding.
var (
	// ErrNoPeaks indicates DecodeLengths was called without any peaks.
	ErrNoPeaks = errors.New("bits: no peaks supplied")

	// ErrBitPairEqual indicates a Manchester cell whose two halves are
	// equal; every valid cell contains a transition.
	ErrBitPairEqual = errors.New("bits: equal bit pair in manchester stream")

	// ErrPatternNotFound indicates the bitstream contains no run matching
	// the requested layout pattern.
	ErrPatternNotFound = errors.New("bits: pattern not found")

	// ErrParity indicates a row or column parity check failed.
	ErrParity = errors.New("bits: parity check failed")
)

// DemodulationError is a decode failure caused by noise or a wrong
// assumed modulation or layout. It wraps one of the package sentinels and
// records the bit position involved, so the caller can decide whether to
// retry with different parameters.
type DemodulationError struct {
	// Pos is the bit index at which demodulation failed.
	Pos int

	// Err is the underlying sentinel error.
	Err error
}

func (e *DemodulationError) Error() string {
	return fmt.Sprintf("%v (at bit %d)", e.Err, e.Pos)
}

func (e *DemodulationError) Unwrap() error { return e.Err }
