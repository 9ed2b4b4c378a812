package signal

import (
	"errors"

	"github.com/hnesk/flipper-raw-rfid/rifl"
)

// ErrNoTransition indicates a signal with no edge to the requested value.
var ErrNoTransition = errors.New("signal: no transition found")

// FromPairs reconstructs the binary sample signal described by a
// pulse/duration sequence. The result's length is the sum of all
// durations; each pair contributes Pulse ones followed by Duration-Pulse
// zeros.
func FromPairs(pairs []rifl.Pair) []byte {
	var length uint64
	for _, p := range pairs {
		length += p.Duration
	}
	sig := make([]byte, length)

	var position uint64
	for _, p := range pairs {
		for i := uint64(0); i < p.Pulse; i++ {
			sig[position+i] = 1
		}
		// The low tail of the duration stays zero by construction.
		position += p.Duration
	}
	return sig
}

// ToPairs converts a binary sample signal back to pulse/duration pairs.
// Edges are consumed two at a time from the end of the previous pair; a
// final unpaired edge is closed using the end of the signal. Position 0
// is treated as the start of a pulse, so leading low samples fold into
// the first pair's pulse by convention.
func ToPairs(sig []byte) []rifl.Pair {
	var pairs []rifl.Pair
	position := -1
	first := -1 // first edge of the current pair, -1 when none pending
	for i := 0; i+1 < len(sig); i++ {
		if sig[i] == sig[i+1] {
			continue
		}
		if first < 0 {
			first = i
			continue
		}
		pairs = append(pairs, rifl.Pair{
			Pulse:    uint64(first - position),
			Duration: uint64(i - position),
		})
		position = i
		first = -1
	}
	if first >= 0 {
		pairs = append(pairs, rifl.Pair{
			Pulse:    uint64(first - position),
			Duration: uint64(len(sig) - position - 1),
		})
	}
	return pairs
}

// FirstTransition returns the index of the first sample where the signal
// transitions to the given value.
func FirstTransition(sig []byte, to byte) (int, error) {
	for i := 0; i+1 < len(sig); i++ {
		if sig[i] != sig[i+1] && sig[i+1] == to {
			return i + 1, nil
		}
	}
	return 0, ErrNoTransition
}
