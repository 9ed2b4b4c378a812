package rawrfid

import (
	"io"
	"sort"

	"github.com/hnesk/flipper-raw-rfid/bits"
	"github.com/hnesk/flipper-raw-rfid/peaks"
	"github.com/hnesk/flipper-raw-rfid/rifl"
	"github.com/hnesk/flipper-raw-rfid/signal"
)

// ReadPairs decodes a whole RIFL stream into its header and
// pulse/duration sequence.
func ReadPairs(r io.Reader) (rifl.Header, []rifl.Pair, error) {
	rr, err := rifl.NewReader(r)
	if err != nil {
		return rifl.Header{}, nil, err
	}
	pairs, err := rr.ReadAll()
	if err != nil {
		return rifl.Header{}, nil, err
	}
	return rr.Header, pairs, nil
}

// ReadSignal decodes a whole RIFL stream and reconstructs its binary
// sample signal.
func ReadSignal(r io.Reader) (rifl.Header, []byte, error) {
	h, pairs, err := ReadPairs(r)
	if err != nil {
		return rifl.Header{}, nil, err
	}
	return h, signal.FromPairs(pairs), nil
}

// Write encodes a pulse/duration sequence as a RIFL stream.
func Write(w io.Writer, h rifl.Header, pairs []rifl.Pair) error {
	rw, err := rifl.NewWriter(w, h)
	if err != nil {
		return err
	}
	for _, p := range pairs {
		if err := rw.WritePair(p); err != nil {
			return err
		}
	}
	return rw.Close()
}

// Lengths flattens a pair sequence into the lengths the peak extractor
// classifies: each pair's pulse followed by its low period.
func Lengths(pairs []rifl.Pair) []uint64 {
	lengths := make([]uint64, 0, 2*len(pairs))
	for _, p := range pairs {
		lengths = append(lengths, p.Pulse, p.Low())
	}
	return lengths
}

// DecodeBits runs the full classification pipeline over a pair sequence:
// histogram of pulse and low lengths, peak detection, then length
// quantization against the detected peaks with the shortest peak as the
// unit clock. Returns the bitstream and the resynchronization position
// (-1 if the decode never restarted).
func DecodeBits(pairs []rifl.Pair) ([]byte, int, error) {
	hist := peaks.Histogram(Lengths(pairs), 0)
	found := peaks.Find(hist, 0)

	// Find ranks by height; quantization wants the unit clock first.
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Center < found[j].Center
	})
	return bits.DecodeLengths(pairs, found)
}
