package bits

// DecodeManchester demodulates a Manchester encoded bitstream. Each data
// bit occupies a two-bit cell whose halves must differ; biphase mode
// takes the first half of each cell as the data bit, diphase the second.
//
// If the first two bits are equal the stream starts mid-cell and the
// leading bit is dropped to re-align the phase. A trailing half cell is
// ignored. An equal pair inside a cell means noise or a wrong assumed
// modulation and surfaces as a *DemodulationError wrapping
// ErrBitPairEqual, with Pos relative to the aligned stream.
func DecodeManchester(stream []byte, biphase bool) ([]byte, error) {
	if len(stream) >= 2 && stream[0] == stream[1] {
		stream = stream[1:]
	}

	var out []byte
	for i := 0; i+1 < len(stream); i += 2 {
		if stream[i] == stream[i+1] {
			return nil, &DemodulationError{Pos: i, Err: ErrBitPairEqual}
		}
		if biphase {
			out = append(out, stream[i])
		} else {
			out = append(out, stream[i+1])
		}
	}
	return out, nil
}
