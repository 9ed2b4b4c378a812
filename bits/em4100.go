package bits

import (
	"regexp"
	"strings"
)

// em4100Pattern matches one EM4100 frame: a header of nine ones, 54 body
// bits and a terminating zero.
const em4100Pattern = `1{9}.{54}0`

// em4100Rows is the body grid shape: 10 data rows plus the parity row,
// 4 data columns plus the row-parity column.
const (
	em4100Rows = 11
	em4100Cols = 5
)

// String renders a bitstream as a "0"/"1" string.
func String(bits []byte) string {
	var b strings.Builder
	b.Grow(len(bits))
	for _, bit := range bits {
		b.WriteByte('0' + bit)
	}
	return b.String()
}

// FindPattern returns the first run of bits matching the regular
// expression pattern, applied to the stream's "0"/"1" string form.
// Returns a *DemodulationError wrapping ErrPatternNotFound when nothing
// matches.
func FindPattern(bits []byte, pattern string) ([]byte, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	loc := re.FindStringIndex(String(bits))
	if loc == nil {
		return nil, &DemodulationError{Pos: 0, Err: ErrPatternNotFound}
	}
	return bits[loc[0]:loc[1]], nil
}

// DecodeEM4100 decodes a bitstream as an EM4100 tag frame and returns its
// ten data nibbles (version/customer ID first).
//
// The frame is a header of nine ones, then ten rows of four data bits
// plus one even row-parity bit, then four even column-parity bits and a
// final zero. Parity violations surface as *DemodulationError wrapping
// ErrParity; a missing frame as ErrPatternNotFound.
func DecodeEM4100(bits []byte) ([]byte, error) {
	frame, err := FindPattern(bits, em4100Pattern)
	if err != nil {
		return nil, err
	}
	grid := frame[9:] // 11x5: data rows, then the column-parity row

	for col := 0; col < em4100Cols-1; col++ {
		sum := 0
		for row := 0; row < em4100Rows; row++ {
			sum += int(grid[row*em4100Cols+col])
		}
		if sum%2 != 0 {
			return nil, &DemodulationError{Pos: col, Err: ErrParity}
		}
	}
	for row := 0; row < em4100Rows-1; row++ {
		sum := 0
		for col := 0; col < em4100Cols; col++ {
			sum += int(grid[row*em4100Cols+col])
		}
		if sum%2 != 0 {
			return nil, &DemodulationError{Pos: row, Err: ErrParity}
		}
	}

	nibbles := make([]byte, em4100Rows-1)
	for row := range nibbles {
		r := grid[row*em4100Cols:]
		nibbles[row] = r[0]<<3 | r[1]<<2 | r[2]<<1 | r[3]
	}
	return nibbles, nil
}

// LongestRun finds the longest run of a value in a bitstream and returns
// its start index and length. A zero length means the value never occurs.
func LongestRun(bits []byte, value byte) (start, length int) {
	current := 0
	for i, b := range bits {
		if b != value {
			current = 0
			continue
		}
		current++
		if current > length {
			length = current
			start = i - current + 1
		}
	}
	return start, length
}
