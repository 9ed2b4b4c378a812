package rawrfid

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnesk/flipper-raw-rfid/bits"
	"github.com/hnesk/flipper-raw-rfid/rifl"
)

func testHeader() rifl.Header {
	return rifl.Header{Version: 1, Frequency: 125_000, DutyCycle: 0.5, MaxBufferSize: 2048}
}

func TestWriteReadPairs(t *testing.T) {
	pairs := []rifl.Pair{{Pulse: 310, Duration: 515}, {Pulse: 274, Duration: 527}, {Pulse: 252, Duration: 743}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testHeader(), pairs))

	h, got, err := ReadPairs(&buf)
	require.NoError(t, err)
	assert.Equal(t, testHeader(), h)
	assert.Equal(t, pairs, got)
}

func TestReadSignal(t *testing.T) {
	pairs := []rifl.Pair{{Pulse: 2, Duration: 5}, {Pulse: 3, Duration: 4}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testHeader(), pairs))

	_, sig, err := ReadSignal(&buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 1, 0, 0, 0, 1, 1, 1, 0}, sig)
}

func TestLengths(t *testing.T) {
	lengths := Lengths([]rifl.Pair{{Pulse: 310, Duration: 825}, {Pulse: 274, Duration: 801}})
	assert.Equal(t, []uint64{310, 515, 274, 527}, lengths)
}

// em4100Frame synthesizes a valid 64-bit EM4100 frame from ten nibbles.
func em4100Frame(nibbles []byte) []byte {
	frame := bytes.Repeat([]byte{1}, 9)
	var colSums [4]int
	for _, n := range nibbles {
		rowSum := 0
		for col := 0; col < 4; col++ {
			bit := n >> (3 - col) & 1
			frame = append(frame, bit)
			colSums[col] += int(bit)
			rowSum += int(bit)
		}
		frame = append(frame, byte(rowSum%2))
	}
	for col := 0; col < 4; col++ {
		frame = append(frame, byte(colSums[col]%2))
	}
	return append(frame, 0)
}

// manchester expands data bits into biphase cells: 1 -> 10, 0 -> 01.
func manchester(data []byte) []byte {
	cells := make([]byte, 0, 2*len(data))
	for _, b := range data {
		cells = append(cells, b, 1-b)
	}
	return cells
}

// pairsFromBits folds a bitstream back into pulse/duration pairs with a
// little deterministic jitter, imitating a real capture. The stream must
// start with a 1; a final pulse with no closing low gets one unit of low
// appended, which decodes to one harmless trailing zero bit.
func pairsFromBits(stream []byte, unit uint64) []rifl.Pair {
	var pairs []rifl.Pair
	i, k := 0, 0
	for i < len(stream) {
		ones := int64(0)
		for i < len(stream) && stream[i] == 1 {
			ones++
			i++
		}
		zeros := int64(0)
		for i < len(stream) && stream[i] == 0 {
			zeros++
			i++
		}
		if zeros == 0 {
			zeros = 1
		}
		k++
		jitterHigh := int64(k%5) - 2
		jitterLow := int64(k%3) - 1
		pairs = append(pairs, rifl.Pair{
			Pulse:    uint64(ones*int64(unit) + jitterHigh),
			Duration: uint64((ones+zeros)*int64(unit) + jitterHigh + jitterLow),
		})
	}
	return pairs
}

// Full pipeline: synthesize a Manchester encoded EM4100 capture, write it
// through the container, read it back and decode the tag ID.
func TestDecodeBitsEndToEnd(t *testing.T) {
	nibbles := []byte{0x0, 0x6, 0x0, 0x1, 0x2, 0x3, 0x4, 0x5, 0x6, 0x7}
	const unit = 32

	cells := manchester(em4100Frame(nibbles))
	pairs := pairsFromBits(cells, unit)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testHeader(), pairs))
	_, readBack, err := ReadPairs(&buf)
	require.NoError(t, err)

	stream, resync, err := DecodeBits(readBack)
	require.NoError(t, err)
	assert.Equal(t, -1, resync)

	decoded, err := bits.DecodeManchester(stream, true)
	require.NoError(t, err)

	got, err := bits.DecodeEM4100(decoded)
	require.NoError(t, err)
	assert.Equal(t, nibbles, got)
}

func TestDecodeBitsQuantization(t *testing.T) {
	// Two clean clusters at one and two clock units.
	pairs := []rifl.Pair{
		{Pulse: 310, Duration: 825}, // unit high, double low
		{Pulse: 274, Duration: 801},
		{Pulse: 615, Duration: 920}, // double high, unit low
		{Pulse: 590, Duration: 895},
		{Pulse: 305, Duration: 610},
		{Pulse: 295, Duration: 600},
	}
	stream, resync, err := DecodeBits(pairs)
	require.NoError(t, err)
	assert.Equal(t, -1, resync)
	assert.Equal(t, []byte{
		1, 0, 0,
		1, 0, 0,
		1, 1, 0,
		1, 1, 0,
		1, 0,
		1, 0,
	}, stream)
}
