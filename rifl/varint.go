package rifl

// Varint encoding per the Flipper firmware's lib/toolbox/varint.c:
// little-endian base-128, seven value bits per byte, bit 7 set on every
// byte but the last. Unlike encoding/binary's ReadUvarint there is no
// notion of a message boundary; the buffer framing around the values is
// what delimits them.

// maxVarintLen is the longest encoding of a uint64: ceil(64/7) bytes.
const maxVarintLen = 10

// AppendUvarint appends the minimal varint encoding of v to dst and
// returns the extended slice.
func AppendUvarint(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

// Uvarint decodes a single varint from the front of buf. It returns the
// value and the number of bytes consumed. If buf is empty or ends with the
// continuation bit still set, n is 0: the value was cut off by the buffer
// boundary and it is the caller's framing check that decides whether that
// is corruption.
func Uvarint(buf []byte) (v uint64, n int) {
	var shift uint
	for i, b := range buf {
		v |= uint64(b&0x7F) << shift
		if b&0x80 == 0 {
			return v, i + 1
		}
		shift += 7
	}
	return 0, 0
}

// DecodeUvarints decodes every complete varint in buf, in order. Trailing
// bytes that do not form a complete value are ignored.
func DecodeUvarints(buf []byte) []uint64 {
	var values []uint64
	for len(buf) > 0 {
		v, n := Uvarint(buf)
		if n == 0 {
			break
		}
		values = append(values, v)
		buf = buf[n:]
	}
	return values
}
