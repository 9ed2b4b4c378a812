// Package rawrfid decodes raw low-frequency RFID captures recorded by a
// Flipper Zero into an analyzable pulse/duration stream and extracts a
// clock-aligned bitstream from it.
//
// The work happens in four stages, each its own subpackage:
//
//   - rifl reads and writes the binary capture container: a magic-tagged
//     header followed by length-prefixed buffers of varint-encoded
//     (pulse, duration) pairs.
//   - signal converts the pair stream to and from a dense 0/1 sample
//     signal and cleans a noisy signal up (gaussian smoothing,
//     thresholding, autocorrelation).
//   - peaks discovers the capture's physical symbol lengths from an
//     exact histogram of pulse and low periods.
//   - bits quantizes pairs against those peaks into a bitstream and
//     demodulates Manchester/biphase line codes on top, with an EM4100
//     tag decoder as an example consumer.
//
// This package ties the stages together for the common whole-file case:
//
//	header, pairs, err := rawrfid.ReadPairs(f)
//	if err != nil {
//		...
//	}
//	stream, resync, err := rawrfid.DecodeBits(pairs)
//	data, err := bits.DecodeManchester(stream, true)
//	id, err := bits.DecodeEM4100(data)
//
// Whole-file decodes buffer the full pair sequence in memory; peak
// extraction needs the complete length distribution, so no streaming
// analysis boundary is exposed. rifl.Reader's ReadPair offers a lazy
// pair stream for callers that only need the container layer.
package rawrfid
