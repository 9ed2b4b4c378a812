package bits

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/hnesk/flipper-raw-rfid/peaks"
	"github.com/hnesk/flipper-raw-rfid/rifl"
)

// logger receives resynchronization diagnostics. Silent by default.
var logger = zerolog.Nop()

// SetLogger routes decode diagnostics (unmatched lengths, restarts) to l.
func SetLogger(l zerolog.Logger) { logger = l }

// DecodeLengths quantizes pulse/duration pairs into a bitstream using the
// supplied peaks. pks[0].Center must be the unit clock length; peak
// centers are expected to sit at integer multiples of it.
//
// For each pair, the pulse and the low period (duration minus pulse) are
// matched against the peaks in their given order, first containing peak
// wins. A matched pair emits its pulse peak's center divided by the unit,
// rounded, as ones, then the low peak's multiple as zeros. If either
// length matches no peak, the bits accumulated so far are discarded and
// the sample position is recorded as the resynchronization point; decoding
// continues with the next pair, so one noisy pair costs the current
// stretch, not the whole capture.
//
// resync is the position of the last restart, or -1 if the decode never
// restarted. Callers that want the bits lost before a restart can slice
// the pair sequence at resync and decode the prefix separately, with
// freshly detected peaks if need be.
func DecodeLengths(pairs []rifl.Pair, pks []peaks.Peak) (bits []byte, resync int, err error) {
	if len(pks) == 0 {
		return nil, -1, ErrNoPeaks
	}
	unit := float64(pks[0].Center)
	resync = -1

	var position uint64
	for _, p := range pairs {
		low := p.Low()

		var highPeak, lowPeak *peaks.Peak
		for i := range pks {
			pk := &pks[i]
			if highPeak == nil && pk.Contains(p.Pulse) {
				highPeak = pk
			}
			if lowPeak == nil && pk.Contains(low) {
				lowPeak = pk
			}
			if highPeak != nil && lowPeak != nil {
				break
			}
		}

		if highPeak == nil || lowPeak == nil {
			if highPeak == nil {
				logger.Debug().Uint64("pulse", p.Pulse).Uint64("position", position).
					Msg("no peak for pulse length, restarting")
			}
			if lowPeak == nil {
				logger.Debug().Uint64("low", low).Uint64("position", position).
					Msg("no peak for low length, restarting")
			}
			bits = bits[:0]
			resync = int(position)
			continue
		}

		ones := int(math.Round(float64(highPeak.Center) / unit))
		zeros := int(math.Round(float64(lowPeak.Center) / unit))
		for i := 0; i < ones; i++ {
			bits = append(bits, 1)
		}
		for i := 0; i < zeros; i++ {
			bits = append(bits, 0)
		}
		position += p.Duration
	}
	return bits, resync, nil
}
