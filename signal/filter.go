package signal

import "math"

// Smooth applies a gaussian low-pass to a binary signal and returns the
// filtered samples. The kernel is truncated at four standard deviations
// and the borders are padded by repeating the nearest edge sample.
func Smooth(sig []byte, sigma float64) []float64 {
	out := make([]float64, len(sig))
	if len(sig) == 0 || sigma <= 0 {
		for i, s := range sig {
			out[i] = float64(s)
		}
		return out
	}

	radius := int(4*sigma + 0.5)
	kernel := make([]float64, 2*radius+1)
	var sum float64
	for k := -radius; k <= radius; k++ {
		w := math.Exp(-float64(k*k) / (2 * sigma * sigma))
		kernel[k+radius] = w
		sum += w
	}
	for i := range kernel {
		kernel[i] /= sum
	}

	for i := range sig {
		var acc float64
		for k := -radius; k <= radius; k++ {
			j := i + k
			if j < 0 {
				j = 0
			} else if j >= len(sig) {
				j = len(sig) - 1
			}
			acc += kernel[k+radius] * float64(sig[j])
		}
		out[i] = acc
	}
	return out
}

// Binarize thresholds a filtered signal back to 0/1 samples.
func Binarize(sig []float64, threshold float64) []byte {
	out := make([]byte, len(sig))
	for i, v := range sig {
		if v > threshold {
			out[i] = 1
		}
	}
	return out
}
