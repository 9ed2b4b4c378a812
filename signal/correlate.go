package signal

import (
	"errors"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/stat"

	"github.com/hnesk/flipper-raw-rfid/peaks"
)

// ErrNoCorrelationPeak indicates that two distributions have no dominant
// correlation lag.
var ErrNoCorrelationPeak = errors.New("signal: no correlation peak found")

// Autocorrelate computes the statistical autocorrelation of x via FFT.
// The input is mean-centered, zero-padded to the next power of two that
// holds 2n-1 samples, and the result normalized by population variance
// and n. The first half of the correlation is returned; index 0 is always
// 1 for a non-constant input.
func Autocorrelate(x []float64) []float64 {
	n := len(x)
	if n < 2 {
		return nil
	}

	fsize := 1
	for fsize < 2*n-1 {
		fsize <<= 1
	}

	mean := stat.Mean(x, nil)
	padded := make([]float64, fsize)
	var variance float64
	for i, v := range x {
		d := v - mean
		padded[i] = d
		variance += d * d
	}
	variance /= float64(n)

	out := make([]float64, fsize/2)
	if variance == 0 {
		return out
	}

	cf := fft.FFTReal(padded)
	for i, c := range cf {
		cf[i] = cmplx.Conj(c) * c
	}
	corr := fft.IFFT(cf)
	for i := range out {
		out[i] = real(corr[i]) / variance / float64(n)
	}
	return out
}

// CorrelationOffset returns the lag at which two distributions of equal
// length correlate best, via the dominant peak of their cross-correlation:
// the amount to roll b by to best align it with a.
func CorrelationOffset(a, b []int) (int, error) {
	n := len(a)
	if n == 0 || len(b) != n {
		return 0, ErrNoCorrelationPeak
	}

	// Dense cross-correlation, center n lags ("same" mode).
	full := make([]int, 2*n-1)
	for k := range full {
		shift := k - (n - 1)
		for i := 0; i < n; i++ {
			if j := i + shift; j >= 0 && j < n {
				full[k] += a[j] * b[i]
			}
		}
	}
	same := full[(n-1)/2 : (n-1)/2+n]

	found := peaks.Find(same, 0)
	if len(found) == 0 {
		return 0, ErrNoCorrelationPeak
	}
	return found[0].Center - n/2, nil
}
