package peaks

// histogramMargin is the empty headroom kept above the largest value so a
// peak's right base never collides with the end of the distribution.
const histogramMargin = 20

// Histogram counts values into a dense array with one bin per integer
// value, sized to the largest value plus some margin, or minLen if that
// is larger. No coarse binning: exact integer resolution is what lets
// adjacent clock multiples stay distinguishable.
func Histogram(values []uint64, minLen int) []int {
	length := minLen
	for _, v := range values {
		if n := int(v) + histogramMargin; n > length {
			length = n
		}
	}
	hist := make([]int, length)
	for _, v := range values {
		hist[v]++
	}
	return hist
}
