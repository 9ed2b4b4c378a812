package peaks

// otsuThreshold splits a bimodal histogram at the index maximizing the
// between-class variance: the classic Otsu criterion, evaluated over the
// counts directly with bin centers equal to indices.
func otsuThreshold(hist []int) int {
	if len(hist) < 2 {
		return 0
	}

	var total, weighted int
	for i, c := range hist {
		total += c
		weighted += i * c
	}
	if total == 0 {
		return 0
	}

	best := 0
	bestVariance := -1.0
	var w1, sum1 int
	for t := 0; t < len(hist)-1; t++ {
		w1 += hist[t]
		sum1 += t * hist[t]
		w2 := total - w1
		if w1 == 0 || w2 == 0 {
			continue
		}
		mean1 := float64(sum1) / float64(w1)
		mean2 := float64(weighted-sum1) / float64(w2)
		d := mean1 - mean2
		variance := float64(w1) * float64(w2) * d * d
		if variance > bestVariance {
			bestVariance = variance
			best = t
		}
	}
	return best
}
