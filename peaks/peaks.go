package peaks

import "math"

// Peak is one cluster in a length distribution, described by its left and
// right base indices and the index and height of its maximum.
// Left <= Center <= Right.
type Peak struct {
	Left   int
	Center int
	Right  int
	Height float64
}

// Contains reports whether a length falls inside the peak's base interval.
func (p Peak) Contains(v uint64) bool {
	if v > math.MaxInt64 {
		return false
	}
	return int64(p.Left) <= int64(v) && int64(v) <= int64(p.Right)
}

// Merge combines two peaks into one spanning both.
func (p Peak) Merge(other Peak) Peak {
	return Peak{
		Left:   min(p.Left, other.Left),
		Center: (p.Center + other.Center) / 2,
		Right:  max(p.Right, other.Right),
		Height: math.Max(p.Height, other.Height),
	}
}

// Slice returns the part of a distribution covered by the peak.
func (p Peak) Slice(dist []int) []int {
	return dist[p.Left:p.Right]
}

// Fit re-derives the peak's bounds from the distribution it covers,
// optionally trimming the tails: with quantile < 1, the smallest count
// threshold keeping at least that fraction of the peak's mass is applied
// before the bounds are read off.
func (p Peak) Fit(dist []int, quantile float64) Peak {
	excerpt := dist[p.Left:p.Right]

	threshold := 0
	if quantile < 1.0 {
		var total, maxCount int
		for _, c := range excerpt {
			total += c
			maxCount = max(maxCount, c)
		}
		toCapture := float64(total) * quantile
		// Largest threshold still capturing the requested mass.
		for t := maxCount; t >= 0; t-- {
			var captured int
			for _, c := range excerpt {
				if c > t {
					captured += c
				}
			}
			if float64(captured) >= toCapture {
				threshold = t
				break
			}
		}
	}

	first, last := -1, -1
	for i, c := range excerpt {
		if c > threshold {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return p
	}

	height := float64(excerpt[first])
	for _, c := range excerpt[first:last] {
		height = math.Max(height, float64(c))
	}
	return Peak{
		Left:   p.Left + first - 1,
		Center: p.Left + (first+last)/2,
		Right:  p.Left + last + 1,
		Height: height,
	}
}
