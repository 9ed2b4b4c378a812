package peaks

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Find locates the peaks of a distribution and returns them sorted by
// descending height, so the dominant symbol length comes first.
//
// A candidate is a local maximum (the midpoint of a plateau) whose height
// and prominence both reach minHeight; its Left and Right are the base
// indices supporting the prominence. minHeight <= 0 selects the mean of
// the distribution. Overlapping neighbours are separated afterwards: the
// shared boundary of two peaks whose bases overlap is clamped to the Otsu
// threshold of the contested histogram slice. The input is not modified.
func Find(dist []int, minHeight float64) []Peak {
	if len(dist) == 0 {
		return nil
	}
	if minHeight <= 0 {
		values := make([]float64, len(dist))
		for i, v := range dist {
			values[i] = float64(v)
		}
		minHeight = stat.Mean(values, nil)
	}

	var found []Peak
	for _, center := range localMaxima(dist) {
		height := float64(dist[center])
		if height < minHeight {
			continue
		}
		left, right, prominence := prominence(dist, center)
		if prominence < minHeight {
			continue
		}
		found = append(found, Peak{Left: left, Center: center, Right: right, Height: height})
	}

	found = separate(dist, found)

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Height > found[j].Height
	})
	return found
}

// localMaxima returns the centers of all strict local maxima, using the
// midpoint for flat tops.
func localMaxima(dist []int) []int {
	var maxima []int
	i := 1
	for i < len(dist)-1 {
		if dist[i-1] >= dist[i] {
			i++
			continue
		}
		// Possible left edge of a maximum; walk the plateau.
		ahead := i + 1
		for ahead < len(dist)-1 && dist[ahead] == dist[i] {
			ahead++
		}
		if dist[ahead] < dist[i] {
			maxima = append(maxima, (i+ahead-1)/2)
		}
		i = ahead
	}
	return maxima
}

// prominence measures how much a peak stands out from the surrounding
// baseline: its height above the higher of the two valley minima reached
// before a taller sample (or the border) on either side. The positions of
// those minima are the peak's bases.
func prominence(dist []int, peak int) (left, right int, prom float64) {
	height := dist[peak]

	left = peak
	leftMin := height
	for i := peak; i >= 0 && dist[i] <= height; i-- {
		if dist[i] < leftMin {
			leftMin = dist[i]
			left = i
		}
	}

	right = peak
	rightMin := height
	for i := peak; i < len(dist) && dist[i] <= height; i++ {
		if dist[i] < rightMin {
			rightMin = dist[i]
			right = i
		}
	}

	return left, right, float64(height - max(leftMin, rightMin))
}

// separate resolves base overlap between neighbouring peaks. Peaks are
// walked in center order; whenever a peak's right base reaches past its
// neighbour's left base, both are clamped to the Otsu threshold of the
// overlapping slice. Returns adjusted copies, leaving the input peaks
// untouched.
func separate(dist []int, found []Peak) []Peak {
	if len(found) < 2 {
		return found
	}
	adjusted := make([]Peak, len(found))
	copy(adjusted, found)
	sort.SliceStable(adjusted, func(i, j int) bool {
		return adjusted[i].Center < adjusted[j].Center
	})

	for i := 0; i+1 < len(adjusted); i++ {
		l, r := &adjusted[i], &adjusted[i+1]
		if l.Right <= r.Left {
			continue
		}
		boundary := l.Left + otsuThreshold(dist[l.Left:r.Right])
		l.Right = boundary
		r.Left = boundary
	}
	return adjusted
}
