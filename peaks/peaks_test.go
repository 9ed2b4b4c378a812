package peaks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogram(t *testing.T) {
	hist := Histogram([]uint64{10, 10, 10, 20, 20, 30}, 0)
	require.Len(t, hist, 30+histogramMargin)
	assert.Equal(t, 3, hist[10])
	assert.Equal(t, 2, hist[20])
	assert.Equal(t, 1, hist[30])
	assert.Equal(t, 0, hist[15])
}

func TestHistogramMinLength(t *testing.T) {
	assert.Len(t, Histogram([]uint64{3}, 100), 100)
	assert.Len(t, Histogram(nil, 50), 50)
}

func TestFindSurfacesDistinctLengths(t *testing.T) {
	hist := Histogram([]uint64{10, 10, 10, 20, 20, 30}, 0)
	found := Find(hist, 0)
	require.Len(t, found, 3)

	// Dominant length first.
	assert.Equal(t, 10, found[0].Center)
	assert.Equal(t, 20, found[1].Center)
	assert.Equal(t, 30, found[2].Center)
	assert.Equal(t, 3.0, found[0].Height)

	// Distinct and non-overlapping: every observed length belongs to
	// exactly one peak.
	for _, v := range []uint64{10, 20, 30} {
		owners := 0
		for _, p := range found {
			if p.Contains(v) {
				owners++
			}
		}
		assert.Equal(t, 1, owners, "length %d", v)
	}
}

func TestFindPlateauCenter(t *testing.T) {
	dist := []int{0, 1, 2, 2, 2, 1, 0}
	found := Find(dist, 1)
	require.Len(t, found, 1)
	assert.Equal(t, 3, found[0].Center)
	assert.True(t, found[0].Left <= found[0].Center && found[0].Center <= found[0].Right)
}

func TestFindRespectsMinHeight(t *testing.T) {
	dist := []int{0, 5, 0, 2, 0}
	found := Find(dist, 3)
	require.Len(t, found, 1)
	assert.Equal(t, 1, found[0].Center)
}

func TestFindFlatDistribution(t *testing.T) {
	assert.Empty(t, Find([]int{1, 1, 1, 1}, 0))
	assert.Empty(t, Find(nil, 0))
}

func TestFindSeparatesOverlappingPeaks(t *testing.T) {
	dist := make([]int, 30)
	dist[9], dist[10], dist[11] = 2, 8, 2
	dist[12], dist[13] = 1, 1
	dist[14], dist[15], dist[16] = 3, 9, 3

	found := Find(dist, 0)
	require.Len(t, found, 2)

	// Sorted by height: the taller cluster at 15 leads.
	assert.Equal(t, 15, found[0].Center)
	assert.Equal(t, 10, found[1].Center)

	// Shared boundary clamped into the valley, no overlap left.
	lower, upper := found[1], found[0]
	assert.Equal(t, lower.Right, upper.Left)
	assert.GreaterOrEqual(t, lower.Right, 11)
	assert.LessOrEqual(t, lower.Right, 14)
	assert.True(t, lower.Contains(10))
	assert.False(t, upper.Contains(10))
	assert.True(t, upper.Contains(15))
}

func TestSeparateLeavesInputUntouched(t *testing.T) {
	dist := []int{0, 1, 4, 1, 1, 5, 1, 0}
	in := []Peak{
		{Left: 0, Center: 2, Right: 6, Height: 4},
		{Left: 3, Center: 5, Right: 7, Height: 5},
	}
	snapshot := make([]Peak, len(in))
	copy(snapshot, in)

	out := separate(dist, in)
	assert.Equal(t, snapshot, in)
	assert.Equal(t, out[0].Right, out[1].Left)
}

func TestPeakContains(t *testing.T) {
	p := Peak{Left: 5, Center: 7, Right: 9}
	assert.True(t, p.Contains(5))
	assert.True(t, p.Contains(7))
	assert.True(t, p.Contains(9))
	assert.False(t, p.Contains(4))
	assert.False(t, p.Contains(10))
}

func TestPeakMerge(t *testing.T) {
	a := Peak{Left: 2, Center: 4, Right: 6, Height: 3}
	b := Peak{Left: 5, Center: 8, Right: 11, Height: 7}
	m := a.Merge(b)
	assert.Equal(t, Peak{Left: 2, Center: 6, Right: 11, Height: 7}, m)
}

func TestPeakFit(t *testing.T) {
	dist := []int{0, 0, 0, 1, 6, 9, 6, 1, 0, 0}
	p := Peak{Left: 1, Center: 5, Right: 9}

	t.Run("full mass", func(t *testing.T) {
		fitted := p.Fit(dist, 1.0)
		assert.Equal(t, 5, fitted.Center)
		assert.LessOrEqual(t, fitted.Left, 3)
		assert.GreaterOrEqual(t, fitted.Right, 7)
	})

	t.Run("trimmed tails", func(t *testing.T) {
		fitted := p.Fit(dist, 0.9)
		assert.Equal(t, 5, fitted.Center)
		assert.GreaterOrEqual(t, fitted.Left, 3)
		assert.LessOrEqual(t, fitted.Right, 7)
	})
}

func TestOtsuThreshold(t *testing.T) {
	t.Run("bimodal", func(t *testing.T) {
		hist := []int{8, 6, 1, 0, 0, 0, 1, 5, 9}
		threshold := otsuThreshold(hist)
		assert.GreaterOrEqual(t, threshold, 1)
		assert.LessOrEqual(t, threshold, 6)
	})

	t.Run("degenerate", func(t *testing.T) {
		assert.Equal(t, 0, otsuThreshold(nil))
		assert.Equal(t, 0, otsuThreshold([]int{5}))
		assert.Equal(t, 0, otsuThreshold([]int{0, 0, 0}))
	})
}
