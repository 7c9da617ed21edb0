package stats

// Mean returns the arithmetic mean of values, 0 for an empty slice.
func Mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// PercentileIndex returns the nearest-rank index for percentile p over a
// sorted sample of n elements: int(n * p/100), clamped to the valid range.
// No interpolation between adjacent ranks.
func PercentileIndex(n, p int) int {
	if n <= 0 {
		return 0
	}
	idx := int(float64(n) * float64(p) / 100.0)
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
