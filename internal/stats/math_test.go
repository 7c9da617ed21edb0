package stats

import "testing"

func TestMean(t *testing.T) {
	if got := Mean([]int{2, 4, 6}); got != 4.0 {
		t.Errorf("Mean = %f, want 4.0", got)
	}
	if got := Mean(nil); got != 0 {
		t.Errorf("Mean(nil) = %f, want 0", got)
	}
}

func TestPercentileIndex(t *testing.T) {
	cases := []struct {
		n, p, want int
	}{
		{10, 50, 5},
		{10, 75, 7},
		{10, 85, 8},
		{10, 95, 9},
		{1, 95, 0},   // clamped into range
		{4, 100, 3},  // int(4*1.0) == 4 clamps to 3
		{0, 50, 0},   // empty sample must not index
		{1000, 0, 0}, // bottom of the distribution
	}
	for _, c := range cases {
		if got := PercentileIndex(c.n, c.p); got != c.want {
			t.Errorf("PercentileIndex(%d, %d) = %d, want %d", c.n, c.p, got, c.want)
		}
	}
}
