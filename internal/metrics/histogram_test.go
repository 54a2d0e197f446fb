package metrics

import (
	"math"
	"testing"
)

func TestHistogramCountsSumToValues(t *testing.T) {
	inputs := [][]int{
		nil,
		{5},
		{3, 2},
		{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 40},
		{0, 0, 0, 12},
	}
	for _, values := range inputs {
		bins := Histogram(values, DefaultBins)
		if len(bins) != DefaultBins {
			t.Fatalf("len(bins) = %d, want %d", len(bins), DefaultBins)
		}
		var sum int
		for _, b := range bins {
			sum += b.Count
		}
		if sum != len(values) {
			t.Errorf("histogram of %v counts %d values, want %d", values, sum, len(values))
		}
	}
}

func TestHistogramEdges(t *testing.T) {
	bins := Histogram([]int{0, 10}, 5)
	wantEdges := []float64{0, 2, 4, 6, 8, 10}
	for i, b := range bins {
		if math.Abs(b.Lower-wantEdges[i]) > 1e-9 || math.Abs(b.Upper-wantEdges[i+1]) > 1e-9 {
			t.Fatalf("bin %d = [%v, %v), want [%v, %v)", i, b.Lower, b.Upper, wantEdges[i], wantEdges[i+1])
		}
	}
	if bins[0].Count != 1 || bins[4].Count != 1 {
		t.Fatalf("expected min in first bin and max in last bin, got %+v", bins)
	}
}

func TestHistogramSingleValue(t *testing.T) {
	bins := Histogram([]int{7, 7, 7}, 4)
	if bins[0].Lower != 6.5 || bins[3].Upper != 7.5 {
		t.Fatalf("expected range [6.5, 7.5], got [%v, %v]", bins[0].Lower, bins[3].Upper)
	}
	if bins[2].Count != 3 {
		t.Fatalf("expected all values in bin 2, got %+v", bins)
	}
}

func TestHistogramEmptyAndDefaultBins(t *testing.T) {
	bins := Histogram(nil, 0)
	if len(bins) != DefaultBins {
		t.Fatalf("len(bins) = %d, want %d", len(bins), DefaultBins)
	}
	if bins[0].Lower != 0 || bins[len(bins)-1].Upper != 1 {
		t.Fatalf("empty histogram range = [%v, %v], want [0, 1]", bins[0].Lower, bins[len(bins)-1].Upper)
	}
}
