package metrics

// Bin is one histogram bucket covering [Lower, Upper). The last bucket of a
// histogram also includes its upper edge.
type Bin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// Histogram distributes values over equal-width bins spanning their range.
// When every value is equal the range is widened to v±0.5; an empty input
// spans [0, 1] with zero counts. bins <= 0 selects DefaultBins.
func Histogram(values []int, bins int) []Bin {
	if bins <= 0 {
		bins = DefaultBins
	}

	lo, hi := 0.0, 1.0
	if len(values) > 0 {
		minVal, maxVal := values[0], values[0]
		for _, v := range values[1:] {
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}
		lo, hi = float64(minVal), float64(maxVal)
		if lo == hi {
			lo -= 0.5
			hi += 0.5
		}
	}

	width := (hi - lo) / float64(bins)
	out := make([]Bin, bins)
	for i := range out {
		out[i].Lower = lo + float64(i)*width
		out[i].Upper = lo + float64(i+1)*width
	}
	out[bins-1].Upper = hi

	for _, v := range values {
		idx := int((float64(v) - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		if idx < 0 {
			idx = 0
		}
		out[idx].Count++
	}
	return out
}
