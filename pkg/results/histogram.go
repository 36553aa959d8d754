package results

import "math"

// Bin is a single histogram bucket covering [Low, High) (the final bin of
// a histogram includes Max).
type Bin struct {
	Low   float64
	High  float64
	Count uint64
}

// Histogram computes an auto-binned histogram of r.Values using
// max(Sturges, Freedman-Diaconis) bin count. Degenerate data (min == max)
// returns a single bin containing every value.
func (r *Results) Histogram() []Bin {
	values := r.Values
	n := len(values)
	min, max := r.Statistics.Min, r.Statistics.Max

	if min == max {
		return []Bin{{Low: min, High: max, Count: uint64(n)}}
	}

	bins := autoBinCount(n, min, max, r.Percentiles.IQR)
	width := (max - min) / float64(bins)

	out := make([]Bin, bins)
	for k := 0; k < bins; k++ {
		out[k] = Bin{Low: min + float64(k)*width, High: min + float64(k+1)*width}
	}

	for _, v := range values {
		idx := int((v - min) / width)
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

// autoBinCount returns max(Sturges, Freedman-Diaconis), clamped to
// [1, 1000], falling back to Sturges when IQR == 0.
func autoBinCount(n int, min, max, iqr float64) int {
	sturges := int(math.Ceil(math.Log2(float64(n)) + 1))

	var fd int
	if iqr > 0 {
		binWidth := 2 * iqr * math.Pow(float64(n), -1.0/3.0)
		fd = int(math.Ceil((max - min) / binWidth))
	} else {
		fd = sturges
	}

	bins := sturges
	if fd > bins {
		bins = fd
	}
	if bins < 1 {
		bins = 1
	}
	if bins > 1000 {
		bins = 1000
	}
	return bins
}
