package corpus

import "math"

// Record is one row of the reference corpus (Lexique-style). Absent
// frequency measures are encoded as NaN so the two averaging policies
// in stats.go can tell "missing" from "zero".
type Record struct {
	Lemma     string
	CGram     string
	Genre     string
	FreqFilms float64
	FreqBooks float64
}

// MeanFrequency returns the mean of the two frequency measures with
// absent values zero-filled. This is the policy used for known-word
// feature averages and for threshold estimation.
func (r Record) MeanFrequency() float64 {
	return (zeroFill(r.FreqFilms) + zeroFill(r.FreqBooks)) / 2
}

// meanSkipMissing averages only the measures that are present and
// reports false when both are absent.
func (r Record) meanSkipMissing() (float64, bool) {
	sum := 0.0
	n := 0
	for _, v := range []float64{r.FreqFilms, r.FreqBooks} {
		if !math.IsNaN(v) {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

func zeroFill(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
