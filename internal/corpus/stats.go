package corpus

import (
	"math"
	"sort"
)

// Thresholds are the 33rd and 66th percentile of the corpus-wide
// per-record mean frequency. Invariant: Q1 <= Q2.
type Thresholds struct {
	Q1 float64
	Q2 float64
}

// The two averaging policies below are intentionally different and must
// stay separate: threshold estimation zero-fills absent measures, the
// unknown-word fallback mean skips them. The asymmetry comes from the
// training pipeline; see DESIGN.md before unifying.

// EstimateThresholds computes the fallback cutoffs over the whole
// corpus under the zero-fill policy.
func EstimateThresholds(records []Record) Thresholds {
	means := make([]float64, len(records))
	for i, r := range records {
		means[i] = r.MeanFrequency()
	}
	sort.Float64s(means)
	return Thresholds{
		Q1: percentile(means, 33),
		Q2: percentile(means, 66),
	}
}

// GlobalMeanFrequency is the average frequency assigned to words absent
// from the corpus: the mean over per-record means under the
// skip-missing policy, ignoring records where both measures are absent.
func GlobalMeanFrequency(records []Record) float64 {
	sum := 0.0
	n := 0
	for _, r := range records {
		if m, ok := r.meanSkipMissing(); ok {
			sum += m
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// percentile interpolates linearly between closest ranks over a sorted
// slice, matching the convention of the training pipeline.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
