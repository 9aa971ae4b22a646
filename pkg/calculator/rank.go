package calculator

import "slices"

// averageRanks assigns 1-based ranks to n items ordered by cmp. Items that
// compare equal share the mean of the positions they occupy together, so
// values {10, 20, 20, 30} rank {1, 2.5, 2.5, 4}.
func averageRanks(n int, cmp func(i, j int) int) []float64 {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, cmp)

	ranks := make([]float64, n)
	for start := 0; start < n; {
		end := start + 1
		for end < n && cmp(idx[start], idx[end]) == 0 {
			end++
		}
		// positions start+1 .. end
		mean := float64(start+1+end) / 2
		for k := start; k < end; k++ {
			ranks[idx[k]] = mean
		}
		start = end
	}
	return ranks
}

// normalize scales ranks so the largest becomes scale.
func normalize(ranks []float64, scale float64) []float64 {
	top := 0.0
	for _, r := range ranks {
		if r > top {
			top = r
		}
	}
	out := make([]float64, len(ranks))
	if top == 0 {
		return out
	}
	for i, r := range ranks {
		out[i] = r / top * scale
	}
	return out
}
