// Package analysis computes bit-level statistics over raw file bytes,
// feeding the CLI's density plot. It helps the same job the viewer does:
// spotting structure, padding, and dense regions in a binary before
// scrolling to them.
package analysis

import "math/bits"

// Density splits data into buckets equal slices and returns the fraction
// of set bits in each, in file order. Values are in [0, 1]. Fewer bytes
// than buckets collapses to one bucket per byte; empty data returns nil.
func Density(data []byte, buckets int) []float64 {
	if buckets <= 0 || len(data) == 0 {
		return nil
	}
	if buckets > len(data) {
		buckets = len(data)
	}
	out := make([]float64, buckets)
	for i := range out {
		lo := i * len(data) / buckets
		hi := (i + 1) * len(data) / buckets
		set := 0
		for _, b := range data[lo:hi] {
			set += bits.OnesCount8(b)
		}
		out[i] = float64(set) / float64((hi-lo)*8)
	}
	return out
}

// PopCount returns the total number of set bits in data.
func PopCount(data []byte) int {
	set := 0
	for _, b := range data {
		set += bits.OnesCount8(b)
	}
	return set
}
