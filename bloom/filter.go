// Package bloom provides probabilistic URL deduplication for very large
// crawls, where keeping every URL string in memory is too costly.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter keyed by normalized URL strings.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Test returns true if the URL might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}

// TestAndAdd adds url and reports whether it might already have been present.
func (f *Filter) TestAndAdd(url string) bool {
	return f.f.TestAndAddString(url)
}
