package bloom

import "github.com/fwojciec/linkwalk"

// Frontier sizing defaults.
const (
	DefaultExpectedURLs      = 100000
	DefaultFalsePositiveRate = 0.001
)

var _ linkwalk.Frontier = (*Frontier)(nil)

// Frontier is a linkwalk.Frontier backed by a Bloom filter. It does not keep
// the provenance of admitted URLs.
//
// A false positive makes Insert reject a URL that was never seen, so the URL
// is not crawled. A URL is never admitted twice.
type Frontier struct {
	filter *Filter
	n      int
}

// NewFrontier creates a Frontier sized for n URLs at the given false
// positive rate. Zero values select the defaults.
func NewFrontier(n uint, fpRate float64) *Frontier {
	if n == 0 {
		n = DefaultExpectedURLs
	}
	if fpRate <= 0 {
		fpRate = DefaultFalsePositiveRate
	}
	return &Frontier{filter: NewFilter(n, fpRate)}
}

// Insert admits url unless the filter reports it as possibly present.
func (f *Frontier) Insert(url string, _ []string) bool {
	if f.filter.TestAndAdd(url) {
		return false
	}
	f.n++
	return true
}

// Contains reports whether url might have been admitted.
func (f *Frontier) Contains(url string) bool {
	return f.filter.Test(url)
}

// Len returns the number of URLs admitted by Insert.
func (f *Frontier) Len() int {
	return f.n
}
