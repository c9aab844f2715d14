package crawl

import "github.com/fwojciec/linkwalk"

// Compile-time interface verification.
var _ linkwalk.Frontier = (*Frontier)(nil)

// Frontier is an exact, insertion-ordered URL frontier. Each admitted URL
// keeps the link list of the page that discovered it.
//
// Frontier is not safe for concurrent use; the crawl loop owns it.
type Frontier struct {
	seen  map[string][]string
	order []string
}

// NewFrontier creates an empty Frontier.
func NewFrontier() *Frontier {
	return &Frontier{
		seen: make(map[string][]string),
	}
}

// Insert admits url with the links of its discovering page.
// Returns false if url has already been admitted.
func (f *Frontier) Insert(url string, discoveredOn []string) bool {
	if _, ok := f.seen[url]; ok {
		return false
	}
	f.seen[url] = discoveredOn
	f.order = append(f.order, url)
	return true
}

// Contains reports whether url was ever admitted.
func (f *Frontier) Contains(url string) bool {
	_, ok := f.seen[url]
	return ok
}

// Len returns the number of admitted URLs.
func (f *Frontier) Len() int {
	return len(f.order)
}

// URLs returns the admitted URLs in insertion order.
func (f *Frontier) URLs() []string {
	urls := make([]string, len(f.order))
	copy(urls, f.order)
	return urls
}

// DiscoveredOn returns the link list of the page that discovered url.
// The bool result is false if url was never admitted.
func (f *Frontier) DiscoveredOn(url string) ([]string, bool) {
	links, ok := f.seen[url]
	return links, ok
}
