package linkwalk

// Frontier is the set of every URL ever admitted for fetching.
// It only grows and is owned by a single crawl loop, so implementations
// need not be safe for concurrent use.
type Frontier interface {
	// Insert admits url, remembering the links of the page that
	// discovered it. Returns false if url was already present.
	Insert(url string, discoveredOn []string) bool

	// Contains reports whether url was ever admitted.
	Contains(url string) bool

	// Len returns the number of admitted URLs.
	Len() int
}
