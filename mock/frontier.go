package mock

import "github.com/fwojciec/linkwalk"

var _ linkwalk.Frontier = (*Frontier)(nil)

// Frontier is a mock implementation of linkwalk.Frontier.
type Frontier struct {
	InsertFn   func(url string, discoveredOn []string) bool
	ContainsFn func(url string) bool
	LenFn      func() int
}

func (f *Frontier) Insert(url string, discoveredOn []string) bool {
	return f.InsertFn(url, discoveredOn)
}

func (f *Frontier) Contains(url string) bool {
	return f.ContainsFn(url)
}

func (f *Frontier) Len() int {
	return f.LenFn()
}
