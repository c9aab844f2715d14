package mock

import "github.com/fwojciec/linkwalk"

var _ linkwalk.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of linkwalk.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(body []byte) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(body []byte) ([]string, error) {
	return e.ExtractLinksFn(body)
}
