// Package goquery provides a linkwalk.LinkExtractor that selects anchors
// with CSS selectors.
package goquery

import (
	"bytes"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/linkwalk"
)

// DefaultSelector matches every anchor carrying an href.
const DefaultSelector = "a[href]"

var _ linkwalk.LinkExtractor = (*Extractor)(nil)

// Extractor returns the href of every element matched by Selector.
type Extractor struct {
	Selector string
}

// NewExtractor creates an Extractor for selector. An empty selector
// uses DefaultSelector.
func NewExtractor(selector string) *Extractor {
	if selector == "" {
		selector = DefaultSelector
	}
	return &Extractor{Selector: selector}
}

// ExtractLinks returns raw href values in document order.
func (e *Extractor) ExtractLinks(body []byte) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, linkwalk.Errorf(linkwalk.EINVALID, "failed to parse HTML: %v", err)
	}

	var links []string
	doc.Find(e.Selector).Each(func(_ int, sel *goquery.Selection) {
		if href, ok := sel.Attr("href"); ok {
			links = append(links, href)
		}
	})
	return links, nil
}
