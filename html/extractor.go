package html

import "github.com/fwojciec/linkwalk"

var _ linkwalk.LinkExtractor = (*Extractor)(nil)

// Extractor collects href values of <a> elements.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractLinks returns the raw href of every <a> element in document order.
// Values are entity decoded but otherwise untouched.
func (e *Extractor) ExtractLinks(body []byte) ([]string, error) {
	doc, err := Parse(body)
	if err != nil {
		return nil, err
	}
	return Fold(doc, []string(nil), collectHref), nil
}

func collectHref(links []string, n Node) []string {
	el, ok := n.(*Element)
	if !ok || el.Tag != "a" {
		return links
	}
	if href, ok := el.Attr("href"); ok {
		links = append(links, href)
	}
	return links
}
