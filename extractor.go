package linkwalk

// LinkExtractor finds hyperlink targets in page markup.
type LinkExtractor interface {
	// ExtractLinks parses body as HTML and returns the raw href value of
	// every <a> element that has one, in document order. Values are not
	// resolved or unescaped beyond entity decoding. Malformed markup never
	// fails; non-HTML or link-free content yields an empty slice.
	ExtractLinks(body []byte) ([]string, error)
}
