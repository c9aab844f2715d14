// Package html provides a linkwalk.LinkExtractor backed by the
// golang.org/x/net/html parser.
//
// The parsed document is converted into a small typed tree of Element,
// Text and Other nodes so that link extraction is a plain fold over values
// this package owns.
package html

import (
	"bytes"

	xhtml "golang.org/x/net/html"
)

// Node is a node of a parsed document: *Element, *Text or *Other.
type Node interface {
	children() []Node
}

// Attr is an element attribute with its entity-decoded value.
type Attr struct {
	Key string
	Val string
}

// Element is a markup element such as <a> or <div>.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []Node
}

// Attr returns the value of the first attribute named key.
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func (e *Element) children() []Node { return e.Children }

// Text is a run of character data.
type Text struct {
	Data string
}

func (t *Text) children() []Node { return nil }

// Other is any node that is neither an element nor text: the document
// root, comments and doctypes. Only the document root has children.
type Other struct {
	Children []Node
}

func (o *Other) children() []Node { return o.Children }

// Parse parses body with the browser-grade x/net/html parser. Malformed
// markup is repaired the way a browser would; an error is only returned if
// the input cannot be read.
func Parse(body []byte) (Node, error) {
	doc, err := xhtml.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	return convert(doc), nil
}

func convert(n *xhtml.Node) Node {
	var kids []Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		kids = append(kids, convert(c))
	}

	switch n.Type {
	case xhtml.ElementNode:
		attrs := make([]Attr, 0, len(n.Attr))
		for _, a := range n.Attr {
			attrs = append(attrs, Attr{Key: a.Key, Val: a.Val})
		}
		return &Element{Tag: n.Data, Attrs: attrs, Children: kids}
	case xhtml.TextNode:
		return &Text{Data: n.Data}
	default:
		return &Other{Children: kids}
	}
}

// Walk visits n and its descendants in document order. If visit returns
// false the children of that node are skipped.
func Walk(n Node, visit func(Node) bool) {
	if !visit(n) {
		return
	}
	for _, c := range n.children() {
		Walk(c, visit)
	}
}

// Fold combines every node of the tree into acc in document order.
func Fold[T any](n Node, acc T, f func(T, Node) T) T {
	Walk(n, func(n Node) bool {
		acc = f(acc, n)
		return true
	})
	return acc
}
