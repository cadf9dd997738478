// Package dom is a thin layer over golang.org/x/net/html for the document
// surface cards are appended to.
//
// It covers exactly what the renderer needs: parse a host page, locate the
// container element by id, build element/text fragments, and serialize the
// mutated document back to HTML. No query language, no mutation events.
package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// blankPage is the host document used when the caller supplies none.
const blankPage = `<!DOCTYPE html><html><head><meta charset="utf-8"><title>cardwall</title></head><body><main id=%q></main></body></html>`

// Attr is a single element attribute. Attribute order is preserved in
// serialized output, so builders pass attrs in display order.
type Attr struct {
	Key string
	Val string
}

// Parse reads an HTML document from r.
func Parse(r io.Reader) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}
	return doc, nil
}

// ParseBytes parses an HTML document held in memory.
func ParseBytes(b []byte) (*html.Node, error) {
	return Parse(bytes.NewReader(b))
}

// BlankPage builds a minimal host document containing a single empty
// container with the given id.
func BlankPage(containerID string) *html.Node {
	doc, err := Parse(strings.NewReader(fmt.Sprintf(blankPage, containerID)))
	if err != nil {
		// The template is a constant; the parser accepts it by construction.
		panic(err)
	}
	return doc
}

// FindByID returns the first element in document order whose id attribute
// equals id, or nil if no such element exists.
func FindByID(root *html.Node, id string) *html.Node {
	if root == nil {
		return nil
	}
	if root.Type == html.ElementNode {
		for _, a := range root.Attr {
			if a.Key == "id" && a.Val == id {
				return root
			}
		}
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if found := FindByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// Element builds an element node with the given tag and attributes.
func Element(tag string, attrs ...Attr) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	for _, a := range attrs {
		n.Attr = append(n.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}
	return n
}

// Text builds a text node. Serialization escapes the content, so callers
// pass raw strings.
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Render serializes the document rooted at n to w.
func Render(w io.Writer, n *html.Node) error {
	if err := html.Render(w, n); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

// RenderBytes serializes the document rooted at n.
func RenderBytes(n *html.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
