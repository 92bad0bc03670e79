package markup

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/htmldesign/dom"
	"golang.org/x/net/html"
)

// Query returns the IDs of all nodes of a snapshot matching a CSS selector,
// in document order. Selectors operate on the rendered form of the nodes,
// i.e. attribute selectors see the inline style-attribute as well:
//
//     ids, err := markup.Query(snap, `ul > li:first-child`)
//     ids, err = markup.Query(snap, `[style*="bold"]`)
//
func Query(snap *dom.Snapshot, selector string) ([]dom.ID, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	doc, index := htmlDocument(snap)
	matches := sel.MatchAll(doc)
	ids := make([]dom.ID, 0, len(matches))
	for _, m := range matches {
		if id, ok := index[m]; ok {
			ids = append(ids, id)
		}
	}
	tracer().Debugf("selector %q matches %d nodes", selector, len(ids))
	return ids, nil
}

// htmlDocument converts all roots of a snapshot into an HTML tree below a
// document node.
func htmlDocument(snap *dom.Snapshot) (*html.Node, map[*html.Node]dom.ID) {
	index := make(map[*html.Node]dom.ID, snap.Len())
	doc := &html.Node{Type: html.DocumentNode}
	for _, root := range snap.Roots() {
		if h := htmlNode(snap, root, index); h != nil {
			doc.AppendChild(h)
		}
	}
	return doc, index
}
