package markup

import (
	"fmt"
	"strings"

	"github.com/npillmayer/htmldesign/dom"
	"github.com/npillmayer/htmldesign/dom/style"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Import parses an HTML fragment and adds its elements to a store, below
// parent (or as roots, if parent is NoID). It returns the IDs of the
// top-level nodes created.
//
// Imported nodes do not get the defaults of their kind. Their content is
// the text directly contained in the element, their attributes are taken
// as found, and their styles are parsed from the style-attribute.
// Elements of unsupported kinds are skipped, but their descendants are
// imported in their place. Children of void elements and attributes with
// malformed names are dropped.
//
// Import is not atomic: if an error occurs, nodes created so far remain in
// the store.
func Import(s *dom.Store, markup string, parent dom.ID) ([]dom.ID, error) {
	if parent != dom.NoID {
		if _, ok := s.Node(parent); !ok {
			return nil, fmt.Errorf("%w: %s", dom.ErrNoSuchNode, parent)
		}
	}
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, fmt.Errorf("cannot parse markup: %w", err)
	}
	var ids []dom.ID
	for _, h := range nodes {
		created, err := importNode(s, h, parent)
		ids = append(ids, created...)
		if err != nil {
			return ids, err
		}
	}
	tracer().Debugf("imported %d top-level nodes", len(ids))
	return ids, nil
}

func importNode(s *dom.Store, h *html.Node, parent dom.ID) ([]dom.ID, error) {
	if h.Type != html.ElementNode {
		return nil, nil
	}
	kind, ok := dom.KindOf(h.Data)
	if !ok {
		tracer().Infof("import skips unsupported element <%s>", h.Data)
		var ids []dom.ID
		for c := h.FirstChild; c != nil; c = c.NextSibling {
			created, err := importNode(s, c, parent)
			ids = append(ids, created...)
			if err != nil {
				return ids, err
			}
		}
		return ids, nil
	}
	id, err := s.AddNode(kind, parent)
	if err != nil {
		return nil, err
	}
	if err = replaceProperties(s, id, h); err != nil {
		return []dom.ID{id}, err
	}
	if kind.IsVoid() {
		return []dom.ID{id}, nil
	}
	if err = s.UpdateContent(id, directText(h)); err != nil {
		return []dom.ID{id}, err
	}
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		if _, err = importNode(s, c, id); err != nil {
			return []dom.ID{id}, err
		}
	}
	return []dom.ID{id}, nil
}

func replaceProperties(s *dom.Store, id dom.ID, h *html.Node) error {
	n, _ := s.Node(id)
	for _, key := range n.Attributes.Keys() {
		if err := s.RemoveAttribute(id, key); err != nil {
			return err
		}
	}
	styleText := ""
	for _, a := range h.Attr {
		if a.Namespace != "" || !style.ValidName(a.Key) {
			continue
		}
		if a.Key == "style" {
			styleText = a.Val
			continue
		}
		if err := s.UpdateAttribute(id, a.Key, a.Val); err != nil {
			return err
		}
	}
	return s.SetStyleText(id, styleText)
}

// directText concatenates the text nodes directly below h. Whitespace-only
// text, as found between nested elements, is dropped.
func directText(h *html.Node) string {
	var b strings.Builder
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	if strings.TrimSpace(b.String()) == "" {
		return ""
	}
	return b.String()
}
