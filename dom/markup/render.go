package markup

import (
	"bytes"
	"io"
	"strings"

	"github.com/npillmayer/htmldesign/dom"
	"github.com/npillmayer/htmldesign/dom/style"
	"golang.org/x/net/html"
)

// Fragment renders all root nodes of a snapshot, including their subtrees,
// one root per line.
func Fragment(snap *dom.Snapshot) (string, error) {
	var b bytes.Buffer
	if err := RenderFragment(&b, snap); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderFragment renders all root nodes of a snapshot to w. See Fragment.
func RenderFragment(w io.Writer, snap *dom.Snapshot) error {
	for i, root := range snap.Roots() {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := RenderNode(w, snap, root); err != nil {
			return err
		}
	}
	return nil
}

// RenderNode renders a single node and its subtree to w.
// Unknown IDs render nothing.
func RenderNode(w io.Writer, snap *dom.Snapshot, id dom.ID) error {
	h := HTMLNode(snap, id)
	if h == nil {
		return nil
	}
	if err := html.Render(w, h); err != nil {
		tracer().Errorf("cannot render node %s: %v", id, err)
		return err
	}
	return nil
}

// HTMLNode converts a node and its subtree into an HTML parse tree, suitable
// for html.Render or for selector matching. Returns nil for unknown IDs.
func HTMLNode(snap *dom.Snapshot, id dom.ID) *html.Node {
	return htmlNode(snap, id, nil)
}

// htmlNode converts a subtree, recording the origin of each element in index,
// if non-nil.
func htmlNode(snap *dom.Snapshot, id dom.ID, index map[*html.Node]dom.ID) *html.Node {
	n, ok := snap.Node(id)
	if !ok {
		return nil
	}
	h := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Kind.String(),
		DataAtom: n.Kind.Atom(),
		Attr:     attributes(n),
	}
	if index != nil {
		index[h] = id
	}
	if n.Kind.IsVoid() {
		return h
	}
	if n.Content != "" {
		h.AppendChild(&html.Node{Type: html.TextNode, Data: n.Content})
	}
	for _, ch := range n.Children {
		if c := htmlNode(snap, ch, index); c != nil {
			h.AppendChild(c)
		}
	}
	return h
}

func attributes(n dom.Node) []html.Attribute {
	attrs := make([]html.Attribute, 0, n.Attributes.Len()+1)
	for _, kv := range n.Attributes.Properties() {
		if kv.Key == "style" { // styles are rendered from the style list only
			continue
		}
		attrs = append(attrs, html.Attribute{Key: kv.Key, Val: kv.Value.String()})
	}
	if s := StyleText(n.Styles); s != "" {
		attrs = append(attrs, html.Attribute{Key: "style", Val: s})
	}
	return attrs
}

// StyleText joins style declarations into the value of a style-attribute,
// e.g. "color: red; margin: 4px". Declarations with empty values are skipped.
func StyleText(styles style.Declarations) string {
	var b strings.Builder
	for _, kv := range styles.Properties() {
		if kv.Value.IsEmpty() {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("; ")
		}
		b.WriteString(kv.Key)
		b.WriteString(": ")
		b.WriteString(kv.Value.String())
	}
	return b.String()
}
