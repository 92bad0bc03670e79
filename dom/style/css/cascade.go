package css

import (
	"fmt"

	"github.com/npillmayer/htmldesign/dom"
	"github.com/npillmayer/htmldesign/dom/style"
)

// ComputedProperty gets the effective value of a style property for a node.
//
// If the property is set locally on the node, the local value is returned.
// A local value may as well be given by a compound shortcut property, e.g.
// "margin: 8px 0" yields "0" for key "margin-left". If the property is not set
// locally and the property is inheritable (or set to "inherit"), the search
// cascades to the ancestors of the node. If still no value is found, the
// user-agent default for the property is returned.
//
// ComputedProperty will flag an error if the node isn't found in snap.
func ComputedProperty(snap *dom.Snapshot, id dom.ID, key string) (style.Property, error) {
	key = style.CSSName(key)
	n, ok := snap.Node(id)
	if !ok {
		return style.NullStyle, fmt.Errorf("%w: %s", dom.ErrNoSuchNode, id)
	}
	root := n
	for {
		p := LocalProperty(n, key)
		if !p.IsEmpty() && !p.IsInherit() && !p.IsInitial() {
			return p, nil
		}
		if p.IsInitial() || (!p.IsInherit() && !style.IsCascading(key)) {
			break
		}
		if n.Parent == dom.NoID {
			break
		}
		if n, ok = snap.Node(n.Parent); !ok {
			break
		}
	}
	tracer().Debugf("css property %s of %s falls back to user-agent default", key, id)
	return UserAgentDefault(root.Kind, key), nil
}

// LocalProperty returns a style property value, if it is set locally
// for a node. No cascading is performed, but compound shortcut properties
// are split up if necessary.
func LocalProperty(n dom.Node, key string) style.Property {
	if p, ok := n.Styles.Get(key); ok && !p.IsEmpty() {
		return p
	}
	compound := style.CompoundFor(key)
	if compound == "" {
		return style.NullStyle
	}
	c, ok := n.Styles.Get(compound)
	if !ok || c.IsEmpty() {
		return style.NullStyle
	}
	kvs, err := style.SplitCompoundProperty(compound, c)
	if err != nil {
		tracer().Infof("cannot split %s of %s: %v", compound, n.ID, err)
		return style.NullStyle
	}
	for _, kv := range kvs {
		if kv.Key == key {
			return kv.Value
		}
	}
	return style.NullStyle
}

var userAgentDefaults = map[string]style.Property{
	"color":            "#000000",
	"background-color": "transparent",
	"font-family":      "serif",
	"font-size":        "16px",
	"font-weight":      "normal",
	"font-style":       "normal",
	"line-height":      "normal",
	"text-align":       "left",
	"width":            "auto",
	"height":           "auto",
	"min-height":       "0",
	"min-width":        "0",
	"max-width":        "none",
	"max-height":       "none",
	"border-style":     "none",
	"visibility":       "visible",
	"list-style-type":  "disc",
}

// UserAgentDefault returns the default value of a style property for an
// element of kind k, as a browser would apply it without any style sheet.
// Unknown properties get the value "initial".
func UserAgentDefault(k dom.Kind, key string) style.Property {
	if key == "display" {
		return style.Property(displayOf(k))
	}
	if p, ok := userAgentDefaults[key]; ok {
		return p
	}
	switch style.GroupNameFromPropertyKey(key) {
	case style.PGMargins, style.PGPadding:
		return "0"
	}
	return "initial"
}

func displayOf(k dom.Kind) string {
	switch k {
	case dom.Span, dom.Strong, dom.Em, dom.B, dom.I, dom.U, dom.Img, dom.Br:
		return "inline"
	case dom.Li:
		return "list-item"
	case dom.Table:
		return "table"
	case dom.Tr:
		return "table-row"
	case dom.Td, dom.Th:
		return "table-cell"
	case dom.Thead:
		return "table-header-group"
	case dom.Tbody:
		return "table-row-group"
	}
	return "block"
}

// Display returns the display mode of a node.
func Display(snap *dom.Snapshot, id dom.ID) (DisplayMode, error) {
	p, err := ComputedProperty(snap, id, "display")
	if err != nil {
		return NoMode, err
	}
	return ParseDisplay(p.String())
}

// BoxSize returns the computed width and height of a node as dimensions.
func BoxSize(snap *dom.Snapshot, id dom.ID) (w DimenT, h DimenT, err error) {
	var p style.Property
	if p, err = ComputedProperty(snap, id, "width"); err != nil {
		return
	}
	if w, err = ParseDimen(p); err != nil {
		return
	}
	if p, err = ComputedProperty(snap, id, "height"); err != nil {
		return
	}
	h, err = ParseDimen(p)
	return
}
