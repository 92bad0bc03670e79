/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

Besides wrapping parsed stylesheets, the package parses inline style text, as
found in the style-attribute of elements, and creates the stylesheet for
exported documents.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/htmldesign/dom/style"
	"github.com/npillmayer/htmldesign/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'htmldesign.style'.
func tracer() tracing.Trace {
	return tracing.Select("htmldesign.style")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	if othercss, ok := other.(*CSSStyles); ok {
		sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
		return
	}
	for _, r := range other.Rules() { // foreign implementation: copy rule by rule
		rule := css.NewRule(css.QualifiedRule)
		rule.Prelude = r.Selector()
		rule.Selectors = splitSelectors(r.Selector())
		for _, key := range r.Properties() {
			rule.Declarations = append(rule.Declarations, &css.Declaration{
				Property:  key,
				Value:     r.Value(key).String(),
				Important: r.IsImportant(key),
			})
		}
		sheet.css.Rules = append(sheet.css.Rules, rule)
	}
}

// Rules returns all the rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, len(sheet.css.Rules))
	for i := range sheet.css.Rules {
		r := sheet.css.Rules[i]
		rules[i] = Rule(*r)
	}
	return rules
}

// String renders the stylesheet as CSS text.
func (sheet *CSSStyles) String() string {
	return sheet.css.String()
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	if r.Prelude == "" && len(r.Selectors) > 0 {
		return strings.Join(r.Selectors, ", ")
	}
	return r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px"
func (r Rule) Value(key string) style.Property {
	decl := r.Declarations
	for _, d := range decl {
		if d.Property == key {
			return style.Property(d.Value)
		}
	}
	return ""
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	decl := r.Declarations
	for _, d := range decl {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

var _ cssom.Rule = &Rule{}

// --- Inline styles ----------------------------------------------------

// ParseInline parses the text of a style-attribute, e.g.
//
//     color: red; margin: 0 auto
//
// into a list of key-value pairs, in order of appearance. Property names are
// returned as written; an "!important" flag is kept as part of the value.
// Empty text and empty declarations (";;") are skipped. Braces are not
// allowed in inline styles.
func ParseInline(text string) ([]style.KeyValue, error) {
	if strings.ContainsAny(text, "{}") {
		return nil, fmt.Errorf("unexpected brace in inline style %q", text)
	}
	text = dropEmptyDeclarations(text)
	if text == "" {
		return nil, nil
	}
	text += ";" // parser drops a last declaration without terminator
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return nil, err
	}
	kvs := make([]style.KeyValue, 0, len(decls))
	for _, d := range decls {
		if d.Property == "" {
			return nil, fmt.Errorf("missing property name in %q", text)
		}
		value := d.Value
		if d.Important {
			value += " !important"
		}
		kvs = append(kvs, style.KeyValue{Key: d.Property, Value: style.Property(value)})
	}
	tracer().Debugf("parsed %d inline style declarations", len(kvs))
	return kvs, nil
}

func dropEmptyDeclarations(text string) string {
	segments := strings.Split(text, ";")
	decls := segments[:0]
	for _, seg := range segments {
		if seg = strings.TrimSpace(seg); seg != "" {
			decls = append(decls, seg)
		}
	}
	return strings.Join(decls, "; ")
}

// --- Export stylesheet ------------------------------------------------

// ExportStylesheet creates the stylesheet embedded into exported documents:
// a rule for the body and a rule for a centered container, selected by
// class containerClass.
func ExportStylesheet(containerClass string) *CSSStyles {
	sheet := css.NewStylesheet()
	sheet.Rules = append(sheet.Rules,
		qualifiedRule("body",
			"font-family", "-apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif",
			"line-height", "1.6",
			"margin", "0",
			"padding", "20px",
			"background-color", "#f9fafb",
		),
		qualifiedRule("."+containerClass,
			"max-width", "800px",
			"margin", "0 auto",
			"background", "white",
			"padding", "40px",
			"border-radius", "12px",
			"box-shadow", "0 4px 6px -1px rgba(0, 0, 0, 0.1)",
		),
	)
	return Wrap(sheet)
}

func qualifiedRule(selector string, kvs ...string) *css.Rule {
	rule := css.NewRule(css.QualifiedRule)
	rule.Prelude = selector
	rule.Selectors = splitSelectors(selector)
	for i := 0; i+1 < len(kvs); i += 2 {
		rule.Declarations = append(rule.Declarations, &css.Declaration{
			Property: kvs[i],
			Value:    kvs[i+1],
		})
	}
	return rule
}

func splitSelectors(prelude string) []string {
	sels := strings.Split(prelude, ",")
	for i, s := range sels {
		sels[i] = strings.TrimSpace(s)
	}
	return sels
}

// --- Style elements ---------------------------------------------------

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets.
func ExtractStyleElements(htmldoc *html.Node) []*CSSStyles {
	head := findElement(atom.Head, htmldoc)
	body := findElement(atom.Body, htmldoc)
	css := extractStyles(head)
	css = append(css, extractStyles(body)...)
	return css
}

func extractStyles(h *html.Node) []*CSSStyles {
	if h == nil {
		return nil
	}
	var css []*CSSStyles
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom != atom.Style || ch.FirstChild == nil {
			continue
		}
		c, err := parser.Parse(ch.FirstChild.Data)
		if err != nil {
			tracer().Errorf("cannot parse <style> element: %v", err)
			break
		}
		css = append(css, Wrap(c))
	}
	return css
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	ch := h.FirstChild
	for ch != nil {
		r := findElement(a, ch)
		if r != nil && r.DataAtom == a {
			return r
		}
		ch = ch.NextSibling
	}
	return nil
}
