package cssom

import "github.com/npillmayer/htmldesign/dom/style"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// Clients will have to provide a concrete implementation of this interface
// (e.g., see package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "margin-top"
	Value(string) style.Property // property value for key, e.g. "15px"
	IsImportant(string) bool     // is property key marked as important?
}

// Declarations collects the properties of a rule into an ordered
// declaration list.
func Declarations(r Rule) style.Declarations {
	var d style.Declarations
	for _, key := range r.Properties() {
		d.Set(key, r.Value(key))
	}
	return d
}

// FindRule returns the first rule of a stylesheet with the given selector.
func FindRule(sheet StyleSheet, selector string) (Rule, bool) {
	for _, r := range sheet.Rules() {
		if r.Selector() == selector {
			return r, true
		}
	}
	return nil, false
}
