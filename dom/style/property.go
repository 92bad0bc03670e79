package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'htmldesign.style'
func tracer() tracing.Trace {
	return tracing.Select("htmldesign.style")
}

// Property is a raw value for a CSS property or an element attribute.
// For example, with
//
//     color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
//
// Property values are free text. No syntax check is ever performed on them.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property or an attribute.
type KeyValue struct {
	Key   string
	Value Property
}

func (kv KeyValue) String() string {
	return fmt.Sprintf("%s=%q", kv.Key, kv.Value)
}

// --- Declarations -----------------------------------------------------

// Declarations is an ordered list of unique keys, each mapped to a property
// value. Elements use Declarations for both their attributes and their inline
// styles. The order of keys is the order of first insertion; overwriting a
// value keeps the position of its key. This makes rendering deterministic.
//
// The zero value is an empty, ready to use list.
type Declarations struct {
	keys []string
	vals map[string]Property
}

// DeclarationsOf creates a declaration list from a sequence of key-value pairs.
// Later pairs overwrite earlier ones with the same key.
func DeclarationsOf(kvs ...KeyValue) Declarations {
	var d Declarations
	for _, kv := range kvs {
		d.Set(kv.Key, kv.Value)
	}
	return d
}

// Len returns the number of declarations.
func (d Declarations) Len() int {
	return len(d.keys)
}

// IsSet is a predicate wether a key is present and carries a non-empty value.
func (d Declarations) IsSet(key string) bool {
	p, ok := d.Get(key)
	return ok && !p.IsEmpty()
}

// Get a property's value.
func (d Declarations) Get(key string) (Property, bool) {
	if d.vals == nil {
		return NullStyle, false
	}
	p, ok := d.vals[key]
	return p, ok
}

// Set a property's value. Overwrites an existing value, if present.
func (d *Declarations) Set(key string, p Property) {
	if d.vals == nil {
		d.vals = make(map[string]Property)
	}
	if _, exists := d.vals[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.vals[key] = p
}

// Add a property's value. Does not overwrite an existing value, i.e., does nothing
// if a value is already set.
func (d *Declarations) Add(key string, p Property) {
	if _, exists := d.Get(key); exists {
		return
	}
	d.Set(key, p)
}

// Delete removes a key. It returns false if the key was not present.
func (d *Declarations) Delete(key string) bool {
	if _, exists := d.Get(key); !exists {
		return false
	}
	delete(d.vals, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns the keys in declaration order.
func (d Declarations) Keys() []string {
	if len(d.keys) == 0 {
		return nil
	}
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)
	return keys
}

// Properties returns all declarations in order.
func (d Declarations) Properties() []KeyValue {
	if len(d.keys) == 0 {
		return nil
	}
	r := make([]KeyValue, len(d.keys))
	for i, k := range d.keys {
		r[i] = KeyValue{k, d.vals[k]}
	}
	return r
}

// Merge sets all declarations of other, overwriting existing values.
func (d *Declarations) Merge(other Declarations) {
	for _, kv := range other.Properties() {
		d.Set(kv.Key, kv.Value)
	}
}

// Clone returns a deep copy. Modifying the copy will not affect d.
func (d Declarations) Clone() Declarations {
	if len(d.keys) == 0 {
		return Declarations{}
	}
	c := Declarations{
		keys: make([]string, len(d.keys)),
		vals: make(map[string]Property, len(d.vals)),
	}
	copy(c.keys, d.keys)
	for k, v := range d.vals {
		c.vals[k] = v
	}
	return c
}

// Format joins the declarations into a string, in declaration order.
// Each declaration is rendered as key + kvsep + value, and declarations
// are separated by sep. Example:
//
//     d.Format("; ", ": ")    // => "color: red; margin: 4px"
//
func (d Declarations) Format(sep, kvsep string) string {
	if d.Len() == 0 {
		return ""
	}
	var b strings.Builder
	for i, k := range d.keys {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(k)
		b.WriteString(kvsep)
		b.WriteString(string(d.vals[k]))
	}
	return b.String()
}

func (d Declarations) String() string {
	return "{" + d.Format(", ", "=") + "}"
}

// --- CSS Property Groups ----------------------------------------------

// GroupNameFromPropertyKey returns the style property group name for a
// style property. Groups are used to organize debugging output.
// Example:
//    GroupNameFromPropertyKey("margin-top") => "Margins"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	groupname, found := groupNameFromPropertyKey[key]
	if !found {
		switch {
		case strings.HasPrefix(key, "margin"):
			return PGMargins
		case strings.HasPrefix(key, "padding"):
			return PGPadding
		case strings.HasPrefix(key, "border"):
			return PGBorder
		case strings.HasPrefix(key, "font"), strings.HasPrefix(key, "text"):
			return PGText
		case strings.HasPrefix(key, "list-style"):
			return PGDisplay
		}
		groupname = PGX
	}
	return groupname
}

// Symbolic names for string literals, denoting property groups.
const (
	PGMargins   = "Margins"
	PGPadding   = "Padding"
	PGBorder    = "Border"
	PGDimension = "Dimension"
	PGDisplay   = "Display"
	PGColor     = "Color"
	PGText      = "Text"
	PGX         = "X"
)

var groupNameFromPropertyKey = map[string]string{
	"width":            PGDimension,
	"height":           PGDimension,
	"min-width":        PGDimension,
	"min-height":       PGDimension,
	"max-width":        PGDimension,
	"max-height":       PGDimension,
	"display":          PGDisplay,
	"float":            PGDisplay,
	"visibility":       PGDisplay,
	"position":         PGDisplay,
	"flex-direction":   PGDisplay,
	"gap":              PGDisplay,
	"object-fit":       PGDisplay,
	"color":            PGColor,
	"background-color": PGColor,
	"direction":        PGText,
	"line-height":      PGText,
	"white-space":      PGText,
	"word-spacing":     PGText,
	"letter-spacing":   PGText,
	"word-break":       PGText,
	"word-wrap":        PGText,
}

// IsCascading returns wether the standard behaviour for a propery is to be
// inherited or not, i.e., a call to retrieve its value will cascade.
func IsCascading(key string) bool {
	if strings.HasPrefix(key, "list-style") || strings.HasPrefix(key, "font") {
		return true
	}
	switch key {
	case "color", "cursor", "direction", "text-align":
		return true
	case "letter-spacing", "line-height", "quotes", "visibility", "white-space":
		return true
	case "word-spacing", "word-break", "word-wrap":
		return true
	}
	return false
}

// SplitCompoundProperty splits up a shortcut property into its individual
// components. Returns a slice of key-value pairs representing the
// individual (fine grained) style properties.
// Example:
//    SplitCompountProperty("padding", "3px")
// will return
//    "padding-top"    => "3px"
//    "padding-right"  => "3px"
//    "padding-bottom" => "3px"
//    "padding-left  " => "3px"
// For the logic behind this, refer to e.g.
// https://www.w3schools.com/css/css_padding.asp .
func SplitCompoundProperty(key string, value Property) ([]KeyValue, error) {
	fields := strings.Fields(value.String())
	switch key {
	case "margin":
		return feazeCompound4("margin", "", fourDirs, fields)
	case "padding":
		return feazeCompound4("padding", "", fourDirs, fields)
	case "border-color":
		return feazeCompound4("border", "color", fourDirs, fields)
	case "border-width":
		return feazeCompound4("border", "width", fourDirs, fields)
	case "border-style":
		return feazeCompound4("border", "style", fourDirs, fields)
	case "border-radius":
		return feazeCompound4("border", "radius", fourCorners, fields)
	}
	return nil, fmt.Errorf("not recognized as compound property: %s", key)
}

// CompoundFor returns the shortcut property a fine grained property may be
// set with, e.g. "margin" for "margin-left". It returns the empty string if
// there is none.
func CompoundFor(key string) string {
	switch {
	case strings.HasPrefix(key, "margin-"):
		return "margin"
	case strings.HasPrefix(key, "padding-"):
		return "padding"
	case strings.HasPrefix(key, "border-") && strings.HasSuffix(key, "-radius"):
		return "border-radius"
	case strings.HasPrefix(key, "border-") && strings.HasSuffix(key, "-color"):
		return "border-color"
	case strings.HasPrefix(key, "border-") && strings.HasSuffix(key, "-width"):
		return "border-width"
	case strings.HasPrefix(key, "border-") && strings.HasSuffix(key, "-style"):
		return "border-style"
	}
	return ""
}

// CSS logic to distribute individual values from compound shortcuts is as
// follows: https://www.w3schools.com/css/css_border.asp
func feazeCompound4(pre string, suf string, dirs [4]string, fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("expecting 1-4 values for %s", p(pre, suf, "*"))
	}
	r := make([]KeyValue, 4)
	r[0] = KeyValue{p(pre, suf, dirs[0]), Property(fields[0])}
	if l >= 2 {
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[1])}
		if l >= 3 {
			r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[2])}
			if l == 4 {
				r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[3])}
			} else {
				r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[1])}
			}
		} else {
			r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[0])}
			r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[1])}
		}
	} else {
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[0])}
		r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[0])}
		r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[0])}
	}
	return r, nil
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}
var fourCorners = [4]string{"top-left", "top-right", "bottom-right", "bottom-left"}

func p(prefix string, suffix string, tag string) string {
	if suffix == "" {
		return prefix + "-" + tag
	}
	if prefix == "" {
		return tag + "-" + suffix
	}
	return prefix + "-" + tag + "-" + suffix
}
