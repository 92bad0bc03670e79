package dom

import (
	"golang.org/x/net/html/atom"
)

// Kind is the type of an element, given as its HTML tag name, e.g. "div".
type Kind string

// Supported element kinds. Kinds outside of this set are rejected by the store.
const (
	Div    Kind = "div"    // container
	Span   Kind = "span"   // inline text
	P      Kind = "p"      // paragraph
	H1     Kind = "h1"     // heading, level 1
	H2     Kind = "h2"     // heading, level 2
	H3     Kind = "h3"     // heading, level 3
	H4     Kind = "h4"     // heading, level 4
	H5     Kind = "h5"     // heading, level 5
	H6     Kind = "h6"     // heading, level 6
	Img    Kind = "img"    // image (void)
	Ul     Kind = "ul"     // unordered list
	Ol     Kind = "ol"     // ordered list
	Li     Kind = "li"     // list item
	Table  Kind = "table"  // table
	Tr     Kind = "tr"     // table row
	Td     Kind = "td"     // table cell
	Th     Kind = "th"     // table header cell
	Thead  Kind = "thead"  // table head group
	Tbody  Kind = "tbody"  // table body group
	Strong Kind = "strong" // bold
	Em     Kind = "em"     // italic
	B      Kind = "b"      // bold, alternative
	I      Kind = "i"      // italic, alternative
	U      Kind = "u"      // underline
	Br     Kind = "br"     // line break (void)
	Hr     Kind = "hr"     // horizontal rule (void)
)

var supportedKinds = []Kind{
	Div, Span, P, H1, H2, H3, H4, H5, H6,
	Img, Ul, Ol, Li, Table, Tr, Td, Th, Thead, Tbody,
	Strong, Em, B, I, U, Br, Hr,
}

var kindAtoms = func() map[Kind]atom.Atom {
	m := make(map[Kind]atom.Atom, len(supportedKinds))
	for _, k := range supportedKinds {
		m[k] = atom.Lookup([]byte(k))
	}
	return m
}()

// SupportedKinds returns all supported element kinds, in the order
// a component palette would present them.
func SupportedKinds() []Kind {
	kinds := make([]Kind, len(supportedKinds))
	copy(kinds, supportedKinds)
	return kinds
}

// IsSupported is a predicate wether k is one of the supported element kinds.
func (k Kind) IsSupported() bool {
	_, ok := kindAtoms[k]
	return ok
}

// IsVoid is a predicate wether k is a void element kind. Void elements never
// have content or children and are rendered in self-closing form.
func (k Kind) IsVoid() bool {
	switch k {
	case Img, Br, Hr:
		return true
	}
	return false
}

// Atom returns the HTML atom for k, or 0 for unsupported kinds.
func (k Kind) Atom() atom.Atom {
	return kindAtoms[k]
}

func (k Kind) String() string {
	return string(k)
}

// KindOf returns the element kind for a tag name. Tag names are matched
// exactly, i.e. "DIV" is not a supported kind.
func KindOf(tag string) (Kind, bool) {
	k := Kind(tag)
	return k, k.IsSupported()
}
