package dom

import (
	"github.com/npillmayer/htmldesign/dom/style"
)

// Defaults holds the initial values a node of a given kind is created with.
type Defaults struct {
	Content    string
	Attributes style.Declarations
	Styles     style.Declarations
}

// GenericContent is the sample content for kinds without a specific default.
const GenericContent = "New Element"

func kv(key string, value string) style.KeyValue {
	return style.KeyValue{Key: key, Value: style.Property(value)}
}

// Base style set, applied to every kind and then overridden per kind.
var baseStyles = []style.KeyValue{
	kv("padding", "8px"),
	kv("margin", "4px"),
	kv("border-radius", "6px"),
	kv("min-height", "20px"),
	kv("display", "block"),
	kv("border", "1px solid #e5e7eb"),
	kv("background-color", "#ffffff"),
	kv("color", "#374151"),
	kv("font-family", "inherit"),
	kv("font-size", "14px"),
	kv("line-height", "1.5"),
}

type kindDefaults struct {
	content string
	attrs   []style.KeyValue
	styles  []style.KeyValue
}

var defaultsTable = map[Kind]kindDefaults{
	Div: {
		content: "Container",
		styles: []style.KeyValue{
			kv("background-color", "#f3f4f6"),
			kv("border", "2px dashed #d1d5db"),
			kv("min-height", "60px"),
			kv("display", "flex"),
			kv("flex-direction", "column"),
			kv("gap", "8px"),
		},
	},
	Span: {
		content: "Inline text",
		styles: []style.KeyValue{
			kv("display", "inline"),
			kv("background-color", "#fef3c7"),
			kv("border", "1px solid #f59e0b"),
			kv("padding", "2px 6px"),
			kv("border-radius", "4px"),
		},
	},
	P: {
		content: "This is a paragraph with some sample text to demonstrate the styling.",
		styles: []style.KeyValue{
			kv("background-color", "#ecfdf5"),
			kv("border", "1px solid #10b981"),
			kv("padding", "12px"),
			kv("margin", "8px 0"),
			kv("line-height", "1.6"),
		},
	},
	H1: {
		content: "Main Heading",
		styles: []style.KeyValue{
			kv("font-size", "32px"),
			kv("font-weight", "bold"),
			kv("background-color", "#dbeafe"),
			kv("border", "2px solid #3b82f6"),
			kv("padding", "16px"),
			kv("margin", "16px 0"),
			kv("color", "#1e40af"),
		},
	},
	H2: {
		content: "Section Heading",
		styles: []style.KeyValue{
			kv("font-size", "24px"),
			kv("font-weight", "bold"),
			kv("background-color", "#e0e7ff"),
			kv("border", "2px solid #6366f1"),
			kv("padding", "12px"),
			kv("margin", "12px 0"),
			kv("color", "#4338ca"),
		},
	},
	H3: {
		content: "Subsection Heading",
		styles: []style.KeyValue{
			kv("font-size", "20px"),
			kv("font-weight", "bold"),
			kv("background-color", "#f3e8ff"),
			kv("border", "2px solid #8b5cf6"),
			kv("padding", "10px"),
			kv("margin", "10px 0"),
			kv("color", "#6b21a8"),
		},
	},
	Img: {
		attrs: []style.KeyValue{
			kv("src", "https://via.placeholder.com/200x150/ffd700/000000?text=Image"),
			kv("alt", "Sample image"),
		},
		styles: []style.KeyValue{
			kv("width", "200px"),
			kv("height", "150px"),
			kv("border", "2px solid #f59e0b"),
			kv("background-color", "#fef3c7"),
			kv("display", "block"),
			kv("object-fit", "cover"),
		},
	},
	Ul: {
		styles: []style.KeyValue{
			kv("background-color", "#fef7ff"),
			kv("border", "2px solid #c084fc"),
			kv("padding", "16px"),
			kv("margin", "8px 0"),
			kv("list-style-type", "disc"),
			kv("list-style-position", "inside"),
		},
	},
	Ol: {
		styles: []style.KeyValue{
			kv("background-color", "#f0fdf4"),
			kv("border", "2px solid #22c55e"),
			kv("padding", "16px"),
			kv("margin", "8px 0"),
			kv("list-style-type", "decimal"),
			kv("list-style-position", "inside"),
		},
	},
	Li: {
		content: "List item",
		styles: []style.KeyValue{
			kv("background-color", "#fef3c7"),
			kv("border", "1px solid #f59e0b"),
			kv("padding", "6px 8px"),
			kv("margin", "4px 0"),
			kv("border-radius", "4px"),
		},
	},
	Table: {
		styles: []style.KeyValue{
			kv("background-color", "#f0f9ff"),
			kv("border", "2px solid #0ea5e9"),
			kv("border-collapse", "collapse"),
			kv("width", "100%"),
			kv("margin", "8px 0"),
		},
	},
	Tr: {
		styles: []style.KeyValue{
			kv("background-color", "#f8fafc"),
			kv("border", "1px solid #cbd5e1"),
		},
	},
	Td: {
		content: "Cell content",
		styles: []style.KeyValue{
			kv("background-color", "#fef3c7"),
			kv("border", "1px solid #f59e0b"),
			kv("padding", "8px"),
			kv("text-align", "center"),
		},
	},
	Strong: {
		content: "Bold text",
		styles: []style.KeyValue{
			kv("font-weight", "bold"),
			kv("background-color", "#fee2e2"),
			kv("border", "1px solid #ef4444"),
			kv("padding", "2px 4px"),
			kv("border-radius", "3px"),
			kv("display", "inline"),
		},
	},
	Em: {
		content: "Italic text",
		styles: []style.KeyValue{
			kv("font-style", "italic"),
			kv("background-color", "#fef3c7"),
			kv("border", "1px solid #f59e0b"),
			kv("padding", "2px 4px"),
			kv("border-radius", "3px"),
			kv("display", "inline"),
		},
	},
	Hr: {
		styles: []style.KeyValue{
			kv("border", "none"),
			kv("border-top", "3px solid #6b7280"),
			kv("margin", "16px 0"),
			kv("height", "0"),
			kv("background-color", "transparent"),
		},
	},
}

// DefaultsFor returns the initial content, attributes and styles for a new
// node of kind k. Every call returns fresh declaration lists, which the
// caller is free to modify.
//
// Kinds without specific defaults get the base style set and a generic
// sample content. Void kinds always get empty content.
// For unsupported kinds DefaultsFor returns false.
func DefaultsFor(k Kind) (Defaults, bool) {
	if !k.IsSupported() {
		return Defaults{}, false
	}
	d := Defaults{
		Styles: style.DeclarationsOf(baseStyles...),
	}
	kd, found := defaultsTable[k]
	if found {
		d.Content = kd.content
		d.Attributes = style.DeclarationsOf(kd.attrs...)
		for _, s := range kd.styles {
			d.Styles.Set(s.Key, s.Value)
		}
	} else {
		d.Content = GenericContent
	}
	if k.IsVoid() {
		d.Content = ""
	}
	return d, true
}
