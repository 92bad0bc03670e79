package douceuradapter

import (
	"strings"
	"testing"

	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/htmldesign/dom/style"
	"github.com/npillmayer/htmldesign/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestParseInline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmldesign.style")
	defer teardown()
	//
	kvs, err := ParseInline("color: red; margin: 8px 0; border: 1px solid #e5e7eb")
	require.NoError(t, err)
	want := []style.KeyValue{
		{Key: "color", Value: "red"},
		{Key: "margin", Value: "8px 0"},
		{Key: "border", Value: "1px solid #e5e7eb"},
	}
	assert.Equal(t, want, kvs)
	//
	kvs, err = ParseInline("  ")
	require.NoError(t, err)
	assert.Empty(t, kvs)
	//
	kvs, err = ParseInline("color: blue !important;")
	require.NoError(t, err)
	assert.Equal(t, style.Property("blue !important"), kvs[0].Value)
	//
	_, err = ParseInline(": red;")
	assert.Error(t, err)
}

func TestParseInlineEmptyDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmldesign.style")
	defer teardown()
	//
	kvs, err := ParseInline("color:red;;margin:0")
	require.NoError(t, err)
	assert.Equal(t, []style.KeyValue{
		{Key: "color", Value: "red"},
		{Key: "margin", Value: "0"},
	}, kvs)
	kvs, err = ParseInline(" ;; ")
	require.NoError(t, err)
	assert.Empty(t, kvs)
	for _, text := range []string{"}", "color: red }", "p { color: red }"} {
		_, err = ParseInline(text)
		assert.Error(t, err, "expected braces to be rejected in %q", text)
	}
}

func TestExportStylesheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmldesign.style")
	defer teardown()
	//
	sheet := ExportStylesheet("container")
	require.False(t, sheet.Empty())
	assert.Len(t, sheet.Rules(), 2)
	r, ok := cssom.FindRule(sheet, ".container")
	require.True(t, ok, "expected a rule for .container")
	assert.Equal(t, style.Property("800px"), r.Value("max-width"))
	assert.Equal(t, style.Property("0 auto"), r.Value("margin"))
	//
	// the CSS text must parse back into the same rules
	text := sheet.String()
	t.Logf("stylesheet =\n%s", text)
	parsed, err := parser.Parse(text)
	require.NoError(t, err)
	again := Wrap(parsed)
	body, ok := cssom.FindRule(again, "body")
	require.True(t, ok)
	assert.Equal(t, "#f9fafb", body.Value("background-color").String())
	decls := cssom.Declarations(body)
	assert.Equal(t, 5, decls.Len())
}

func TestAppendRules(t *testing.T) {
	a := ExportStylesheet("a")
	b := ExportStylesheet("b")
	a.AppendRules(b)
	assert.Len(t, a.Rules(), 4)
	_, ok := cssom.FindRule(a, ".b")
	assert.True(t, ok)
}

func TestExtractStyleElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmldesign.style")
	defer teardown()
	//
	doc := `<html><head><style>p { color: red; }</style></head>
<body><style>.x { margin: 0; }</style><p>Hi</p></body></html>`
	h, err := html.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	sheets := ExtractStyleElements(h)
	require.Len(t, sheets, 2)
	r := sheets[0].Rules()[0]
	assert.Equal(t, "p", r.Selector())
	assert.Equal(t, []string{"color"}, r.Properties())
	assert.False(t, r.IsImportant("color"))
	assert.Equal(t, ".x", sheets[1].Rules()[0].Selector())
}
