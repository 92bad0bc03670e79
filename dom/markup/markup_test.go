package markup

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aymerick/douceur/parser"
	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/htmldesign/dom"
	"github.com/npillmayer/htmldesign/dom/style/cssom"
	"github.com/npillmayer/htmldesign/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// bare creates a node of kind k without any attributes and styles.
func bare(t *testing.T, s *dom.Store, k dom.Kind, parent dom.ID, content string) dom.ID {
	t.Helper()
	id, err := s.AddNode(k, parent)
	require.NoError(t, err)
	require.NoError(t, s.SetStyleText(id, ""))
	n, _ := s.Node(id)
	for _, key := range n.Attributes.Keys() {
		require.NoError(t, s.RemoveAttribute(id, key))
	}
	require.NoError(t, s.UpdateContent(id, content))
	return id
}

func TestFragmentHeading(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmldesign.markup")
	defer teardown()
	//
	s := dom.NewStore()
	h1, _ := s.AddNode(dom.H1, dom.NoID)
	require.NoError(t, s.UpdateContent(h1, "Hello"))
	out, err := Fragment(s.Snapshot())
	require.NoError(t, err)
	t.Logf("fragment = %s", out)
	assert.True(t, strings.HasPrefix(out, `<h1 style="`))
	assert.True(t, strings.HasSuffix(out, `">Hello</h1>`))
	assert.Contains(t, out, "font-size: 32px")
}

func TestFragmentNested(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmldesign.markup")
	defer teardown()
	//
	s := dom.NewStore()
	e1 := bare(t, s, dom.Div, dom.NoID, "Box")
	e2 := bare(t, s, dom.P, e1, "One")
	bare(t, s, dom.P, e1, "Two")
	bare(t, s, dom.Span, e2, "inner")
	bare(t, s, dom.Hr, dom.NoID, "")
	require.NoError(t, s.UpdateStyle(e2, "color", "#ff0000"))
	require.NoError(t, s.UpdateAttribute(e2, "id", "first"))
	out, err := Fragment(s.Snapshot())
	require.NoError(t, err)
	want := `<div>Box<p id="first" style="color: #ff0000">One<span>inner</span></p><p>Two</p></div>` +
		"\n" + `<hr/>`
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("fragment mismatch (-want +got):\n%s", diff)
	}
}

func TestFragmentVoidNeverRendersContent(t *testing.T) {
	s := dom.NewStore()
	for _, k := range []dom.Kind{dom.Img, dom.Br, dom.Hr} {
		id := bare(t, s, k, dom.NoID, "should not appear")
		var b bytes.Buffer
		require.NoError(t, RenderNode(&b, s.Snapshot(), id))
		if b.String() != "<"+k.String()+"/>" {
			t.Errorf("expected self-closing <%s/>, got %q", k, b.String())
		}
	}
	img, _ := s.AddNode(dom.Img, dom.NoID)
	out, _ := Fragment(s.Snapshot())
	assert.NotContains(t, out, "should not appear")
	assert.NotContains(t, out, "</img>")
	var b bytes.Buffer
	RenderNode(&b, s.Snapshot(), img)
	assert.True(t, strings.HasPrefix(b.String(), `<img src="https://via.placeholder.com/200x150/ffd700/000000?text=Image" alt="Sample image" style="`))
}

func TestFragmentEscaping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmldesign.markup")
	defer teardown()
	//
	s := dom.NewStore()
	p := bare(t, s, dom.P, dom.NoID, `a < b & "c"`)
	require.NoError(t, s.UpdateAttribute(p, "title", `x" onclick="alert(1)`))
	require.NoError(t, s.UpdateStyle(p, "font-family", `"Segoe UI"`))
	out, err := Fragment(s.Snapshot())
	require.NoError(t, err)
	t.Logf("escaped = %s", out)
	assert.Contains(t, out, `a &lt; b &amp; &#34;c&#34;`)
	assert.Contains(t, out, `title="x&#34; onclick=&#34;alert(1)"`)
	assert.NotContains(t, out, `onclick="`)
	// re-parsing yields the original values
	nodes, err := html.ParseFragment(strings.NewReader(out), &html.Node{
		Type: html.ElementNode, Data: "body", DataAtom: atom.Body,
	})
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, `a < b & "c"`, nodes[0].FirstChild.Data)
	assert.Equal(t, `x" onclick="alert(1)`, nodes[0].Attr[0].Val)
}

func TestFragmentStyleOrderAndEmptyValues(t *testing.T) {
	s := dom.NewStore()
	p := bare(t, s, dom.P, dom.NoID, "x")
	s.UpdateStyle(p, "margin", "0")
	s.UpdateStyle(p, "color", "")
	s.UpdateStyle(p, "padding", "1px")
	s.UpdateStyle(p, "margin", "2px")
	out, _ := Fragment(s.Snapshot())
	assert.Equal(t, `<p style="margin: 2px; padding: 1px">x</p>`, out)
	s.UpdateStyle(p, "margin", "")
	s.UpdateStyle(p, "padding", "")
	out, _ = Fragment(s.Snapshot())
	assert.Equal(t, `<p>x</p>`, out)
}

func TestFragmentDeterministic(t *testing.T) {
	s := dom.NewStore()
	ul, _ := s.AddNode(dom.Ul, dom.NoID)
	for i := 0; i < 3; i++ {
		s.AddNode(dom.Li, ul)
	}
	snap := s.Snapshot()
	first, _ := Fragment(snap)
	for i := 0; i < 10; i++ {
		again, _ := Fragment(snap)
		if again != first {
			t.Fatalf("rendering is not deterministic:\n%s\n%s", first, again)
		}
	}
}

func TestEmptyFragment(t *testing.T) {
	out, err := Fragment(dom.NewStore().Snapshot())
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmldesign.markup")
	defer teardown()
	//
	s := dom.NewStore()
	bare(t, s, dom.H2, dom.NoID, "Title")
	doc, err := Document(s.Snapshot(), Options{Title: "A & B"})
	require.NoError(t, err)
	t.Logf("document =\n%s", doc)
	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>\n<html lang=\"en\">"))
	assert.Contains(t, doc, `<meta charset="UTF-8">`)
	assert.Contains(t, doc, `<meta name="viewport" content="width=device-width, initial-scale=1.0">`)
	assert.Contains(t, doc, `<title>A &amp; B</title>`)
	assert.Contains(t, doc, `<div class="container">`)
	assert.Contains(t, doc, `<h2>Title</h2>`)
	//
	h, err := html.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	sheets := douceuradapter.ExtractStyleElements(h)
	require.Len(t, sheets, 1)
	rule, ok := cssom.FindRule(sheets[0], ".container")
	require.True(t, ok, "expected a container rule")
	assert.Equal(t, "800px", rule.Value("max-width").String())
	assert.Equal(t, "0 auto", rule.Value("margin").String())
	body, ok := cssom.FindRule(sheets[0], "body")
	require.True(t, ok, "expected a body rule")
	assert.Equal(t, "20px", body.Value("padding").String())
}

func TestExport(t *testing.T) {
	s := dom.NewStore()
	bare(t, s, dom.P, dom.NoID, "x")
	var b bytes.Buffer
	require.NoError(t, Export(&b, s.Snapshot(), PreviewOptions))
	assert.Contains(t, b.String(), `<div class="preview-container">`)
	assert.Contains(t, b.String(), `<title>HTML Preview</title>`)
	_, err := parser.Parse(extractStyleText(t, b.String()))
	assert.NoError(t, err)
	assert.Equal(t, "html-design.html", ExportFilename)
	assert.Equal(t, "text/html", ContentType)
}

func extractStyleText(t *testing.T, doc string) string {
	start := strings.Index(doc, "<style>")
	end := strings.Index(doc, "</style>")
	if start < 0 || end < start {
		t.Fatalf("no style element in document")
	}
	return doc[start+len("<style>") : end]
}

func TestOptionsFromConfig(t *testing.T) {
	conf := testconfig.Conf{}
	opts := OptionsFromConfig(conf)
	assert.Equal(t, ExportOptions, opts)
	conf.Set(ConfigTitle, "My Page")
	conf.Set(ConfigContainer, "page")
	opts = OptionsFromConfig(conf)
	assert.Equal(t, Options{Title: "My Page", ContainerClass: "page"}, opts)
	doc, err := Document(dom.NewStore().Snapshot(), Options{Title: "x"})
	require.NoError(t, err)
	assert.Contains(t, doc, `class="container"`, "empty container class falls back to default")
}

func TestQuery(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmldesign.markup")
	defer teardown()
	//
	s := dom.NewStore()
	div, _ := s.AddNode(dom.Div, dom.NoID)
	ul, _ := s.AddNode(dom.Ul, div)
	li1, _ := s.AddNode(dom.Li, ul)
	li2, _ := s.AddNode(dom.Li, ul)
	img, _ := s.AddNode(dom.Img, dom.NoID)
	s.UpdateAttribute(li2, "class", "special")
	snap := s.Snapshot()
	cases := []struct {
		sel  string
		want []dom.ID
	}{
		{"li", []dom.ID{li1, li2}},
		{"ul > li:first-child", []dom.ID{li1}},
		{".special", []dom.ID{li2}},
		{"img[alt]", []dom.ID{img}},
		{"div ul", []dom.ID{ul}},
		{`[style*="flex"]`, []dom.ID{div}},
		{"table", []dom.ID{}},
	}
	for _, c := range cases {
		ids, err := Query(snap, c.sel)
		require.NoError(t, err, c.sel)
		if diff := cmp.Diff(c.want, ids); diff != "" {
			t.Errorf("query %q mismatch (-want +got):\n%s", c.sel, diff)
		}
	}
	_, err := Query(snap, "li[")
	assert.Error(t, err)
}

func TestImport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmldesign.markup")
	defer teardown()
	//
	s := dom.NewStore()
	box, _ := s.AddNode(dom.Div, dom.NoID)
	ids, err := Import(s, `<section><p class="x" style="color: red">Hi <em>there</em></p></section><br><img src="a.png">`, box)
	require.NoError(t, err)
	require.Len(t, ids, 3)
	p, _ := s.Node(ids[0])
	assert.Equal(t, dom.P, p.Kind)
	assert.Equal(t, box, p.Parent)
	assert.Equal(t, "Hi ", p.Content)
	assert.Equal(t, "color: red", p.Styles.Format("; ", ": "))
	assert.Equal(t, []string{"class"}, p.Attributes.Keys())
	require.Len(t, p.Children, 1)
	em, _ := s.Node(p.Children[0])
	assert.Equal(t, "there", em.Content)
	assert.Equal(t, 0, em.Styles.Len())
	img, _ := s.Node(ids[2])
	assert.Equal(t, []string{"src"}, img.Attributes.Keys())
	assert.NoError(t, s.CheckForest())
	//
	_, err = Import(s, "<p>x</p>", "e99")
	assert.ErrorIs(t, err, dom.ErrNoSuchNode)
}

func TestImportRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmldesign.markup")
	defer teardown()
	//
	s := dom.NewStore()
	div, _ := s.AddNode(dom.Div, dom.NoID)
	p, _ := s.AddNode(dom.P, div)
	s.AddNode(dom.Strong, p)
	s.AddNode(dom.Img, div)
	s.AddNode(dom.Ul, dom.NoID)
	s.UpdateContent(p, `1 < 2 & "quoted"`)
	original, err := Fragment(s.Snapshot())
	require.NoError(t, err)
	//
	t2 := dom.NewStore()
	_, err = Import(t2, original, dom.NoID)
	require.NoError(t, err)
	again, err := Fragment(t2.Snapshot())
	require.NoError(t, err)
	if diff := cmp.Diff(original, again); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
