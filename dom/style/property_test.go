package style

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDeclarationsOrder(t *testing.T) {
	var d Declarations
	d.Set("padding", "8px")
	d.Set("color", "red")
	d.Set("margin", "4px")
	d.Set("color", "blue") // overwrite keeps position
	d.Add("padding", "0")  // no overwrite
	want := "padding: 8px; color: blue; margin: 4px"
	if got := d.Format("; ", ": "); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if !d.Delete("color") || d.Delete("color") {
		t.Errorf("expected color to be deleted exactly once")
	}
	if diff := cmp.Diff([]string{"padding", "margin"}, d.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	d.Set("color", "green")
	if keys := d.Keys(); keys[2] != "color" {
		t.Errorf("expected re-inserted key to be appended, keys are %v", keys)
	}
}

func TestDeclarationsZeroValue(t *testing.T) {
	var d Declarations
	if d.Len() != 0 || d.IsSet("x") || d.Format(";", ":") != "" {
		t.Errorf("expected zero value to be empty")
	}
	if _, ok := d.Get("x"); ok {
		t.Errorf("expected Get on zero value to fail")
	}
	if d.Delete("x") {
		t.Errorf("expected Delete on zero value to fail")
	}
	c := d.Clone()
	c.Set("a", "b")
	if d.Len() != 0 {
		t.Errorf("expected clone to be independent")
	}
}

func TestDeclarationsCloneAndMerge(t *testing.T) {
	d := DeclarationsOf(KeyValue{"a", "1"}, KeyValue{"b", "2"})
	c := d.Clone()
	c.Set("a", "x")
	if v, _ := d.Get("a"); v != "1" {
		t.Errorf("expected original to be unchanged by clone, a=%q", v)
	}
	d.Merge(DeclarationsOf(KeyValue{"b", "3"}, KeyValue{"c", ""}))
	if d.String() != `{a=1, b=3, c=}` {
		t.Errorf("unexpected merge result %s", d)
	}
	if d.IsSet("c") {
		t.Errorf("expected empty value not to count as set")
	}
}

func TestCSSName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmldesign.style")
	defer teardown()
	//
	for in, out := range map[string]string{
		"backgroundColor":  "background-color",
		" font-size ":      "font-size",
		"borderTopWidth":   "border-top-width",
		"color":            "color",
		"Color":            "color",
		"list-style-type":  "list-style-type",
		"WebkitTransition": "webkit-transition",
	} {
		if got := CSSName(in); got != out {
			t.Errorf("CSSName(%q): expected %q, got %q", in, out, got)
		}
	}
}

func TestValidName(t *testing.T) {
	for _, ok := range []string{"id", "data-x", "aria-label", "src"} {
		if !ValidName(ok) {
			t.Errorf("expected %q to be a valid name", ok)
		}
	}
	for _, bad := range []string{"", "a b", "x=y", `"q"`, "<p>", "a:b", "a;b", "\tx"} {
		if ValidName(bad) {
			t.Errorf("expected %q to be an invalid name", bad)
		}
	}
}

func TestSplitCompound(t *testing.T) {
	kvs, err := SplitCompoundProperty("margin", "8px 0")
	if err != nil {
		t.Fatal(err)
	}
	want := []KeyValue{
		{"margin-top", "8px"},
		{"margin-right", "0"},
		{"margin-bottom", "8px"},
		{"margin-left", "0"},
	}
	if diff := cmp.Diff(want, kvs); diff != "" {
		t.Errorf("split mismatch (-want +got):\n%s", diff)
	}
	kvs, _ = SplitCompoundProperty("border-radius", "4px")
	if kvs[2].Key != "border-bottom-right-radius" {
		t.Errorf("unexpected corner key %q", kvs[2].Key)
	}
	if _, err = SplitCompoundProperty("color", "red"); err == nil {
		t.Errorf("expected color not to be a compound property")
	}
	if CompoundFor("padding-left") != "padding" || CompoundFor("color") != "" {
		t.Errorf("unexpected compound mapping")
	}
	if GroupNameFromPropertyKey("margin-top") != PGMargins {
		t.Errorf("expected margin-top to be in group %s", PGMargins)
	}
	if !IsCascading("font-size") || IsCascading("border") {
		t.Errorf("unexpected cascading behaviour")
	}
}

func TestColor(t *testing.T) {
	for v, hex := range map[Property]string{
		"#ff0000": "#ff0000",
		"#abc":    "#aabbcc",
		"white":   "#ffffff",
		" Black ": "#000000",
	} {
		c, ok := v.Color()
		if !ok {
			t.Errorf("expected %q to be a color", v)
			continue
		}
		if s := ColorString(c); s != hex {
			t.Errorf("color %q: expected %s, got %s", v, hex, s)
		}
	}
	for _, v := range []Property{"transparent", "inherit", "#12", "#zzzzzz", ""} {
		if _, ok := v.Color(); ok {
			t.Errorf("expected %q not to be a color", v)
		}
	}
}
