package css_test

import (
	"testing"

	"github.com/npillmayer/htmldesign/dom"
	"github.com/npillmayer/htmldesign/dom/style"
	"github.com/npillmayer/htmldesign/dom/style/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

func TestDimenBasic(t *testing.T) {
	ten := css.JustDimen(dimen.PT * 10)
	var du dimen.DU
	switch m := ten.Match(); m {
	case m.Just(&du):
		t.Logf("du = %s", du)
	default:
		t.Errorf("expected Just(10pt) to be a fixed value, isn't: %#v", ten)
	}

	auto := css.Auto()
	switch m := auto.Match(); m {
	case m.IsKind(css.Auto()):
		t.Logf("dimen is auto")
	default:
		t.Errorf("expected dimen auto to match auto, isn't: %#v", auto)
	}

	pcnt := css.Percentage(percent.FromInt(80))
	var p percent.Percent
	switch m := pcnt.Match(); m {
	case m.Percentage(&p):
		t.Logf("percent = %v", p)
	default:
		t.Errorf("expected Percentage(80) to be a percentage value, isn't: %#v", pcnt)
	}
}

func TestDimenPattern(t *testing.T) {
	ten := css.JustDimen(dimen.PT * 10)
	var du dimen.DU
	m := css.DimenPattern[int](ten)
	zehn := m.OneOf(css.DimenPatterns[int]{
		Just:    m.With(&du).Const(10),
		Auto:    0,
		Default: -1,
	})
	if zehn != 10 {
		t.Errorf("expected zehn == 10, isn't: %#v", zehn)
	}
	e := css.DimenPattern[dimen.DU](ten)
	distance := e.OneOf(css.DimenPatterns[dimen.DU]{
		Just:    e.With(&du).Const(2 * du),
		Auto:    0,
		Default: -1,
	})
	if distance != 20*dimen.PT {
		t.Errorf("expected distance to be 20pt, is %s", distance)
	}
}

func TestParseDimen(t *testing.T) {
	d, err := css.ParseDimen("12pt")
	if err != nil || !d.IsAbsolute() {
		t.Fatalf("expected 12pt to parse as fixed dimension, got %v / %v", d, err)
	}
	var du dimen.DU
	d.Match().Just(&du)
	if du != 12*dimen.PT {
		t.Errorf("expected 12pt, got %s", du)
	}
	d, _ = css.ParseDimen("200px")
	d.Match().Just(&du)
	if du != 150*dimen.PT {
		t.Errorf("expected 200px to equal 150pt, got %s", du)
	}
	d, _ = css.ParseDimen("100%")
	if d.Match().Percentage(nil) == nil {
		t.Errorf("expected 100%% to be a percentage, is %v", d)
	}
	for _, kw := range []style.Property{"auto", "inherit", "initial", "fit-content"} {
		d, err = css.ParseDimen(kw)
		if err != nil || d.IsAbsolute() || d.IsNone() {
			t.Errorf("expected %q to parse as keyword dimension, got %v / %v", kw, d, err)
		}
	}
	if d, _ = css.ParseDimen(""); !d.IsNone() {
		t.Errorf("expected empty property to be an unset dimension")
	}
	if _, err = css.ParseDimen("3em"); err == nil {
		t.Errorf("expected em to be unsupported")
	}
	if _, err = css.ParseDimen("xpx"); err == nil {
		t.Errorf("expected error for malformed number")
	}
}

func TestComputedProperty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmldesign.css")
	defer teardown()
	//
	s := dom.NewStore()
	box, _ := s.AddNode(dom.Div, dom.NoID)
	para, _ := s.AddNode(dom.P, box)
	em, _ := s.AddNode(dom.Em, para)
	s.UpdateStyle(box, "color", "#ff0000")
	s.RemoveStyle(para, "color")
	s.RemoveStyle(em, "color")
	s.UpdateStyle(em, "width", "inherit")
	s.RemoveStyle(em, "border-radius")
	snap := s.Snapshot()
	//
	check := func(id dom.ID, key string, want style.Property) {
		t.Helper()
		p, err := css.ComputedProperty(snap, id, key)
		if err != nil {
			t.Fatal(err)
		}
		if p != want {
			t.Errorf("%s of %s: expected %q, got %q", key, id, want, p)
		}
	}
	check(em, "color", "#ff0000")                  // inherited over two levels
	check(em, "font-style", "italic")              // local
	check(em, "fontFamily", "serif")               // "inherit" up to the user-agent
	check(para, "margin-left", "0")                // from compound "margin: 8px 0"
	check(para, "margin-top", "8px")               // from compound
	check(em, "width", "auto")                     // explicit inherit, parent unset
	check(em, "border-top-left-radius", "initial") // compound removed
	check(box, "display", "flex")                  // local
	check(em, "list-style-type", "disc")           // cascading, user-agent
	check(em, "unknown-property", "initial")       // unknown
	if _, err := css.ComputedProperty(snap, "e99", "color"); err == nil {
		t.Errorf("expected error for unknown node")
	}
}

func TestDisplayAndBoxSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmldesign.css")
	defer teardown()
	//
	s := dom.NewStore()
	img, _ := s.AddNode(dom.Img, dom.NoID)
	li, _ := s.AddNode(dom.Li, dom.NoID)
	s.RemoveStyle(li, "display")
	snap := s.Snapshot()
	w, h, err := css.BoxSize(snap, img)
	if err != nil {
		t.Fatal(err)
	}
	var du dimen.DU
	if w.Match().Just(&du) == nil || du != 150*dimen.PT {
		t.Errorf("expected image width of 150pt, is %v", w)
	}
	if !h.IsAbsolute() {
		t.Errorf("expected fixed image height, is %v", h)
	}
	mode, err := css.Display(snap, li)
	if err != nil {
		t.Fatal(err)
	}
	if !mode.Contains(css.ListItemMode) || !mode.IsBlockLevel() {
		t.Errorf("expected <li> to default to list-item, is %s", mode)
	}
	mode, _ = css.Display(snap, img)
	if mode.Symbol() != "▩" {
		t.Errorf("expected block symbol for image, got %s", mode.Symbol())
	}
}
