/*
Package domdbg implements helpers to debug an element forest.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/htmldesign/dom"
	"github.com/npillmayer/htmldesign/dom/style"
	"github.com/npillmayer/htmldesign/dom/style/css"
	tp "github.com/xlab/treeprint"
)

// Outline renders the forest of a snapshot as an indented tree, one node
// per line, showing display symbol, kind, ID and a short form of the content.
// The selected node is marked with an asterisk.
func Outline(snap *dom.Snapshot) string {
	tree := tp.NewWithRoot(fmt.Sprintf("forest (%d nodes)", snap.Len()))
	branches := make(map[dom.ID]tp.Tree, snap.Len())
	snap.Walk(func(n dom.Node, depth int) bool {
		parent := tree
		if b, ok := branches[n.Parent]; ok {
			parent = b
		}
		branches[n.ID] = parent.AddMetaBranch(symbol(snap, n.ID), label(snap, n))
		return true
	})
	return tree.String()
}

func label(snap *dom.Snapshot, n dom.Node) string {
	l := fmt.Sprintf("<%s> %s", n.Kind, n.ID)
	if n.Content != "" && !n.Kind.IsVoid() {
		l += fmt.Sprintf(" %q", abbrev(n.Content))
	}
	if snap.Selected() == n.ID {
		l += " *"
	}
	return l
}

func symbol(snap *dom.Snapshot, id dom.ID) string {
	mode, err := css.Display(snap, id)
	if err != nil {
		return "?"
	}
	return mode.Symbol()
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname       string
	StyleGroups    []string
	NodeTmpl       *template.Template
	EdgeTmpl       *template.Template
	StylegroupTmpl *template.Template
	PgedgeTmpl     *template.Template
	PgpgTmpl       *template.Template
}

var defaultGroups = []string{
	style.PGDimension,
	style.PGMargins,
	style.PGPadding,
	style.PGBorder,
	style.PGColor,
}

// ToGraphViz outputs a diagram for an element forest. The diagram is in
// GraphViz (DOT) format. Clients have to provide a snapshot, a Writer, and
// an optional list of style parameter groups. The diagram will include all
// styles belonging to one of the parameter groups. Nodes are filled with
// their background color, if it is a recognizable color.
//
// If the client does not provide a list of style groups, the following
// default will be used:
//
//     - Dimension
//     - Margins
//     - Padding
//     - Border
//     - Color
//
func ToGraphViz(snap *dom.Snapshot, w io.Writer, styleGroups []string) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.StylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	gparams.PgedgeTmpl = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
	gparams.PgpgTmpl = template.Must(template.New("pgpgedge").Parse(pgpgEdgeTmpl))
	gparams.StyleGroups = styleGroups
	if styleGroups == nil {
		gparams.StyleGroups = defaultGroups
	}
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	var walkErr error
	snap.Walk(func(n dom.Node, depth int) bool {
		if walkErr == nil {
			walkErr = nodes(n, w, &gparams)
		}
		return walkErr == nil
	})
	if walkErr != nil {
		return walkErr
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a snapshot and a testing.T, it will
// create a Graphiviz image of the forest and write it to a file in the
// current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(snap *dom.Snapshot, t *testing.T) {
	tmpfile, err := ioutil.TempFile(".", "dom.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing DOM digraph to %s\n", tmpfile.Name())
	if err = ToGraphViz(snap, tmpfile, nil); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing DOM tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	N         dom.Node
	Name      string
	Fillcolor string
}

type propGroup struct {
	ID         string
	Name       string
	Properties []style.KeyValue
}

func nodeName(id dom.ID) string {
	return "node_" + string(id)
}

func nodes(n dom.Node, w io.Writer, gparams *graphParamsType) error {
	fill := "lightblue3"
	if c, ok := n.Styles.Get("background-color"); ok {
		if col, ok := c.Color(); ok {
			fill = style.ColorString(col)
		}
	}
	if err := gparams.NodeTmpl.Execute(w, &node{n, nodeName(n.ID), fill}); err != nil {
		return err
	}
	if err := domStyles(n, w, gparams); err != nil {
		return err
	}
	for _, ch := range n.Children {
		e := edge{nodeName(n.ID), nodeName(ch)}
		if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
			return err
		}
	}
	return nil
}

func domStyles(n dom.Node, w io.Writer, gparams *graphParamsType) error {
	var prev *propGroup
	for _, g := range gparams.StyleGroups {
		pg := &propGroup{ID: fmt.Sprintf("pg_%s_%s", n.ID, g), Name: g}
		for _, kv := range n.Styles.Properties() {
			if style.GroupNameFromPropertyKey(kv.Key) == g {
				pg.Properties = append(pg.Properties, kv)
			}
		}
		if len(pg.Properties) == 0 {
			continue
		}
		if err := gparams.StylegroupTmpl.Execute(w, pg); err != nil {
			return err
		}
		var err error
		if prev == nil {
			err = gparams.PgedgeTmpl.Execute(w, edge{nodeName(n.ID), pg.ID})
		} else {
			err = gparams.PgpgTmpl.Execute(w, edge{prev.ID, pg.ID})
		}
		if err != nil {
			return err
		}
		prev = pg
	}
	return nil
}

type edge struct {
	From, To string
}

// abbrev shortens a text to at most 10 runes.
func abbrev(text string) string {
	if r := []rune(text); len(r) > 10 {
		return string(r[:10]) + "..."
	}
	return text
}

// shortText returns an abbreviated, quoted form of a text, with white space
// made visible.
func shortText(text string) string {
	s := abbrev(text)
	s = strings.Replace(s, " ", "␣", -1)
	return fmt.Sprintf("%q", s)
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ .Name }}	[ label="<{{ .N.Kind }}> {{ .N.ID }}" shape=box style=filled fillcolor="{{ .Fillcolor }}" ] ;
{{ if .N.Content }}{{ .Name }}_text	[ label={{ shortstring .N.Content }} shape=plaintext fontname="Courier" fontsize=11.0 ] ;
{{ .Name }} -> {{ .Name }}_text [dir=none style="dotted"] ;
{{ end }}`

const styleGroupTmpl = `{{ .ID }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Name }}</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value.String | html }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

const domEdgeTmpl = `{{ .From }} -> {{ .To }} [weight=1] ;
`

const pgEdgeTmpl = `{{ .From }} -> {{ .To }} [dir=none weight=1 style="dashed"] ;
`

const pgpgEdgeTmpl = `{{ .From }} -> {{ .To }} [dir=none weight=1 style="dashed"] ;
`
