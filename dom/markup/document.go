package markup

import (
	"bytes"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/htmldesign/dom"
	"github.com/npillmayer/htmldesign/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/schuko"
	"golang.org/x/net/html"
)

// Options control the document skeleton.
type Options struct {
	Title          string // page title, will be escaped
	ContainerClass string // class of the centered container wrapping the content
}

// ExportOptions are used for documents exported to a file or to the clipboard.
var ExportOptions = Options{
	Title:          "HTML Design",
	ContainerClass: "container",
}

// PreviewOptions are used for a read-only preview of the design.
var PreviewOptions = Options{
	Title:          "HTML Preview",
	ContainerClass: "preview-container",
}

// Configuration keys read by OptionsFromConfig.
const (
	ConfigTitle     = "htmldesign.title"
	ConfigContainer = "htmldesign.container"
)

// OptionsFromConfig returns ExportOptions, overridden by configuration values
// for keys ConfigTitle and ConfigContainer, if set.
func OptionsFromConfig(conf schuko.Configuration) Options {
	opts := ExportOptions
	if conf == nil {
		return opts
	}
	if conf.IsSet(ConfigTitle) {
		opts.Title = conf.GetString(ConfigTitle)
	}
	if conf.IsSet(ConfigContainer) {
		if c := strings.TrimSpace(conf.GetString(ConfigContainer)); c != "" {
			opts.ContainerClass = c
		}
	}
	return opts
}

func (opts Options) normalized() Options {
	if opts.ContainerClass == "" {
		opts.ContainerClass = ExportOptions.ContainerClass
	}
	return opts
}

// Document renders a complete HTML page for a snapshot.
// See RenderDocument.
func Document(snap *dom.Snapshot, opts Options) (string, error) {
	var b bytes.Buffer
	if err := RenderDocument(&b, snap, opts); err != nil {
		return "", err
	}
	return b.String(), nil
}

type documentParams struct {
	Title     string
	Styles    string
	Container string
	Content   string
}

// RenderDocument writes a complete HTML page to w: doctype, a head with
// charset, viewport and title, an embedded stylesheet defining the body and
// a centered container, and a body with the container wrapping the rendered
// fragment of snap.
func RenderDocument(w io.Writer, snap *dom.Snapshot, opts Options) error {
	opts = opts.normalized()
	content, err := Fragment(snap)
	if err != nil {
		return err
	}
	sheet := douceuradapter.ExportStylesheet(opts.ContainerClass)
	params := documentParams{
		Title:     html.EscapeString(opts.Title),
		Styles:    indent(sheet.String(), "        "),
		Container: html.EscapeString(opts.ContainerClass),
		Content:   content,
	}
	if err = documentTmpl.Execute(w, params); err != nil {
		tracer().Errorf("cannot render document: %v", err)
		return err
	}
	tracer().Debugf("rendered document with %d nodes", snap.Len())
	return nil
}

func indent(s string, prefix string) string {
	if s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "\n")
}

// Parameters are escaped beforehand.
var documentTmpl = template.Must(template.New("document").Parse(documentSkeleton))

const documentSkeleton = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{ .Title }}</title>
    <style>
{{ .Styles }}
    </style>
</head>
<body>
    <div class="{{ .Container }}">
{{ .Content }}
    </div>
</body>
</html>
`
