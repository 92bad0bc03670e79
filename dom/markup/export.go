package markup

import (
	"io"

	"github.com/npillmayer/htmldesign/dom"
)

// The exported artifact is a complete HTML document with a fixed file name
// and content type.
const (
	ExportFilename = "html-design.html"
	ContentType    = "text/html"
)

// Export writes the exported document for a snapshot to w.
// It is a shortcut for RenderDocument, to be used by file and clipboard
// consumers.
func Export(w io.Writer, snap *dom.Snapshot, opts Options) error {
	tracer().Infof("exporting %d nodes as %s", snap.Len(), ContentType)
	return RenderDocument(w, snap, opts)
}
