/*
Package markup serializes an element forest into HTML.

Overview

Rendering operates on a snapshot of a store (see package dom). Every node is
rendered as an element with its attributes in declaration order, followed by
an inline style-attribute and either a self-closing tag (for void kinds) or
its text content, its children and a closing tag:

    <p title="x" style="color: #ff0000; margin: 8px 0">Hello<span>more</span></p>

Root nodes are rendered one per line. Text content and attribute values are
escaped. Document wraps a rendered fragment into a complete HTML page, which
is the artifact exported by the designer (see Export).

Besides rendering, the package supports selector queries on a snapshot
(Query) and importing existing HTML fragments into a store (Import).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markup

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'htmldesign.markup'.
func tracer() tracing.Trace {
	return tracing.Select("htmldesign.markup")
}
