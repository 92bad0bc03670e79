/*
Package dom implements the element tree store of a visual HTML designer.

Status

Early draft, API may change frequently.

Overview

A designer composes a forest of markup elements. Elements are created from a
fixed set of supported HTML kinds, each one pre-filled with a set of default
styles, attributes and sample content. Elements are then edited through a
property form, re-arranged, deleted, and finally serialized to an HTML
document (see package markup).

The store is the single owner of all element nodes. Clients never hold on to
nodes, but rather address them by ID:

    s := dom.NewStore()
    box, _ := s.AddNode(dom.Div, dom.NoID)    // a root-level container
    para, _ := s.AddNode(dom.P, box)          // a paragraph inside of it
    s.UpdateStyle(para, "color", "#ff0000")

Nodes handed out by the store (and by snapshots) are deep copies. After any
mutation, readers have to re-fetch. Renderers and other consumers operating on
a whole tree should take a Snapshot, which is an immutable copy of the
complete forest.

Tree Implementation

Relations between nodes are expressed as IDs only: every node knows the ID of
its parent and an ordered list of the IDs of its children. The store keeps an
index from IDs to nodes and an ordered list of root nodes. This keeps the
forest invariants easy to check (see CheckForest) and avoids dangling
references after deletion.

All operations of the store are concurrency-safe and atomic with respect to
other operations.

Errors

Operations which fail leave the store untouched. The outcome of a failed
operation is reported as an error wrapping one of the sentinel errors of this
package, e.g. ErrNoSuchNode, so clients may test with errors.Is.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'htmldesign.dom'
func tracer() tracing.Trace {
	return tracing.Select("htmldesign.dom")
}

// ErrUnsupportedKind is returned if a client tries to create an element of a kind
// not included in the list of supported kinds.
var ErrUnsupportedKind = errors.New("unsupported element kind")

// ErrNoSuchNode is returned if an operation addresses a node ID unknown to the store.
var ErrNoSuchNode = errors.New("no such node")

// ErrVoidParent is returned if a client tries to attach a node to a void
// element (e.g., <img>), which never has children.
var ErrVoidParent = errors.New("void elements cannot have children")

// ErrCycle is returned if a move would attach a node to itself or to one of
// its descendants.
var ErrCycle = errors.New("move would create a cycle")

// ErrInvalidName is returned for attribute or style names which are empty or
// contain characters not allowed in names.
var ErrInvalidName = errors.New("invalid attribute or style name")

// ErrInvalidStyle is returned if style text cannot be parsed into declarations.
var ErrInvalidStyle = errors.New("invalid style declarations")

// ErrBrokenForest is returned by consistency checks if the node structure
// violates an invariant of the forest.
var ErrBrokenForest = errors.New("broken element forest")
