package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/htmldesign/dom/style"
)

// ID identifies a node. IDs are assigned by the store in strictly increasing
// order and are never re-used within the lifetime of a store.
type ID string

// NoID is the null-ID. As a parent ID it denotes the root level of the forest.
const NoID ID = ""

// Node is an element of the document forest.
//
// Nodes handed out to clients are copies. Changing a copy has no effect on
// the store; clients have to use the store's operations to mutate nodes.
type Node struct {
	ID         ID                 // unique and stable ID of the node
	Kind       Kind               // element kind, one of the supported kinds
	Content    string             // text content; ignored for void kinds
	Attributes style.Declarations // element attributes, in declaration order
	Styles     style.Declarations // inline style properties, in declaration order
	Children   []ID               // ordered list of children
	Parent     ID                 // parent node or NoID for root nodes
}

func (n Node) String() string {
	return fmt.Sprintf("(Node %s <%s> #ch=%d)", n.ID, n.Kind, len(n.Children))
}

// IsRoot is a predicate wether n is a node at the root level of the forest.
func (n Node) IsRoot() bool {
	return n.Parent == NoID
}

// ChildCount returns the number of children-nodes for a node.
func (n Node) ChildCount() int {
	return len(n.Children)
}

// IndexOfChild returns the index of a child within the list of children
// of n, or -1.
func (n Node) IndexOfChild(ch ID) int {
	for i, child := range n.Children {
		if child == ch {
			return i
		}
	}
	return -1
}

// clone creates a deep copy of n.
func (n *Node) clone() Node {
	c := *n
	c.Attributes = n.Attributes.Clone()
	c.Styles = n.Styles.Clone()
	if len(n.Children) > 0 {
		c.Children = make([]ID, len(n.Children))
		copy(c.Children, n.Children)
	} else {
		c.Children = nil
	}
	return c
}

func removeID(ids []ID, id ID) []ID {
	for i, x := range ids {
		if x == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
