package dom

// Snapshot is an immutable copy of the state of a store at a point in time.
// Renderers and other clients which operate on a complete forest should
// operate on a snapshot, which is never affected by subsequent mutations
// of the store.
type Snapshot struct {
	f        forest
	selected ID
	hovered  ID
}

// Node returns a copy of the node with the given ID.
func (snap *Snapshot) Node(id ID) (Node, bool) {
	n, ok := snap.f.node(id)
	if !ok {
		return Node{}, false
	}
	return n.clone(), true
}

// Roots returns the IDs of the root nodes, in order.
func (snap *Snapshot) Roots() []ID {
	return append([]ID(nil), snap.f.roots...)
}

// Children returns the IDs of the children of a node, in order.
func (snap *Snapshot) Children(id ID) []ID {
	n, ok := snap.f.node(id)
	if !ok {
		return nil
	}
	return append([]ID(nil), n.Children...)
}

// Parent returns the parent of a node, or NoID.
func (snap *Snapshot) Parent(id ID) ID {
	if n, ok := snap.f.node(id); ok {
		return n.Parent
	}
	return NoID
}

// Len returns the number of nodes.
func (snap *Snapshot) Len() int {
	return len(snap.f.nodes)
}

// Selected returns the selected node at the time the snapshot was taken.
func (snap *Snapshot) Selected() ID {
	return snap.selected
}

// Hovered returns the hovered node at the time the snapshot was taken.
func (snap *Snapshot) Hovered() ID {
	return snap.hovered
}

// Walk visits all nodes in pre-order, starting with the roots in order.
// The visitor gets a copy of each node and its depth, with roots at depth 0.
// If the visitor returns false, the children of the node are skipped.
func (snap *Snapshot) Walk(visit func(n Node, depth int) bool) {
	snap.f.walkAll(func(n *Node, depth int) bool {
		return visit(n.clone(), depth)
	})
}

// Find returns the IDs of all nodes matching pred, in pre-order.
func (snap *Snapshot) Find(pred Predicate) []ID {
	return snap.f.find(pred)
}

// Check verifies the structural invariants of the snapshot. It returns an
// error wrapping ErrBrokenForest if an invariant is violated.
func (snap *Snapshot) Check() error {
	return snap.f.check()
}
