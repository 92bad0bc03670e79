package dom

import (
	"fmt"
)

// forest is the arena of nodes shared by the store and its snapshots.
// Nodes are indexed by ID; all relations between nodes are IDs.
type forest struct {
	nodes map[ID]*Node
	roots []ID
}

func newForest() forest {
	return forest{nodes: make(map[ID]*Node)}
}

func (f *forest) node(id ID) (*Node, bool) {
	if id == NoID {
		return nil, false
	}
	n, ok := f.nodes[id]
	return n, ok
}

// siblings returns the list of IDs a node is a member of, i.e. either the
// children of its parent or the list of roots.
func (f *forest) siblings(n *Node) []ID {
	if n.Parent == NoID {
		return f.roots
	}
	if p, ok := f.nodes[n.Parent]; ok {
		return p.Children
	}
	return nil
}

func (f *forest) attach(n *Node, parent ID) {
	n.Parent = parent
	if parent == NoID {
		f.roots = append(f.roots, n.ID)
		return
	}
	p := f.nodes[parent]
	p.Children = append(p.Children, n.ID)
}

func (f *forest) detach(n *Node) {
	if n.Parent == NoID {
		f.roots = removeID(f.roots, n.ID)
	} else if p, ok := f.nodes[n.Parent]; ok {
		p.Children = removeID(p.Children, n.ID)
	}
	n.Parent = NoID
}

// isAncestorOrSelf ascends from n via parent links and checks if anc is on
// the path. The number of steps is bounded by the size of the forest.
func (f *forest) isAncestorOrSelf(anc ID, n ID) bool {
	for steps := 0; n != NoID && steps <= len(f.nodes); steps++ {
		if n == anc {
			return true
		}
		node, ok := f.nodes[n]
		if !ok {
			return false
		}
		n = node.Parent
	}
	return false
}

// walk visits the subtree starting at id in pre-order. If visit returns false,
// the children of the current node will not be visited.
func (f *forest) walk(id ID, visit func(*Node, int) bool, depth int) {
	n, ok := f.nodes[id]
	if !ok {
		return
	}
	if !visit(n, depth) {
		return
	}
	for _, ch := range n.Children {
		f.walk(ch, visit, depth+1)
	}
}

func (f *forest) walkAll(visit func(*Node, int) bool) {
	for _, r := range f.roots {
		f.walk(r, visit, 0)
	}
}

// clone creates a deep copy of the forest.
func (f *forest) clone() forest {
	c := forest{
		nodes: make(map[ID]*Node, len(f.nodes)),
		roots: make([]ID, len(f.roots)),
	}
	copy(c.roots, f.roots)
	for id, n := range f.nodes {
		node := n.clone()
		c.nodes[id] = &node
	}
	return c
}

// check verifies the invariants of the forest:
//
// - every node listed as a child or a root exists
//
// - parent links and children lists agree in both directions
//
// - no node appears more than once in the structure, i.e. there are no cycles
//
// - every node is reachable from a root
//
// - void nodes have no children and every kind is supported
//
func (f *forest) check() error {
	seen := make(map[ID]bool, len(f.nodes))
	var visit func(id ID, parent ID) error
	visit = func(id ID, parent ID) error {
		n, ok := f.nodes[id]
		if !ok {
			return fmt.Errorf("%w: dangling reference to %s", ErrBrokenForest, id)
		}
		if seen[id] {
			return fmt.Errorf("%w: node %s reached twice", ErrBrokenForest, id)
		}
		seen[id] = true
		if n.ID != id {
			return fmt.Errorf("%w: node %s indexed as %s", ErrBrokenForest, n.ID, id)
		}
		if n.Parent != parent {
			return fmt.Errorf("%w: node %s has parent %q, listed under %q",
				ErrBrokenForest, id, n.Parent, parent)
		}
		if !n.Kind.IsSupported() {
			return fmt.Errorf("%w: node %s of unsupported kind %q", ErrBrokenForest, id, n.Kind)
		}
		if n.Kind.IsVoid() && len(n.Children) > 0 {
			return fmt.Errorf("%w: void node %s has children", ErrBrokenForest, id)
		}
		for _, ch := range n.Children {
			if err := visit(ch, id); err != nil {
				return err
			}
		}
		return nil
	}
	for _, r := range f.roots {
		if err := visit(r, NoID); err != nil {
			return err
		}
	}
	if len(seen) != len(f.nodes) {
		for id := range f.nodes {
			if !seen[id] {
				return fmt.Errorf("%w: node %s is unreachable", ErrBrokenForest, id)
			}
		}
	}
	return nil
}
