package dom

import (
	"fmt"
	"sync"

	"github.com/npillmayer/htmldesign/dom/style"
	"github.com/npillmayer/htmldesign/dom/style/cssom/douceuradapter"
)

// Store is the owner of a forest of element nodes. It is the only way to
// create, mutate or destroy nodes. All methods are safe for concurrent use,
// and every mutation is atomic with respect to all other operations.
//
// Besides the forest the store holds two pieces of ephemeral UI state: the
// selected node and the hovered node. Both are plain IDs, and NoID means "none".
type Store struct {
	mx       sync.RWMutex
	f        forest
	nextID   int
	selected ID
	hovered  ID
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		f:      newForest(),
		nextID: 1,
	}
}

// AddNode creates a new node of kind k, pre-filled with the defaults for k
// (see DefaultsFor). If parent is NoID, the node is appended to the roots of
// the forest, otherwise it is appended to the children of parent.
// The new node becomes the selected node.
//
// AddNode fails for unsupported kinds, for parent IDs unknown to the store
// and for void parents. A failed call does not change the store and does not
// consume an ID.
func (s *Store) AddNode(k Kind, parent ID) (ID, error) {
	defaults, ok := DefaultsFor(k)
	if !ok {
		tracer().Infof("rejected new node of kind %q", k)
		return NoID, fmt.Errorf("%w: %q", ErrUnsupportedKind, k)
	}
	s.mx.Lock()
	defer s.mx.Unlock()
	if parent != NoID {
		p, ok := s.f.node(parent)
		if !ok {
			tracer().Infof("rejected new node <%s> for unknown parent %s", k, parent)
			return NoID, fmt.Errorf("%w: parent %s", ErrNoSuchNode, parent)
		}
		if p.Kind.IsVoid() {
			return NoID, fmt.Errorf("%w: parent %s is <%s>", ErrVoidParent, parent, p.Kind)
		}
	}
	id := ID(fmt.Sprintf("e%d", s.nextID))
	s.nextID++
	n := &Node{
		ID:         id,
		Kind:       k,
		Content:    defaults.Content,
		Attributes: defaults.Attributes,
		Styles:     defaults.Styles,
	}
	s.f.nodes[id] = n
	s.f.attach(n, parent)
	s.selected = id
	tracer().Debugf("added node %s <%s> under %q", id, k, parent)
	return id, nil
}

// mutate looks up a node and calls f on it, holding the write lock.
func (s *Store) mutate(id ID, f func(n *Node) error) error {
	s.mx.Lock()
	defer s.mx.Unlock()
	n, ok := s.f.node(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoSuchNode, id)
	}
	return f(n)
}

// UpdateContent replaces the text content of a node. Content of void nodes is
// stored, but will never be rendered.
func (s *Store) UpdateContent(id ID, text string) error {
	return s.mutate(id, func(n *Node) error {
		n.Content = text
		tracer().Debugf("node %s content updated", id)
		return nil
	})
}

// UpdateAttribute sets attribute key of a node to value, overwriting an
// existing value. Values are free text.
//
// The attribute "style" is special: its value is parsed as a list of CSS
// declarations, which are merged into the style properties of the node.
func (s *Store) UpdateAttribute(id ID, key string, value string) error {
	if !style.ValidName(key) {
		return fmt.Errorf("%w: attribute %q", ErrInvalidName, key)
	}
	var decls []style.KeyValue
	if key == "style" {
		var err error
		if decls, err = parseStyleText(value); err != nil {
			return err
		}
	}
	return s.mutate(id, func(n *Node) error {
		if key == "style" {
			for _, d := range decls {
				n.Styles.Set(d.Key, d.Value)
			}
			tracer().Debugf("node %s: %d styles merged from style attribute", id, len(decls))
			return nil
		}
		n.Attributes.Set(key, style.Property(value))
		tracer().Debugf("node %s attribute %s=%q", id, key, value)
		return nil
	})
}

// UpdateStyle sets style property key of a node to value, overwriting an
// existing value. Keys are normalized to their hyphenated CSS form, thus
// "backgroundColor" and "background-color" denote the same property.
// Values are free text. An empty value is stored, but will not be rendered.
func (s *Store) UpdateStyle(id ID, key string, value string) error {
	name := style.CSSName(key)
	if !style.ValidName(name) {
		return fmt.Errorf("%w: style %q", ErrInvalidName, key)
	}
	return s.mutate(id, func(n *Node) error {
		n.Styles.Set(name, style.Property(value))
		tracer().Debugf("node %s style %s: %s", id, name, value)
		return nil
	})
}

// RemoveAttribute deletes an attribute from a node. Removing an attribute
// which is not present is not an error.
func (s *Store) RemoveAttribute(id ID, key string) error {
	return s.mutate(id, func(n *Node) error {
		n.Attributes.Delete(key)
		return nil
	})
}

// RemoveStyle deletes a style property from a node. Removing a property
// which is not present is not an error.
func (s *Store) RemoveStyle(id ID, key string) error {
	name := style.CSSName(key)
	return s.mutate(id, func(n *Node) error {
		n.Styles.Delete(name)
		return nil
	})
}

// SetStyleText replaces all style properties of a node by the declarations
// in text, e.g. "color: red; margin: 0 auto". An empty text clears all styles.
func (s *Store) SetStyleText(id ID, text string) error {
	decls, err := parseStyleText(text)
	if err != nil {
		return err
	}
	return s.mutate(id, func(n *Node) error {
		n.Styles = style.DeclarationsOf(decls...)
		tracer().Debugf("node %s: styles replaced by %d declarations", id, len(decls))
		return nil
	})
}

func parseStyleText(text string) ([]style.KeyValue, error) {
	decls, err := douceuradapter.ParseInline(text)
	if err != nil {
		tracer().Infof("cannot parse style text %q: %v", text, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidStyle, err)
	}
	for i := range decls {
		decls[i].Key = style.CSSName(decls[i].Key)
		if !style.ValidName(decls[i].Key) {
			return nil, fmt.Errorf("%w: style %q", ErrInvalidName, decls[i].Key)
		}
	}
	return decls, nil
}

// DeleteNode removes a node together with all of its descendants. The node is
// first detached from its parent (or from the list of roots), then the subtree
// is removed bottom-up.
//
// If the selected node is removed, the selection is cleared. The hovered node
// is left untouched; it is cleared by its own signal (see SetHovered).
func (s *Store) DeleteNode(id ID) error {
	s.mx.Lock()
	defer s.mx.Unlock()
	n, ok := s.f.node(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoSuchNode, id)
	}
	s.f.detach(n)
	cnt := s.removeSubtree(n)
	tracer().Debugf("deleted node %s with %d nodes in total", id, cnt)
	return nil
}

// removeSubtree removes n and its descendants in post-order.
func (s *Store) removeSubtree(n *Node) int {
	cnt := 0
	for _, ch := range n.Children {
		if c, ok := s.f.nodes[ch]; ok {
			cnt += s.removeSubtree(c)
		}
	}
	delete(s.f.nodes, n.ID)
	if s.selected == n.ID {
		s.selected = NoID
	}
	return cnt + 1
}

// Clear deletes all nodes. IDs already handed out will not be re-used.
func (s *Store) Clear() {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.f = newForest()
	s.selected = NoID
	tracer().Debugf("store cleared")
}

// MoveNode re-attaches a node to a new parent. If newParent is NoID, the node
// becomes a root. The node is appended to the end of the new list of siblings,
// even if the parent does not change.
//
// Moving a node below itself or below one of its descendants would create a
// cycle and is rejected with ErrCycle. A failed move does not change the store.
func (s *Store) MoveNode(id ID, newParent ID) error {
	s.mx.Lock()
	defer s.mx.Unlock()
	n, ok := s.f.node(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoSuchNode, id)
	}
	if newParent != NoID {
		p, ok := s.f.node(newParent)
		if !ok {
			return fmt.Errorf("%w: new parent %s", ErrNoSuchNode, newParent)
		}
		if p.Kind.IsVoid() {
			return fmt.Errorf("%w: new parent %s is <%s>", ErrVoidParent, newParent, p.Kind)
		}
		if s.f.isAncestorOrSelf(id, newParent) {
			tracer().Infof("rejected move of %s below %s", id, newParent)
			return fmt.Errorf("%w: %s is not allowed below %s", ErrCycle, id, newParent)
		}
	}
	s.f.detach(n)
	s.f.attach(n, newParent)
	tracer().Debugf("moved node %s under %q", id, newParent)
	return nil
}

// --- Queries ----------------------------------------------------------

// Node returns a copy of the node with the given ID.
func (s *Store) Node(id ID) (Node, bool) {
	s.mx.RLock()
	defer s.mx.RUnlock()
	n, ok := s.f.node(id)
	if !ok {
		return Node{}, false
	}
	return n.clone(), true
}

// Children returns copies of the children of a node, in order. For unknown
// IDs and for nodes without children, an empty slice is returned.
func (s *Store) Children(parent ID) []Node {
	s.mx.RLock()
	defer s.mx.RUnlock()
	p, ok := s.f.node(parent)
	if !ok {
		return []Node{}
	}
	return s.copies(p.Children)
}

// Roots returns copies of the root nodes, in order.
func (s *Store) Roots() []Node {
	s.mx.RLock()
	defer s.mx.RUnlock()
	return s.copies(s.f.roots)
}

func (s *Store) copies(ids []ID) []Node {
	nodes := make([]Node, 0, len(ids))
	for _, id := range ids {
		if n, ok := s.f.nodes[id]; ok {
			nodes = append(nodes, n.clone())
		}
	}
	return nodes
}

// Len returns the number of nodes in the store.
func (s *Store) Len() int {
	s.mx.RLock()
	defer s.mx.RUnlock()
	return len(s.f.nodes)
}

// Find returns the IDs of all nodes matching pred, in pre-order.
// pred is called with copies of the nodes, outside of the store's lock,
// and may therefore call methods of the store.
func (s *Store) Find(pred Predicate) []ID {
	s.mx.RLock()
	nodes := s.f.preorder()
	s.mx.RUnlock()
	return filter(nodes, pred)
}

// CheckForest verifies the structural invariants of the store. It returns an
// error wrapping ErrBrokenForest if an invariant is violated.
func (s *Store) CheckForest() error {
	s.mx.RLock()
	defer s.mx.RUnlock()
	return s.f.check()
}

// Snapshot creates an immutable deep copy of the store's current state.
func (s *Store) Snapshot() *Snapshot {
	s.mx.RLock()
	defer s.mx.RUnlock()
	return &Snapshot{
		f:        s.f.clone(),
		selected: s.selected,
		hovered:  s.hovered,
	}
}

// --- Selection and hover ----------------------------------------------

// Select sets the selected node. NoID clears the selection. The ID is not
// checked against the store.
func (s *Store) Select(id ID) {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.selected = id
}

// Selected returns the ID of the selected node, or NoID.
func (s *Store) Selected() ID {
	s.mx.RLock()
	defer s.mx.RUnlock()
	return s.selected
}

// SetHovered sets the hovered node. NoID clears it.
func (s *Store) SetHovered(id ID) {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.hovered = id
}

// Hovered returns the ID of the hovered node, or NoID.
func (s *Store) Hovered() ID {
	s.mx.RLock()
	defer s.mx.RUnlock()
	return s.hovered
}
