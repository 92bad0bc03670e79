package dom

// Predicate is a test on nodes, to be used with Find.
type Predicate func(n Node) bool

// IsVoid is a predicate to match nodes of a void kind.
var IsVoid Predicate = func(n Node) bool {
	return n.Kind.IsVoid()
}

// KindIs returns a predicate to match nodes of kind k.
func KindIs(k Kind) Predicate {
	return func(n Node) bool {
		return n.Kind == k
	}
}

// HasAttribute returns a predicate to match nodes carrying an attribute key.
func HasAttribute(key string) Predicate {
	return func(n Node) bool {
		_, ok := n.Attributes.Get(key)
		return ok
	}
}

// HasStyle returns a predicate to match nodes with a non-empty style
// property key.
func HasStyle(key string) Predicate {
	return func(n Node) bool {
		return n.Styles.IsSet(key)
	}
}

// And combines predicates. The result matches if all of them match.
func And(preds ...Predicate) Predicate {
	return func(n Node) bool {
		for _, p := range preds {
			if !p(n) {
				return false
			}
		}
		return true
	}
}

func (f *forest) find(pred Predicate) []ID {
	return filter(f.preorder(), pred)
}

// preorder returns copies of all nodes of the forest, in pre-order.
func (f *forest) preorder() []Node {
	nodes := make([]Node, 0, len(f.nodes))
	f.walkAll(func(n *Node, _ int) bool {
		nodes = append(nodes, n.clone())
		return true
	})
	return nodes
}

func filter(nodes []Node, pred Predicate) []ID {
	var ids []ID
	for _, n := range nodes {
		if pred(n) {
			ids = append(ids, n.ID)
		}
	}
	return ids
}
