package ptree

// Observer is a read-only navigation cursor: it can walk the tree but never
// mutate it. It is the weakest of the three cursor roles; Visitor and
// Modifier each strictly extend it.
type Observer struct {
	tree *Tree
	id   NodeID
}

// Valid reports whether the cursor names an existing node.
func (o Observer) Valid() bool {
	return o.tree != nil && o.id >= 0 && int(o.id) < len(o.tree.nodes)
}

// Equal reports whether two cursors into the same tree name the same node.
func (o Observer) Equal(other Observer) bool {
	return o.tree == other.tree && o.id == other.id
}

// Value returns the unit carried at the cursor's current position.
func (o Observer) Value() Unit {
	return o.tree.get(o.id).unit
}

// Kind is shorthand for Value().Kind.
func (o Observer) Kind() Kind {
	return o.tree.get(o.id).unit.Kind
}

// Name is shorthand for Value().Name.
func (o Observer) Name() string {
	return o.tree.get(o.id).unit.Name
}

// Parent returns a cursor at the current node's parent. Calling Parent at
// the tree's top node returns a cursor at the invisible synthetic root;
// callers walking upward should stop at the top node, not try to pass it.
func (o Observer) Parent() Observer {
	p := o.tree.get(o.id).parent
	if p == NoNode {
		fault("Parent: node %d has no parent", o.id)
	}
	return Observer{tree: o.tree, id: p}
}

// AtTop reports whether the cursor is positioned at the tree's user-visible
// top node.
func (o Observer) AtTop() bool {
	return o.id == o.tree.top
}

// ChildrenSize returns the number of children at the cursor's position.
func (o Observer) ChildrenSize() int {
	return o.tree.get(o.id).children.Size()
}

// ChildrenEmpty reports whether the cursor's position has no children.
func (o Observer) ChildrenEmpty() bool {
	return o.ChildrenSize() == 0
}

// ChildAt returns a cursor at the i'th child (0-based). It faults if i is
// out of range.
func (o Observer) ChildAt(i int) Observer {
	v, found := o.tree.get(o.id).children.Get(i)
	if !found {
		fault("ChildAt: index %d out of range (size %d)", i, o.ChildrenSize())
	}
	return Observer{tree: o.tree, id: v.(NodeID)}
}

// ThisBegin returns a cursor at the first child, i.e. ChildAt(0). It faults
// if there are no children; callers should check ChildrenEmpty first.
func (o Observer) ThisBegin() Observer {
	return o.ChildAt(0)
}

// ThisEnd returns a cursor at the last child.
func (o Observer) ThisEnd() Observer {
	return o.ChildAt(o.ChildrenSize() - 1)
}

// Children returns cursors at every child, in order. It is a convenience
// wrapper over repeated ChildAt calls, used throughout the IR generator's
// tree walk.
func (o Observer) Children() []Observer {
	n := o.ChildrenSize()
	out := make([]Observer, n)
	for i := 0; i < n; i++ {
		out[i] = o.ChildAt(i)
	}
	return out
}

// indexInParent returns the index of the cursor's node within its parent's
// children list, or -1 if not found (which should not happen for any node
// reachable through the cursor API).
func (o Observer) indexInParent() int {
	parent := o.tree.get(o.id).parent
	children := o.tree.get(parent).children
	it := children.Iterator()
	for it.Next() {
		if it.Value().(NodeID) == o.id {
			return it.Index()
		}
	}
	return -1
}

// Next returns a cursor at the following sibling. It faults if there is no
// next sibling.
func (o Observer) Next() Observer {
	i := o.indexInParent()
	parent := o.tree.get(o.id).parent
	children := o.tree.get(parent).children
	v, found := children.Get(i + 1)
	if !found {
		fault("Next: node %d has no following sibling", o.id)
	}
	return Observer{tree: o.tree, id: v.(NodeID)}
}

// Prev returns a cursor at the preceding sibling. It faults if there is no
// previous sibling.
func (o Observer) Prev() Observer {
	i := o.indexInParent()
	parent := o.tree.get(o.id).parent
	children := o.tree.get(parent).children
	v, found := children.Get(i - 1)
	if !found {
		fault("Prev: node %d has no preceding sibling", o.id)
	}
	return Observer{tree: o.tree, id: v.(NodeID)}
}

// HasNext reports whether Next would succeed.
func (o Observer) HasNext() bool {
	i := o.indexInParent()
	parent := o.tree.get(o.id).parent
	return i+1 < o.tree.get(parent).children.Size()
}

// HasPrev reports whether Prev would succeed.
func (o Observer) HasPrev() bool {
	return o.indexInParent() > 0
}

// Visitor extends Observer with the ability to mutate a node's value in
// place, without touching tree structure.
type Visitor struct {
	Observer
}

// SetValue overwrites the unit carried at the cursor's position.
func (v Visitor) SetValue(u Unit) {
	v.tree.get(v.id).unit = u
}

// Append extends a token's captured value, used when a token is assembled
// incrementally across several Match calls.
func (v Visitor) Append(s string) {
	n := v.tree.get(v.id)
	if n.unit.Kind != Token {
		fault("Append: node %d is not a token", v.id)
	}
	n.unit.Value += s
}
