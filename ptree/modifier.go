package ptree

// Modifier extends Visitor with structural mutation: pushing, inserting,
// erasing, copying and moving nodes. It is the strongest cursor role and
// the only one parsing ever constructs directly.
type Modifier struct {
	Visitor
}

// PushTermChild allocates a new term node named name as the last child of
// the cursor's position, and returns a Modifier positioned at it. This is
// the structural half of entering a production; combinator.ChangeIn wraps
// it.
func (m Modifier) PushTermChild(name string) Modifier {
	child := m.tree.alloc(Unit{Kind: Term, Name: name}, m.id)
	m.tree.get(m.id).children.Add(child)
	return Modifier{Visitor{Observer{tree: m.tree, id: child}}}
}

// PushToken allocates a new token node as the last child of the cursor's
// position, capturing value. The cursor does not move: tokens are leaves,
// never descended into.
func (m Modifier) PushToken(name, value string) {
	child := m.tree.alloc(Unit{Kind: Token, Name: name, Value: value}, m.id)
	m.tree.get(m.id).children.Add(child)
}

// Exit returns a Modifier at the cursor's parent, the structural half of
// leaving a production; combinator.ChangeOut wraps it.
func (m Modifier) Exit() Modifier {
	return Modifier{Visitor{Observer: m.Parent()}}
}

// ExitCuttingUnused returns a Modifier at the cursor's parent, first
// collapsing the current node into its parent if it ends up with fewer
// than minChildren children: a wrapper term that only ever wrapped a
// single passthrough child is pure overhead in the tree, so its one
// remaining child (if any) is spliced directly into the parent at the
// wrapper's former position, and the wrapper itself is discarded.
func (m Modifier) ExitCuttingUnused(minChildren int) Modifier {
	parent := m.tree.get(m.id).parent
	if parent == NoNode {
		fault("ExitCuttingUnused: node %d has no parent", m.id)
	}
	if m.ChildrenSize() < minChildren {
		idx := m.indexInParent()
		parentChildren := m.tree.get(parent).children
		parentChildren.Remove(idx)
		cur := m.tree.get(m.id)
		it := cur.children.Iterator()
		offset := 0
		for it.Next() {
			child := it.Value().(NodeID)
			m.tree.get(child).parent = parent
			parentChildren.Insert(idx+offset, child)
			offset++
		}
	}
	return Modifier{Visitor{Observer{tree: m.tree, id: parent}}}
}

// ChildrenErase removes the child at index i entirely, discarding its
// subtree. It faults if i is out of range.
func (m Modifier) ChildrenErase(i int) {
	children := m.tree.get(m.id).children
	if i < 0 || i >= children.Size() {
		fault("ChildrenErase: index %d out of range (size %d)", i, children.Size())
	}
	children.Remove(i)
}

// ChildrenPopBack removes the last child, discarding its subtree. It
// faults if there are no children.
func (m Modifier) ChildrenPopBack() {
	n := m.ChildrenSize()
	if n == 0 {
		fault("ChildrenPopBack: node %d has no children", m.id)
	}
	m.ChildrenErase(n - 1)
}

// ChildrenPopFront removes the first child, discarding its subtree. It
// faults if there are no children.
func (m Modifier) ChildrenPopFront() {
	m.ChildrenErase(0)
}

// ChildrenResize truncates or pads the children list to exactly n entries.
// Padding allocates empty term nodes named pad; truncation discards the
// trailing subtrees. Used by productions that need a fixed-arity shape
// regardless of which optional parts actually matched.
func (m Modifier) ChildrenResize(n int, pad string) {
	children := m.tree.get(m.id).children
	for children.Size() > n {
		children.Remove(children.Size() - 1)
	}
	for children.Size() < n {
		child := m.tree.alloc(Unit{Kind: Term, Name: pad}, m.id)
		children.Add(child)
	}
}

// CopyTo duplicates the subtree rooted at src (from a possibly different
// tree) as a new last child of the cursor's position, and returns a
// Modifier at the freshly copied node.
func (m Modifier) CopyTo(src Observer) Modifier {
	newID := m.deepCopy(src, m.id)
	m.tree.get(m.id).children.Add(newID)
	return Modifier{Visitor{Observer{tree: m.tree, id: newID}}}
}

func (m Modifier) deepCopy(src Observer, newParent NodeID) NodeID {
	u := src.Value()
	id := m.tree.alloc(u, newParent)
	n := src.ChildrenSize()
	for i := 0; i < n; i++ {
		childID := m.deepCopy(src.ChildAt(i), id)
		m.tree.get(id).children.Add(childID)
	}
	return id
}

// MoveTo relocates the subtree rooted at src to become the new last child
// of the cursor's position, re-linking src's parent pointer in place
// (O(1): only the moved node's own parent field changes, since children
// address their parent by ID and are otherwise untouched). src must
// belong to the same tree as the cursor.
func (m Modifier) MoveTo(src Modifier) {
	if src.tree != m.tree {
		fault("MoveTo: src belongs to a different tree")
	}
	if src.id == m.id {
		fault("MoveTo: cannot move node %d into itself", m.id)
	}
	oldParent := src.tree.get(src.id).parent
	idx := src.indexInParent()
	src.tree.get(oldParent).children.Remove(idx)
	src.tree.get(src.id).parent = m.id
	m.tree.get(m.id).children.Add(src.id)
}

// Snapshot captures enough state to undo every structural mutation a
// combinator might perform at or below the cursor's current position
// during a sub-parse that may yet fail. Because new nodes are always
// appended to the arena and a production's children are always appended
// to the single node the cursor was at on entry, undoing a failed
// attempt reduces to: drop every node allocated since the snapshot, and
// truncate that one node's children back to their prior count.
type Snapshot struct {
	nodeCount  int
	cursorID   NodeID
	childCount int
}

// Snapshot records the cursor's current position and arena size.
func (m Modifier) Snapshot() Snapshot {
	return Snapshot{
		nodeCount:  len(m.tree.nodes),
		cursorID:   m.id,
		childCount: m.tree.get(m.id).children.Size(),
	}
}

// Restore undoes every mutation performed since s was taken, repositioning
// the cursor back at s's node. The returned Modifier should replace any
// cursor value derived from mutations after the snapshot.
func (m Modifier) Restore(s Snapshot) Modifier {
	children := m.tree.get(s.cursorID).children
	for children.Size() > s.childCount {
		children.Remove(children.Size() - 1)
	}
	m.tree.nodes = m.tree.nodes[:s.nodeCount]
	return Modifier{Visitor{Observer{tree: m.tree, id: s.cursorID}}}
}
