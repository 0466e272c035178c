/*
Package ptree implements the parse tree: a mutable, parent-linked, ordered
N-ary tree of ParseUnit nodes.

Nodes live in a flat arena (Tree.nodes) addressed by dense NodeID indices.
Parent is stored as an ID, children as an ordered list of IDs, which makes
copy, move and erase O(children) with trivial parent fix-up and no iterator
invalidation hazard to guard against. Each node's children list is a
github.com/emirpasic/gods arraylist.List of NodeID.

The tree always carries a synthetic, externally invisible root node; its
single child is the "top" node callers actually observe. Wrapping the
visible top inside a placeholder root keeps construction and whole-tree
operations uniform, since the placeholder always has exactly one child to
splice against.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ptree

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chtholly.ptree'.
func tracer() tracing.Trace {
	return tracing.Select("chtholly.ptree")
}

// Kind distinguishes leaf tokens from interior terms.
type Kind int

const (
	// Token is a leaf node carrying a slice of the source.
	Token Kind = iota
	// Term is an interior node carrying children.
	Term
)

func (k Kind) String() string {
	if k == Token {
		return "Token"
	}
	return "Term"
}

// Unit is the value carried by every tree node.
type Unit struct {
	Kind  Kind
	Name  string
	Value string // valid only for Kind == Token
}

func (u Unit) String() string {
	if u.Kind == Token {
		return fmt.Sprintf("%s(%q)", u.Name, u.Value)
	}
	return u.Name
}

// NodeID addresses a node within a Tree's arena. The zero value addresses
// the synthetic root; use NoNode for "absent".
type NodeID int

// NoNode is the sentinel for "no such node" (e.g. the synthetic root's
// parent, or a not-found lookup).
const NoNode NodeID = -1

type node struct {
	unit     Unit
	parent   NodeID
	children *arraylist.List // of NodeID
}

// Tree is the parse tree. The zero value is not usable; use New.
type Tree struct {
	nodes []node
	root  NodeID // synthetic, never observed directly
	top   NodeID // the user-visible top node, child of root
}

// Fault panics to report a precondition violation on tree operations:
// illegal requests such as erasing past the end or moving a node into
// itself are caller bugs, not recoverable failures.
type Fault string

func (f Fault) Error() string { return string(f) }

func fault(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	tracer().Errorf("ptree: %s", msg)
	panic(Fault(msg))
}

// New creates an empty tree. topName names the user-visible top term
// (conventionally "root" or the grammar's start production, e.g.
// "Expression").
func New(topName string) *Tree {
	t := &Tree{}
	t.root = t.alloc(Unit{Kind: Term, Name: "<root>"}, NoNode)
	t.top = t.alloc(Unit{Kind: Term, Name: topName}, t.root)
	t.nodes[t.root].children.Add(t.top)
	return t
}

func (t *Tree) alloc(u Unit, parent NodeID) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{unit: u, parent: parent, children: arraylist.New()})
	return id
}

func (t *Tree) get(id NodeID) *node {
	if id < 0 || int(id) >= len(t.nodes) {
		fault("invalid node id %d", id)
	}
	return &t.nodes[id]
}

// Observer returns a read-only cursor positioned at the tree's top node.
func (t *Tree) Observer() Observer {
	return Observer{tree: t, id: t.top}
}

// Visitor returns a value-mutating cursor positioned at the tree's top node.
func (t *Tree) Visitor() Visitor {
	return Visitor{Observer{tree: t, id: t.top}}
}

// Modifier returns a fully structural cursor positioned at the tree's top
// node. Parsing exclusively drives the tree through a Modifier.
func (t *Tree) Modifier() Modifier {
	return Modifier{Visitor{Observer{tree: t, id: t.top}}}
}

// CheckParent reports whether every node reachable from the root records as
// its parent the node whose children list actually contains it. Nodes left
// in the arena after being cut or erased are no longer part of the tree
// and are not checked. Intended for tests and debugging.
func (t *Tree) CheckParent() bool {
	var check func(id NodeID) bool
	check = func(id NodeID) bool {
		it := t.nodes[id].children.Iterator()
		for it.Next() {
			child := it.Value().(NodeID)
			if t.nodes[child].parent != id || !check(child) {
				return false
			}
		}
		return true
	}
	return check(t.root)
}
