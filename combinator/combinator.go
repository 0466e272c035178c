/*
Package combinator implements the parser-combinator algebra the grammar
package is built from: small composable Process values, each a pure
function from an Info (remaining input plus a tree cursor) to a new Info,
together with an Optional flag that governs how failure propagates through
composition.

Every Process's run function must leave both the input and the tree exactly
as received when it fails to match (is non-optional and consumed nothing):
no partial token, no half-built term survives a failed attempt. Seq and Not
are the two combinators that chain a first, possibly tree-mutating step
into a second step whose own failure must undo the first; they snapshot the
cursor on entry and restore it if the whole chain ultimately fails. Every
other combinator relies on this invariant holding for its operands rather
than re-proving it itself.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package combinator

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/chtholly-lang/chtholly/ptree"
)

// tracer traces with key 'chtholly.combinator'.
func tracer() tracing.Trace {
	return tracing.Select("chtholly.combinator")
}

// Info is the state threaded through a parse: the not-yet-consumed suffix
// of the source, and a Modifier cursor positioned at the tree node the
// next match should attach to.
type Info struct {
	Input  string
	Cursor ptree.Modifier
}

func moveOn(info Info, n int) Info {
	return Info{Input: info.Input[n:], Cursor: info.Cursor}
}

// consumed reports whether after made any forward progress over before.
func consumed(before, after Info) bool {
	return len(after.Input) < len(before.Input)
}

// Process is one combinator: a run function plus whether failing to
// consume still counts as success when this Process is sequenced or
// alternated with others.
type Process struct {
	run      func(Info) Info
	Optional bool
}

// Run executes the process against info.
func (p Process) Run(info Info) Info {
	return p.run(info)
}

// New builds a Process directly from a run function. Identifier uses it
// to inspect its own captured text before deciding whether it matched at
// all — something none of Match/Catch/Change expose on their own — and
// grammar.Lazy uses it to defer building a production until run time.
func New(optional bool, run func(Info) Info) Process {
	return Process{Optional: optional, run: run}
}

// succeeded reports whether running p turned before into after: either it
// consumed input, or it is marked Optional (in which case it always
// counts as succeeded, having matched zero-width).
func succeeded(p Process, before, after Info) bool {
	if p.Optional {
		return true
	}
	return consumed(before, after)
}

// Atom always succeeds without consuming input or touching the tree. It is
// the identity element for Seq and a building block for Opt/Many0.
var Atom = Process{Optional: true, run: func(info Info) Info { return info }}

// MatchByte matches a single literal byte.
func MatchByte(c byte) Process {
	return MatchPredicate(func(b byte) bool { return b == c })
}

// MatchAnyByte matches a single byte out of set.
func MatchAnyByte(set string) Process {
	return MatchPredicate(func(b byte) bool { return strings.IndexByte(set, b) >= 0 })
}

// MatchPredicate matches a single byte satisfying pred.
func MatchPredicate(pred func(byte) bool) Process {
	return Process{run: func(info Info) Info {
		if len(info.Input) == 0 || !pred(info.Input[0]) {
			return info
		}
		return moveOn(info, 1)
	}}
}

// MatchString matches the literal string s.
func MatchString(s string) Process {
	return Process{run: func(info Info) Info {
		if strings.HasPrefix(info.Input, s) {
			return moveOn(info, len(s))
		}
		return info
	}}
}

// MatchAnyString matches the first of candidates that is a prefix of the
// remaining input. Order matters for overlapping candidates (e.g. "<=" must
// precede "<").
func MatchAnyString(candidates ...string) Process {
	return Process{run: func(info Info) Info {
		for _, s := range candidates {
			if strings.HasPrefix(info.Input, s) {
				return moveOn(info, len(s))
			}
		}
		return info
	}}
}

// AnyChar matches any single remaining byte.
var AnyChar = MatchPredicate(func(byte) bool { return true })

// AnyCharUntil matches bytes one at a time until p would match, and then
// consumes what p matches as well: "p | (*(AnyChar ^ p), AnyChar, p)".
func AnyCharUntil(p Process) Process {
	return Or(p, Seq(Many0(Not(AnyChar, p)), AnyChar, p))
}

// Seq runs procs in order. If every non-Optional proc consumes input, the
// final Info is returned; otherwise the whole chain fails and every tree
// mutation performed by any proc in the chain is undone.
func Seq(procs ...Process) Process {
	optional := true
	for _, p := range procs {
		optional = optional && p.Optional
	}
	return Process{Optional: optional, run: func(info Info) Info {
		snap := info.Cursor.Snapshot()
		cur := info
		for _, p := range procs {
			next := p.run(cur)
			if !succeeded(p, cur, next) {
				info.Cursor = info.Cursor.Restore(snap)
				return info
			}
			cur = next
		}
		return cur
	}}
}

// Or tries procs in order and returns the first that succeeds. If none
// succeed, the original Info is returned unchanged.
func Or(procs ...Process) Process {
	optional := true
	for _, p := range procs {
		optional = optional && p.Optional
	}
	return Process{Optional: optional, run: func(info Info) Info {
		for _, p := range procs {
			next := p.run(info)
			if succeeded(p, info, next) {
				return next
			}
		}
		return info
	}}
}

// Opt makes p's failure-to-consume count as success, the way the original
// algebra's unary "~" flips a process's optionality. Applying Opt to an
// already-optional process is never done in practice; it would flip back
// to non-optional, matching the original operator's own behavior rather
// than guarding against it.
func Opt(p Process) Process {
	return Process{Optional: !p.Optional, run: p.run}
}

// Many1 runs p, and for as long as it keeps consuming input, runs it
// again. It stops and returns the last successful Info as soon as p fails
// to consume.
func Many1(p Process) Process {
	var self Process
	self = Process{Optional: false, run: func(info Info) Info {
		next := p.run(info)
		if !consumed(info, next) {
			return info
		}
		for {
			after := p.run(next)
			if !consumed(next, after) {
				return next
			}
			next = after
		}
	}}
	return self
}

// Many0 is zero-or-more: defined as Opt(Many1(p)).
func Many0(p Process) Process {
	return Opt(Many1(p))
}

// Not succeeds with pro's result exactly when pro matches and is not
// immediately followed by except; it fails (restoring any mutation pro
// performed) when except does follow.
func Not(pro, except Process) Process {
	return Process{Optional: pro.Optional, run: func(info Info) Info {
		snap := info.Cursor.Snapshot()
		i := pro.run(info)
		if !succeeded(pro, info, i) {
			return info
		}
		j := except.run(i)
		if !succeeded(except, i, j) {
			return i
		}
		info.Cursor = info.Cursor.Restore(snap)
		return info
	}}
}

// Catch runs p, and on success applies mutate to the captured substring
// (everything p consumed), threading the Modifier it returns back into
// the result. On failure, info is returned unchanged.
func Catch(p Process, mutate func(ptree.Modifier, string) ptree.Modifier) Process {
	return Process{Optional: false, run: func(info Info) Info {
		i := p.run(info)
		if !succeeded(p, info, i) {
			return info
		}
		captured := info.Input[:len(info.Input)-len(i.Input)]
		return Info{Input: i.Input, Cursor: mutate(i.Cursor, captured)}
	}}
}

// CatchToken is Catch specialized to append a token named name carrying
// the captured substring as a new child of the current cursor position.
func CatchToken(p Process, name string) Process {
	return Catch(p, func(m ptree.Modifier, captured string) ptree.Modifier {
		m.PushToken(name, captured)
		return m
	})
}

// Change applies mutate to the cursor unconditionally, without consuming
// input. It always succeeds (Optional).
func Change(mutate func(ptree.Modifier) ptree.Modifier) Process {
	return Process{Optional: true, run: func(info Info) Info {
		return Info{Input: info.Input, Cursor: mutate(info.Cursor)}
	}}
}

// ChangeIn pushes a new term named name as a child of the current cursor
// node and descends into it, the structural half of entering a
// production.
func ChangeIn(name string) Process {
	return Change(func(m ptree.Modifier) ptree.Modifier {
		return m.PushTermChild(name)
	})
}

// ChangeOut returns to the parent of the current cursor node, the
// structural half of leaving a production. When cutUnused is true, a
// wrapper term that ends up with fewer than two children is collapsed
// away and its lone remaining child (if any) spliced directly into the
// parent.
func ChangeOut(cutUnused bool) Process {
	return Change(func(m ptree.Modifier) ptree.Modifier {
		if cutUnused {
			return m.ExitCuttingUnused(2)
		}
		return m.Exit()
	})
}
