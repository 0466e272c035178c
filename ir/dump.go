package ir

import (
	"strconv"

	"github.com/pterm/pterm"
)

// Dump renders a Sequence as a numbered instruction listing, for
// diagnostics and test failure messages.
func (s Sequence) Dump() string {
	items := make(pterm.LeveledList, 0, len(s))
	for i, in := range s {
		items = append(items, pterm.LeveledListItem{
			Level: 0,
			Text:  in.String() + "  ; " + strconv.Itoa(i),
		})
	}
	root := pterm.NewTreeFromLeveledList(items)
	out, _ := pterm.DefaultTree.WithRoot(root).Srender()
	return out
}
