package ptree

import (
	"strings"

	"github.com/pterm/pterm"
)

// Dump renders the subtree at the cursor's position as an indented tree,
// for diagnostics and test failure messages.
func Dump(o Observer) string {
	root := toTreeNode(o)
	s, _ := pterm.DefaultTree.WithRoot(root).Srender()
	return s
}

func toTreeNode(o Observer) pterm.TreeNode {
	text := o.Name()
	if o.Kind() == Token {
		text = o.Name() + " " + quoteValue(o.Value().Value)
	}
	node := pterm.TreeNode{Text: text}
	for _, c := range o.Children() {
		node.Children = append(node.Children, toTreeNode(c))
	}
	return node
}

func quoteValue(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteByte(s[i])
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteByte(s[i])
		}
	}
	b.WriteByte('"')
	return b.String()
}
