package ast

import (
	"fmt"
	"strings"
)

const indentWidth = 2

// Dump renders the tree as indented text, one line per node: a
// category label, the node's own literal text, and any payload worth
// a human's eye. It is
// the textual AST dump spec §6 requires on the output stream for
// `pipeline` mode "parser".
func (t *Tree) Dump() string {
	var b strings.Builder
	if len(t.Nodes) > 0 {
		t.dumpNode(&b, 0, 0)
	}
	return b.String()
}

func (t *Tree) dumpNode(b *strings.Builder, idx, depth int) {
	n := t.Nodes[idx]
	b.WriteString(strings.Repeat(" ", depth*indentWidth))
	b.WriteString(n.Category)
	if n.Name != "" {
		fmt.Fprintf(b, " %q", n.Name)
	}
	if len(n.Names) > 0 {
		fmt.Fprintf(b, " %q", strings.Join(n.Names, ", "))
	}
	if n.Kind == KindIntLit || n.Kind == KindRealLit {
		fmt.Fprintf(b, " (%s)", n.Token.Literal)
	}
	if n.Kind == KindBinary || n.Kind == KindCompare {
		fmt.Fprintf(b, " [%s]", n.Op)
	}
	if n.Kind == KindIf {
		fmt.Fprintf(b, " (then=%d, else=%v)", n.ThenCount, n.HasElse)
	}
	b.WriteString("\n")
	for _, child := range n.Children {
		t.dumpNode(b, child, depth+1)
	}
}
