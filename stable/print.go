package stable

import (
	"fmt"
	"strings"
)

const indentWidth = 2

// Dump renders t and its descendants as indented text: one scope per
// block, its symbols listed beneath it. This is the scope-tree dump
// spec §6 requires on the output stream for pipeline mode "semantic".
func (t *Table) Dump() string {
	var b strings.Builder
	t.dump(&b, 0)
	return b.String()
}

func (t *Table) dump(b *strings.Builder, depth int) {
	pad := strings.Repeat(" ", depth*indentWidth)
	fmt.Fprintf(b, "%sscope (tie=%d)\n", pad, t.tie)
	for _, sym := range t.symbols {
		fmt.Fprintf(b, "%s  %s: %s\n", pad, sym.Name, describe(sym.Type))
	}
	for _, child := range t.children {
		child.dump(b, depth+1)
	}
}

func describe(st SType) string {
	switch st.Kind {
	case KindScalar:
		return st.Base.String()
	case KindArray:
		return fmt.Sprintf("%s[%d]", st.Base, st.Size)
	case KindFunction:
		parts := make([]string, len(st.Params))
		for i, p := range st.Params {
			parts[i] = describe(p)
		}
		return fmt.Sprintf("function(%s) -> %s", strings.Join(parts, ", "), st.Base)
	default:
		return "unknown"
	}
}
