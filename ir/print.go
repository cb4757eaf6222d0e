package ir

import "strings"

// Dump renders ops as the textual IR listing spec §6 requires on the
// output stream for pipeline mode "compile".
func Dump(ops []Op) string {
	var b strings.Builder
	for _, op := range ops {
		b.WriteString(op.String())
		b.WriteString("\n")
	}
	return b.String()
}
