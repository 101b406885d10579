package diagfmt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// writeDot печатает дерево как Graphviz digraph. Узлы нумеруются в порядке
// обхода в глубину, роль ребёнка становится подписью ребра.
func writeDot(w io.Writer, root ASTNodeOutput) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph AST {")
	fmt.Fprintln(bw, "\tnode [shape=box, fontname=\"monospace\"];")
	next := 0
	writeDotNode(bw, root, &next)
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

func writeDotNode(w io.Writer, n ASTNodeOutput, next *int) int {
	id := *next
	*next++

	label := n.Type
	if n.Kind != "" {
		label += " " + n.Kind
	}
	if n.Text != "" {
		label += "\n" + n.Text
	}
	fmt.Fprintf(w, "\tn%d [label=\"%s\"];\n", id, dotEscape(label))

	for _, child := range n.Children {
		cid := writeDotNode(w, child, next)
		if child.Role != "" {
			fmt.Fprintf(w, "\tn%d -> n%d [label=\"%s\"];\n", id, cid, dotEscape(child.Role))
		} else {
			fmt.Fprintf(w, "\tn%d -> n%d;\n", id, cid)
		}
	}
	return id
}

var dotReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

func dotEscape(s string) string {
	return dotReplacer.Replace(s)
}
