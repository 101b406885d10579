package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// writeTree печатает дерево в стиле
//
//	Unit (span: 1:1-3:2)
//	└─ Item Fun "main" (span: ...)
//	   └─ body: Block (span: ...)
func writeTree(w io.Writer, root ASTNodeOutput) error {
	if _, err := fmt.Fprintln(w, nodeLabel(root)); err != nil {
		return err
	}
	return writeTreeChildren(w, root.Children, "")
}

func writeTreeChildren(w io.Writer, children []ASTNodeOutput, prefix string) error {
	for i, child := range children {
		branch, next := "├─ ", "│  "
		if i == len(children)-1 {
			branch, next = "└─ ", "   "
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, branch, nodeLabel(child)); err != nil {
			return err
		}
		if err := writeTreeChildren(w, child.Children, prefix+next); err != nil {
			return err
		}
	}
	return nil
}

func nodeLabel(n ASTNodeOutput) string {
	var sb strings.Builder
	if n.Role != "" {
		sb.WriteString(n.Role)
		sb.WriteString(": ")
	}
	sb.WriteString(n.Type)
	if n.Kind != "" {
		sb.WriteString(" ")
		sb.WriteString(n.Kind)
	}
	if n.Text != "" {
		fmt.Fprintf(&sb, " %q", n.Text)
	}
	if pos, ok := n.Fields["position"]; ok {
		sb.WriteString(" ")
		sb.WriteString(pos)
	}
	if n.Fields["public"] == "true" {
		sb.WriteString(" pub")
	}
	fmt.Fprintf(&sb, " (span: %d:%d-%d:%d)", n.Span.StartLine, n.Span.StartCol, n.Span.EndLine, n.Span.EndCol)
	return sb.String()
}

func writeJSON(w io.Writer, root ASTNodeOutput) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(root)
}

func writeMsgpack(w io.Writer, root ASTNodeOutput) error {
	enc := msgpack.NewEncoder(w)
	enc.SetSortMapKeys(true)
	return enc.Encode(root)
}

// DecodeMsgpack reads a tree written with the msgpack format.
func DecodeMsgpack(r io.Reader) (ASTNodeOutput, error) {
	var root ASTNodeOutput
	err := msgpack.NewDecoder(r).Decode(&root)
	return root, err
}
