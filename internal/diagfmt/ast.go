package diagfmt

import (
	"fmt"
	"io"

	"ry/internal/ast"
	"ry/internal/source"
)

// SpanOutput is a span flattened for serialization.
type SpanOutput struct {
	Start     uint32 `json:"start" msgpack:"start"`
	End       uint32 `json:"end" msgpack:"end"`
	StartLine uint32 `json:"start_line" msgpack:"start_line"`
	StartCol  uint32 `json:"start_col" msgpack:"start_col"`
	EndLine   uint32 `json:"end_line" msgpack:"end_line"`
	EndCol    uint32 `json:"end_col" msgpack:"end_col"`
}

// ASTNodeOutput is the format-neutral view of one AST node. Tree, JSON,
// msgpack и DOT печатаются из одного и того же дерева.
type ASTNodeOutput struct {
	Role     string            `json:"role,omitempty" msgpack:"role,omitempty"`
	Type     string            `json:"type" msgpack:"type"`
	Kind     string            `json:"kind,omitempty" msgpack:"kind,omitempty"`
	Text     string            `json:"text,omitempty" msgpack:"text,omitempty"`
	Span     SpanOutput        `json:"span" msgpack:"span"`
	Fields   map[string]string `json:"fields,omitempty" msgpack:"fields,omitempty"`
	Children []ASTNodeOutput   `json:"children,omitempty" msgpack:"children,omitempty"`
}

func spanOutput(sp source.Span) SpanOutput {
	return SpanOutput{
		Start:     sp.Start.Index,
		End:       sp.End.Index,
		StartLine: sp.Start.Line,
		StartCol:  sp.Start.Column,
		EndLine:   sp.End.Line,
		EndCol:    sp.End.Column,
	}
}

// BuildUnitNode converts a parsed unit into its output tree.
func BuildUnitNode(builder *ast.Builder, unitID ast.UnitID) (ASTNodeOutput, error) {
	unit := builder.Units.Get(unitID)
	if unit == nil {
		return ASTNodeOutput{}, fmt.Errorf("unit %d not found", unitID)
	}
	root := ASTNodeOutput{Type: "Unit", Span: spanOutput(unit.Span)}
	for _, id := range unit.Imports {
		root.Children = append(root.Children, itemNode(builder, id))
	}
	for _, id := range unit.Items {
		root.Children = append(root.Children, itemNode(builder, id))
	}
	return root, nil
}

// FormatAST renders the unit in the requested format.
func FormatAST(w io.Writer, builder *ast.Builder, unitID ast.UnitID, fs *source.FileSet, format ASTFormat) error {
	root, err := BuildUnitNode(builder, unitID)
	if err != nil {
		return err
	}
	if fs != nil {
		if u := builder.Units.Get(unitID); u != nil {
			if f := fs.Get(u.Span.File); f != nil {
				root.Text = f.FormatPath("auto", fs.BaseDir())
			}
		}
	}
	switch format {
	case ASTFormatJSON:
		return writeJSON(w, root)
	case ASTFormatMsgpack:
		return writeMsgpack(w, root)
	case ASTFormatDot:
		return writeDot(w, root)
	default:
		return writeTree(w, root)
	}
}

// EqualIgnoringSpans reports whether two trees have the same shape and
// payloads; позиции не сравниваются.
func EqualIgnoringSpans(a, b ASTNodeOutput) bool {
	if a.Role != b.Role || a.Type != b.Type || a.Kind != b.Kind || a.Text != b.Text {
		return false
	}
	if len(a.Fields) != len(b.Fields) || len(a.Children) != len(b.Children) {
		return false
	}
	for k, v := range a.Fields {
		if bv, ok := b.Fields[k]; !ok || bv != v {
			return false
		}
	}
	for i := range a.Children {
		if !EqualIgnoringSpans(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

func withRole(role string, n ASTNodeOutput) ASTNodeOutput {
	n.Role = role
	return n
}
