package diagfmt

import (
	"ry/internal/ast"
)

func typeNode(builder *ast.Builder, id ast.TypeID) ASTNodeOutput {
	typ := builder.Types.Get(id)
	if typ == nil {
		return ASTNodeOutput{Type: "Type", Kind: "<nil>"}
	}
	node := ASTNodeOutput{Type: "Type", Kind: typ.Kind.String(), Span: spanOutput(typ.Span)}
	if typ.Kind != ast.TypePrimary {
		node.Children = []ASTNodeOutput{withRole("inner", typeNode(builder, typ.Inner))}
		return node
	}
	prim, _ := builder.Types.Primary(id)
	node.Text = prim.Path.String()
	for _, g := range prim.Generics {
		node.Children = append(node.Children, withRole("generic", typeNode(builder, g)))
	}
	return node
}
