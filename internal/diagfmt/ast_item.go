package diagfmt

import (
	"ry/internal/ast"
)

func itemNode(builder *ast.Builder, id ast.ItemID) ASTNodeOutput {
	item := builder.Items.Get(id)
	if item == nil {
		return ASTNodeOutput{Type: "Item", Kind: "<nil>"}
	}
	node := ASTNodeOutput{Type: "Item", Span: spanOutput(item.Span)}

	switch item.Kind {
	case ast.ItemImport:
		imp, _ := builder.Items.Import(id)
		node.Kind = "Import"
		node.Text = imp.Path.String()
	case ast.ItemFun:
		fun, _ := builder.Items.Fun(id)
		node.Kind = "Fun"
		node.Text = fun.Name.Value
		if fun.Public {
			node.Fields = map[string]string{"public": "true"}
		}
		for _, g := range fun.Generics {
			gn := ASTNodeOutput{Role: "generic", Type: "Generic", Text: g.Name.Value, Span: spanOutput(g.Name.Span)}
			if g.Constraint.IsValid() {
				gn.Children = append(gn.Children, withRole("constraint", typeNode(builder, g.Constraint)))
			}
			node.Children = append(node.Children, gn)
		}
		for _, prm := range fun.Params {
			pn := ASTNodeOutput{Role: "param", Type: "Param", Text: prm.Name.Value, Span: spanOutput(prm.Name.Span)}
			pn.Children = append(pn.Children, withRole("type", typeNode(builder, prm.Type)))
			node.Children = append(node.Children, pn)
		}
		if fun.Return.IsValid() {
			node.Children = append(node.Children, withRole("return", typeNode(builder, fun.Return)))
		}
		node.Children = append(node.Children, withRole("body", blockNode(builder, fun.Body)))
	}
	return node
}
