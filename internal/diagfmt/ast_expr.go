package diagfmt

import (
	"ry/internal/ast"
)

func exprNode(builder *ast.Builder, id ast.ExprID) ASTNodeOutput {
	exprs := builder.Exprs
	e := exprs.Get(id)
	if e == nil {
		return ASTNodeOutput{Type: "Expr", Kind: "<nil>"}
	}
	node := ASTNodeOutput{Type: "Expr", Kind: e.Kind.String(), Span: spanOutput(e.Span)}

	switch e.Kind {
	case ast.ExprInt, ast.ExprFloat, ast.ExprImag, ast.ExprString, ast.ExprChar, ast.ExprBool:
		lit, _ := exprs.Literal(id)
		node.Text = lit.Raw

	case ast.ExprList:
		list, _ := exprs.List(id)
		for _, el := range list.Elements {
			node.Children = append(node.Children, withRole("element", exprNode(builder, el)))
		}

	case ast.ExprStaticName:
		name, _ := exprs.StaticName(id)
		node.Text = name.Path.String()

	case ast.ExprPrefixOrPostfix:
		un, _ := exprs.PrefixOrPostfix(id)
		node.Text = un.Op.Kind.String()
		fix := "prefix"
		if un.Postfix {
			fix = "postfix"
		}
		node.Fields = map[string]string{"position": fix}
		node.Children = []ASTNodeOutput{withRole("operand", exprNode(builder, un.Operand))}

	case ast.ExprBinary:
		bin, _ := exprs.Binary(id)
		node.Text = bin.Op.Kind.String()
		node.Children = []ASTNodeOutput{
			withRole("left", exprNode(builder, bin.Left)),
			withRole("right", exprNode(builder, bin.Right)),
		}

	case ast.ExprAs:
		cast, _ := exprs.As(id)
		node.Children = []ASTNodeOutput{
			withRole("value", exprNode(builder, cast.Value)),
			withRole("type", typeNode(builder, cast.Type)),
		}

	case ast.ExprProperty:
		prop, _ := exprs.Property(id)
		node.Text = prop.Field.Value
		node.Children = []ASTNodeOutput{withRole("target", exprNode(builder, prop.Target))}

	case ast.ExprIndex:
		idx, _ := exprs.Index(id)
		node.Children = []ASTNodeOutput{
			withRole("target", exprNode(builder, idx.Target)),
			withRole("index", exprNode(builder, idx.Index)),
		}

	case ast.ExprCall:
		call, _ := exprs.Call(id)
		for _, g := range call.Generics {
			node.Children = append(node.Children, withRole("generic", typeNode(builder, g)))
		}
		node.Children = append(node.Children, withRole("callee", exprNode(builder, call.Callee)))
		for _, arg := range call.Args {
			node.Children = append(node.Children, withRole("arg", exprNode(builder, arg)))
		}

	case ast.ExprIf:
		data, _ := exprs.If(id)
		node.Children = append(node.Children,
			withRole("cond", exprNode(builder, data.Cond)),
			withRole("then", blockNode(builder, data.Then)),
		)
		for _, ei := range data.ElseIfs {
			node.Children = append(node.Children, ASTNodeOutput{
				Role: "else_if",
				Type: "ElseIf",
				Span: spanOutput(builder.Exprs.Get(ei.Cond).Span.Cover(ei.Body.Span)),
				Children: []ASTNodeOutput{
					withRole("cond", exprNode(builder, ei.Cond)),
					withRole("body", blockNode(builder, ei.Body)),
				},
			})
		}
		if data.HasElse {
			node.Children = append(node.Children, withRole("else", blockNode(builder, data.Else)))
		}

	case ast.ExprWhile:
		loop, _ := exprs.While(id)
		node.Children = []ASTNodeOutput{
			withRole("cond", exprNode(builder, loop.Cond)),
			withRole("body", blockNode(builder, loop.Body)),
		}
	}
	return node
}
