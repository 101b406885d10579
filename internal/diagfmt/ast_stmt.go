package diagfmt

import (
	"ry/internal/ast"
)

func blockNode(builder *ast.Builder, block ast.Block) ASTNodeOutput {
	node := ASTNodeOutput{Type: "Block", Span: spanOutput(block.Span)}
	for _, id := range block.Stmts {
		node.Children = append(node.Children, stmtNode(builder, id))
	}
	return node
}

func stmtNode(builder *ast.Builder, id ast.StmtID) ASTNodeOutput {
	st := builder.Stmts.Get(id)
	if st == nil {
		return ASTNodeOutput{Type: "Stmt", Kind: "<nil>"}
	}
	return ASTNodeOutput{
		Type:     "Stmt",
		Kind:     st.Kind.String(),
		Span:     spanOutput(st.Span),
		Children: []ASTNodeOutput{exprNode(builder, st.Expr)},
	}
}
