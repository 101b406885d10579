package format

import (
	"strings"

	"ry/internal/ast"
	"ry/internal/lexer"
)

// identText возвращает имя в виде, который лексер прочитает обратно.
func identText(name string) string {
	if lexer.IsPlainIdent(name) {
		return name
	}
	return "`" + name + "`"
}

func pathText(path ast.Path) string {
	parts := make([]string, len(path.Segments))
	for i, seg := range path.Segments {
		parts[i] = identText(seg.Value)
	}
	return strings.Join(parts, "::")
}
