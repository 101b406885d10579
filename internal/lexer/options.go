package lexer

import (
	"ry/internal/diag"
	"ry/internal/source"
)

type Options struct {
	Reporter diag.Reporter // может быть nil: ошибки тогда только в Invalid токенах
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
