package token

// keywords заполняется один раз при инициализации пакета и больше не меняется.
var keywords = map[string]Kind{
	"if":     KwIf,
	"else":   KwElse,
	"while":  KwWhile,
	"return": KwReturn,
	"defer":  KwDefer,
	"as":     KwAs,
	"fun":    KwFun,
	"import": KwImport,
	"pub":    KwPub,
	"true":   BoolLit,
	"false":  BoolLit,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые: только lowercase версии распознаются.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
