package lexer

import (
	"unicode"

	"ry/internal/token"
)

// ===== Классификаторы =====

// ASCII цифры перехватывает scanNumber раньше, поэтому start и continue совпадают.
func isIdentStartRune(r rune) bool {
	return isIdentContinueRune(r)
}

func isIdentContinueRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func isDec(r rune) bool { return r >= '0' && r <= '9' }

func isHex(r rune) bool {
	return (r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'f') ||
		(r >= 'A' && r <= 'F')
}

// digitValue возвращает значение цифры 0-9a-f или 16 для всего остального.
func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	}
	return 16
}

// IsPlainIdent reports whether name lexes back as the same identifier without
// backquotes. Ключевые слова и имена, начинающиеся как число, требуют `...`.
func IsPlainIdent(name string) bool {
	if name == "" {
		return false
	}
	if _, kw := token.LookupKeyword(name); kw {
		return false
	}
	if isDec(rune(name[0])) || (name[0] == '_' && len(name) > 1 && isDec(rune(name[1]))) {
		return false
	}
	for _, r := range name {
		if !isIdentContinueRune(r) {
			return false
		}
	}
	return true
}
