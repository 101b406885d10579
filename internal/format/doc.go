// Package format prints a parsed unit back as canonical ry source.
//
// Назначение: `ry fmt` и проверка идемпотентности (parse → print → parse).
// Не делает: сохранение комментариев и исходных пробелов; AST их не хранит.
// Зависимости: internal/ast, internal/parser (таблица приоритетов),
// internal/diagfmt (структурное сравнение деревьев).
package format
