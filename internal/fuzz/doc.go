// Package fuzztests houses Go fuzz harnesses for the ry front end
// (source -> lexer -> parser -> formatter). They guard against panics,
// hangs and span corruption on arbitrary input.
//
// Назначение: прогонять байты через FileSet, лексер, парсер и форматтер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
