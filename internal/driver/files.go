package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// SourceExt is the extension of ry source files.
const SourceExt = ".ry"

// ListSourceFiles returns every *.ry file under dir in lexical order.
func ListSourceFiles(dir string) ([]string, error) {
	return collectSourceFiles(context.Background(), []string{dir})
}

// collectSourceFiles раскрывает директории рекурсивно. Явно названный файл
// берётся при любом расширении. Результат отсортирован и без повторов.
func collectSourceFiles(ctx context.Context, paths []string) ([]string, error) {
	var files []string
	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, root)
			continue
		}
		walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			switch {
			case err != nil:
				return err
			case ctx.Err() != nil:
				return ctx.Err()
			case d.Type().IsRegular() && filepath.Ext(path) == SourceExt:
				files = append(files, path)
			}
			return nil
		})
		if walkErr != nil {
			return nil, walkErr
		}
	}
	slices.Sort(files)
	return slices.Compact(files), nil
}
