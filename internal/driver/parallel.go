package driver

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"ry/internal/diag"
	"ry/internal/source"
	"ry/internal/token"
	"ry/internal/trace"
)

// DirOptions configures a parallel directory run.
type DirOptions struct {
	MaxDiagnostics int
	Jobs           int // <= 0 means GOMAXPROCS
	Progress       ProgressSink
}

// TokenizeDirResult содержит результат токенизации одного файла
type TokenizeDirResult struct {
	Path   string
	FileID source.FileID
	Tokens []token.Token
	Bag    *diag.Bag
	// Err is set when the file could not be read; FileID is then meaningless.
	Err error
}

// ParseDirResult содержит результат разбора одного файла
type ParseDirResult struct {
	Path   string
	FileID source.FileID
	*ParseResult
}

// loadAll reads files sequentially; workers only read the FileSet afterwards.
func loadAll(dir string, files []string) (*source.FileSet, map[string]source.FileID, map[string]error) {
	fileSet := source.NewFileSetWithBase(dir)
	ids := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error)
	for _, path := range files {
		id, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		ids[path] = id
	}
	return fileSet, ids, loadErrors
}

// forEachFile runs fn for every file with at most jobs goroutines. Results
// are written by index, so fn needs no locking.
func forEachFile(ctx context.Context, files []string, jobs int, fn func(ctx context.Context, i int, path string) error) error {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, i, path)
		})
	}
	return g.Wait()
}

// TokenizeDir лексит все *.ry файлы директории параллельно.
func TokenizeDir(ctx context.Context, dir string, opts DirOptions) (*source.FileSet, []TokenizeDirResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return source.NewFileSetWithBase(dir), nil, nil
	}

	ctx, span := trace.Start(ctx, trace.ScopeDriver, "tokenize_dir")
	defer span.End("")

	fileSet, ids, loadErrors := loadAll(dir, files)
	results := make([]TokenizeDirResult, len(files))
	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageLex, Status: StatusQueued})
	}

	err = forEachFile(ctx, files, opts.Jobs, func(ctx context.Context, i int, path string) error {
		started := time.Now()
		bag := diag.NewBag(opts.MaxDiagnostics)
		results[i] = TokenizeDirResult{Path: path, Bag: bag}
		if loadErr, failed := loadErrors[path]; failed {
			results[i].Err = loadErr
			emit(opts.Progress, Event{File: path, Stage: StageLex, Status: StatusError, Err: loadErr})
			return nil
		}

		emit(opts.Progress, Event{File: path, Stage: StageLex, Status: StatusWorking})
		fileID := ids[path]
		results[i].FileID = fileID
		results[i].Tokens = lexFile(ctx, fileSet.Get(fileID), bag)

		status := StatusDone
		if bag.HasErrors() {
			status = StatusError
		}
		emit(opts.Progress, Event{File: path, Stage: StageLex, Status: status, Elapsed: time.Since(started)})
		return nil
	})
	return fileSet, results, err
}

// ParseDir парсит все *.ry файлы директории параллельно. Каждая горутина
// владеет своим лексером, парсером и Builder.
func ParseDir(ctx context.Context, dir string, opts DirOptions) (*source.FileSet, []ParseDirResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return source.NewFileSetWithBase(dir), nil, nil
	}

	ctx, span := trace.Start(ctx, trace.ScopeDriver, "parse_dir")
	defer span.End("")

	fileSet, ids, loadErrors := loadAll(dir, files)
	results := make([]ParseDirResult, len(files))
	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusQueued})
	}

	err = forEachFile(ctx, files, opts.Jobs, func(ctx context.Context, i int, path string) error {
		started := time.Now()
		if loadErr, failed := loadErrors[path]; failed {
			// у непрочитанного файла нет FileID, поэтому и диагностик нет
			results[i] = ParseDirResult{
				Path:        path,
				ParseResult: &ParseResult{FileSet: fileSet, Bag: diag.NewBag(opts.MaxDiagnostics), Err: loadErr},
			}
			emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusError, Err: loadErr})
			return nil
		}

		emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusWorking})
		fileID := ids[path]
		res := parseLoaded(ctx, fileSet, fileSet.Get(fileID), opts.MaxDiagnostics)
		results[i] = ParseDirResult{Path: path, FileID: fileID, ParseResult: res}

		status := StatusDone
		if !res.OK() {
			status = StatusError
		}
		emit(opts.Progress, Event{File: path, Stage: StageParse, Status: status, Err: res.Err, Elapsed: time.Since(started)})
		return nil
	})
	return fileSet, results, err
}
