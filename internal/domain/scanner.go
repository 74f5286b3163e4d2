package domain

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"cleanarch.dev/pkg/cleanarch/internal/adapter"
	m "cleanarch.dev/pkg/cleanarch/internal/model"
)

// ErrNoSources is returned when the requested paths hold no Go file.
var ErrNoSources = errors.New("no Go sources found")

// ScanArgs selects the files to scan.
type ScanArgs struct {
	Root         m.FilePath
	Paths        []m.FilePath
	Exclude      []string
	IncludeTests bool
	Threads      int
}

// ScanResult is the outcome of a scan.
type ScanResult struct {
	ProjectRoot m.FilePath
	ModulePath  string
	Files       []m.ScannedFile
	Cached      int
	Skipped     int
}

// Scanner turns the Go files of a project into units of code.
type Scanner interface {
	Scan(ctx context.Context, args ScanArgs) (ScanResult, error)
}

type scanner struct {
	adapter.SourceFSAdapter
	adapter.GoFileAdapter
	adapter.ModuleFileAdapter
	cache adapter.ScanCache
}

// NewScanner creates a Scanner with the provided dependencies.
func NewScanner(
	fsAdapter adapter.SourceFSAdapter,
	goFileAdapter adapter.GoFileAdapter,
	moduleFileAdapter adapter.ModuleFileAdapter,
	cache adapter.ScanCache,
) Scanner {
	if cache == nil {
		cache = adapter.NoScanCache{}
	}

	return &scanner{
		SourceFSAdapter:   fsAdapter,
		GoFileAdapter:     goFileAdapter,
		ModuleFileAdapter: moduleFileAdapter,
		cache:             cache,
	}
}

// Scan parses the selected files concurrently. Files that fail to parse are
// logged and skipped; results keep the order of the file listing.
func (s *scanner) Scan(ctx context.Context, args ScanArgs) (ScanResult, error) {
	root, err := s.FindProjectRoot(args.Root)
	if err != nil {
		return ScanResult{}, fmt.Errorf("find project root: %w", err)
	}

	modulePath, err := s.ModulePath(root)
	if err != nil {
		return ScanResult{}, fmt.Errorf("module path: %w", err)
	}

	files, err := s.Get(ctx, root, args.Paths, args.IncludeTests, args.Exclude...)
	if err != nil {
		return ScanResult{}, fmt.Errorf("get sources: %w", err)
	}

	if len(files) == 0 {
		return ScanResult{}, ErrNoSources
	}

	threads := args.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	slog.Debug("scanning sources", "root", root, "module", modulePath, "files", len(files), "threads", threads)

	scanned := make([]m.ScannedFile, len(files))
	cached := make([]bool, len(files))
	fileSet := token.NewFileSet()

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for i := range files {
		index := i

		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			file, hit, err := s.scanFile(fileSet, modulePath, files[index])
			if err != nil {
				return err
			}

			scanned[index] = file
			cached[index] = hit

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return ScanResult{}, err
	}

	result := ScanResult{ProjectRoot: root, ModulePath: modulePath}

	for i, file := range scanned {
		if file.Source.Origin == nil {
			result.Skipped++
			continue
		}

		if cached[i] {
			result.Cached++
		}

		result.Files = append(result.Files, file)
	}

	return result, nil
}

func (s *scanner) scanFile(fileSet *token.FileSet, modulePath string, file m.File) (m.ScannedFile, bool, error) {
	importPath := adapter.ImportPath(modulePath, file.ShortPath)
	key := adapter.ScanCacheKey(file, importPath)

	origin := file
	source := m.Source{Origin: &origin, Package: importPath}

	if units, ok := s.cache.Get(key); ok {
		return m.ScannedFile{Source: source, Units: relocate(units, file.ShortPath)}, true, nil
	}

	src, err := s.ReadFile(file.FullPath)
	if err != nil {
		return m.ScannedFile{}, false, fmt.Errorf("read %s: %w", file.ShortPath, err)
	}

	units, err := s.ScanFile(fileSet, file.ShortPath, importPath, src)
	if err != nil {
		slog.Warn("skipping unparseable file", "path", file.ShortPath, "error", err)
		return m.ScannedFile{}, false, nil
	}

	s.cache.Put(key, units)

	return m.ScannedFile{Source: source, Units: units}, false, nil
}

// relocate copies cached units onto path. Identical content may have been
// cached under another file name of the same package. Units without a path
// keep it empty.
func relocate(units []m.UnitSpec, path m.FilePath) []m.UnitSpec {
	moved := make([]m.UnitSpec, len(units))

	for i, unit := range units {
		if unit.Path != "" {
			unit.Path = path
		}

		moved[i] = unit
	}

	return moved
}
