// Package adapter contains the infrastructure adapters of the cleanarch CLI:
// filesystem access, Go parsing, report persistence and the scan cache.
package adapter

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	m "cleanarch.dev/pkg/cleanarch/internal/model"
)

const recursiveSuffix = "..."

// SourceFSAdapter abstracts the filesystem operations the domain layer
// relies on when scanning a project, so the workflow can be tested without
// touching the disk.
type SourceFSAdapter interface {
	// Get resolves Go-style path patterns ("./...", "./pkg/...", "./cmd",
	// "main.go") under root into the Go files to scan, sorted by short path.
	// Exclude entries are regular expressions matched against short paths.
	Get(ctx context.Context, root m.FilePath, paths []m.FilePath, includeTests bool, exclude ...string) ([]m.File, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.FilePath) ([]byte, error)

	// HashFile returns the SHA-256 fingerprint of the file at path.
	HashFile(path m.FilePath) (string, error)

	// FindProjectRoot searches for a go.mod walking up from startPath.
	FindProjectRoot(startPath m.FilePath) (m.FilePath, error)

	// RelPath returns target relative to base.
	RelPath(base, target m.FilePath) (m.FilePath, error)
}

// LocalSourceFSAdapter implements SourceFSAdapter on the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get walks every requested pattern and returns the matching Go files.
// Vendor, testdata, hidden and underscore directories are skipped, as are
// nested Go modules.
func (a *LocalSourceFSAdapter) Get(ctx context.Context, root m.FilePath, paths []m.FilePath, includeTests bool, exclude ...string) ([]m.File, error) {
	excludes, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	if len(paths) == 0 {
		paths = []m.FilePath{"./" + recursiveSuffix}
	}

	rootDir, err := filepath.Abs(string(root))
	if err != nil {
		return nil, fmt.Errorf("resolve root %s: %w", root, err)
	}

	collector := &fileCollector{
		adapter:      a,
		root:         rootDir,
		includeTests: includeTests,
		excludes:     excludes,
		seen:         make(map[m.FilePath]struct{}),
	}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := collector.collect(ctx, string(path)); err != nil {
			return nil, err
		}
	}

	slices.SortFunc(collector.files, func(x, y m.File) int {
		return strings.Compare(string(x.ShortPath), string(y.ShortPath))
	})

	return collector.files, nil
}

type fileCollector struct {
	adapter      *LocalSourceFSAdapter
	root         string
	includeTests bool
	excludes     []*regexp.Regexp
	seen         map[m.FilePath]struct{}
	files        []m.File
}

func (c *fileCollector) collect(ctx context.Context, pattern string) error {
	recursive := false

	if trimmed, ok := strings.CutSuffix(pattern, recursiveSuffix); ok {
		recursive = true
		pattern = strings.TrimRight(trimmed, `/\`)

		if pattern == "" {
			pattern = "."
		}
	}

	start := pattern
	if !filepath.IsAbs(start) {
		start = filepath.Join(c.root, pattern)
	}

	info, err := os.Stat(start)
	if err != nil {
		return fmt.Errorf("stat %s: %w", pattern, err)
	}

	if !info.IsDir() {
		return c.add(start)
	}

	return filepath.WalkDir(start, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if d.IsDir() {
			if path == start {
				return nil
			}

			if !recursive || skipDir(path, d.Name()) {
				return filepath.SkipDir
			}

			return nil
		}

		if !c.wanted(d.Name()) {
			return nil
		}

		return c.add(path)
	})
}

func (c *fileCollector) wanted(name string) bool {
	if filepath.Ext(name) != ".go" {
		return false
	}

	return c.includeTests || !strings.HasSuffix(name, "_test.go")
}

func (c *fileCollector) add(path string) error {
	rel, err := filepath.Rel(c.root, path)
	if err != nil {
		return fmt.Errorf("relative path of %s: %w", path, err)
	}

	short := m.FilePath(filepath.ToSlash(rel))
	if _, ok := c.seen[short]; ok {
		return nil
	}

	c.seen[short] = struct{}{}

	for _, re := range c.excludes {
		if re.MatchString(string(short)) {
			return nil
		}
	}

	hash, err := c.adapter.HashFile(m.FilePath(path))
	if err != nil {
		return fmt.Errorf("hash %s: %w", short, err)
	}

	c.files = append(c.files, m.File{
		FullPath:  m.FilePath(path),
		ShortPath: short,
		Hash:      hash,
	})

	return nil
}

// skipDir reports directories the go tool ignores as well, plus nested
// modules.
func skipDir(path, name string) bool {
	if name == "vendor" || name == "testdata" {
		return true
	}

	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
		return true
	}

	_, err := os.Stat(filepath.Join(path, "go.mod"))

	return err == nil
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	excludes := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		if strings.TrimSpace(pattern) == "" {
			continue
		}

		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		excludes = append(excludes, re)
	}

	return excludes, nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.FilePath) ([]byte, error) {
	return os.ReadFile(string(path))
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(path m.FilePath) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// FindProjectRoot searches for go.mod walking up the directory tree. A file
// start path is searched from its directory.
func (a *LocalSourceFSAdapter) FindProjectRoot(startPath m.FilePath) (m.FilePath, error) {
	dir, err := filepath.Abs(string(startPath))
	if err != nil {
		return "", err
	}

	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return m.FilePath(dir), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found in any parent directory of %s", startPath)
		}

		dir = parent
	}
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.FilePath) (m.FilePath, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.FilePath(rel), nil
}
