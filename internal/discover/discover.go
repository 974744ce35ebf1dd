// Package discover finds scene files on disk.
package discover

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"scene-designer/internal/serial"
)

// IgnoreFile holds gitignore-style patterns of scenes to skip, relative to
// the directory being searched.
const IgnoreFile = ".scenesignore"

var skipDirs = map[string]struct{}{
	"node_modules": {},
	"vendor":       {},
	"testdata":     {},
}

// Files returns the scene files under root, relative to root and sorted.
// Patterns from root's IgnoreFile and the extra patterns are honored.
func Files(root string, extra []string) ([]string, error) {
	gi, err := loadIgnore(root, extra)
	if err != nil {
		return nil, err
	}

	var results []string

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		name := d.Name()

		if d.IsDir() {
			if path == root {
				return nil
			}

			if _, skip := skipDirs[name]; skip || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}

			return nil
		}

		if strings.HasPrefix(name, ".") || !strings.HasSuffix(name, serial.Extension) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}

		if gi.MatchesPath(filepath.ToSlash(rel)) {
			return nil
		}

		results = append(results, rel)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search %s: %w", root, err)
	}

	sort.Strings(results)

	return results, nil
}

// Paths expands command line arguments: files are kept as given and
// directories are searched with Files. The result has no duplicates and
// keeps argument order.
func Paths(args []string, extra []string) ([]string, error) {
	var out []string

	seen := make(map[string]bool)
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", arg, err)
		}

		if !info.IsDir() {
			add(filepath.Clean(arg))
			continue
		}

		files, err := Files(arg, extra)
		if err != nil {
			return nil, err
		}

		for _, f := range files {
			add(filepath.Join(arg, f))
		}
	}

	return out, nil
}

func loadIgnore(root string, extra []string) (*ignore.GitIgnore, error) {
	path := filepath.Join(root, IgnoreFile)

	gi, err := ignore.CompileIgnoreFileAndLines(path, extra...)
	if errors.Is(err, fs.ErrNotExist) {
		return ignore.CompileIgnoreLines(extra...), nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return gi, nil
}
