// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FindFilesByExtension resolves every path to the files it denotes: a file
// path is returned as-is when its extension matches, a directory is walked
// recursively. Results keep the order of paths, are sorted within a
// directory and contain no duplicates. A path holding glob meta characters
// is expanded with doublestar first and must match something. A path that
// does not exist is an error.
func FindFilesByExtension(paths []string, extensions ...string) ([]string, error) {
	if len(extensions) == 0 {
		panic("at least one extension is required")
	}

	matches := func(name string) bool {
		return slices.ContainsFunc(extensions, func(ext string) bool { return strings.HasSuffix(name, ext) })
	}

	var files []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		files = append(files, p)
	}

	roots, err := expandPatterns(paths)
	if err != nil {
		return nil, err
	}

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", root, err)
		}
		if !info.IsDir() {
			if matches(info.Name()) {
				add(root)
			}
			continue
		}
		// WalkDir visits entries in lexical order.
		err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && matches(d.Name()) {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

// expandPatterns replaces every glob pattern in paths by its matches.
func expandPatterns(paths []string) ([]string, error) {
	var roots []string
	for _, p := range paths {
		if !strings.ContainsAny(p, "*?[{") {
			roots = append(roots, p)
			continue
		}
		matches, err := doublestar.FilepathGlob(p)
		if err != nil {
			return nil, fmt.Errorf("glob error in %s: %w", p, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match pattern %s", p)
		}
		roots = append(roots, matches...)
	}
	return roots, nil
}
