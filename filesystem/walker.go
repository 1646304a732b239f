package filesystem

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/jesspatton/catclip/exclude"
)

// Scan walks the tree rooted at root and partitions every regular file into
// included paths and per-pattern exclusion buckets. Directories whose name
// appears in excludeDirs are pruned at the walk level, before any pattern
// evaluation; ".git" is always pruned. Walk order is preserved in the result.
func Scan(root string, excludeDirs []string, patterns []exclude.Pattern) (*exclude.Report, error) {
	prune := pruneSet(excludeDirs)

	var paths []exclude.Path
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		if d.IsDir() {
			if prune[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		paths = append(paths, exclude.Classify(filepath.ToSlash(rel)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	report := exclude.Partition(paths, patterns)
	return &report, nil
}

// pruneSet builds the name-equality prune set. ".git" is always in it.
func pruneSet(excludeDirs []string) map[string]bool {
	prune := map[string]bool{".git": true}
	for _, name := range excludeDirs {
		if name != "" {
			prune[name] = true
		}
	}
	return prune
}
