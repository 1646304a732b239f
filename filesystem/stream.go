package filesystem

import (
	"path/filepath"

	"github.com/boyter/gocodewalker"

	"github.com/jesspatton/catclip/exclude"
)

// StreamScan enumerates files via gocodewalker instead of filepath.WalkDir.
// The walker's own ignore-file handling is disabled so the exclusion engine
// stays the single authority over what is filtered. Its output is drained
// completely before pattern evaluation begins; the result is equivalent to
// Scan up to walk order.
func StreamScan(root string, excludeDirs []string, patterns []exclude.Pattern) *exclude.Report {
	fileListQueue := make(chan *gocodewalker.File, 100)
	fileWalker := gocodewalker.NewFileWalker(root, fileListQueue)
	fileWalker.IgnoreIgnoreFile = true
	fileWalker.IgnoreGitIgnore = true
	fileWalker.IncludeHidden = true
	fileWalker.ExcludeDirectory = append([]string{".git"}, excludeDirs...)

	go func() {
		_ = fileWalker.Start()
	}()

	var paths []exclude.Path
	for f := range fileListQueue {
		rel, err := filepath.Rel(root, f.Location)
		if err != nil {
			continue
		}
		paths = append(paths, exclude.Classify(filepath.ToSlash(rel)))
	}

	report := exclude.Partition(paths, patterns)
	return &report
}
