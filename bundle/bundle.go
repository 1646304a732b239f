// Package bundle assembles the contents of selected files into a single
// annotated document.
package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/jesspatton/catclip/filesystem"
)

// readLimit bounds concurrent file reads during assembly.
const readLimit = 8

// Document is the assembled output plus the bookkeeping for its summary.
type Document struct {
	Text       string
	FileCount  int
	TotalBytes uint64
	Skipped    []string // binary files left out of the document
}

// Assemble reads the selected files under root and concatenates them under
// per-file headers. Files are read concurrently but appear in selection
// order. Binary-looking files are skipped and recorded rather than inlined.
func Assemble(root string, paths []string, headerFormat string) (*Document, error) {
	if headerFormat == "" {
		headerFormat = "==> %s <=="
	}

	contents := make([][]byte, len(paths))

	var g errgroup.Group
	g.SetLimit(readLimit)
	for i, rel := range paths {
		g.Go(func() error {
			data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
			if err != nil {
				return fmt.Errorf("reading %s: %w", rel, err)
			}
			contents[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	doc := &Document{}
	var b strings.Builder
	for i, rel := range paths {
		if !filesystem.IsProbablyText(contents[i]) {
			doc.Skipped = append(doc.Skipped, rel)
			continue
		}

		fmt.Fprintf(&b, headerFormat, rel)
		b.WriteString("\n")
		b.Write(contents[i])
		if len(contents[i]) > 0 && contents[i][len(contents[i])-1] != '\n' {
			b.WriteString("\n")
		}
		b.WriteString("\n")

		doc.FileCount++
		doc.TotalBytes += uint64(len(contents[i]))
	}
	doc.Text = b.String()
	return doc, nil
}

// Summary is a one-line human-readable description of the document, e.g.
// "3 files, 12 kB".
func (d *Document) Summary() string {
	s := fmt.Sprintf("%d files, %s", d.FileCount, humanize.Bytes(d.TotalBytes))
	if len(d.Skipped) > 0 {
		s += fmt.Sprintf(" (%d binary skipped)", len(d.Skipped))
	}
	return s
}
