package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jesspatton/catclip/bundle"
	"github.com/jesspatton/catclip/config"
	"github.com/jesspatton/catclip/exclude"
	"github.com/jesspatton/catclip/filesystem"
	"github.com/jesspatton/catclip/picker"
	"github.com/jesspatton/catclip/ui"
)

func main() {
	rootFlag := flag.String("root", ".", "directory to scan")
	list := flag.Bool("list", false, "print the included files and exit")
	explain := flag.Bool("explain", false, "print which pattern excluded which file and exit")
	outFile := flag.String("o", "", "write the document to a file instead of the clipboard")
	useStdout := flag.Bool("stdout", false, "write the document to stdout instead of the clipboard")
	flag.Parse()

	if err := run(*rootFlag, *list, *explain, *outFile, *useStdout); err != nil {
		fmt.Fprintln(os.Stderr, "catclip:", err)
		os.Exit(1)
	}
}

func run(rootFlag string, list, explain bool, outFile string, useStdout bool) error {
	root, err := filepath.Abs(rootFlag)
	if err != nil {
		return err
	}

	cfg := config.Load(root)

	lines, err := filesystem.LoadRules(root, cfg.RulesFile)
	if err != nil {
		return err
	}
	patterns := exclude.Compile(lines)

	report, err := filesystem.Scan(root, cfg.ExcludeDirs, patterns)
	if err != nil {
		return err
	}

	if explain {
		fmt.Print(report.Render())
		return nil
	}

	included := report.IncludedPaths()
	if list {
		fmt.Println(strings.Join(included, "\n"))
		return nil
	}
	if len(included) == 0 {
		return fmt.Errorf("no files to pick under %s", root)
	}

	selection, err := pick(root, cfg, patterns, included)
	if err != nil {
		return err
	}
	if len(selection) == 0 {
		fmt.Fprintln(os.Stderr, "nothing selected")
		return nil
	}

	doc, err := bundle.Assemble(root, selection, cfg.HeaderFormat)
	if err != nil {
		return err
	}

	switch {
	case outFile != "":
		if err := os.WriteFile(outFile, []byte(doc.Text), 0644); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %s to %s\n", doc.Summary(), outFile)
	case useStdout:
		fmt.Print(doc.Text)
	default:
		if err := doc.ToClipboard(); err != nil {
			// No clipboard on this machine; the document still has to go
			// somewhere useful.
			fmt.Print(doc.Text)
			return nil
		}
		fmt.Fprintf(os.Stderr, "Copied %s to clipboard\n", doc.Summary())
	}
	return nil
}

// pick runs the configured external picker when it is installed, otherwise
// falls back to the built-in one with live refresh.
func pick(root string, cfg config.Config, patterns []exclude.Pattern, included []string) ([]string, error) {
	if picker.Available(cfg.Picker) {
		return picker.Run(cfg.Picker, included, root)
	}

	var watcher *filesystem.Watcher
	if w, err := filesystem.NewWatcher(root, cfg.ExcludeDirs); err == nil {
		watcher = w
		defer watcher.Close()
	}

	// Refreshes use the streaming walker; its result matches Scan up to
	// walk order.
	rescan := func() []string {
		return filesystem.StreamScan(root, cfg.ExcludeDirs, patterns).IncludedPaths()
	}

	p := tea.NewProgram(ui.NewModel(included, rescan, watcher), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	return final.(ui.Model).Selected(), nil
}
