package filesystem

import (
	"bufio"
	"os"
	"path/filepath"
)

// DefaultRulesFile is the rules file looked for at the scan root.
const DefaultRulesFile = ".catclipignore"

// LoadRules reads raw ignore-rule lines from the named rules file at root.
// If that file is absent it falls back to .gitignore. A missing file is not
// an error; it just means no rules.
func LoadRules(root, rulesFile string) ([]string, error) {
	if rulesFile == "" {
		rulesFile = DefaultRulesFile
	}

	lines, err := readLines(filepath.Join(root, rulesFile))
	if err == nil {
		return lines, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}

	lines, err = readLines(filepath.Join(root, ".gitignore"))
	if os.IsNotExist(err) {
		return nil, nil
	}
	return lines, err
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
