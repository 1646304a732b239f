// Package picker drives an external interactive multi-select tool. The
// candidate list goes in newline-joined over stdin; the lines the user picked
// come back on stdout.
package picker

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Available reports whether the given picker command can be found on PATH.
func Available(command string) bool {
	name, _ := splitCommand(command)
	if name == "" {
		return false
	}
	_, err := exec.LookPath(name)
	return err == nil
}

// Run feeds paths to the picker over stdin and returns the selected lines.
// A cancelled picker (exit 130) or an empty match (exit 1) yields an empty
// selection rather than an error.
func Run(command string, paths []string, dir string) ([]string, error) {
	name, args := splitCommand(command)
	if name == "" {
		return nil, fmt.Errorf("empty picker command")
	}

	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdin = strings.NewReader(strings.Join(paths, "\n"))
	// Pickers like fzf draw their interface on stderr/tty; stdout carries
	// only the selection.
	cmd.Stderr = os.Stderr

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			switch exitErr.ExitCode() {
			case 1, 130:
				return nil, nil
			}
		}
		return nil, fmt.Errorf("running picker %q: %w", command, err)
	}

	return parseSelection(string(output)), nil
}

// splitCommand breaks a configured picker command like "fzf -m" into the
// executable and its arguments.
func splitCommand(command string) (string, []string) {
	parts := strings.Fields(command)
	if len(parts) == 0 {
		return "", nil
	}
	return parts[0], parts[1:]
}

// parseSelection turns picker stdout into a list of chosen paths, dropping
// empty lines.
func parseSelection(output string) []string {
	var selected []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			selected = append(selected, line)
		}
	}
	return selected
}
