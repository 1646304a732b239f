package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Config holds the settings the surrounding system feeds into the scan:
// where the rules come from, which directory names to prune, how to pick,
// and how assembled documents are annotated.
type Config struct {
	RulesFile    string   `json:"rulesFile"`
	ExcludeDirs  []string `json:"excludeDirs"`
	Picker       string   `json:"picker"`
	HeaderFormat string   `json:"headerFormat"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		RulesFile:    ".catclipignore",
		ExcludeDirs:  []string{"node_modules", "dist", "build", "coverage", ".DS_Store"},
		Picker:       "fzf -m",
		HeaderFormat: "==> %s <==",
	}
}

// Load looks for .catclip.json in the scan root and merges it over the
// defaults, then applies environment overrides. It never fails; any problem
// reading or parsing the file falls back to defaults.
func Load(root string) Config {
	cfg := Default()

	configFile := filepath.Join(root, ".catclip.json")
	if data, err := os.ReadFile(configFile); err == nil {
		var fileCfg Config
		if err := json.Unmarshal(data, &fileCfg); err == nil {
			if fileCfg.RulesFile != "" {
				cfg.RulesFile = fileCfg.RulesFile
			}
			if fileCfg.ExcludeDirs != nil {
				cfg.ExcludeDirs = fileCfg.ExcludeDirs
			}
			if fileCfg.Picker != "" {
				cfg.Picker = fileCfg.Picker
			}
			if fileCfg.HeaderFormat != "" {
				cfg.HeaderFormat = fileCfg.HeaderFormat
			}
		}
	}

	// CATCLIP_EXCLUDE_DIRS appends, CATCLIP_PICKER replaces.
	if env := os.Getenv("CATCLIP_EXCLUDE_DIRS"); env != "" {
		for _, name := range strings.Split(env, ",") {
			if name = strings.TrimSpace(name); name != "" {
				cfg.ExcludeDirs = append(cfg.ExcludeDirs, name)
			}
		}
	}
	if env := os.Getenv("CATCLIP_PICKER"); env != "" {
		cfg.Picker = env
	}

	return cfg
}
