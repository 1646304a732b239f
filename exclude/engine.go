// Package exclude decides, for every candidate file path, whether it is
// included or excluded by a list of ignore-style rules. Rules are evaluated
// in order and the first match wins; negation is not supported.
package exclude

import (
	"fmt"
	"strings"

	"github.com/danwakefield/fnmatch"
)

// Decision is the outcome of evaluating one path against a pattern list.
// PatternIndex identifies the matching pattern by its position in the
// compiled list; it is -1 when the path is included. Indexes rather than
// pattern values keep diagnostics stable when two rules share the same text.
type Decision struct {
	Included     bool
	PatternIndex int
}

// Evaluate scans patterns in order and returns the first match. If no
// pattern matches, the path is included. An empty pattern list includes
// everything. Evaluate never fails.
func Evaluate(p Path, patterns []Pattern) Decision {
	for i, pat := range patterns {
		if pat.Matches(p) {
			return Decision{Included: false, PatternIndex: i}
		}
	}
	return Decision{Included: true, PatternIndex: -1}
}

// Matches reports whether a single pattern excludes the given path.
//
// Glob matching is shell-style fnmatch without FNM_PATHNAME, so "*" crosses
// "/" boundaries. That is a deliberate simplification over strict
// gitignore semantics, as is the absence of "!" negation.
func (pat Pattern) Matches(p Path) bool {
	// Wrapping both sides in "/" turns prefix and containment checks into
	// whole-segment checks: "build" can match the "build" component of
	// "src/build/out.js" without also matching "builder".
	wrapped := "/" + p.Rel + "/"
	segment := "/" + pat.Body + "/"

	switch {
	case pat.Anchored && (pat.DirOnly || !pat.HasWildcard):
		// Anchored rules only match from the root, so the segment must sit
		// at the very start of the path.
		return strings.HasPrefix(wrapped, segment)
	case pat.Anchored:
		return fnmatch.Match(pat.Body, p.Rel, 0)
	case pat.DirOnly:
		return p.Rel == pat.Body || strings.HasPrefix(p.Rel, pat.Body+"/")
	case strings.Contains(pat.Body, "/"):
		return fnmatch.Match(pat.Body, p.Rel, 0)
	case !pat.HasWildcard:
		// A bare name excludes it as a basename or as any whole path
		// segment, so "temp" also covers "src/temp/file.txt".
		return fnmatch.Match(pat.Body, p.Base, 0) || strings.Contains(wrapped, segment)
	default:
		return fnmatch.Match(pat.Body, p.Base, 0)
	}
}

// Report partitions candidate paths into the included set and, for
// diagnostics, the excluded paths grouped by the pattern responsible.
type Report struct {
	Patterns []Pattern
	Included []Path
	// Excluded is indexed by pattern position; Excluded[i] holds the paths
	// whose first match was Patterns[i], in evaluation order.
	Excluded [][]Path
}

// Partition evaluates every path against the pattern list, preserving the
// input order of included paths and bucketing exclusions by pattern index.
// Every path lands in exactly one place.
func Partition(paths []Path, patterns []Pattern) Report {
	r := Report{
		Patterns: patterns,
		Excluded: make([][]Path, len(patterns)),
	}
	for _, p := range paths {
		d := Evaluate(p, patterns)
		if d.Included {
			r.Included = append(r.Included, p)
		} else {
			r.Excluded[d.PatternIndex] = append(r.Excluded[d.PatternIndex], p)
		}
	}
	return r
}

// IncludedPaths returns the included relative paths in walk order, ready to
// be newline-joined for an external picker.
func (r Report) IncludedPaths() []string {
	out := make([]string, len(r.Included))
	for i, p := range r.Included {
		out[i] = p.Rel
	}
	return out
}

// Render formats the report as human-readable text for validation use: each
// pattern with the files it excluded, followed by the included files.
func (r Report) Render() string {
	var b strings.Builder
	for i, pat := range r.Patterns {
		files := r.Excluded[i]
		fmt.Fprintf(&b, "pattern %q: %d file(s)\n", pat.Raw, len(files))
		for _, p := range files {
			fmt.Fprintf(&b, "  - %s\n", p.Rel)
		}
	}
	fmt.Fprintf(&b, "included: %d file(s)\n", len(r.Included))
	for _, p := range r.Included {
		fmt.Fprintf(&b, "  + %s\n", p.Rel)
	}
	return b.String()
}
