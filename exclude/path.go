package exclude

import "strings"

// Path is one candidate file discovered during enumeration, normalized to a
// slash-separated path relative to the scan root.
type Path struct {
	Rel  string
	Base string
}

// Classify normalizes a relative path and splits out its basename.
// A leading "./" is stripped so enumeration output takes a canonical form.
func Classify(rel string) Path {
	rel = strings.TrimPrefix(rel, "./")

	base := rel
	if idx := strings.LastIndex(rel, "/"); idx >= 0 {
		base = rel[idx+1:]
	}
	return Path{Rel: rel, Base: base}
}
