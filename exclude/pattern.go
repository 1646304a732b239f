package exclude

import "strings"

// Pattern is one compiled ignore rule.
type Pattern struct {
	// Raw is the original rule text after trimming, kept for diagnostics.
	Raw string
	// Anchored is true if the rule began with "/", restricting it to the scan root.
	Anchored bool
	// DirOnly is true if the rule ended with "/", matching a directory and
	// everything beneath it.
	DirOnly bool
	// HasWildcard is true if Body contains any of "*", "?" or "[".
	HasWildcard bool
	// Body is the rule text with the anchor and directory markers stripped.
	// Never empty.
	Body string
}

// Compile parses raw ignore-rule lines into patterns, preserving line order.
// Blank lines and "#" comments are dropped. Malformed rules are never
// rejected; they become literal-match patterns.
func Compile(lines []string) []Pattern {
	var patterns []Pattern
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		p := Pattern{Raw: line}

		body := line
		if strings.HasPrefix(body, "/") {
			p.Anchored = true
			body = body[1:]
		}
		if strings.HasSuffix(body, "/") {
			p.DirOnly = true
			body = body[:len(body)-1]
		}
		if body == "" {
			// A bare "/" or "//" rule has nothing left to match.
			continue
		}

		p.Body = body
		p.HasWildcard = strings.ContainsAny(body, "*?[")
		patterns = append(patterns, p)
	}
	return patterns
}
