package filesystem

import "unicode/utf8"

// sniffLen is how many leading bytes are inspected when deciding whether a
// file is text. Matches the window git uses for its binary heuristic.
const sniffLen = 8000

// IsProbablyText reports whether data looks like text rather than a binary
// blob. A NUL byte in the leading window means binary; otherwise the window
// must be mostly valid UTF-8.
func IsProbablyText(data []byte) bool {
	if len(data) == 0 {
		return true
	}
	if len(data) > sniffLen {
		data = data[:sniffLen]
	}

	invalid := 0
	for i := 0; i < len(data); {
		if data[i] == 0 {
			return false
		}
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			invalid++
		}
		i += size
	}

	// A truncated final rune can produce a handful of invalid bytes in an
	// otherwise clean file; only give up when they pile up.
	return invalid*32 < len(data)
}
