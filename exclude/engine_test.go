package exclude

import (
	"reflect"
	"strings"
	"testing"
)

func classifyAll(rels []string) []Path {
	paths := make([]Path, len(rels))
	for i, r := range rels {
		paths[i] = Classify(r)
	}
	return paths
}

func TestEvaluateBareName(t *testing.T) {
	// A rule with no anchor, no directory marker, no wildcard and no slash
	// excludes a path when it equals the basename, any whole segment, or a
	// leading segment.
	patterns := Compile([]string{"temp"})

	tests := []struct {
		rel      string
		excluded bool
	}{
		{"temp", true},              // basename
		{"src/temp", true},          // basename deeper
		{"temp/file.txt", true},     // leading segment
		{"src/temp/file.txt", true}, // middle segment
		{"template.txt", false},     // substring only, not a segment
		{"src/mytemp/a.txt", false}, // suffix of a segment
	}

	for _, tt := range tests {
		d := Evaluate(Classify(tt.rel), patterns)
		if d.Included != !tt.excluded {
			t.Errorf("Evaluate(%q) included=%v, want %v", tt.rel, d.Included, !tt.excluded)
		}
	}
}

func TestEvaluateDirectoryOnly(t *testing.T) {
	patterns := Compile([]string{"build/"})

	tests := []struct {
		rel      string
		excluded bool
	}{
		{"build", true},
		{"build/a.txt", true},
		{"build/x/y.txt", true}, // deeper descendant
		{"src/build/a.txt", false},
		{"builder/a.txt", false},
	}

	for _, tt := range tests {
		d := Evaluate(Classify(tt.rel), patterns)
		if d.Included != !tt.excluded {
			t.Errorf("Evaluate(%q) included=%v, want %v", tt.rel, d.Included, !tt.excluded)
		}
	}
}

func TestEvaluateAnchored(t *testing.T) {
	// Anchoring confines matching to the root.
	patterns := Compile([]string{"/build"})

	tests := []struct {
		rel      string
		excluded bool
	}{
		{"build", true},
		{"build/file", true},
		{"src/build/file", false},
		{"buildx/file", false},
	}

	for _, tt := range tests {
		d := Evaluate(Classify(tt.rel), patterns)
		if d.Included != !tt.excluded {
			t.Errorf("Evaluate(%q) included=%v, want %v", tt.rel, d.Included, !tt.excluded)
		}
	}
}

func TestEvaluateAnchoredWildcard(t *testing.T) {
	patterns := Compile([]string{"/src/*.go"})

	// fnmatch without FNM_PATHNAME lets "*" cross "/", so the anchored glob
	// matches the whole relative path.
	tests := []struct {
		rel      string
		excluded bool
	}{
		{"src/main.go", true},
		{"src/sub/deep.go", true}, // "*" crosses "/"
		{"other/main.go", false},
		{"src/main.txt", false},
	}

	for _, tt := range tests {
		d := Evaluate(Classify(tt.rel), patterns)
		if d.Included != !tt.excluded {
			t.Errorf("Evaluate(%q) included=%v, want %v", tt.rel, d.Included, !tt.excluded)
		}
	}
}

func TestEvaluateWildcardBasenameOnly(t *testing.T) {
	// A slash-free wildcard rule matches the basename only.
	patterns := Compile([]string{"*.log"})

	tests := []struct {
		rel      string
		excluded bool
	}{
		{"debug.log", true},
		{"src/debug.log", true},
		{"logfile.txt", false},
	}

	for _, tt := range tests {
		d := Evaluate(Classify(tt.rel), patterns)
		if d.Included != !tt.excluded {
			t.Errorf("Evaluate(%q) included=%v, want %v", tt.rel, d.Included, !tt.excluded)
		}
	}
}

func TestEvaluateFirstMatchWins(t *testing.T) {
	// Negation is unsupported: an earlier "*.log" beats a later "keep.log",
	// and the match is attributed to the first pattern.
	patterns := Compile([]string{"*.log", "keep.log"})

	d := Evaluate(Classify("keep.log"), patterns)
	if d.Included {
		t.Fatal("keep.log should be excluded by the first pattern")
	}
	if d.PatternIndex != 0 {
		t.Errorf("PatternIndex = %d, want 0 (first match wins)", d.PatternIndex)
	}
}

func TestEvaluateEmptyPatterns(t *testing.T) {
	d := Evaluate(Classify("anything/at/all.txt"), nil)
	if !d.Included || d.PatternIndex != -1 {
		t.Errorf("empty pattern list must include everything, got %+v", d)
	}
}

func TestPartitionScenarioA(t *testing.T) {
	patterns := Compile([]string{"node_modules/", "*.pyc", "/dist"})
	paths := classifyAll([]string{
		"node_modules/pkg/index.js",
		"src/app.pyc",
		"dist/out.js",
		"src/dist/out.js",
		"README.md",
	})

	r := Partition(paths, patterns)

	wantIncluded := []string{"src/dist/out.js", "README.md"}
	if got := r.IncludedPaths(); !reflect.DeepEqual(got, wantIncluded) {
		t.Errorf("included = %v, want %v", got, wantIncluded)
	}

	wantBuckets := map[int][]string{
		0: {"node_modules/pkg/index.js"},
		1: {"src/app.pyc"},
		2: {"dist/out.js"},
	}
	for idx, want := range wantBuckets {
		var got []string
		for _, p := range r.Excluded[idx] {
			got = append(got, p.Rel)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("bucket %d = %v, want %v", idx, got, want)
		}
	}
}

func TestPartitionScenarioB(t *testing.T) {
	r := Partition(classifyAll([]string{"a.txt", "b/c.txt"}), nil)

	if got := r.IncludedPaths(); !reflect.DeepEqual(got, []string{"a.txt", "b/c.txt"}) {
		t.Errorf("included = %v, want both paths", got)
	}
	for i, bucket := range r.Excluded {
		if len(bucket) != 0 {
			t.Errorf("bucket %d should be empty, got %v", i, bucket)
		}
	}
}

func TestPartitionScenarioC(t *testing.T) {
	patterns := Compile([]string{"temp"})
	r := Partition(classifyAll([]string{
		"temp",
		"temp/file.txt",
		"src/temp/file.txt",
		"template.txt",
	}), patterns)

	if got := r.IncludedPaths(); !reflect.DeepEqual(got, []string{"template.txt"}) {
		t.Errorf("included = %v, want [template.txt]", got)
	}
	if len(r.Excluded[0]) != 3 {
		t.Errorf("pattern bucket has %d paths, want 3", len(r.Excluded[0]))
	}
}

func TestPartitionCoversEveryPath(t *testing.T) {
	patterns := Compile([]string{"vendor/", "*.min.js", "/out"})
	rels := []string{
		"vendor/lib/a.js", "app.min.js", "out/x", "src/out/x", "main.go",
	}
	r := Partition(classifyAll(rels), patterns)

	total := len(r.Included)
	for _, bucket := range r.Excluded {
		total += len(bucket)
	}
	if total != len(rels) {
		t.Errorf("partition covers %d paths, want %d", total, len(rels))
	}
}

func TestDiagnosticRescanAgreesWithFirstMatch(t *testing.T) {
	// Re-running the single-pattern test pattern-by-pattern must find the
	// same pattern as the in-order scan.
	patterns := Compile([]string{"*.log", "temp", "build/", "/dist", "keep.log"})
	rels := []string{
		"keep.log", "temp/a", "build/b", "dist/c", "src/temp/d", "ok.txt",
	}

	for _, rel := range rels {
		p := Classify(rel)
		d := Evaluate(p, patterns)
		if d.Included {
			continue
		}
		rescan := -1
		for i, pat := range patterns {
			if pat.Matches(p) {
				rescan = i
				break
			}
		}
		if rescan != d.PatternIndex {
			t.Errorf("%q: rescan found pattern %d, scan found %d", rel, rescan, d.PatternIndex)
		}
	}
}

func TestRenderGrouping(t *testing.T) {
	patterns := Compile([]string{"*.log"})
	r := Partition(classifyAll([]string{"a.log", "b.txt"}), patterns)

	out := r.Render()
	for _, want := range []string{`pattern "*.log": 1 file(s)`, "- a.log", "+ b.txt", "included: 1 file(s)"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q in:\n%s", want, out)
		}
	}
}
