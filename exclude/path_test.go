package exclude

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		rel      string
		wantRel  string
		wantBase string
	}{
		{"a.txt", "a.txt", "a.txt"},
		{"src/a.txt", "src/a.txt", "a.txt"},
		{"./src/a.txt", "src/a.txt", "a.txt"},
		{"./a.txt", "a.txt", "a.txt"},
		{"a/b/c/d.go", "a/b/c/d.go", "d.go"},
		{"noext", "noext", "noext"},
	}

	for _, tt := range tests {
		got := Classify(tt.rel)
		if got.Rel != tt.wantRel || got.Base != tt.wantBase {
			t.Errorf("Classify(%q) = {%q, %q}, want {%q, %q}",
				tt.rel, got.Rel, got.Base, tt.wantRel, tt.wantBase)
		}
	}
}
