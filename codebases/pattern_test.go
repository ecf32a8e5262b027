package codebases

import "testing"

func TestMatchPattern(t *testing.T) {
	cases := []struct {
		pattern string
		name    string
		match   bool
	}{
		{"**/*.py", "a.py", true},
		{"**/*.py", "a/b.py", true},
		{"**/*.py", "a/b/c.py", true},
		{"**/*.py", "a.txt", false},
		{"**/*.py", "a/b.pyc", false},
		{"*.py", "a.py", true},
		{"*.py", "a/b.py", false},
		{"src/**/*.go", "src/a/b.go", true},
		{"src/**/*.go", "lib/a.go", false},
		{"src/**/*.go", "src/a.go", true},
	}
	for _, c := range cases {
		if got := MatchPattern(c.pattern, c.name); got != c.match {
			t.Fatalf("%q vs %q: got %v", c.pattern, c.name, got)
		}
	}
}

func TestLanguageIdentifier(t *testing.T) {
	if LanguageIdentifier("a/b.py") != "python" {
		t.Fatal()
	}
	if LanguageIdentifier("x.rs") != "rs" {
		t.Fatal()
	}
}

func TestIsSourceFile(t *testing.T) {
	if !IsSourceFile("a.py", "print(1)\n") {
		t.Fatal()
	}
	if IsSourceFile("a.md", "# doc\n") {
		t.Fatal()
	}
	if IsSourceFile("a.py", string([]byte{0x00, 0x01, 0x02, 0xff})) {
		t.Fatal("binary contents should not be source")
	}
}
