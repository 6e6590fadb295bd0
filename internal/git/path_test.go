package git_test

import (
	"testing"

	"github.com/alecstrong/conway/internal/git"
)

func TestParseRename(t *testing.T) {
	tests := []struct {
		path string
		src  string
		dst  string
	}{
		{"foo/bar.txt", "foo/bar.txt", "foo/bar.txt"},
		{"old.txt => new.txt", "old.txt", "new.txt"},
		{"src/{old => new}/File.kt", "src/old/File.kt", "src/new/File.kt"},
		{"{src => lib}/a.go", "src/a.go", "lib/a.go"},
		{"a/{ => b}/c.txt", "a/c.txt", "a/b/c.txt"},
		{"a/{b => }/c.txt", "a/b/c.txt", "a/c.txt"},
		{"a/{foo => bar}.txt", "a/foo.txt", "a/bar.txt"},
		{
			"rename-across-deep-dirs/{foo/bar => zim/zam}/hello.txt",
			"rename-across-deep-dirs/foo/bar/hello.txt",
			"rename-across-deep-dirs/zim/zam/hello.txt",
		},
	}

	for _, test := range tests {
		t.Run(test.path, func(t *testing.T) {
			src, dst, err := git.ParseRename(test.path)
			if err != nil {
				t.Fatalf("ParseRename() returned error: %v", err)
			}

			if src != test.src {
				t.Errorf("expected src %q but got %q", test.src, src)
			}

			if dst != test.dst {
				t.Errorf("expected dst %q but got %q", test.dst, dst)
			}
		})
	}
}

func TestResolveRenameFallsBack(t *testing.T) {
	path := "a/{b => c/d.txt"
	if got := git.ResolveRename(path); got != path {
		t.Errorf("expected unparsable path to come back unchanged, got %q", got)
	}
}
