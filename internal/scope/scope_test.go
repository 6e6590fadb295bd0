package scope_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alecstrong/conway/internal/scope"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected scope.Scopes
	}{
		{"", nil},
		{"foo", scope.Scopes{"foo"}},
		{"foo, bar/baz", scope.Scopes{"foo", "bar/baz"}},
		{".", scope.Scopes{""}},
	}

	for _, test := range tests {
		got := scope.Parse(test.input)
		if diff := cmp.Diff(test.expected, got); diff != "" {
			t.Errorf("Parse(%q) is wrong:\n%s", test.input, diff)
		}
	}
}

func TestMatchesAny(t *testing.T) {
	scopes := []string{"foo", "bar/baz"}

	tests := []struct {
		path     string
		expected bool
	}{
		{"foo/bar.txt", true},
		{"bar/baz/a.go", true},
		{"bar/bim.go", false},
		{"baz.txt", false},
		{"foolish.txt", true}, // Not segment aware
	}

	for _, test := range tests {
		if got := scope.MatchesAny(test.path, scopes); got != test.expected {
			t.Errorf(
				"MatchesAny(%q): expected %v but got %v",
				test.path,
				test.expected,
				got,
			)
		}
	}
}

func TestMatchesAnyRoot(t *testing.T) {
	if !scope.MatchesAny("anything/at/all.txt", []string{scope.Root}) {
		t.Error("expected root scope to match every path")
	}

	if scope.MatchesAny("foo.txt", nil) {
		t.Error("expected no scopes to match nothing")
	}
}

func TestFirstMatch(t *testing.T) {
	scopes := scope.Scopes{"src/main", "src", ""}

	tests := []struct {
		path     string
		expected string
	}{
		{"src/main/a.go", "src/main"},
		{"src/test/a.go", "src"},
		{"README.md", ""},
	}

	for _, test := range tests {
		got, ok := scopes.FirstMatch(test.path)
		if !ok {
			t.Fatalf("FirstMatch(%q) found no match", test.path)
		}

		if got != test.expected {
			t.Errorf(
				"FirstMatch(%q): expected %q but got %q",
				test.path,
				test.expected,
				got,
			)
		}
	}

	_, ok := scope.FirstMatch("docs/a.md", []string{"src"})
	if ok {
		t.Error("expected no match for path outside scopes")
	}
}

func TestNextLevelSegment(t *testing.T) {
	tests := []struct {
		path     string
		scope    string
		expected string
	}{
		{"src/{old => new}/File.kt", "src", "new"},
		{"src/foo/bar.go", "src", "foo"},
		{"src/foo/bar.go", "src/", "foo"},
		{"src/main.go", "src", "main.go"},
		{"foo/bar/baz.txt", "", "foo"},
		{"README.md", "", "README.md"},
		{"{src => lib}/a.go", "", "lib"},
		{"src/{a => b/c}/d.go", "src", "b"},
	}

	for _, test := range tests {
		got := scope.NextLevelSegment(test.path, test.scope)
		if got != test.expected {
			t.Errorf(
				"NextLevelSegment(%q, %q): expected %q but got %q",
				test.path,
				test.scope,
				test.expected,
				got,
			)
		}
	}
}
