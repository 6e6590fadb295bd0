// Decides which directory scopes a file path from git log falls under.
//
// Matching is plain string prefix matching, the same way git-style pathspecs
// without magic behave for us: "src" matches "src/a.go" but also "srcgen/b.go".
package scope

import (
	"strings"

	"github.com/alecstrong/conway/internal/git"
)

// The empty scope matches every path.
const Root = ""

// Scopes in the order the user gave them. Order matters for FirstMatch.
type Scopes []string

// Splits a comma-separated list of scopes, dropping surrounding whitespace.
//
// An empty string gives no scopes; a lone "." or "/" means the whole
// repository.
func Parse(s string) Scopes {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	scopes := Scopes{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "." || part == "/" {
			part = Root
		}
		scopes = append(scopes, part)
	}

	return scopes
}

func (s Scopes) MatchesAny(path string) bool {
	return MatchesAny(path, s)
}

func (s Scopes) FirstMatch(path string) (string, bool) {
	return FirstMatch(path, s)
}

func (s Scopes) String() string {
	return strings.Join(s, ", ")
}

// True if path starts with any of the scopes.
func MatchesAny(path string, scopes []string) bool {
	_, ok := FirstMatch(path, scopes)
	return ok
}

// Returns the first scope, in the given order, that path starts with.
func FirstMatch(path string, scopes []string) (string, bool) {
	for _, scope := range scopes {
		if strings.HasPrefix(path, scope) {
			return scope, true
		}
	}

	return "", false
}

// Returns the path component directly below scope, e.g. "bar" for
// "foo/bar/baz.txt" under "foo".
//
// Rename annotations are resolved to the destination, so
// "src/{old => new}/File.kt" under "src" gives "new". Whatever is left of a
// brace after that is stripped along with leading slashes.
func NextLevelSegment(path string, scope string) string {
	rest := strings.TrimPrefix(path, scope)
	rest = git.ResolveRename(rest)
	rest = strings.TrimLeft(rest, "/{}")

	segment, _, _ := strings.Cut(rest, "/")
	return segment
}
