package tally

import (
	"github.com/alecstrong/conway/internal/git"
	"github.com/alecstrong/conway/internal/scope"
)

// Key functions for a folder report: every event counts toward its author's
// global total, and toward the scoped total when its path is in any of the
// scopes.
func FolderKeys(scopes scope.Scopes) (global KeyFunc, scoped KeyFunc) {
	global = func(e git.ChangeEvent) (string, bool) {
		return e.AuthorKey, true
	}

	scoped = func(e git.ChangeEvent) (string, bool) {
		if !scopes.MatchesAny(e.Path) {
			return "", false
		}

		return e.AuthorKey, true
	}

	return global, scoped
}

// Key functions for an author report: events are keyed by the directory
// directly under the first scope they match. Every author counts toward the
// global total; only the given author counts toward the scoped total.
//
// The author matches on either the author key or the full identity line.
// With no scopes, the repository root is used.
func AuthorKeys(
	author string,
	scopes scope.Scopes,
) (global KeyFunc, scoped KeyFunc) {
	if len(scopes) == 0 {
		scopes = scope.Scopes{scope.Root}
	}

	global = func(e git.ChangeEvent) (string, bool) {
		matched, ok := scopes.FirstMatch(e.Path)
		if !ok {
			return "", false
		}

		return scope.NextLevelSegment(e.Path, matched), true
	}

	scoped = func(e git.ChangeEvent) (string, bool) {
		if e.AuthorKey != author && e.Identity != author {
			return "", false
		}

		return global(e)
	}

	return global, scoped
}
