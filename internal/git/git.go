/*
* Wraps access to data needed from Git.
*
* We invoke Git directly as a subprocess and parse the output rather than using
* git2go/libgit2.
 */
package git

import (
	"context"
	"fmt"
	"iter"
	"log/slog"

	"github.com/alecstrong/conway/internal/git/cmd"
	"github.com/alecstrong/conway/internal/git/config"
)

// One file touched by one commit by one author.
type ChangeEvent struct {
	AuthorKey    string // Identity up to the first "@"
	Identity     string // Identity line exactly as git printed it
	LinesAdded   int64
	LinesRemoved int64
	Path         string // As printed by --numstat; may hold a rename annotation
}

func (e ChangeEvent) String() string {
	return fmt.Sprintf(
		"{ author:%s added:%d removed:%d path:\"%s\" }",
		e.AuthorKey,
		e.LinesAdded,
		e.LinesRemoved,
		e.Path,
	)
}

// Returns an iterator over change events from git log, one per file per
// non-merge commit.
//
// Also returns a closer() function that waits on the git subprocess. It must
// be called after iteration is finished.
func Changes(
	ctx context.Context,
	pathspecs []string,
	filters cmd.LogFilters,
	useMailmap bool,
) (iter.Seq2[ChangeEvent, error], func() error, error) {
	if useMailmap {
		root, err := GetRoot(ctx)
		if err != nil {
			return nil, nil, err
		}

		files, err := config.DetectMailmapFiles(ctx, root)
		if err != nil {
			return nil, nil, err
		}

		useMailmap = files.HasMailmap()
	}

	subprocess, err := cmd.RunLog(ctx, pathspecs, filters, useMailmap)
	if err != nil {
		return nil, nil, err
	}

	changes := ParseChanges(subprocess.StdoutLines())
	closer := func() error {
		return subprocess.Wait()
	}

	return changes, closer, nil
}

// Returns the absolute path of the top level of the working tree.
func GetRoot(ctx context.Context) (_ string, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("failed to get Git root directory: %w", err)
		}
	}()

	subprocess, err := cmd.RunRevParseTopLevel(ctx)
	if err != nil {
		return "", err
	}

	root, err := subprocess.StdoutText()
	if err != nil {
		return "", err
	}

	err = subprocess.Wait()
	if err != nil {
		return "", err
	}

	return root, nil
}

var pkgLogger *slog.Logger

func logger() *slog.Logger {
	if pkgLogger == nil {
		pkgLogger = slog.Default().With("package", "git")
	}

	return pkgLogger
}
