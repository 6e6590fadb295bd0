package subcommands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alecstrong/conway/internal/git"
	"github.com/alecstrong/conway/internal/git/cmd"
	"github.com/alecstrong/conway/internal/metrics"
	"github.com/alecstrong/conway/internal/report"
	"github.com/alecstrong/conway/internal/scope"
	"github.com/alecstrong/conway/internal/tally"
)

// Options shared by the folder and author reports.
type ReportOpts struct {
	Since        string
	Until        string
	MinActivity  int64           // Folder reports only
	DisplayFloor decimal.Decimal // Smallest percentage reported
	UseMailmap   bool
	Stdout       io.Writer
	Stderr       io.Writer
}

// Prints how much of each author's code is in the given folders and how much
// of the folders' code is by each author.
func Folders(folders scope.Scopes, opts ReportOpts) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error running \"folders\": %w", err)
		}
	}()

	logger().Debug(
		"called Folders()",
		"folders",
		folders,
		"since",
		opts.Since,
		"until",
		opts.Until,
		"minActivity",
		opts.MinActivity,
		"displayFloor",
		opts.DisplayFloor,
	)

	if len(folders) == 0 {
		return errors.New("at least one folder is required")
	}

	global, scoped := tally.FolderKeys(folders)
	tallies, found, err := tallyLog(opts, global, scoped)
	if err != nil {
		return err
	}

	if !found {
		fmt.Fprintln(opts.Stderr, report.NoCommitsMessage)
		return nil
	}

	r := metrics.ByFolders(tallies, opts.MinActivity, opts.DisplayFloor)
	return report.WriteFolders(opts.Stdout, folders, r)
}

// Prints which directories under the given folders an author's code is in,
// and how much of each directory is theirs.
//
// With no folders, the directories at the top level of the repository are
// used.
func Author(author string, folders scope.Scopes, opts ReportOpts) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error running \"author\": %w", err)
		}
	}()

	logger().Debug(
		"called Author()",
		"author",
		author,
		"folders",
		folders,
		"since",
		opts.Since,
		"until",
		opts.Until,
		"displayFloor",
		opts.DisplayFloor,
	)

	if author == "" {
		return errors.New("author must not be empty")
	}

	err = report.WriteAuthorHeader(opts.Stdout, author, opts.DisplayFloor)
	if err != nil {
		return err
	}

	global, scoped := tally.AuthorKeys(author, folders)
	tallies, found, err := tallyLog(opts, global, scoped)
	if err != nil {
		return err
	}

	if !found {
		fmt.Fprintln(opts.Stderr, report.NoCommitsMessage)
		return nil
	}

	contributions := metrics.ByAuthor(tallies, opts.DisplayFloor)
	return report.WriteAuthor(opts.Stdout, author, contributions)
}

// Runs git log and tallies its output in one pass. Returns found = false if
// git log printed nothing.
func tallyLog(
	opts ReportOpts,
	global tally.KeyFunc,
	scoped tally.KeyFunc,
) (_ tally.Tallies, found bool, err error) {
	start := time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	filters := cmd.LogFilters{
		Since: opts.Since,
		Until: opts.Until,
	}
	changes, closer, err := git.Changes(ctx, nil, filters, opts.UseMailmap)
	if err != nil {
		return tally.Tallies{}, false, err
	}

	tallies, tallyErr := tally.TallyChanges(changes, global, scoped)
	empty := errors.Is(tallyErr, git.ErrEmptyInput)
	if tallyErr != nil && !empty {
		return tallies, false, tallyErr
	}

	// A failed git run also prints nothing, so check its exit status before
	// reporting that there were no commits.
	err = closer()
	if err != nil {
		return tallies, false, err
	}

	elapsed := time.Now().Sub(start)
	logger().Debug("tallied git log", "duration_ms", elapsed.Milliseconds())

	return tallies, !empty, nil
}
