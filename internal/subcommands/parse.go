package subcommands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/alecstrong/conway/internal/git"
	"github.com/alecstrong/conway/internal/git/cmd"
)

// Just prints out a simple representation of the change events parsed from
// `git log` for debugging.
func Parse(
	w io.Writer,
	pathspecs []string,
	filters cmd.LogFilters,
	useMailmap bool,
) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error running \"parse\": %w", err)
		}
	}()

	logger().Debug(
		"called Parse()",
		"pathspecs",
		pathspecs,
		"filters",
		filters,
		"useMailmap",
		useMailmap,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, closer, err := git.Changes(ctx, pathspecs, filters, useMailmap)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)

	for change, err := range changes {
		if errors.Is(err, git.ErrEmptyInput) {
			break
		}
		if err != nil {
			return fmt.Errorf("error iterating changes: %w", err)
		}

		fmt.Fprintf(bw, "%s\n", change)
	}

	err = bw.Flush()
	if err != nil {
		return err
	}

	return closer()
}
