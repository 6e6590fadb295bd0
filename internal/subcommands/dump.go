package subcommands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alecstrong/conway/internal/git"
	"github.com/alecstrong/conway/internal/git/cmd"
	"github.com/alecstrong/conway/internal/git/config"
)

// Just prints out the output of git log as seen by conway.
func Dump(
	w io.Writer,
	pathspecs []string,
	filters cmd.LogFilters,
	useMailmap bool,
) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error running \"dump\": %w", err)
		}
	}()

	logger().Debug(
		"called Dump()",
		"pathspecs",
		pathspecs,
		"filters",
		filters,
		"useMailmap",
		useMailmap,
	)

	start := time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if useMailmap {
		gitRootPath, err := git.GetRoot(ctx)
		if err != nil {
			return err
		}

		files, err := config.DetectMailmapFiles(ctx, gitRootPath)
		if err != nil {
			return err
		}

		useMailmap = files.HasMailmap()
	}

	subprocess, err := cmd.RunLog(ctx, pathspecs, filters, useMailmap)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)

	for line, err := range subprocess.StdoutLines() {
		if err != nil {
			return err
		}

		fmt.Fprintln(bw, line)
	}

	err = bw.Flush()
	if err != nil {
		return err
	}

	err = subprocess.Wait()
	if err != nil {
		return err
	}

	elapsed := time.Now().Sub(start)
	logger().Debug("finished dump", "duration_ms", elapsed.Milliseconds())

	return nil
}
