/*
* Handles invoking Git as a subprocess.
 */
package cmd

import (
	"context"
	"fmt"
	"slices"
)

const (
	// The leading %n gives every commit block a blank line ahead of the
	// identity line, which is what the record parser keys on.
	logFormat        = "--pretty=%n%ae"
	mailmapLogFormat = "--pretty=%n%aE"
)

// Runs git log with per-file numstat output, skipping merge commits.
func RunLog(
	ctx context.Context,
	pathspecs []string,
	filters LogFilters,
	useMailmap bool,
) (*Subprocess, error) {
	var baseArgs []string

	if useMailmap {
		baseArgs = []string{
			"log",
			"--numstat",
			"--no-merges",
			"--no-show-signature",
			mailmapLogFormat,
		}
	} else {
		baseArgs = []string{
			"log",
			"--numstat",
			"--no-merges",
			"--no-show-signature",
			"--no-mailmap",
			logFormat,
		}
	}

	filterArgs := filters.ToArgs()

	var args []string
	if len(pathspecs) > 0 {
		args = slices.Concat(baseArgs, filterArgs, []string{"--"}, pathspecs)
	} else {
		args = slices.Concat(baseArgs, filterArgs)
	}

	subprocess, err := run(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("failed to run git log: %w", err)
	}

	return subprocess, nil
}

func RunRevParseTopLevel(ctx context.Context) (*Subprocess, error) {
	var args = []string{"rev-parse", "--show-toplevel"}

	subprocess, err := run(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("failed to run git rev-parse: %w", err)
	}

	return subprocess, nil
}

// Runs git config --get with the given args
func RunConfigGet(ctx context.Context, args []string) (*Subprocess, error) {
	var baseArgs = []string{"config", "--get"}

	subprocess, err := run(ctx, slices.Concat(baseArgs, args))
	if err != nil {
		return nil, fmt.Errorf("failed to run git config: %w", err)
	}

	return subprocess, nil
}
