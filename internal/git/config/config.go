/*
* Handles reading Git configuration.
 */
package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecstrong/conway/internal/git/cmd"
)

func repoMailmapPath(gitRootPath string) string {
	path := filepath.Join(gitRootPath, ".mailmap")
	return path
}

// Looks up a file pointed to by the mailmap.file setting in the git config.
func globalMailmapPath(ctx context.Context) (string, error) {
	subprocess, err := cmd.RunConfigGet(
		ctx,
		[]string{"--type=path", "mailmap.file"},
	)
	if err != nil {
		return "", err
	}

	p, err := subprocess.StdoutText()
	if err != nil {
		return "", err
	}

	err = subprocess.Wait()
	if err != nil {
		var subprocessErr cmd.SubprocessErr
		if errors.As(err, &subprocessErr) {
			// git config exits 1 when the key is unset
			logger().Debug(
				"failed to get mailmap path from config or value not present",
				"exitcode",
				subprocessErr.ExitCode,
			)
			p = ""
		} else {
			return "", err
		}
	}

	return p, nil
}

// Checks to see whether mailmap files exist on disk or not
func DetectMailmapFiles(
	ctx context.Context,
	gitRootPath string,
) (_ MailmapFiles, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf(
				"error while checking for mailmap files: %w",
				err,
			)
		}
	}()

	var files MailmapFiles

	// Repo-local mailmap
	mailmapPath := repoMailmapPath(gitRootPath)
	_, err = os.Stat(mailmapPath)
	if err == nil {
		files.RepoMailmapPath = mailmapPath
	} else if !errors.Is(err, os.ErrNotExist) {
		return files, err
	}

	// Git config mailmap
	mailmapPath, err = globalMailmapPath(ctx)
	if err != nil {
		return files, err
	}

	if len(mailmapPath) > 0 {
		_, err = os.Stat(mailmapPath)
		if err == nil {
			files.GlobalMailmapPath = mailmapPath
		} else if !errors.Is(err, os.ErrNotExist) {
			return files, err
		}
	}

	logger().Debug(
		"detected mailmap files",
		"repo",
		files.RepoMailmapPath,
		"global",
		files.GlobalMailmapPath,
	)

	return files, nil
}

var pkgLogger *slog.Logger

func logger() *slog.Logger {
	if pkgLogger == nil {
		pkgLogger = slog.Default().With("package", "git.config")
	}

	return pkgLogger
}
