package git

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"
	"unicode"
)

// Returned when git log printed nothing at all, as opposed to printing
// commits none of which had usable numstat lines.
var ErrEmptyInput = errors.New("no commits found")

type parseState int

const (
	expectAuthorLine parseState = iota
	expectBlankSeparator
	readingStatLines
)

func (s parseState) String() string {
	switch s {
	case expectAuthorLine:
		return "expectAuthorLine"
	case expectBlankSeparator:
		return "expectBlankSeparator"
	case readingStatLines:
		return "readingStatLines"
	default:
		return "unknown"
	}
}

// Everything before the first "@" of the identity line, or the whole line if
// there isn't one.
func AuthorKey(identity string) string {
	key, _, _ := strings.Cut(identity, "@")
	return key
}

func parseLinesChanged(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}

	if n < 0 {
		return 0, fmt.Errorf("negative line count %d", n)
	}

	return n, nil
}

// Parses a single --numstat line of the form "<added> <removed> <path>".
//
// The counts are the first two whitespace-delimited fields. The path is the
// rest of the line so that paths containing spaces, including rename
// annotations like "a/{b => c}/d", come through whole.
func parseStatLine(line string) (added int64, removed int64, path string, err error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return 0, 0, "", fmt.Errorf(
			"expected 3 fields but found %d",
			len(fields),
		)
	}

	added, err = parseLinesChanged(fields[0])
	if err != nil {
		return 0, 0, "", fmt.Errorf("bad added count: %w", err)
	}

	removed, err = parseLinesChanged(fields[1])
	if err != nil {
		return 0, 0, "", fmt.Errorf("bad removed count: %w", err)
	}

	rest := strings.TrimSpace(line)
	for range 2 {
		i := strings.IndexFunc(rest, unicode.IsSpace)
		rest = strings.TrimLeftFunc(rest[i:], unicode.IsSpace)
	}

	return added, removed, strings.TrimRightFunc(rest, unicode.IsSpace), nil
}

// Turns an iterator over lines from git log into an iterator of change
// events.
//
// The input is a series of commit blocks: an identity line, a blank
// separator, then zero or more numstat lines ending in a blank line or the end
// of the stream. The very first line of the stream is a blank line and is
// skipped. Numstat lines that can't be parsed (including binary files, which
// git reports as "-\t-\tpath") are skipped.
//
// If the input has no lines at all, ErrEmptyInput is yielded. Errors from the
// line iterator end the sequence.
func ParseChanges(lines iter.Seq2[string, error]) iter.Seq2[ChangeEvent, error] {
	return func(yield func(ChangeEvent, error) bool) {
		state := expectAuthorLine
		identity := ""
		authorKey := ""
		lineNo := 0
		skipped := 0

		for line, err := range lines {
			if err != nil {
				yield(
					ChangeEvent{},
					fmt.Errorf("error reading git log line %d: %w", lineNo+1, err),
				)
				return
			}

			lineNo += 1
			if lineNo == 1 {
				continue // Leading blank separator
			}

			switch state {
			case expectAuthorLine:
				if len(line) == 0 {
					continue
				}

				identity = line
				authorKey = AuthorKey(line)
				state = expectBlankSeparator
			case expectBlankSeparator:
				state = readingStatLines
			case readingStatLines:
				if len(line) == 0 {
					state = expectAuthorLine
					continue
				}

				added, removed, path, err := parseStatLine(line)
				if err != nil {
					skipped += 1
					logger().Debug(
						"skipping malformed numstat line",
						"line",
						line,
						"err",
						err,
					)
					continue
				}

				event := ChangeEvent{
					AuthorKey:    authorKey,
					Identity:     identity,
					LinesAdded:   added,
					LinesRemoved: removed,
					Path:         path,
				}
				if !yield(event, nil) {
					return
				}
			}
		}

		if lineNo == 0 {
			yield(ChangeEvent{}, ErrEmptyInput)
			return
		}

		logger().Debug(
			"finished parsing git log",
			"lines",
			lineNo,
			"skipped",
			skipped,
			"state",
			state,
		)
	}
}
