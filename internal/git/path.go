package git

import (
	"fmt"
	"regexp"
	"strings"
)

var fileRenameRegexp = regexp.MustCompile(`{(.*) => (.*)}`)

// Splits a path from git log --numstat on "/", while ignoring "/" surrounded
// by "{" and "}".
func splitPath(path string) []string {
	parts := []string{}
	var b strings.Builder
	var inBrackets bool

	for _, c := range path {
		if c == '/' && !inBrackets {
			parts = append(parts, b.String())
			b.Reset()
			continue
		}

		if c == '{' {
			inBrackets = true
		} else if c == '}' {
			inBrackets = false
		}

		b.WriteRune(c)
	}

	if b.Len() > 0 {
		parts = append(parts, b.String())
	}

	return parts
}

// Parse the path given by git log --numstat for a file diff.
//
// Sometimes this looks like foo/{bar => bim}/baz.txt when a file is moved.
// src is the path before the move and dst the path after. Both are the same
// when there is no move.
func ParseRename(path string) (src string, dst string, err error) {
	if !strings.Contains(path, " => ") {
		return path, path, nil
	}

	if !strings.Contains(path, "{") {
		// Simple case
		parts := strings.Split(path, " => ")
		if len(parts) != 2 {
			return "", "", fmt.Errorf("error parsing rename from \"%s\"", path)
		}
		return parts[0], parts[1], nil
	}

	var srcBuilder strings.Builder
	var dstBuilder strings.Builder

	parts := splitPath(path)
	for i, part := range parts {
		last := i == len(parts)-1

		if !strings.Contains(part, "=>") {
			srcBuilder.WriteString(part)
			dstBuilder.WriteString(part)

			if !last {
				srcBuilder.WriteByte('/')
				dstBuilder.WriteByte('/')
			}
			continue
		}

		matches := fileRenameRegexp.FindStringSubmatch(part)
		if matches == nil || len(matches) != 3 {
			return "", "", fmt.Errorf(
				"error parsing rename from \"%s\" in path \"%s\"",
				part,
				path,
			)
		}

		// Text around the braces stays with the segment, as in
		// "{foo => bar}.txt"
		prefix, _, _ := strings.Cut(part, "{")
		_, suffix, _ := strings.Cut(part, "}")

		srcPart := prefix + matches[1] + suffix
		dstPart := prefix + matches[2] + suffix

		srcBuilder.WriteString(srcPart)
		dstBuilder.WriteString(dstPart)

		if !last {
			if srcPart != "" {
				srcBuilder.WriteByte('/')
			}
			if dstPart != "" {
				dstBuilder.WriteByte('/')
			}
		}
	}

	return srcBuilder.String(), dstBuilder.String(), nil
}

// Returns the destination side of a --numstat path, or the path unchanged
// when it holds no rename annotation or the annotation cannot be parsed.
func ResolveRename(path string) string {
	_, dst, err := ParseRename(path)
	if err != nil {
		logger().Debug("could not resolve rename", "path", path, "err", err)
		return path
	}

	return dst
}
