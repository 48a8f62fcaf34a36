package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

func fmtFiles(targets []string, write, check bool) error {
	files, err := collectLoxFiles(targets)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return nil
	}

	changedCount := 0
	for _, path := range files {
		originalBytes, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		original := string(originalBytes)
		formatted := formatLoxSource(original)
		changed := formatted != original
		if changed {
			changedCount++
		}

		switch {
		case write && changed:
			info, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("stat %s: %w", path, err)
			}
			if err := os.WriteFile(path, []byte(formatted), info.Mode().Perm()); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
		case !write && !check:
			fmt.Print(formatted)
		}
	}

	if check && changedCount > 0 {
		return fmt.Errorf("%d file(s) need formatting", changedCount)
	}
	return nil
}

func collectLoxFiles(targets []string) ([]string, error) {
	seen := make(map[string]struct{})
	files := make([]string, 0)
	addFile := func(path string) {
		if filepath.Ext(path) != ".lox" {
			return
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return
		}
		if _, ok := seen[abs]; ok {
			return
		}
		seen[abs] = struct{}{}
		files = append(files, abs)
	}

	for _, target := range targets {
		info, err := os.Stat(target)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", target, err)
		}
		if !info.IsDir() {
			addFile(target)
			continue
		}
		err = filepath.WalkDir(target, func(path string, entry fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if entry.IsDir() {
				return nil
			}
			addFile(path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", target, err)
		}
	}

	sort.Strings(files)
	return files, nil
}

// formatLoxSource normalizes line endings, strips trailing whitespace, and
// reindents every line to two spaces per brace depth. Braces inside strings
// and comments do not count; lines inside a block comment keep their
// original indentation.
func formatLoxSource(source string) string {
	normalized := strings.ReplaceAll(source, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	lines := strings.Split(normalized, "\n")
	out := make([]string, 0, len(lines))
	depth := 0
	inBlockComment := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			out = append(out, "")
			continue
		}

		if inBlockComment {
			out = append(out, strings.TrimRight(line, " \t"))
			var delta int
			inBlockComment = scanLineBraces(trimmed, true, &delta)
			depth += delta
			if depth < 0 {
				depth = 0
			}
			continue
		}

		indent := depth
		if strings.HasPrefix(trimmed, "}") && indent > 0 {
			indent--
		}
		out = append(out, strings.Repeat("  ", indent)+trimmed)

		var delta int
		inBlockComment = scanLineBraces(trimmed, false, &delta)
		depth += delta
		if depth < 0 {
			depth = 0
		}
	}

	joined := strings.Join(out, "\n")
	joined = strings.TrimRight(joined, "\n")
	return joined + "\n"
}

// scanLineBraces accumulates the brace delta of one line into delta,
// skipping string literals and comments, and reports whether the line ends
// inside a block comment.
func scanLineBraces(line string, inBlockComment bool, delta *int) bool {
	inString := false
	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case inBlockComment:
			if ch == '*' && i+1 < len(line) && line[i+1] == '/' {
				inBlockComment = false
				i++
			}
		case inString:
			if ch == '"' {
				inString = false
			}
		case ch == '"':
			inString = true
		case ch == '/' && i+1 < len(line) && line[i+1] == '/':
			return false
		case ch == '/' && i+1 < len(line) && line[i+1] == '*':
			inBlockComment = true
			i++
		case ch == '{':
			*delta++
		case ch == '}':
			*delta--
		}
	}
	return inBlockComment
}
