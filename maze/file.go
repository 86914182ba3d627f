package maze

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadFile loads a maze from a plain-text file: one grid row per line,
// trailing newlines ignored, both LF and CRLF endings accepted.
//
// Checks run in order:
//  1. the file must exist (ErrFileNotFound);
//  2. the extension must be ".txt" (ErrBadExtension);
//  3. the content must form a non-empty rectangular grid
//     (ErrEmptyMaze, ErrNonRectangular via New).
func ReadFile(path string) (*Maze, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("maze: stat %s: %w", path, err)
	}

	if filepath.Ext(path) != ".txt" {
		return nil, fmt.Errorf("%w: %s", ErrBadExtension, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("maze: read %s: %w", path, err)
	}

	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	content = strings.TrimRight(content, "\n")
	if content == "" {
		return nil, fmt.Errorf("%w: %s", ErrEmptyMaze, path)
	}

	return New(strings.Split(content, "\n"))
}
