// Package input resolves where the dispatcher reads its lines from.
package input

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// ErrIsDir is returned when the input path names a directory.
var ErrIsDir = errors.New("input is a directory")

// Open returns the line source for path. An empty path or Stdin selects
// stdin, which is returned with a no-op Close. Any other path is opened on
// fs, defaulting to the OS filesystem when fs is nil.
func Open(fs afero.Fs, path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" || path == Stdin {
		return io.NopCloser(stdin), nil
	}

	if fs == nil {
		fs = afero.NewOsFs()
	}

	isDir, err := afero.IsDir(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}

	if isDir {
		return nil, fmt.Errorf("%w: %s", ErrIsDir, path)
	}

	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}

	return f, nil
}
