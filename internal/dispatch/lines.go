package dispatch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// lineReader yields input lines without their terminator. A line ends at
// "\n"; a "\r" directly before it is dropped as well.
type lineReader struct {
	r *bufio.Reader
	n int
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

// next returns the next line. ok is false once the input is exhausted.
func (lr *lineReader) next() (line string, ok bool, err error) {
	s, err := lr.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, fmt.Errorf("failed to read line %d: %w", lr.n+1, err)
	}

	if s == "" {
		return "", false, nil
	}

	lr.n++

	if strings.HasSuffix(s, "\n") {
		s = strings.TrimSuffix(s, "\n")
		s = strings.TrimSuffix(s, "\r")
	}

	if !utf8.ValidString(s) {
		return "", false, fmt.Errorf("line %d: %w", lr.n, ErrInvalidInput)
	}

	return s, true, nil
}
