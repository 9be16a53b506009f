//nolint:testpackage // internal functions require same package
package dispatch

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, input string) []string {
	t.Helper()

	lr := newLineReader(strings.NewReader(input))

	var lines []string

	for {
		line, ok, err := lr.next()
		require.NoError(t, err)

		if !ok {
			return lines
		}

		lines = append(lines, line)
	}
}

func TestLineReader(t *testing.T) {
	//nolint:govet // fieldalignment: test readability over optimization
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty input", input: "", want: nil},
		{name: "terminated lines", input: "foo\nbar\n", want: []string{"foo", "bar"}},
		{name: "unterminated last line", input: "foo\nbar", want: []string{"foo", "bar"}},
		{name: "crlf terminators", input: "foo\r\nbar\r\n", want: []string{"foo", "bar"}},
		{name: "lone carriage return kept", input: "foo\r", want: []string{"foo\r"}},
		{name: "empty lines", input: "\n\n", want: []string{"", ""}},
		{name: "whitespace untouched", input: "  a b  \n", want: []string{"  a b  "}},
		{name: "long line", input: strings.Repeat("x", 200000) + "\n", want: []string{strings.Repeat("x", 200000)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, readAll(t, tt.input))
		})
	}
}

func TestLineReaderInvalidUTF8(t *testing.T) {
	lr := newLineReader(strings.NewReader("ok\n\xff\xfe\nafter\n"))

	line, ok, err := lr.next()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ok", line)

	_, ok, err = lr.next()
	require.Error(t, err)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "line 2")
}

func TestLineReaderReadError(t *testing.T) {
	readErr := errors.New("device gone")
	lr := newLineReader(iotest.ErrReader(readErr))

	_, ok, err := lr.next()
	require.Error(t, err)
	assert.False(t, ok)
	assert.ErrorIs(t, err, readErr)
}
