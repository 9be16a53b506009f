package input_test

import (
	"io"
	"io/fs"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dennisklein/pipe-while-read/internal/input"
)

func TestOpen(t *testing.T) {
	t.Run("empty path selects stdin", func(t *testing.T) {
		rc, err := input.Open(afero.NewMemMapFs(), "", strings.NewReader("a\nb\n"))
		require.NoError(t, err)

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "a\nb\n", string(data))
		assert.NoError(t, rc.Close())
	})

	t.Run("dash selects stdin", func(t *testing.T) {
		rc, err := input.Open(afero.NewMemMapFs(), input.Stdin, strings.NewReader("x\n"))
		require.NoError(t, err)

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "x\n", string(data))
	})

	t.Run("reads file from filesystem", func(t *testing.T) {
		memFs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(memFs, "/data/lines.txt", []byte("one\ntwo\n"), 0o644))

		rc, err := input.Open(memFs, "/data/lines.txt", strings.NewReader("ignored\n"))
		require.NoError(t, err)

		defer rc.Close() //nolint:errcheck // read-only file

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "one\ntwo\n", string(data))
	})

	t.Run("rejects directory", func(t *testing.T) {
		memFs := afero.NewMemMapFs()
		require.NoError(t, memFs.MkdirAll("/data", 0o755))

		_, err := input.Open(memFs, "/data", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, input.ErrIsDir)
	})

	t.Run("reports missing file", func(t *testing.T) {
		_, err := input.Open(afero.NewMemMapFs(), "/missing.txt", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
}
