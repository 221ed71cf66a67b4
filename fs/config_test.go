package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/siteqa"
	"github.com/fwojciec/siteqa/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("reads port from file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.txt")
		require.NoError(t, os.WriteFile(path, []byte("# service\nPORT=9090\n"), 0o644))

		cfg, err := fs.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Port)
	})

	t.Run("missing file is not found", func(t *testing.T) {
		t.Parallel()

		_, err := fs.LoadConfig(filepath.Join(t.TempDir(), "missing.txt"))

		require.Error(t, err)
		assert.Equal(t, siteqa.ENOTFOUND, siteqa.ErrorCode(err))
	})
}
