package altsplice

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, SafeModeSafe, cfg.SafeMode)
	assert.Equal(t, "html5", cfg.Backend)
	assert.True(t, cfg.Sourcemap)
	assert.NotNil(t, cfg.Attributes)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "primary.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
attributes:
  product: widget
  version: "2.1"
safe_mode: server
backend: markdown
doctype: book
sourcemap: false
base_dir: docs/examples
out_dir: build
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "widget", cfg.Attributes["product"])
	assert.Equal(t, "2.1", cfg.Attributes["version"])
	assert.Equal(t, SafeModeServer, cfg.SafeMode)
	assert.Equal(t, "markdown", cfg.Backend)
	assert.Equal(t, "book", cfg.DocType)
	assert.False(t, cfg.Sourcemap)
	assert.Equal(t, "docs/examples", cfg.BaseDir)
	assert.Equal(t, "build", cfg.OutDir)
}

func TestLoadConfig_MissingKeysKeepDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "primary.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: markdown\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.Backend)
	assert.Equal(t, SafeModeSafe, cfg.SafeMode)
	assert.True(t, cfg.Sourcemap)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("bad safe mode", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "primary.yaml")
		require.NoError(t, os.WriteFile(path, []byte("safe_mode: paranoid\n"), 0o644))
		_, err := LoadConfig(path)
		assert.ErrorContains(t, err, "unknown safe mode")
	})

	t.Run("bad yaml", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "primary.yaml")
		require.NoError(t, os.WriteFile(path, []byte("attributes: [\n"), 0o644))
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestParseSafeMode(t *testing.T) {
	cases := []struct {
		in   string
		want SafeMode
	}{
		{"", SafeModeUnsafe},
		{"unsafe", SafeModeUnsafe},
		{"safe", SafeModeSafe},
		{"server", SafeModeServer},
		{"secure", SafeModeSecure},
	}
	for _, tc := range cases {
		got, err := ParseSafeMode(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}

	_, err := ParseSafeMode("lax")
	assert.Error(t, err)
}

func TestSafeModeString(t *testing.T) {
	assert.Equal(t, "unsafe", SafeModeUnsafe.String())
	assert.Equal(t, "safe", SafeModeSafe.String())
	assert.Equal(t, "server", SafeModeServer.String())
	assert.Equal(t, "secure", SafeModeSecure.String())
	assert.Equal(t, "unknown", SafeMode(42).String())
}
