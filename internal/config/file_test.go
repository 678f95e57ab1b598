package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	t.Run("empty document keeps defaults", func(t *testing.T) {
		cfg, err := ParseConfig([]byte(""), DefaultInputFile, DefaultScanSettings())
		require.NoError(t, err)
		assert.Equal(t, DefaultInputFile, cfg.File)
		assert.Equal(t, DefaultMaxIndent, cfg.MaxIndent)
		assert.Equal(t, DefaultPlaceholder, cfg.Placeholder)
		assert.Equal(t, DefaultScanSettings().Markers, cfg.Markers)
	})

	t.Run("partial overrides", func(t *testing.T) {
		doc := `
file: docs/page.html
max_indent: 8
markers:
  closing: "</section>"
`
		cfg, err := ParseConfig([]byte(doc), DefaultInputFile, DefaultScanSettings())
		require.NoError(t, err)
		assert.Equal(t, "docs/page.html", cfg.File)
		assert.Equal(t, 8, cfg.MaxIndent)
		assert.Equal(t, DefaultPlaceholder, cfg.Placeholder)
		assert.Equal(t, "</section>", cfg.Markers.Closing)
		assert.Equal(t, `class="collapsible-section"`, cfg.Markers.Wrapper)
	})

	t.Run("zero indent is allowed", func(t *testing.T) {
		cfg, err := ParseConfig([]byte("max_indent: 0\n"), DefaultInputFile, DefaultScanSettings())
		require.NoError(t, err)
		assert.Equal(t, 0, cfg.MaxIndent)
	})

	invalid := map[string]string{
		"unknown key":     "colour: blue\n",
		"negative indent": "max_indent: -1\n",
		"wrong type":      "max_indent: deep\n",
		"empty marker":    "markers:\n  title: \"\"\n",
		"unknown marker":  "markers:\n  footer: x\n",
		"malformed yaml":  "file: [unterminated\n",
	}
	for name, doc := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := ParseConfig([]byte(doc), DefaultInputFile, DefaultScanSettings())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestOptionsInitLoadsConfigFile(t *testing.T) {
	root := t.TempDir()
	doc := "file: page.html\nplaceholder: \"(untitled)\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, DefaultConfigName), []byte(doc), 0o600))

	opts := New()
	require.NoError(t, opts.Init(root, "", false, false, ""))
	defer opts.Close()

	assert.Equal(t, "page.html", opts.InputFile)
	assert.Equal(t, "(untitled)", opts.Scan.Placeholder)
	assert.Equal(t, DefaultMaxIndent, opts.Scan.MaxIndent)
	assert.Equal(t, filepath.Join(opts.RootDir, DefaultConfigName), opts.ConfigFile)
	SetCurrent(nil)
}

func TestOptionsInitConfigErrors(t *testing.T) {
	root := t.TempDir()

	opts := New()
	err := opts.Init(root, "missing.yaml", false, false, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(filepath.Join(root, "bad.yaml"), []byte("max_indent: -3\n"), 0o600))
	opts = New()
	err = opts.Init(root, "bad.yaml", false, false, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "bad.yaml")
}
