package relpack

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(t *testing.T) *Config {
	t.Helper()
	repo := filepath.Join(t.TempDir(), "repo")
	files := map[string]string{
		"Src/LayerProcGen.cs":      "class LayerProcGen {}",
		"Src/LayerProcGen.cs.meta": "guid: aaaa",
		"CHANGELOG.md":             "## v0.4.0\n",
		"LICENSE.md":               "MPL-2.0",
		"Third Party Notices.md":   "notices",
		"Documentation/README.md":  "# Docs\n(./Usage.md)\n",
	}
	for rel, content := range files {
		p := filepath.Join(repo, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}

	cfg := DefaultConfig()
	cfg.RepoRoot = repo
	return cfg
}

func TestPackager_Targets(t *testing.T) {
	p := NewPackager(newTestConfig(t))
	assert.Equal(t, []string{"godot-addon", "godot-project", "upm"}, p.Targets())
}

func TestPackager_BuildPackHash(t *testing.T) {
	cfg := newTestConfig(t)
	p := NewPackager(cfg)
	ctx := context.Background()

	res, err := p.Build(ctx, "godot-addon")
	require.NoError(t, err)
	assert.Equal(t, "0.4.0", res.Version.String())
	assert.FileExists(t, filepath.Join(res.OutputRoot, "plugin.cfg"))
	assert.NoFileExists(t, filepath.Join(res.OutputRoot, "LayerProcGen.cs.meta"))

	dest, err := p.Pack(ctx, "godot-addon", FormatTarXZ)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.RepoRoot, "dist", "godot-addon-0.4.0.tar.xz"), dest)
	assert.FileExists(t, dest)

	h, err := p.Hash("godot-addon")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(h, "sha256:"))
	require.NoError(t, p.Verify("godot-addon", h))

	require.NoError(t, os.WriteFile(filepath.Join(res.OutputRoot, "extra.txt"), []byte("x"), 0644))
	assert.Error(t, p.Verify("godot-addon", h))
}

func TestPackager_Readme(t *testing.T) {
	p := NewPackager(newTestConfig(t))

	out, err := p.Readme(VariantOnlineImages)
	require.NoError(t, err)
	assert.Contains(t, out, "md_Usage.html")
	assert.Equal(t, 1, strings.Count(out, "AUTO-GENERATED"))
}

func TestPackager_Errors(t *testing.T) {
	cfg := newTestConfig(t)
	p := NewPackager(cfg)

	_, err := p.Build(context.Background(), "nuget")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrProfileNotFound))

	// upm needs Samples/
	_, err = p.Build(context.Background(), "upm")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceTreeMissing)

	var relErr *Error
	require.True(t, errors.As(err, &relErr))
	assert.Equal(t, "build", relErr.Op)
	assert.Equal(t, "upm", relErr.Target)
	assert.True(t, strings.HasPrefix(err.Error(), "build upm: "))

	require.NoError(t, os.WriteFile(filepath.Join(cfg.RepoRoot, "CHANGELOG.md"), []byte("## v1.0\n"), 0644))
	_, err = p.Version()
	assert.ErrorIs(t, err, ErrVersionFormat)
}

func TestError(t *testing.T) {
	err := &Error{Op: "version", Err: ErrVersionNotFound}
	assert.Equal(t, "version: changelog: no version header found", err.Error())
	assert.ErrorIs(t, err, ErrVersionNotFound)
}
