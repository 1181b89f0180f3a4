package assemble

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/layerprocgen/relpack/pkg/profile"
)

func symlink(t *testing.T, target, link string) {
	t.Helper()
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
}

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
}

func TestCopyTree_FollowsDirLink(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src")
	writeTree(t, src, map[string]string{
		"Core.cs":        "class Core {}",
		"Shared/Util.cs": "class Util {}",
	})
	symlink(t, filepath.Join(src, "Shared"), filepath.Join(src, "Linked"))

	m, err := NewMatcher(nil)
	require.NoError(t, err)

	var stats copyStats
	dst := filepath.Join(tmp, "dst")
	require.NoError(t, copyTree(src, dst, m, &stats))

	data, err := os.ReadFile(filepath.Join(dst, "Linked", "Util.cs"))
	require.NoError(t, err)
	assert.Equal(t, "class Util {}", string(data))
	assert.Contains(t, stats.copied, "Linked/Util.cs")
	assert.Contains(t, stats.copied, "Shared/Util.cs")
	assert.Empty(t, stats.active)
}

func TestCopyTree_LinkCycle(t *testing.T) {
	tests := []struct {
		name   string
		link   string
		target string
	}{
		{"link to root", "Layers/Back", "."},
		{"link to own parent", "Layers/Self", "Layers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmp := t.TempDir()
			src := filepath.Join(tmp, "src")
			writeTree(t, src, map[string]string{"Layers/Chunk.cs": "class Chunk {}"})
			symlink(t, filepath.Join(src, filepath.FromSlash(tt.target)), filepath.Join(src, filepath.FromSlash(tt.link)))

			m, err := NewMatcher(nil)
			require.NoError(t, err)

			var stats copyStats
			err = copyTree(src, filepath.Join(tmp, "dst"), m, &stats)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrLinkCycle)
		})
	}
}

func TestAssemble_LinkCycle(t *testing.T) {
	repo := newTestRepo(t)
	symlink(t, filepath.Join(repo, "Src"), filepath.Join(repo, "Src", "Layers", "Loop"))

	_, err := newTestAssembler(repo).Assemble(context.Background(), profile.GodotAddon())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLinkCycle)
}

func TestWithin(t *testing.T) {
	base := filepath.FromSlash("/repo/Src")
	assert.True(t, within(base, base))
	assert.True(t, within(filepath.Join(base, "Layers"), base))
	assert.False(t, within(filepath.FromSlash("/repo/Samples"), base))
	assert.False(t, within(filepath.FromSlash("/repo/Src2"), base))
	assert.False(t, within(filepath.FromSlash("/repo"), base))
}
