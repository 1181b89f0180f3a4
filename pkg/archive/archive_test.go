package archive

import (
	"archive/tar"
	"bytes"
	"crypto/sha256"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
	"zombiezen.com/go/nix/nar"
)

func newTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"plugin.cfg":         "[plugin]\nversion=\"1.0.0\"\n",
		"Layers/Chunk.cs":    "class Chunk {}",
		"Layers/Grid.cs":     "class Grid {}",
		"README.md":          "# readme",
		".git/HEAD":          "ref: refs/heads/godot_addon\n",
		"Samples~/Scene.txt": "scene",
	}
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
	return root
}

func openXZ(t *testing.T, path string) io.Reader {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	r, err := xz.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	return r
}

func TestPack_TarXZ(t *testing.T) {
	root := newTree(t)
	dest := filepath.Join(t.TempDir(), "dist", FileName("godot-addon", "1.0.0", FormatTarXZ))

	require.NoError(t, Pack(root, dest, FormatTarXZ))
	assert.Equal(t, "godot-addon-1.0.0.tar.xz", filepath.Base(dest))

	tr := tar.NewReader(openXZ(t, dest))
	var names []string
	contents := map[string]string{}
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		names = append(names, hdr.Name)
		assert.Equal(t, int64(0), hdr.ModTime.Unix())
		if hdr.Typeflag == tar.TypeReg {
			data, err := io.ReadAll(tr)
			require.NoError(t, err)
			contents[hdr.Name] = string(data)
		}
	}

	assert.Equal(t, []string{
		"Layers/",
		"Layers/Chunk.cs",
		"Layers/Grid.cs",
		"README.md",
		"Samples~/",
		"Samples~/Scene.txt",
		"plugin.cfg",
	}, names)
	assert.Equal(t, "class Grid {}", contents["Layers/Grid.cs"])
}

func TestPack_Deterministic(t *testing.T) {
	root := newTree(t)
	dir := t.TempDir()
	a := filepath.Join(dir, "a.tar.xz")
	b := filepath.Join(dir, "b.tar.xz")

	require.NoError(t, Pack(root, a, FormatTarXZ))
	require.NoError(t, os.Chtimes(filepath.Join(root, "README.md"), time0, time0))
	require.NoError(t, Pack(root, b, FormatTarXZ))

	da, err := os.ReadFile(a)
	require.NoError(t, err)
	db, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.Equal(t, sha256.Sum256(da), sha256.Sum256(db))
}

func TestPack_NarXZ(t *testing.T) {
	root := newTree(t)
	dest := filepath.Join(t.TempDir(), FileName("upm", "2.0.0-preview", FormatNarXZ))

	require.NoError(t, Pack(root, dest, FormatNarXZ))

	nr := nar.NewReader(openXZ(t, dest))
	var paths []string
	for {
		hdr, err := nr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		paths = append(paths, hdr.Path)
		if hdr.Path == "README.md" {
			data, err := io.ReadAll(nr)
			require.NoError(t, err)
			assert.Equal(t, "# readme", string(data))
		}
	}

	assert.Equal(t, []string{"", "Layers", "Layers/Chunk.cs", "Layers/Grid.cs", "README.md", "Samples~", "Samples~/Scene.txt", "plugin.cfg"}, paths)
}

func TestPack_Errors(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.zip")
	assert.Error(t, Pack(newTree(t), dest, Format("zip")))
	assert.Error(t, Pack(filepath.Join(t.TempDir(), "missing"), dest, FormatTarXZ))
}

func TestNarHash(t *testing.T) {
	a := newTree(t)
	b := newTree(t)

	ha, err := NarHash(a)
	require.NoError(t, err)
	hb, err := NarHash(b)
	require.NoError(t, err)
	assert.Equal(t, ha, hb)
	assert.Len(t, ha, len("sha256:")+52)

	require.NoError(t, os.WriteFile(filepath.Join(b, ".git", "HEAD"), []byte("ref: refs/heads/other\n"), 0644))
	hb, err = NarHash(b)
	require.NoError(t, err)
	assert.Equal(t, ha, hb, "git metadata is not part of the hash")

	require.NoError(t, os.Chmod(filepath.Join(b, "README.md"), 0755))
	hb, err = NarHash(b)
	require.NoError(t, err)
	assert.NotEqual(t, ha, hb)
}

func TestVerifyNarHash(t *testing.T) {
	root := newTree(t)
	h, err := NarHash(root)
	require.NoError(t, err)

	require.NoError(t, VerifyNarHash(root, h))

	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("changed"), 0644))
	err = VerifyNarHash(root, h)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHashMismatch)

	assert.Error(t, VerifyNarHash(root, "md5:abc"))
	assert.Error(t, VerifyNarHash(root, "sha256:eeee"))
	assert.Error(t, VerifyNarHash(root, "sha256:a"))
	assert.Error(t, VerifyNarHash(root, "sha256:"))
	assert.Error(t, VerifyNarHash(root, h+"0"))
}

func TestNixBase32_ShortInput(t *testing.T) {
	for _, s := range []string{"", "0", "a", "z"} {
		assert.NotPanics(t, func() {
			out, err := fromNixBase32(s)
			if err == nil {
				assert.Empty(t, out, s)
			}
		}, s)
	}
}

func TestNixBase32_RoundTrip(t *testing.T) {
	sum := sha256.Sum256([]byte("relpack"))
	enc := toNixBase32(sum[:])
	assert.Len(t, enc, 52)

	dec, err := fromNixBase32(enc)
	require.NoError(t, err)
	assert.Equal(t, sum[:], dec)

	_, err = fromNixBase32("eout")
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("nar.xz")
	require.NoError(t, err)
	assert.Equal(t, FormatNarXZ, f)

	_, err = ParseFormat("tgz")
	assert.Error(t, err)
}

var time0 = time.Unix(1700000000, 0)
