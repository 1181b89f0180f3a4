package assemble

import (
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initRepoOnBranch(t *testing.T, dir, branch string) {
	t.Helper()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	head := plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName(branch))
	require.NoError(t, repo.Storer.SetReference(head))
}

func TestCheckBranch(t *testing.T) {
	dir := t.TempDir()
	initRepoOnBranch(t, dir, "upm")

	assert.NoError(t, CheckBranch(dir, "upm"))

	err := CheckBranch(dir, "godot_addon")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWrongBranch)
	assert.Contains(t, err.Error(), `"upm"`)
}

func TestCheckBranch_NotARepo(t *testing.T) {
	err := CheckBranch(t.TempDir(), "upm")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWrongBranch)
	assert.Contains(t, err.Error(), "not a git working copy")
}
