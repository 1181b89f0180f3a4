package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/layerprocgen/relpack/pkg/profile"
)

func TestTargetCommandsRegistered(t *testing.T) {
	for _, name := range profile.BuiltinNames() {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
		assert.Error(t, cmd.Args(cmd, []string{"extra"}), "target commands take no arguments")
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	for _, name := range []string{"build", "list", "version", "readme", "pack", "hash", "guid", "config"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestBuildRequiresTarget(t *testing.T) {
	assert.Error(t, buildCmd.Args(buildCmd, nil))
	assert.NoError(t, buildCmd.Args(buildCmd, []string{"upm"}))
}

func TestMalformedConfigAborts(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".relpack.yaml")
	require.NoError(t, os.WriteFile(path, []byte("repo_root: [unterminated\n"), 0644))

	oldFile, oldConfig, oldErr := cfgFile, config, configErr
	t.Cleanup(func() { cfgFile, config, configErr = oldFile, oldConfig, oldErr })

	cfgFile = path
	initConfig()

	err := rootCmd.PersistentPreRunE(buildCmd, []string{"upm"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")

	assert.NoError(t, configInitCmd.PersistentPreRunE(configInitCmd, nil))
}

func TestValidConfigPasses(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".relpack.yaml")
	require.NoError(t, os.WriteFile(path, []byte("repo_root: .\n"), 0644))

	oldFile, oldConfig, oldErr := cfgFile, config, configErr
	t.Cleanup(func() { cfgFile, config, configErr = oldFile, oldConfig, oldErr })

	cfgFile = path
	initConfig()

	assert.NoError(t, rootCmd.PersistentPreRunE(buildCmd, []string{"upm"}))
}
