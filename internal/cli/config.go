// internal/cli/config.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/layerprocgen/relpack/pkg/core"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the project configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with default values",
	Args:  cobra.NoArgs,
	// overrides requireConfig so --force can replace a broken file
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE:              runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" {
		path = core.ConfigPath()
	}

	if _, err := os.Stat(path); err == nil && !configForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := core.SaveConfig(core.DefaultConfig(), path); err != nil {
		return err
	}
	fmt.Printf("%s wrote %s\n", okMark(), path)
	return nil
}
