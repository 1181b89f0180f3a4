// internal/cli/root.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/layerprocgen/relpack"
	"github.com/layerprocgen/relpack/pkg/core"
)

const toolVersion = "0.3.0"

var (
	cfgFile     string
	debug       bool
	checkBranch bool
	config      *core.Config
	configErr   error
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "relpack",
	Short: "Multi-target release packager",
	Long: `relpack - Multi-target release packager

Turns one source tree, changelog and documentation front page into several
release trees, one per distribution channel (Unity package, Godot addon,
Godot project). Each target writes into a sibling working copy.`,
	Version:           toolVersion,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: requireConfig,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./"+core.DefaultConfigFile+" or $"+core.ConfigEnv+")")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&checkBranch, "check-branch", false, "require each output root to be checked out to its target branch")

	// Add commands
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(readmeCmd)
	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(hashCmd)
	rootCmd.AddCommand(guidCmd)
	rootCmd.AddCommand(configCmd)
	for _, cmd := range targetCommands() {
		rootCmd.AddCommand(cmd)
	}
}

func initConfig() {
	config, configErr = core.LoadConfig(cfgFile)
	if configErr != nil {
		config = core.DefaultConfig()
	}

	// Override config with flags
	if debug {
		config.Debug = true
	}
	if checkBranch {
		config.CheckBranch = true
	}
}

// requireConfig stops every command when the config file exists but cannot
// be loaded, so builds never fall back to the default output roots.
func requireConfig(cmd *cobra.Command, args []string) error {
	if configErr != nil {
		return fmt.Errorf("loading config: %w", configErr)
	}
	return nil
}

func newPackager() *relpack.Packager {
	return relpack.NewPackager(config)
}
