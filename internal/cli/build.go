// internal/cli/build.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/layerprocgen/relpack/pkg/profile"
)

var buildCmd = &cobra.Command{
	Use:   "build [target...]",
	Short: "Assemble one or more release targets",
	Long: `Assemble release trees. Each target is an independent, all-or-nothing
run: the first failure aborts that target and the command.

Examples:
  relpack build upm
  relpack build godot-addon godot-project
  relpack build --debug upm`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBuild,
}

// targetCommands registers a no-argument command per built-in target, so
// "relpack upm" is the standalone entry point for the Unity package.
func targetCommands() []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(profile.Builtins()))
	for _, name := range profile.BuiltinNames() {
		name := name
		cmds = append(cmds, &cobra.Command{
			Use:   name,
			Short: "Assemble the " + name + " target (" + profile.Builtins()[name].Description + ")",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runBuild(cmd, []string{name})
			},
		})
	}
	return cmds
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	pkgr := newPackager()

	for _, target := range args {
		fmt.Printf("Building %s...\n", nameStyle.Render(target))

		res, err := pkgr.Build(ctx, target)
		if err != nil {
			fmt.Printf("%s %s\n", failMark(), target)
			return err
		}

		fmt.Printf("%s %s %s -> %s\n", okMark(), target, res.Version, res.OutputRoot)
		fmt.Println(dimStyle.Render(fmt.Sprintf("  %d files copied, %d ignored, %d generated",
			len(res.Copied), len(res.Skipped), len(res.Written))))
		if config.Debug {
			for _, p := range res.Skipped {
				fmt.Println(dimStyle.Render("  ignored " + p))
			}
		}
	}

	return nil
}
