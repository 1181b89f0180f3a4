// internal/cli/pack.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/layerprocgen/relpack/pkg/archive"
)

var (
	packFormat string
	packBuild  bool
)

var packCmd = &cobra.Command{
	Use:   "pack [target...]",
	Short: "Archive assembled targets",
	Long: `Write a deterministic xz-compressed archive of each target's output root
into the archive directory, named <target>-<version>.<format>.

Examples:
  relpack pack upm
  relpack pack --build --format nar.xz godot-addon`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPack,
}

func init() {
	packCmd.Flags().StringVar(&packFormat, "format", string(archive.FormatTarXZ), "archive format (tar.xz, nar.xz)")
	packCmd.Flags().BoolVar(&packBuild, "build", false, "assemble each target before packing")
}

func runPack(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	format, err := archive.ParseFormat(packFormat)
	if err != nil {
		return err
	}

	if packBuild {
		if err := runBuild(cmd, args); err != nil {
			return err
		}
	}

	pkgr := newPackager()
	for _, target := range args {
		dest, err := pkgr.Pack(ctx, target, format)
		if err != nil {
			fmt.Printf("%s %s\n", failMark(), target)
			return err
		}
		fmt.Printf("%s %s -> %s\n", okMark(), target, dest)
	}
	return nil
}
