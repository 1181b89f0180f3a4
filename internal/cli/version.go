// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the release version resolved from the changelog",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := newPackager().Version()
		if err != nil {
			return err
		}
		fmt.Println(v)
		if config.Debug {
			fmt.Println(dimStyle.Render("relpack " + toolVersion))
		}
		return nil
	},
}
