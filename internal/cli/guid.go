// internal/cli/guid.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/layerprocgen/relpack/pkg/manifest"
)

var guidCount int

var guidCmd = &cobra.Command{
	Use:   "guid",
	Short: "Mint identifiers for new sidecar metadata files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if guidCount < 1 {
			return fmt.Errorf("--count must be at least 1")
		}
		for i := 0; i < guidCount; i++ {
			fmt.Println(manifest.NewGUID())
		}
		return nil
	},
}

func init() {
	guidCmd.Flags().IntVarP(&guidCount, "count", "n", 1, "number of identifiers")
}
