// internal/cli/readme.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/layerprocgen/relpack/pkg/docs"
)

var readmeVariant string

var readmeCmd = &cobra.Command{
	Use:   "readme",
	Short: "Print a README variant of the documentation front page",
	Long: `Render the documentation front page the way a target would and print it.

Examples:
  relpack readme --variant local-images
  relpack readme --variant online-images > /tmp/README.md`,
	Args: cobra.NoArgs,
	RunE: runReadme,
}

func init() {
	readmeCmd.Flags().StringVar(&readmeVariant, "variant", string(docs.VariantOnlineImages), "local-images or online-images")
}

func runReadme(cmd *cobra.Command, args []string) error {
	variant, err := docs.ParseVariant(readmeVariant)
	if err != nil {
		return err
	}

	out, err := newPackager().Readme(variant)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
