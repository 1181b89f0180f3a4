// internal/cli/list.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List release targets",
	Long:  `List built-in targets and targets defined under the profiles directory.`,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	pkgr := newPackager()

	fmt.Printf("Targets:\n")
	for _, name := range pkgr.Targets() {
		prof, err := pkgr.Profile(name)
		if err != nil {
			fmt.Printf("  %s %s %s\n", failMark(), name, dimStyle.Render(err.Error()))
			continue
		}
		fmt.Printf("  %s %s\n", nameStyle.Render(name), dimStyle.Render("-> "+config.Path(prof.OutputRoot)))
		if prof.Description != "" {
			fmt.Printf("      %s\n", prof.Description)
		}
	}

	return nil
}
