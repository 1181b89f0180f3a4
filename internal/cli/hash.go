// internal/cli/hash.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var hashExpect string

var hashCmd = &cobra.Command{
	Use:   "hash [target]",
	Short: "Print or verify the content hash of an assembled target",
	Long: `Compute the NAR sha256 of a target's output root (git metadata excluded).
With --expect, fail unless the tree matches.`,
	Args: cobra.ExactArgs(1),
	RunE: runHash,
}

func init() {
	hashCmd.Flags().StringVar(&hashExpect, "expect", "", "expected hash (sha256:<nix base32>)")
}

func runHash(cmd *cobra.Command, args []string) error {
	pkgr := newPackager()
	target := args[0]

	if hashExpect != "" {
		if err := pkgr.Verify(target, hashExpect); err != nil {
			fmt.Printf("%s %s\n", failMark(), target)
			return err
		}
		fmt.Printf("%s %s matches\n", okMark(), target)
		return nil
	}

	h, err := pkgr.Hash(target)
	if err != nil {
		return err
	}
	fmt.Println(h)
	return nil
}
