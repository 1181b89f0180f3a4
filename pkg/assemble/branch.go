// pkg/assemble/branch.go
package assemble

import (
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// CheckBranch verifies that root is a git working copy whose HEAD points at
// branch. Unborn branches count, so a fresh clone passes.
func CheckBranch(root, branch string) error {
	repo, err := git.PlainOpen(root)
	if err != nil {
		return fmt.Errorf("%w: %s is not a git working copy: %w", ErrWrongBranch, root, err)
	}

	head, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return fmt.Errorf("%w: reading HEAD of %s: %w", ErrWrongBranch, root, err)
	}
	if head.Type() != plumbing.SymbolicReference {
		return fmt.Errorf("%w: %s has a detached HEAD, want branch %q", ErrWrongBranch, root, branch)
	}

	if got := head.Target(); got != plumbing.NewBranchReferenceName(branch) {
		return fmt.Errorf("%w: %s is on %q, want %q", ErrWrongBranch, root, got.Short(), branch)
	}
	return nil
}
