// pkg/assemble/errors.go
package assemble

import "errors"

var (
	// ErrSourceTreeMissing indicates a profile source directory does not exist
	ErrSourceTreeMissing = errors.New("source tree missing")

	// ErrOutputPath indicates the output tree could not be created or written
	ErrOutputPath = errors.New("output path not writable")

	// ErrWrongBranch indicates the output root is not checked out to the profile's branch
	ErrWrongBranch = errors.New("output root on wrong branch")

	// ErrLinkCycle indicates a symlinked source directory leads back into itself
	ErrLinkCycle = errors.New("symlink cycle in source tree")
)
