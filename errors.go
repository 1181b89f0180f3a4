// errors.go
package relpack

import (
	"fmt"

	"github.com/layerprocgen/relpack/pkg/assemble"
	"github.com/layerprocgen/relpack/pkg/changelog"
	"github.com/layerprocgen/relpack/pkg/manifest"
	"github.com/layerprocgen/relpack/pkg/registry"
)

var (
	// ErrVersionFormat indicates a changelog version header is not MAJOR.MINOR.PATCH
	ErrVersionFormat = changelog.ErrVersionFormat

	// ErrVersionNotFound indicates the changelog has no version header
	ErrVersionNotFound = changelog.ErrVersionNotFound

	// ErrSourceTreeMissing indicates a profile source directory does not exist
	ErrSourceTreeMissing = assemble.ErrSourceTreeMissing

	// ErrOutputPath indicates the output tree could not be created or written
	ErrOutputPath = assemble.ErrOutputPath

	// ErrTemplate indicates a manifest template could not be instantiated
	ErrTemplate = manifest.ErrTemplate

	// ErrProfileNotFound indicates an unknown target name
	ErrProfileNotFound = registry.ErrProfileNotFound
)

// Error wraps an error with additional context
type Error struct {
	Op     string // Operation that failed
	Target string // Target profile if applicable
	Err    error  // Underlying error
}

func (e *Error) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Target, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
