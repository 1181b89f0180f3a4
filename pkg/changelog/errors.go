// pkg/changelog/errors.go
package changelog

import (
	"errors"
	"fmt"
)

var (
	// ErrVersionNotFound indicates the changelog ran out before any version header
	ErrVersionNotFound = errors.New("changelog: no version header found")

	// ErrVersionFormat indicates a version header that is not MAJOR.MINOR.PATCH
	ErrVersionFormat = errors.New("changelog: version is not semver")
)

// VersionFormatError reports the header token that failed the semver check.
type VersionFormatError struct {
	Line  int    // 1-based line number of the header
	Token string // Token after prefix stripping
}

func (e *VersionFormatError) Error() string {
	return fmt.Sprintf("changelog: line %d: version doesn't appear to be semver: %q", e.Line, e.Token)
}

// Is lets errors.Is match ErrVersionFormat.
func (e *VersionFormatError) Is(target error) bool {
	return target == ErrVersionFormat
}
