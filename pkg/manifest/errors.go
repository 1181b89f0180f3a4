// pkg/manifest/errors.go
package manifest

import (
	"errors"
	"fmt"
)

var (
	// ErrTemplate indicates a template could not be instantiated
	ErrTemplate = errors.New("manifest: template error")

	// ErrMalformed indicates a rendered manifest does not parse in its format
	ErrMalformed = errors.New("manifest: malformed output")
)

// TemplateError describes which placeholder broke rendering.
type TemplateError struct {
	Manifest    string // Manifest path, if known
	Placeholder string
	Reason      string
}

func (e *TemplateError) Error() string {
	if e.Manifest != "" {
		return fmt.Sprintf("manifest %s: placeholder %s: %s", e.Manifest, e.Placeholder, e.Reason)
	}
	return fmt.Sprintf("manifest: placeholder %s: %s", e.Placeholder, e.Reason)
}

// Is lets errors.Is match ErrTemplate.
func (e *TemplateError) Is(target error) bool {
	return target == ErrTemplate
}
