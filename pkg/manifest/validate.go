// pkg/manifest/validate.go
package manifest

import (
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is the syntax a rendered manifest must parse as
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml" // Godot .cfg files are TOML-compatible
	FormatYAML Format = "yaml"
	FormatText Format = "text"
)

// Validate checks that text parses in the given format.
func Validate(format Format, text string) error {
	switch format {
	case FormatJSON:
		var v any
		if err := json.Unmarshal([]byte(text), &v); err != nil {
			return fmt.Errorf("%w: json: %v", ErrMalformed, err)
		}
	case FormatTOML:
		var v map[string]any
		if _, err := toml.Decode(text, &v); err != nil {
			return fmt.Errorf("%w: toml: %v", ErrMalformed, err)
		}
	case FormatYAML:
		var v any
		if err := yaml.Unmarshal([]byte(text), &v); err != nil {
			return fmt.Errorf("%w: yaml: %v", ErrMalformed, err)
		}
	case FormatText, "":
	default:
		return fmt.Errorf("%w: unknown format %q", ErrMalformed, format)
	}
	return nil
}
