// pkg/manifest/generator.go
package manifest

import (
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
)

// Spec describes one manifest a target writes
type Spec struct {
	Path            string // Relative to the target's asset root
	Format          Format
	Template        string
	SidecarGUID     string // When set, a sidecar is generated next to the manifest
	SidecarTemplate string // Defaults to PackageManifestMeta
}

// Generate renders every spec for the given version and returns the files
// keyed by relative path. Sidecars are keyed by "<path>.meta".
func Generate(specs []Spec, version string) (map[string]string, error) {
	files := make(map[string]string, len(specs)*2)

	for _, spec := range specs {
		if spec.Path == "" {
			return nil, fmt.Errorf("manifest spec has no path")
		}
		rel := path.Clean(spec.Path)

		text, err := Render(Template{
			Name:         rel,
			Body:         spec.Template,
			Placeholders: []string{VersionPlaceholder},
		}, map[string]string{VersionPlaceholder: version})
		if err != nil {
			return nil, err
		}
		if err := Validate(spec.Format, text); err != nil {
			return nil, fmt.Errorf("manifest %s: %w", rel, err)
		}
		files[rel] = text

		if spec.SidecarGUID == "" {
			continue
		}

		sidecar, err := Sidecar(rel, spec.SidecarGUID, spec.SidecarTemplate)
		if err != nil {
			return nil, err
		}
		files[rel+SidecarExt] = sidecar
	}

	return files, nil
}

// Sidecar renders the importer metadata stub for an asset.
func Sidecar(asset, guid, tmpl string) (string, error) {
	if err := ValidateGUID(guid); err != nil {
		return "", fmt.Errorf("sidecar for %s: %w", asset, err)
	}
	if tmpl == "" {
		tmpl = PackageManifestMeta
	}

	name := asset + SidecarExt
	text, err := Render(Template{
		Name:         name,
		Body:         tmpl,
		Placeholders: []string{GUIDPlaceholder},
	}, map[string]string{GUIDPlaceholder: guid})
	if err != nil {
		return "", err
	}
	if err := Validate(FormatYAML, text); err != nil {
		return "", fmt.Errorf("manifest %s: %w", name, err)
	}
	return text, nil
}

// ValidateGUID accepts the 32 hex digit identifiers asset importers use.
func ValidateGUID(guid string) error {
	if len(guid) != 32 {
		return fmt.Errorf("guid %q: want 32 hex digits", guid)
	}
	if _, err := uuid.Parse(guid); err != nil {
		return fmt.Errorf("guid %q: %w", guid, err)
	}
	return nil
}

// NewGUID mints a fresh identifier for a new sidecar.
func NewGUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
