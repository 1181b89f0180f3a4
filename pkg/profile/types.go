// pkg/profile/types.go
package profile

import (
	"fmt"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/layerprocgen/relpack/pkg/docs"
	"github.com/layerprocgen/relpack/pkg/manifest"
)

// ReadmeRoot selects where a README variant is written
type ReadmeRoot string

const (
	// RootRepo is the invocation directory (the source repository)
	RootRepo ReadmeRoot = "repo"
	// RootTarget is the target's output root
	RootTarget ReadmeRoot = "target"
)

// Mapping copies one source directory to a path under the output root
type Mapping struct {
	From string `toml:"from"` // Relative to the repository root
	To   string `toml:"to"`   // Relative to the output root
}

// Readme is one README variant a target needs
type Readme struct {
	Variant docs.Variant `toml:"variant"`
	Root    ReadmeRoot   `toml:"root"`
	Dest    string       `toml:"dest"` // Relative to Root
}

// AuxFile is a fixed file copied into the asset root
type AuxFile struct {
	Path    string `toml:"path"`    // Relative to the repository root
	Sidecar bool   `toml:"sidecar"` // Also copy "<path>.meta"
}

// Manifest is the TOML form of manifest.Spec
type Manifest struct {
	Path         string          `toml:"path"`
	Format       manifest.Format `toml:"format"`
	Template     string          `toml:"template"`
	TemplateFile string          `toml:"template_file"`
	SidecarGUID  string          `toml:"sidecar_guid"`
}

// Profile describes how one distribution channel's release tree is shaped
type Profile struct {
	Name        string     `toml:"name"`
	Description string     `toml:"description"`
	OutputRoot  string     `toml:"output_root"` // Relative to the repository root
	AssetRoot   string     `toml:"asset_root"`  // Relative to OutputRoot
	Branch      string     `toml:"branch"`      // Expected checkout of OutputRoot
	Ignore      []string   `toml:"ignore"`
	Sources     []Mapping  `toml:"sources"`
	Readmes     []Readme   `toml:"readmes"`
	AuxFiles    []AuxFile  `toml:"aux"`
	Manifests   []Manifest `toml:"manifests"`
}

// ManifestSpecs converts the profile's manifests for the generator.
// TemplateFile entries must already be loaded into Template.
func (p *Profile) ManifestSpecs() []manifest.Spec {
	specs := make([]manifest.Spec, 0, len(p.Manifests))
	for _, m := range p.Manifests {
		specs = append(specs, manifest.Spec{
			Path:        m.Path,
			Format:      m.Format,
			Template:    m.Template,
			SidecarGUID: m.SidecarGUID,
		})
	}
	return specs
}

// Validate checks the profile for settings the assembler cannot act on
func (p *Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile: name is required")
	}
	if p.OutputRoot == "" {
		return fmt.Errorf("profile %s: output_root is required", p.Name)
	}
	if len(p.Sources) == 0 {
		return fmt.Errorf("profile %s: at least one source mapping is required", p.Name)
	}
	for _, pattern := range p.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("profile %s: invalid ignore pattern %q", p.Name, pattern)
		}
	}
	for _, rel := range p.relativePaths() {
		if escapes(rel) {
			return fmt.Errorf("profile %s: path %q escapes its root", p.Name, rel)
		}
	}
	for _, r := range p.Readmes {
		if _, err := docs.ParseVariant(string(r.Variant)); err != nil {
			return fmt.Errorf("profile %s: %w", p.Name, err)
		}
		if r.Root != RootRepo && r.Root != RootTarget {
			return fmt.Errorf("profile %s: readme root %q must be %q or %q", p.Name, r.Root, RootRepo, RootTarget)
		}
		if r.Dest == "" {
			return fmt.Errorf("profile %s: readme %s has no dest", p.Name, r.Variant)
		}
	}
	for _, m := range p.Manifests {
		if m.Path == "" {
			return fmt.Errorf("profile %s: manifest without path", p.Name)
		}
		if m.Template == "" && m.TemplateFile == "" {
			return fmt.Errorf("profile %s: manifest %s has no template", p.Name, m.Path)
		}
		if m.SidecarGUID != "" {
			if err := manifest.ValidateGUID(m.SidecarGUID); err != nil {
				return fmt.Errorf("profile %s: manifest %s: %w", p.Name, m.Path, err)
			}
		}
	}
	return nil
}

// relativePaths lists the paths that must stay inside the output root.
func (p *Profile) relativePaths() []string {
	paths := []string{p.AssetRoot}
	for _, s := range p.Sources {
		paths = append(paths, s.To)
	}
	for _, r := range p.Readmes {
		paths = append(paths, r.Dest)
	}
	for _, m := range p.Manifests {
		paths = append(paths, m.Path)
	}
	return paths
}

func escapes(rel string) bool {
	if rel == "" {
		return false
	}
	clean := path.Clean(strings.ReplaceAll(rel, "\\", "/"))
	return path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../")
}
