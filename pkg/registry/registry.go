// pkg/registry/registry.go
package registry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/layerprocgen/relpack/pkg/profile"
)

// ProfileFile is the file name looked up in each profile directory
const ProfileFile = "profile.toml"

// ErrProfileNotFound indicates no built-in or file profile has the name
var ErrProfileNotFound = errors.New("profile not found")

// Registry resolves target names to profiles. Files under
// <dir>/<name>/profile.toml take precedence over built-ins.
type Registry struct {
	profilesDir string
}

// New creates a Registry over profilesDir. An empty or missing directory
// leaves only the built-in profiles.
func New(profilesDir string) *Registry {
	return &Registry{
		profilesDir: profilesDir,
	}
}

// Resolve returns the profile for name, validated and ready to assemble.
func (r *Registry) Resolve(name string) (*profile.Profile, error) {
	p, err := r.Load(name)
	if errors.Is(err, ErrProfileNotFound) {
		builtin, ok := profile.Builtins()[name]
		if !ok {
			return nil, fmt.Errorf("registry: %w: %s", ErrProfileNotFound, name)
		}
		p = builtin
	} else if err != nil {
		return nil, err
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	return p, nil
}

// Load reads and parses <dir>/<name>/profile.toml.
func (r *Registry) Load(name string) (*profile.Profile, error) {
	if r.profilesDir == "" {
		return nil, ErrProfileNotFound
	}

	dir := filepath.Join(r.profilesDir, name)
	path := filepath.Join(dir, ProfileFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if _, statErr := os.Stat(dir); statErr == nil {
				return nil, fmt.Errorf("registry: found profile '%s' directory, but missing %s", name, ProfileFile)
			}
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("registry: reading '%s': %w", name, err)
	}

	var p profile.Profile
	if _, err := toml.Decode(string(data), &p); err != nil {
		return nil, fmt.Errorf("registry: failed to parse '%s': %w", name, err)
	}
	if p.Name == "" {
		p.Name = name
	}

	for i, m := range p.Manifests {
		if m.TemplateFile == "" {
			continue
		}
		body, err := os.ReadFile(filepath.Join(dir, m.TemplateFile))
		if err != nil {
			return nil, fmt.Errorf("registry: profile '%s': manifest template: %w", name, err)
		}
		p.Manifests[i].Template = string(body)
	}

	return &p, nil
}

// Available lists built-in and file profile names, sorted.
func (r *Registry) Available() []string {
	seen := make(map[string]bool)
	for _, name := range profile.BuiltinNames() {
		seen[name] = true
	}

	if r.profilesDir != "" {
		entries, _ := os.ReadDir(r.profilesDir)
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			if _, err := os.Stat(filepath.Join(r.profilesDir, entry.Name(), ProfileFile)); err == nil {
				seen[entry.Name()] = true
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
