// relpack.go
package relpack

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/layerprocgen/relpack/pkg/archive"
	"github.com/layerprocgen/relpack/pkg/assemble"
	"github.com/layerprocgen/relpack/pkg/changelog"
	"github.com/layerprocgen/relpack/pkg/core"
	"github.com/layerprocgen/relpack/pkg/docs"
	"github.com/layerprocgen/relpack/pkg/profile"
	"github.com/layerprocgen/relpack/pkg/registry"
)

// Re-export core types for convenience
type (
	Config        = core.Config
	Profile       = profile.Profile
	Result        = assemble.Result
	Version       = changelog.Version
	Variant       = docs.Variant
	ArchiveFormat = archive.Format
)

// Re-export constants
const (
	VariantLocalImages  = docs.VariantLocalImages
	VariantOnlineImages = docs.VariantOnlineImages
	FormatTarXZ         = archive.FormatTarXZ
	FormatNarXZ         = archive.FormatNarXZ
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// Packager builds release trees for the configured repository
type Packager struct {
	config   *core.Config
	registry *registry.Registry
	logger   *log.Logger
}

// NewPackager creates a Packager. A nil config means defaults.
func NewPackager(config *core.Config) *Packager {
	if config == nil {
		config = core.DefaultConfig()
	}

	logger := log.New(io.Discard, "", 0)
	if config.Debug {
		logger = log.New(os.Stdout, "[relpack] ", log.LstdFlags)
	}

	return &Packager{
		config:   config,
		registry: registry.New(config.Path(config.ProfilesDir)),
		logger:   logger,
	}
}

// SetLogger replaces the debug logger
func (p *Packager) SetLogger(logger *log.Logger) {
	if logger != nil {
		p.logger = logger
	}
}

// Targets lists every known target name
func (p *Packager) Targets() []string {
	return p.registry.Available()
}

// Profile resolves a target name
func (p *Packager) Profile(name string) (*Profile, error) {
	prof, err := p.registry.Resolve(name)
	if err != nil {
		return nil, &Error{Op: "resolve", Target: name, Err: err}
	}
	return prof, nil
}

// Version resolves the current release from the changelog
func (p *Packager) Version() (Version, error) {
	v, err := changelog.ResolveFile(p.config.Path(p.config.Changelog))
	if err != nil {
		return Version{}, &Error{Op: "version", Err: err}
	}
	return v, nil
}

// Readme renders one README variant of the documentation front page
func (p *Packager) Readme(variant Variant) (string, error) {
	data, err := os.ReadFile(p.config.Path(p.config.FrontPage))
	if err != nil {
		return "", &Error{Op: "readme", Err: err}
	}
	return docs.Transform(string(data), variant, p.config.DocsOptions()), nil
}

// Build assembles one target
func (p *Packager) Build(ctx context.Context, name string) (*Result, error) {
	prof, err := p.Profile(name)
	if err != nil {
		return nil, err
	}

	asm := assemble.New(assemble.Options{
		RepoRoot:    p.config.RepoRoot,
		Changelog:   p.config.Changelog,
		FrontPage:   p.config.FrontPage,
		Docs:        p.config.DocsOptions(),
		CheckBranch: p.config.CheckBranch,
		Logger:      p.logger,
	})

	res, err := asm.Assemble(ctx, prof)
	if err != nil {
		return nil, &Error{Op: "build", Target: name, Err: err}
	}
	return res, nil
}

// Pack archives an assembled target into the archive directory and returns
// the archive path. The target must have been built first.
func (p *Packager) Pack(ctx context.Context, name string, format ArchiveFormat) (string, error) {
	prof, err := p.Profile(name)
	if err != nil {
		return "", err
	}
	v, err := p.Version()
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	root := p.config.Path(prof.OutputRoot)
	dest := filepath.Join(p.config.Path(p.config.ArchiveDir), archive.FileName(prof.Name, v.String(), format))

	p.logger.Printf("[%s] packing %s -> %s", name, root, dest)
	if err := archive.Pack(root, dest, format); err != nil {
		return "", &Error{Op: "pack", Target: name, Err: err}
	}
	return dest, nil
}

// Hash returns the NAR hash of an assembled target's output root
func (p *Packager) Hash(name string) (string, error) {
	prof, err := p.Profile(name)
	if err != nil {
		return "", err
	}
	h, err := archive.NarHash(p.config.Path(prof.OutputRoot))
	if err != nil {
		return "", &Error{Op: "hash", Target: name, Err: err}
	}
	return h, nil
}

// Verify checks an assembled target's output root against an expected hash
func (p *Packager) Verify(name, expected string) error {
	prof, err := p.Profile(name)
	if err != nil {
		return err
	}
	if err := archive.VerifyNarHash(p.config.Path(prof.OutputRoot), expected); err != nil {
		return &Error{Op: "verify", Target: name, Err: err}
	}
	return nil
}
