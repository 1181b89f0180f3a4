// pkg/assemble/assembler.go
package assemble

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/layerprocgen/relpack/pkg/changelog"
	"github.com/layerprocgen/relpack/pkg/docs"
	"github.com/layerprocgen/relpack/pkg/manifest"
	"github.com/layerprocgen/relpack/pkg/profile"
)

// Options configures an Assembler
type Options struct {
	RepoRoot    string       // Invocation directory; profile paths are relative to it
	Changelog   string       // Relative to RepoRoot
	FrontPage   string       // Relative to RepoRoot
	Docs        docs.Options // README rewrite settings
	CheckBranch bool         // Require OutputRoot to be on the profile's branch
	Logger      *log.Logger
}

// Assembler builds release trees from target profiles
type Assembler struct {
	opts   Options
	logger *log.Logger
}

// Result summarizes one assembled target
type Result struct {
	Target     string
	OutputRoot string
	Version    changelog.Version
	Copied     []string // Source files copied, relative to the output root
	Skipped    []string // Source paths left out by ignore patterns
	Written    []string // READMEs, auxiliary files and manifests
}

// New creates an Assembler
func New(opts Options) *Assembler {
	if opts.RepoRoot == "" {
		opts.RepoRoot = "."
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Assembler{
		opts:   opts,
		logger: logger,
	}
}

// Assemble writes the release tree for one target. The steps run in a fixed
// order: copy sources, resolve the version, write READMEs, copy auxiliary
// files, write manifests. Any failure aborts the target and leaves whatever
// was already written in place.
func (a *Assembler) Assemble(ctx context.Context, p *profile.Profile) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	matcher, err := NewMatcher(p.Ignore)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", p.Name, err)
	}

	for _, src := range p.Sources {
		dir := a.path(src.From)
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			return nil, fmt.Errorf("%w: %s", ErrSourceTreeMissing, dir)
		}
	}

	outRoot := a.path(p.OutputRoot)
	res := &Result{Target: p.Name, OutputRoot: outRoot}

	if a.opts.CheckBranch && p.Branch != "" {
		if err := CheckBranch(outRoot, p.Branch); err != nil {
			return nil, err
		}
	}

	// 1. Source trees
	if err := mkdir(outRoot); err != nil {
		return nil, err
	}
	for _, src := range p.Sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var stats copyStats
		if err := copyTree(a.path(src.From), filepath.Join(outRoot, src.To), matcher, &stats); err != nil {
			return nil, fmt.Errorf("copying %s: %w", src.From, err)
		}
		for _, rel := range stats.copied {
			res.Copied = append(res.Copied, filepath.ToSlash(filepath.Join(src.To, rel)))
		}
		for _, rel := range stats.skipped {
			res.Skipped = append(res.Skipped, filepath.ToSlash(filepath.Join(src.From, rel)))
		}
		a.logger.Printf("[%s] copied %s -> %s (%d files, %d ignored)", p.Name, src.From, filepath.Join(outRoot, src.To), len(stats.copied), len(stats.skipped))
	}

	// 2. Version
	version, err := changelog.ResolveFile(a.path(a.opts.Changelog))
	if err != nil {
		return nil, err
	}
	res.Version = version
	a.logger.Printf("[%s] version %s", p.Name, version)

	// 3. READMEs
	if len(p.Readmes) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		front, err := os.ReadFile(a.path(a.opts.FrontPage))
		if err != nil {
			return nil, fmt.Errorf("reading front page: %w", err)
		}
		for _, r := range p.Readmes {
			dst := filepath.Join(a.opts.RepoRoot, r.Dest)
			if r.Root == profile.RootTarget {
				dst = filepath.Join(outRoot, r.Dest)
			}
			if err := writeFile(dst, docs.Transform(string(front), r.Variant, a.opts.Docs)); err != nil {
				return nil, err
			}
			res.Written = append(res.Written, dst)
			a.logger.Printf("[%s] wrote %s readme %s", p.Name, r.Variant, dst)
		}
	}

	// 4. Auxiliary files
	assetRoot := filepath.Join(outRoot, p.AssetRoot)
	for _, aux := range p.AuxFiles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		paths := []string{aux.Path}
		if aux.Sidecar {
			paths = append(paths, aux.Path+manifest.SidecarExt)
		}
		for _, rel := range paths {
			dst := filepath.Join(assetRoot, filepath.Base(rel))
			if err := copyFile(a.path(rel), dst); err != nil {
				return nil, fmt.Errorf("copying %s: %w", rel, err)
			}
			res.Written = append(res.Written, dst)
			a.logger.Printf("[%s] copied %s", p.Name, dst)
		}
	}

	// 5. Manifests
	files, err := manifest.Generate(p.ManifestSpecs(), version.String())
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", p.Name, err)
	}
	rels := make([]string, 0, len(files))
	for rel := range files {
		rels = append(rels, rel)
	}
	sort.Strings(rels)
	for _, rel := range rels {
		dst := filepath.Join(assetRoot, filepath.FromSlash(rel))
		if err := writeFile(dst, files[rel]); err != nil {
			return nil, err
		}
		res.Written = append(res.Written, dst)
		a.logger.Printf("[%s] wrote %s", p.Name, dst)
	}

	return res, nil
}

func (a *Assembler) path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(a.opts.RepoRoot, rel)
}
