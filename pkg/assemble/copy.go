// pkg/assemble/copy.go
package assemble

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// copyStats collects what copyTree did, relative to the copied root
type copyStats struct {
	copied  []string
	skipped []string

	// resolved directories currently being copied, outermost first
	active map[string]bool
}

// copyTree copies src into dst, skipping ignored paths. Existing files are
// overwritten and nothing is removed from dst.
func copyTree(src, dst string, m *Matcher, stats *copyStats) error {
	return copyTreeRel(src, dst, "", m, stats)
}

func copyTreeRel(src, dst, base string, m *Matcher, stats *copyStats) error {
	resolvedSrc, err := filepath.EvalSymlinks(src)
	if err != nil {
		return fmt.Errorf("reading source %s: %w", src, err)
	}
	if resolvedSrc, err = filepath.Abs(resolvedSrc); err != nil {
		return err
	}
	if stats.active == nil {
		stats.active = make(map[string]bool)
	}
	for dir := range stats.active {
		if within(dir, resolvedSrc) {
			return fmt.Errorf("%w: %s resolves to %s", ErrLinkCycle, src, resolvedSrc)
		}
	}
	stats.active[resolvedSrc] = true
	defer delete(stats.active, resolvedSrc)

	if err := mkdir(dst); err != nil {
		return err
	}

	return filepath.WalkDir(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("reading source %s: %w", p, err)
		}

		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		slashRel := filepath.ToSlash(filepath.Join(base, rel))

		if m.Ignored(slashRel) {
			stats.skipped = append(stats.skipped, slashRel)
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		target := filepath.Join(dst, rel)

		if d.Type()&fs.ModeSymlink != 0 {
			resolved, err := filepath.EvalSymlinks(p)
			if err != nil {
				return fmt.Errorf("resolving link %s: %w", p, err)
			}
			info, err := os.Stat(resolved)
			if err != nil {
				return fmt.Errorf("resolving link %s: %w", p, err)
			}
			if info.IsDir() {
				return copyTreeRel(resolved, target, slashRel, m, stats)
			}
		}

		if d.IsDir() {
			return mkdir(target)
		}

		if err := copyFile(p, target); err != nil {
			return err
		}
		stats.copied = append(stats.copied, slashRel)
		return nil
	})
}

// within reports whether p is dir or lies below it.
func within(p, dir string) bool {
	rel, err := filepath.Rel(dir, p)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// copyFile copies one file, keeping its permission bits.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	if err := mkdir(filepath.Dir(dst)); err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputPath, dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("%w: %s: %w", ErrOutputPath, dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputPath, dst, err)
	}
	return nil
}

// writeFile writes generated content, creating parent directories.
func writeFile(dst, content string) error {
	if err := mkdir(filepath.Dir(dst)); err != nil {
		return err
	}
	if err := os.WriteFile(dst, []byte(content), 0644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputPath, dst, err)
	}
	return nil
}

func mkdir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputPath, dir, err)
	}
	return nil
}
