// pkg/archive/pack.go
package archive

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/ulikunitz/xz"
	"zombiezen.com/go/nix/nar"
)

// Format is the archive layout
type Format string

const (
	FormatTarXZ Format = "tar.xz"
	FormatNarXZ Format = "nar.xz"
)

// ErrHashMismatch indicates a tree does not match its expected NAR hash
var ErrHashMismatch = errors.New("nar hash mismatch")

// skipDirs are never packed; output roots are git working copies.
var skipDirs = map[string]bool{".git": true}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTarXZ, FormatNarXZ:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown archive format %q (want %s or %s)", s, FormatTarXZ, FormatNarXZ)
	}
}

// FileName returns "<name>-<version>.<format>".
func FileName(name, version string, format Format) string {
	return fmt.Sprintf("%s-%s.%s", name, version, format)
}

// Pack writes the tree at root to dest as an xz-compressed archive. Entries
// are sorted and timestamps and owners are zeroed so the same tree always
// yields the same bytes.
func Pack(root, dest string, format Format) error {
	if _, err := ParseFormat(string(format)); err != nil {
		return err
	}
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("packing %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("packing %s: not a directory", root)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("creating archive directory: %w", err)
	}
	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating archive: %w", err)
	}
	defer f.Close()

	xw, err := xz.NewWriter(f)
	if err != nil {
		return fmt.Errorf("creating xz writer: %w", err)
	}

	switch format {
	case FormatNarXZ:
		err = writeNar(xw, root)
	default:
		err = writeTar(xw, root)
	}
	if err != nil {
		return err
	}

	if err := xw.Close(); err != nil {
		return fmt.Errorf("closing xz stream: %w", err)
	}
	return f.Close()
}

// walk visits root's entries in lexical order, skipping VCS metadata.
func walk(root string, fn func(rel string, d fs.DirEntry, path string) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if d.IsDir() && skipDirs[d.Name()] && rel != "." {
			return filepath.SkipDir
		}
		return fn(filepath.ToSlash(rel), d, path)
	})
}

func writeTar(w io.Writer, root string) error {
	tw := tar.NewWriter(w)

	err := walk(root, func(rel string, d fs.DirEntry, path string) error {
		if rel == "." {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}

		var link string
		if info.Mode()&fs.ModeSymlink != 0 {
			if link, err = os.Readlink(path); err != nil {
				return err
			}
		}

		hdr, err := tar.FileInfoHeader(info, link)
		if err != nil {
			return err
		}
		hdr.Name = rel
		if info.IsDir() {
			hdr.Name += "/"
		}
		hdr.ModTime = time.Unix(0, 0)
		hdr.AccessTime = time.Time{}
		hdr.ChangeTime = time.Time{}
		hdr.Uid, hdr.Gid = 0, 0
		hdr.Uname, hdr.Gname = "", ""
		hdr.Format = tar.FormatPAX

		if err := tw.WriteHeader(hdr); err != nil {
			return fmt.Errorf("writing tar header %s: %w", rel, err)
		}
		if info.Mode().IsRegular() {
			return copyContent(tw, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("packing tar: %w", err)
	}
	return tw.Close()
}

func writeNar(w io.Writer, root string) error {
	nw := nar.NewWriter(w)

	err := walk(root, func(rel string, d fs.DirEntry, path string) error {
		hdr := &nar.Header{}
		if rel != "." {
			hdr.Path = rel
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		switch {
		case info.IsDir():
			hdr.Mode = fs.ModeDir | 0o555
		case info.Mode()&fs.ModeSymlink != 0:
			hdr.Mode = fs.ModeSymlink | 0o777
			if hdr.LinkTarget, err = os.Readlink(path); err != nil {
				return err
			}
		case info.Mode().IsRegular():
			hdr.Mode = 0o444
			if info.Mode()&0o111 != 0 {
				hdr.Mode = 0o555
			}
			hdr.Size = info.Size()
		default:
			return fmt.Errorf("%s: unsupported file type %v", rel, info.Mode().Type())
		}

		if err := nw.WriteHeader(hdr); err != nil {
			return fmt.Errorf("writing nar entry %s: %w", rel, err)
		}
		if hdr.Mode.IsRegular() {
			return copyContent(nw, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("packing nar: %w", err)
	}
	return nw.Close()
}

func copyContent(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(w, f)
	return err
}
