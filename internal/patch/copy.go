package patch

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// copyTree copies root from fsys to dest, replacing existing files.
func copyTree(fsys fs.FS, root, dest string) error {
	return fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, filepath.FromSlash(p))
		if err != nil {
			return err
		}

		target := filepath.Join(dest, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0o750)
		}

		if !d.Type().IsRegular() {
			return fmt.Errorf("%s: unsupported file type %s", path.Clean(p), d.Type())
		}

		return copyFile(fsys, p, target)
	})
}

func copyFile(fsys fs.FS, src, dest string) error {
	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()

		return fmt.Errorf("copying %s: %w", src, err)
	}

	return out.Close()
}
