package generator

import (
	"io/fs"
)

// fileSet is an ordered set of skeleton-relative paths.
type fileSet struct {
	files map[string]bool
	order []string
}

func newFileSet() *fileSet {
	return &fileSet{files: make(map[string]bool)}
}

func (s *fileSet) add(relPath string) {
	if !s.files[relPath] {
		s.order = append(s.order, relPath)
	}

	s.files[relPath] = true
}

func (s *fileSet) remove(relPath string) {
	delete(s.files, relPath)
}

// Entries returns the remaining paths in walk order.
func (s *fileSet) Entries() []string {
	entries := make([]string, 0, len(s.files))

	for _, p := range s.order {
		if s.files[p] {
			entries = append(entries, p)
		}
	}

	return entries
}

func (s *fileSet) Len() int {
	return len(s.files)
}

// collectFiles gathers every skeleton file except the manifest.
func collectFiles(fsys fs.FS) (*fileSet, error) {
	set := newFileSet()

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || p == manifestFile {
			return nil
		}

		set.add(p)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return set, nil
}
