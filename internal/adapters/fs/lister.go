// Package fs provides the folder listing adapter.
package fs

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FolderLister = (*Lister)(nil)

// Lister implements ports.FolderLister on the host file system or on an fs.FS.
type Lister struct {
	fsys fs.FS
	root string
}

// NewOSLister creates a Lister backed by the host file system.
func NewOSLister() *Lister {
	return &Lister{}
}

// NewFSLister creates a Lister backed by fsys, which is mounted at the absolute path root.
func NewFSLister(root string, fsys fs.FS) *Lister {
	return &Lister{fsys: fsys, root: root}
}

// ListDirectEntries returns the direct entries of folder. Entries that vanish
// between listing and stat are dropped.
func (l *Lister) ListDirectEntries(folder string) ([]domain.FolderEntry, error) {
	var (
		dirents []fs.DirEntry
		err     error
	)
	if l.fsys == nil {
		dirents, err = os.ReadDir(folder)
	} else {
		dirents, err = fs.ReadDir(l.fsys, l.toRelPath(folder))
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read folder"), "folder", folder)
	}

	entries := make([]domain.FolderEntry, 0, len(dirents))
	for _, d := range dirents {
		info, err := d.Info()
		if err != nil {
			continue
		}
		entries = append(entries, domain.FolderEntry{
			Name:    d.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
			Mode:    info.Mode(),
		})
	}
	return entries, nil
}

// toRelPath converts an absolute path to a path inside fsys.
func (l *Lister) toRelPath(absPath string) string {
	if !filepath.IsAbs(absPath) {
		return absPath
	}
	if l.root != "/" && absPath != l.root && !strings.HasPrefix(absPath, l.root+string(filepath.Separator)) {
		return absPath
	}
	rel := strings.TrimPrefix(absPath, l.root)
	rel = strings.TrimPrefix(rel, string(filepath.Separator))
	if rel == "" {
		return "."
	}
	return filepath.ToSlash(rel)
}
