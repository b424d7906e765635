package domain

import (
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// FolderEntry is one direct child of a folder as reported by a FolderLister.
type FolderEntry struct {
	Name    string
	Size    int64
	ModTime time.Time
	Mode    fs.FileMode
}

// IsHidden reports whether the entry name starts with a dot.
func (e FolderEntry) IsHidden() bool {
	return strings.HasPrefix(e.Name, ".")
}

// IsRegular reports whether the entry is a regular file.
func (e FolderEntry) IsRegular() bool {
	return e.Mode.IsRegular()
}

// ResourceDescriptor identifies a browsable image. Two descriptors are equal when their locators are.
type ResourceDescriptor struct {
	// Locator is the absolute path of the image.
	Locator   string
	Name      string
	Size      int64
	CreatedAt time.Time
	Format    Format
}

// NewResourceDescriptor builds a descriptor for an entry of folder.
// It returns false when the entry is not a supported image.
func NewResourceDescriptor(folder string, entry FolderEntry) (ResourceDescriptor, bool) {
	format, ok := ParseFormat(filepath.Ext(entry.Name))
	if !ok {
		return ResourceDescriptor{}, false
	}
	return ResourceDescriptor{
		Locator:   filepath.Join(folder, entry.Name),
		Name:      entry.Name,
		Size:      entry.Size,
		CreatedAt: entry.ModTime,
		Format:    format,
	}, true
}

// Equal reports whether both descriptors point at the same locator.
func (r ResourceDescriptor) Equal(other ResourceDescriptor) bool {
	return r.Locator == other.Locator
}

// ID returns a stable 64-bit identifier derived from the locator.
func (r ResourceDescriptor) ID() uint64 {
	return xxhash.Sum64String(r.Locator)
}

// Folder returns the directory containing the resource.
func (r ResourceDescriptor) Folder() string {
	return filepath.Dir(r.Locator)
}
