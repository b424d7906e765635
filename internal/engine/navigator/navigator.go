// Package navigator enumerates the images next to a resource and moves through them.
package navigator

import (
	"path/filepath"
	"slices"

	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Navigator orders the supported images of a folder and answers next/previous with wraparound.
type Navigator struct {
	lister ports.FolderLister
	locale language.Tag
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithLocale sets the collation locale used to order names.
func WithLocale(tag language.Tag) Option {
	return func(n *Navigator) {
		n.locale = tag
	}
}

// New creates a Navigator backed by lister.
func New(lister ports.FolderLister, opts ...Option) *Navigator {
	n := &Navigator{
		lister: lister,
		locale: language.Und,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Enumerate builds the working set of the folder containing locator.
func (n *Navigator) Enumerate(locator string) (*domain.NavigationSet, error) {
	return n.EnumerateFolder(filepath.Dir(locator))
}

// EnumerateFolder builds the working set of folder. Only direct, visible,
// regular files of a supported format are included.
func (n *Navigator) EnumerateFolder(folder string) (*domain.NavigationSet, error) {
	entries, err := n.lister.ListDirectEntries(folder)
	if err != nil {
		navErr := domain.NewNavigationError(domain.NavigationFolderInaccessible, folder, err)
		return nil, zerr.With(zerr.Wrap(navErr, "failed to enumerate folder"), "folder", folder)
	}

	items := make([]domain.ResourceDescriptor, 0, len(entries))
	for _, entry := range entries {
		if entry.IsHidden() || !entry.IsRegular() {
			continue
		}
		if d, ok := domain.NewResourceDescriptor(folder, entry); ok {
			items = append(items, d)
		}
	}

	// A collator is not safe for concurrent use, so each enumeration gets its own.
	col := collate.New(n.locale, collate.IgnoreCase, collate.Numeric)
	slices.SortFunc(items, func(a, b domain.ResourceDescriptor) int {
		if c := col.CompareString(a.Name, b.Name); c != 0 {
			return c
		}
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		default:
			return 0
		}
	})

	return domain.NewNavigationSet(folder, items)
}

// Next returns the resource after current, wrapping to the first.
func (n *Navigator) Next(current domain.ResourceDescriptor, within *domain.NavigationSet) (domain.ResourceDescriptor, bool) {
	return step(current, within, 1)
}

// Previous returns the resource before current, wrapping to the last.
func (n *Navigator) Previous(current domain.ResourceDescriptor, within *domain.NavigationSet) (domain.ResourceDescriptor, bool) {
	return step(current, within, -1)
}

// IndexOf returns the position of d in within.
func (n *Navigator) IndexOf(d domain.ResourceDescriptor, within *domain.NavigationSet) (int, bool) {
	if within == nil {
		return 0, false
	}
	return within.IndexOf(d.Locator)
}

func step(current domain.ResourceDescriptor, within *domain.NavigationSet, delta int) (domain.ResourceDescriptor, bool) {
	if within == nil {
		return domain.ResourceDescriptor{}, false
	}
	i, ok := within.IndexOf(current.Locator)
	if !ok {
		return domain.ResourceDescriptor{}, false
	}
	count := within.Len()
	return within.At((i + delta + count) % count), true
}
