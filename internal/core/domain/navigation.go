package domain

import "slices"

// NavigationSet is the ordered, de-duplicated working set of one folder.
// It is immutable; a changed folder produces a new set.
type NavigationSet struct {
	folder string
	items  []ResourceDescriptor
	index  map[string]int
}

// NewNavigationSet keeps the given order and drops later duplicates by locator.
// An empty result fails with ErrNoResourcesFound.
func NewNavigationSet(folder string, items []ResourceDescriptor) (*NavigationSet, error) {
	set := &NavigationSet{
		folder: folder,
		items:  make([]ResourceDescriptor, 0, len(items)),
		index:  make(map[string]int, len(items)),
	}
	for _, item := range items {
		if _, seen := set.index[item.Locator]; seen {
			continue
		}
		set.index[item.Locator] = len(set.items)
		set.items = append(set.items, item)
	}
	if len(set.items) == 0 {
		return nil, NewNavigationError(NavigationNoResourcesFound, folder, nil)
	}
	return set, nil
}

// Folder returns the folder the set was enumerated from.
func (s *NavigationSet) Folder() string {
	return s.folder
}

// Len returns the number of resources in the set.
func (s *NavigationSet) Len() int {
	return len(s.items)
}

// At returns the resource at position i.
func (s *NavigationSet) At(i int) ResourceDescriptor {
	return s.items[i]
}

// Items returns a copy of the ordered resources.
func (s *NavigationSet) Items() []ResourceDescriptor {
	return slices.Clone(s.items)
}

// IndexOf returns the position of locator in the set.
func (s *NavigationSet) IndexOf(locator string) (int, bool) {
	i, ok := s.index[locator]
	return i, ok
}

// Contains reports whether locator is part of the set.
func (s *NavigationSet) Contains(locator string) bool {
	_, ok := s.index[locator]
	return ok
}
